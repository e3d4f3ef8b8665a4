package digest

import (
	sha512_lib "crypto/sha512"
)

type sha512 struct {
	name string
}

func NewSHA512() *sha512 {
	return &sha512{name: string(SHA512)}
}

func (s *sha512) Sum(data []byte) []byte {
	sum := sha512_lib.Sum512(data)
	return sum[:]
}

func (s *sha512) Size() int {
	return sha512_lib.Size
}

func (s *sha512) Name() string {
	return s.name
}
