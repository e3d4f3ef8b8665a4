package digest

import (
	sha1_lib "crypto/sha1"
)

type sha1 struct {
	name string
}

func NewSHA1() *sha1 {
	return &sha1{name: string(SHA1)}
}

func (s *sha1) Sum(data []byte) []byte {
	sum := sha1_lib.Sum(data)
	return sum[:]
}

func (s *sha1) Size() int {
	return sha1_lib.Size
}

func (s *sha1) Name() string {
	return s.name
}
