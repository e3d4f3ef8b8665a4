package digest

import (
	md5_lib "crypto/md5"
)

type md5 struct {
	name string
}

func NewMD5() *md5 {
	return &md5{name: string(MD5)}
}

func (m *md5) Sum(data []byte) []byte {
	sum := md5_lib.Sum(data)
	return sum[:]
}

func (m *md5) Size() int {
	return md5_lib.Size
}

func (m *md5) Name() string {
	return m.name
}
