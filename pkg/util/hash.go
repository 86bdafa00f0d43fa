package util

import (
	"crypto/md5"
	"encoding/hex"
)

// EncodeMD5 对字符串进行MD5编码
func EncodeMD5(str string) string {
	h := md5.New()
	h.Write([]byte(str))
	return hex.EncodeToString(h.Sum(nil))
}

// EncodeContentMD5 计算内容的MD5，用作下载响应的 ETag
func EncodeContentMD5(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}
