// Package fileurl 提供文件路径相关工具函数
package fileurl

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IsDir 判断所给路径是否为文件夹
func IsDir(p string) bool {
	s, err := os.Stat(p)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// IsExist 判断所给路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// GetFileExt 获取文件后缀
func GetFileExt(name string) string {
	return path.Ext(name)
}

// GetDatePath 获取日期保存路径
func GetDatePath(timeFormat string) string {
	if timeFormat == "" {
		timeFormat = "200601/02"
	}
	return PathSuffixCheckAdd(time.Now().Format(timeFormat), "/")
}

// GenerateSaveKey 为上传内容生成保存路径
// 形如 202601/02/<uuid>.ext，保证不会与既有内容冲突
func GenerateSaveKey(fileName string) string {
	return GetDatePath("") + uuid.New().String() + GetFileExt(fileName)
}

// CreatePath 创建路径所在的目录
func CreatePath(dst string, perm os.FileMode) error {
	dir := filepath.Dir(dst)
	return os.MkdirAll(dir, perm)
}

// GetExePath 获取当前执行文件的路径
func GetExePath() string {
	file, _ := exec.LookPath(os.Args[0])
	p, _ := filepath.Abs(file)
	index := strings.LastIndex(p, string(os.PathSeparator))
	return p[:index]
}

// PathSuffixCheckAdd 检查路径后缀，如果没有则添加
func PathSuffixCheckAdd(p string, suffix string) string {
	if !strings.HasSuffix(p, suffix) {
		p = p + suffix
	}
	return p
}
