package local_fs

import (
	"io"
	"os"
	"time"

	"github.com/haierkeys/data-drive-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// SendFile 将文件流写入本地存储
func (p *LocalFS) SendFile(fileKey string, file io.Reader, cType string, modTime time.Time) (string, error) {

	fileKey = p.getFileKey(fileKey)
	dstFileKey := p.getSavePath() + fileKey

	if err := fileurl.CreatePath(dstFileKey, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	out, err := os.Create(dstFileKey)
	if err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	defer out.Close()

	if _, err = io.Copy(out, file); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	if !modTime.IsZero() {
		_ = os.Chtimes(dstFileKey, modTime, modTime)
	}

	return fileKey, nil
}

// SendContent 将二进制内容写入本地存储
func (p *LocalFS) SendContent(fileKey string, content []byte, modTime time.Time) (string, error) {

	fileKey = p.getFileKey(fileKey)
	dstFileKey := p.getSavePath() + fileKey

	if err := fileurl.CreatePath(dstFileKey, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	if err := os.WriteFile(dstFileKey, content, 0644); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	if !modTime.IsZero() {
		_ = os.Chtimes(dstFileKey, modTime, modTime)
	}

	return fileKey, nil
}

// GetContent 按存储键读取完整内容
func (p *LocalFS) GetContent(fileKey string) ([]byte, error) {
	dstFileKey := p.getSavePath() + fileKey

	content, err := os.ReadFile(dstFileKey)
	if err != nil {
		return nil, errors.Wrap(err, "local_fs")
	}
	return content, nil
}
