package aliyun_oss

import (
	"bytes"
	"io"
	"time"

	"github.com/haierkeys/data-drive-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// SendFile 上传文件流
func (p *OSS) SendFile(fileKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	if p.Bucket == nil {
		if err := p.GetBucket(""); err != nil {
			return "", errors.Wrap(err, "aliyun_oss")
		}
	}

	fileKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + fileKey

	if err := p.Bucket.PutObject(fileKey, file); err != nil {
		return "", errors.Wrap(err, "aliyun_oss")
	}
	return fileKey, nil
}

// SendContent 上传二进制内容
func (p *OSS) SendContent(fileKey string, content []byte, modTime time.Time) (string, error) {
	return p.SendFile(fileKey, bytes.NewReader(content), "application/octet-stream", modTime)
}

// GetContent 按存储键读取完整内容
func (p *OSS) GetContent(fileKey string) ([]byte, error) {
	if p.Bucket == nil {
		if err := p.GetBucket(""); err != nil {
			return nil, errors.Wrap(err, "aliyun_oss")
		}
	}

	body, err := p.Bucket.GetObject(fileKey)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}
	defer body.Close()

	content, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}
	return content, nil
}
