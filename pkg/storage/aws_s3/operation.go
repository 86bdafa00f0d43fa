package aws_s3

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/haierkeys/data-drive-service/pkg/fileurl"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SendFile 上传文件流
func (p *S3) SendFile(fileKey string, file io.Reader, cType string, modTime time.Time) (string, error) {

	ctx := context.Background()
	bucket := p.GetBucket("")

	fileKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + fileKey

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(fileKey),
		Body:        file,
		ContentType: aws.String(cType),
	}

	if !modTime.IsZero() {
		input.Metadata = map[string]string{
			"modification-time": modTime.Format(time.RFC3339),
		}
	}

	if _, err := p.S3Manager.Upload(ctx, input); err != nil {
		return "", errors.Wrap(err, "aws_s3")
	}

	p.logger.Debug("aws_s3 upload", zap.String("bucket", bucket), zap.String("key", fileKey))

	return fileKey, nil
}

// SendContent 上传二进制内容
func (p *S3) SendContent(fileKey string, content []byte, modTime time.Time) (string, error) {
	return p.SendFile(fileKey, bytes.NewReader(content), "application/octet-stream", modTime)
}

// GetContent 按存储键读取完整内容
func (p *S3) GetContent(fileKey string) ([]byte, error) {

	ctx := context.Background()
	bucket := p.GetBucket("")

	output, err := p.S3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(fileKey),
	})
	if err != nil {
		return nil, errors.Wrap(err, "aws_s3")
	}
	defer output.Body.Close()

	content, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, errors.Wrap(err, "aws_s3")
	}
	return content, nil
}
