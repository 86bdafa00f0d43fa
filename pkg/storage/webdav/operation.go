package webdav

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/haierkeys/data-drive-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// SendFile 将文件流上传到 WebDAV 服务器
func (w *WebDAV) SendFile(fileKey string, file io.Reader, cType string, modTime time.Time) (string, error) {

	content, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, "webdav")
	}

	return w.SendContent(fileKey, content, modTime)
}

// SendContent 将二进制内容上传到 WebDAV 服务器
func (w *WebDAV) SendContent(fileKey string, content []byte, modTime time.Time) (string, error) {

	fileKey = fileurl.PathSuffixCheckAdd(w.Config.CustomPath, "/") + fileKey

	if dir := path.Dir(fileKey); dir != "." && dir != "/" {
		if err := w.Client.MkdirAll(dir, 0644); err != nil {
			return "", errors.Wrap(err, "webdav")
		}
	}

	if err := w.Client.Write(fileKey, content, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "webdav")
	}

	return fileKey, nil
}

// GetContent 从 WebDAV 服务器读取完整内容
func (w *WebDAV) GetContent(fileKey string) ([]byte, error) {
	content, err := w.Client.Read(fileKey)
	if err != nil {
		return nil, errors.Wrap(err, "webdav")
	}
	return content, nil
}
