package webdav

import (
	"github.com/pkg/errors"
)

func (w *WebDAV) Delete(fileKey string) error {
	if err := w.Client.Remove(fileKey); err != nil {
		return errors.Wrap(err, "webdav")
	}
	return nil
}
