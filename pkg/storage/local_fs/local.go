package local_fs

import (
	"github.com/haierkeys/data-drive-service/pkg/fileurl"
)

type Config struct {
	IsEnabled  bool   `yaml:"is-enable" default:"true"`
	SavePath   string `yaml:"save-path" default:"storage/uploads"`
	CustomPath string `yaml:"custom-path"`
}

type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	return &LocalFS{
		Config: conf,
	}, nil
}

// getSavePath 返回带结尾分隔符的落盘根目录
func (p *LocalFS) getSavePath() string {
	return fileurl.PathSuffixCheckAdd(p.Config.SavePath, "/")
}

// getFileKey 拼接自定义前缀后的存储键
func (p *LocalFS) getFileKey(fileKey string) string {
	if p.Config.CustomPath != "" {
		return fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + fileKey
	}
	return fileKey
}
