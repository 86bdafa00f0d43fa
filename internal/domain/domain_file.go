package domain

import "time"

// File 文件领域模型
// SavePath 为存储层返回的存储键
type File struct {
	ID          int64
	UID         int64
	FolderID    int64
	Name        string
	SavePath    string
	Size        int64
	ContentHash string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy 判断文件是否归属给定用户
func (f *File) IsOwnedBy(uid int64) bool {
	return f.UID == uid
}
