package domain

import "time"

// RootFolderID 顶层文件夹的父ID
const RootFolderID int64 = 0

// Folder 文件夹领域模型
type Folder struct {
	ID        int64
	UID       int64
	Name      string
	ParentID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot 判断是否为顶层文件夹
func (f *Folder) IsRoot() bool {
	return f.ParentID == RootFolderID
}

// IsOwnedBy 判断文件夹是否归属给定用户
func (f *Folder) IsOwnedBy(uid int64) bool {
	return f.UID == uid
}
