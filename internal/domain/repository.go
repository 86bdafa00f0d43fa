// Package domain 定义领域模型和接口
package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByEmail 根据邮箱获取用户
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByUsername 根据用户名获取用户
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)

	// UpdatePassword 更新用户密码
	UpdatePassword(ctx context.Context, password string, uid int64) error
}

// FolderRepository 文件夹仓储接口
// GetByID 不限定归属用户，归属校验由服务层完成
type FolderRepository interface {
	// GetByID 根据ID获取文件夹
	GetByID(ctx context.Context, id int64) (*Folder, error)

	// GetByNameAndParent 根据名称和父文件夹获取文件夹
	GetByNameAndParent(ctx context.Context, name string, parentID, uid int64) (*Folder, error)

	// Create 创建文件夹
	Create(ctx context.Context, folder *Folder) (*Folder, error)

	// Update 更新文件夹
	Update(ctx context.Context, folder *Folder) error

	// ListByParent 获取某父文件夹下的子文件夹，按创建时间倒序
	ListByParent(ctx context.Context, parentID, uid int64) ([]*Folder, error)

	// ListByParentPage 分页获取某父文件夹下的子文件夹，按创建时间倒序
	ListByParentPage(ctx context.Context, parentID, uid int64, page, pageSize int) ([]*Folder, error)

	// CountByParent 统计某父文件夹下的子文件夹数量
	CountByParent(ctx context.Context, parentID, uid int64) (int64, error)

	// ListIDsByParents 批量获取多个父文件夹的直接子文件夹ID
	ListIDsByParents(ctx context.Context, parentIDs []int64, uid int64) ([]int64, error)

	// DeleteByIDs 批量物理删除文件夹
	DeleteByIDs(ctx context.Context, ids []int64, uid int64) error
}

// FileRepository 文件仓储接口
// GetByID 不限定归属用户，归属校验由服务层完成
type FileRepository interface {
	// GetByID 根据ID获取文件
	GetByID(ctx context.Context, id int64) (*File, error)

	// Create 创建文件
	Create(ctx context.Context, file *File) (*File, error)

	// Update 更新文件
	Update(ctx context.Context, file *File) error

	// ListByFolder 获取某文件夹下的文件，按创建时间倒序
	ListByFolder(ctx context.Context, folderID, uid int64) ([]*File, error)

	// ListByFolderIDs 批量获取多个文件夹下的文件
	ListByFolderIDs(ctx context.Context, folderIDs []int64, uid int64) ([]*File, error)

	// Delete 物理删除文件
	Delete(ctx context.Context, id, uid int64) error

	// DeleteByFolderIDs 批量物理删除多个文件夹下的文件
	DeleteByFolderIDs(ctx context.Context, folderIDs []int64, uid int64) error
}
