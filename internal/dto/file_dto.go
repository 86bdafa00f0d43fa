package dto

import "github.com/haierkeys/data-drive-service/pkg/timex"

// FileDTO 文件数据传输对象
type FileDTO struct {
	ID          int64      `json:"id"`
	FolderID    int64      `json:"folderId"`
	Name        string     `json:"name"`
	Size        int64      `json:"size"`
	ContentHash string     `json:"contentHash"`
	CreatedAt   timex.Time `json:"createdAt"`
	UpdatedAt   timex.Time `json:"updatedAt"`
}

// FileContentDTO 文件内容及其元数据
type FileContentDTO struct {
	File    *FileDTO `json:"file"`
	Content []byte   `json:"content"`
}

// FileCreateRequest 上传文件请求参数
// 文件内容经 multipart form 的 file 字段提交
type FileCreateRequest struct {
	FolderID int64  `json:"folderId" form:"folderId" binding:"required"`
	Name     string `json:"name" form:"name"`
}

// FileUpdateRequest 重命名文件请求参数
type FileUpdateRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// FileDeleteResultDTO 删除文件的结果
// FolderID 供客户端跳回所在目录
type FileDeleteResultDTO struct {
	FolderID int64 `json:"folderId"`
}
