package dto

import "github.com/haierkeys/data-drive-service/pkg/timex"

// FolderDTO 文件夹数据传输对象
type FolderDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	ParentID  int64      `json:"parentId"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// FolderDetailDTO 文件夹详情：子文件夹与文件均按创建时间倒序
type FolderDetailDTO struct {
	Folder     *FolderDTO   `json:"folder"`
	SubFolders []*FolderDTO `json:"subFolders"`
	Files      []*FileDTO   `json:"files"`
}

// FolderCreateRequest 创建文件夹请求参数
// ParentID 为 0 时在顶层创建
type FolderCreateRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	ParentID int64  `json:"parentId" form:"parentId"`
}

// FolderUpdateRequest 重命名文件夹请求参数
type FolderUpdateRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// FolderListRequest 获取子文件夹列表的请求参数
// ParentID 为 0 时列出顶层文件夹
type FolderListRequest struct {
	ParentID int64 `json:"parentId" form:"parentId"`
}

// FolderDeleteResultDTO 删除文件夹的结果
// ParentID 供客户端跳回上级目录
type FolderDeleteResultDTO struct {
	ParentID int64 `json:"parentId"`
}
