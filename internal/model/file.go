package model

import "github.com/haierkeys/data-drive-service/pkg/timex"

const TableNameFile = "file"

// File mapped from table <file>
type File struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID         int64      `gorm:"column:uid;not null;index:idx_file_uid" json:"uid" form:"uid"`
	FolderID    int64      `gorm:"column:folder_id;not null;index:idx_file_folder" json:"folderId" form:"folderId"`
	Name        string     `gorm:"column:name;not null" json:"name" form:"name"`
	SavePath    string     `gorm:"column:save_path;not null" json:"savePath" form:"savePath"`
	Size        int64      `gorm:"column:size;not null;default:0" json:"size" form:"size"`
	ContentHash string     `gorm:"column:content_hash" json:"contentHash" form:"contentHash"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName File's table name
func (*File) TableName() string {
	return TableNameFile
}
