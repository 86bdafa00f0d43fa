package model

import "github.com/haierkeys/data-drive-service/pkg/timex"

const TableNameFolder = "folder"

// Folder mapped from table <folder>
// parent_id 为 0 表示顶层文件夹
type Folder struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID       int64      `gorm:"column:uid;not null;index:idx_folder_uid_parent,priority:1" json:"uid" form:"uid"`
	Name      string     `gorm:"column:name;not null" json:"name" form:"name"`
	ParentID  int64      `gorm:"column:parent_id;not null;default:0;index:idx_folder_uid_parent,priority:2" json:"parentId" form:"parentId"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Folder's table name
func (*Folder) TableName() string {
	return TableNameFolder
}
