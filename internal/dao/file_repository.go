package dao

import (
	"context"
	"time"

	"github.com/haierkeys/data-drive-service/internal/domain"
	"github.com/haierkeys/data-drive-service/internal/model"
	"github.com/haierkeys/data-drive-service/pkg/timex"
)

// fileRepository 实现 domain.FileRepository 接口
type fileRepository struct {
	dao *Dao
}

// NewFileRepository 创建 FileRepository 实例
func NewFileRepository(dao *Dao) domain.FileRepository {
	return &fileRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *fileRepository) toDomain(m *model.File) *domain.File {
	if m == nil {
		return nil
	}
	return &domain.File{
		ID:          m.ID,
		UID:         m.UID,
		FolderID:    m.FolderID,
		Name:        m.Name,
		SavePath:    m.SavePath,
		Size:        m.Size,
		ContentHash: m.ContentHash,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *fileRepository) toModel(file *domain.File) *model.File {
	if file == nil {
		return nil
	}
	return &model.File{
		ID:          file.ID,
		UID:         file.UID,
		FolderID:    file.FolderID,
		Name:        file.Name,
		SavePath:    file.SavePath,
		Size:        file.Size,
		ContentHash: file.ContentHash,
		CreatedAt:   timex.Time(file.CreatedAt),
		UpdatedAt:   timex.Time(file.UpdatedAt),
	}
}

// GetByID 根据ID获取文件，不限定归属用户
func (r *fileRepository) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	var m model.File
	err := r.dao.use(ctx, "File").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建文件
func (r *fileRepository) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	m := r.toModel(file)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.dao.use(ctx, "File").Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 更新文件
func (r *fileRepository) Update(ctx context.Context, file *domain.File) error {
	return r.dao.use(ctx, "File").
		Model(&model.File{}).
		Where("id = ? AND uid = ?", file.ID, file.UID).
		Updates(map[string]interface{}{
			"name":         file.Name,
			"save_path":    file.SavePath,
			"size":         file.Size,
			"content_hash": file.ContentHash,
			"updated_at":   timex.Now(),
		}).Error
}

// ListByFolder 获取某文件夹下的文件，按创建时间倒序
func (r *fileRepository) ListByFolder(ctx context.Context, folderID, uid int64) ([]*domain.File, error) {
	return r.listRows(ctx, "folder_id = ? AND uid = ?", folderID, uid)
}

// ListByFolderIDs 批量获取多个文件夹下的文件
func (r *fileRepository) ListByFolderIDs(ctx context.Context, folderIDs []int64, uid int64) ([]*domain.File, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}
	return r.listRows(ctx, "folder_id IN ? AND uid = ?", folderIDs, uid)
}

func (r *fileRepository) listRows(ctx context.Context, where string, args ...interface{}) ([]*domain.File, error) {
	var ms []*model.File
	err := r.dao.use(ctx, "File").
		Where(where, args...).
		Order("created_at DESC, id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.File, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// Delete 物理删除文件
func (r *fileRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.dao.use(ctx, "File").
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.File{}).Error
}

// DeleteByFolderIDs 批量物理删除多个文件夹下的文件
func (r *fileRepository) DeleteByFolderIDs(ctx context.Context, folderIDs []int64, uid int64) error {
	if len(folderIDs) == 0 {
		return nil
	}
	return r.dao.use(ctx, "File").
		Where("folder_id IN ? AND uid = ?", folderIDs, uid).
		Delete(&model.File{}).Error
}
