package dao

import (
	"context"
	"time"

	"github.com/haierkeys/data-drive-service/internal/domain"
	"github.com/haierkeys/data-drive-service/internal/model"
	"github.com/haierkeys/data-drive-service/pkg/app"
	"github.com/haierkeys/data-drive-service/pkg/timex"
)

// folderRepository 实现 domain.FolderRepository 接口
type folderRepository struct {
	dao *Dao
}

// NewFolderRepository 创建 FolderRepository 实例
func NewFolderRepository(dao *Dao) domain.FolderRepository {
	return &folderRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *folderRepository) toDomain(m *model.Folder) *domain.Folder {
	if m == nil {
		return nil
	}
	return &domain.Folder{
		ID:        m.ID,
		UID:       m.UID,
		Name:      m.Name,
		ParentID:  m.ParentID,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *folderRepository) toModel(folder *domain.Folder) *model.Folder {
	if folder == nil {
		return nil
	}
	return &model.Folder{
		ID:        folder.ID,
		UID:       folder.UID,
		Name:      folder.Name,
		ParentID:  folder.ParentID,
		CreatedAt: timex.Time(folder.CreatedAt),
		UpdatedAt: timex.Time(folder.UpdatedAt),
	}
}

// GetByID 根据ID获取文件夹，不限定归属用户
func (r *folderRepository) GetByID(ctx context.Context, id int64) (*domain.Folder, error) {
	var m model.Folder
	err := r.dao.use(ctx, "Folder").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByNameAndParent 根据名称和父文件夹获取文件夹
func (r *folderRepository) GetByNameAndParent(ctx context.Context, name string, parentID, uid int64) (*domain.Folder, error) {
	var m model.Folder
	err := r.dao.use(ctx, "Folder").
		Where("name = ? AND parent_id = ? AND uid = ?", name, parentID, uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建文件夹
func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m := r.toModel(folder)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.dao.use(ctx, "Folder").Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 更新文件夹
func (r *folderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	return r.dao.use(ctx, "Folder").
		Model(&model.Folder{}).
		Where("id = ? AND uid = ?", folder.ID, folder.UID).
		Updates(map[string]interface{}{
			"name":       folder.Name,
			"parent_id":  folder.ParentID,
			"updated_at": timex.Now(),
		}).Error
}

// listRows 是列表查询的公共实现，按创建时间倒序
func (r *folderRepository) listRows(ctx context.Context, where string, args ...interface{}) ([]*domain.Folder, error) {
	var ms []*model.Folder
	err := r.dao.use(ctx, "Folder").
		Where(where, args...).
		Order("created_at DESC, id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Folder, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// ListByParentPage 分页获取某父文件夹下的子文件夹，按创建时间倒序
func (r *folderRepository) ListByParentPage(ctx context.Context, parentID, uid int64, page, pageSize int) ([]*domain.Folder, error) {
	var ms []*model.Folder
	err := r.dao.use(ctx, "Folder").
		Where("parent_id = ? AND uid = ?", parentID, uid).
		Order("created_at DESC, id DESC").
		Offset(app.GetPageOffset(page, pageSize)).
		Limit(pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Folder, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// CountByParent 统计某父文件夹下的子文件夹数量
func (r *folderRepository) CountByParent(ctx context.Context, parentID, uid int64) (int64, error) {
	var count int64
	err := r.dao.use(ctx, "Folder").
		Model(&model.Folder{}).
		Where("parent_id = ? AND uid = ?", parentID, uid).
		Count(&count).Error
	return count, err
}

// ListByParent 获取某父文件夹下的子文件夹，按创建时间倒序
func (r *folderRepository) ListByParent(ctx context.Context, parentID, uid int64) ([]*domain.Folder, error) {
	return r.listRows(ctx, "parent_id = ? AND uid = ?", parentID, uid)
}

// ListIDsByParents 批量获取多个父文件夹的直接子文件夹ID
func (r *folderRepository) ListIDsByParents(ctx context.Context, parentIDs []int64, uid int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var ids []int64
	err := r.dao.use(ctx, "Folder").
		Model(&model.Folder{}).
		Where("parent_id IN ? AND uid = ?", parentIDs, uid).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByIDs 批量物理删除文件夹
func (r *folderRepository) DeleteByIDs(ctx context.Context, ids []int64, uid int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.dao.use(ctx, "Folder").
		Where("id IN ? AND uid = ?", ids, uid).
		Delete(&model.Folder{}).Error
}
