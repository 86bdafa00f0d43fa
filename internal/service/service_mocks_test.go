package service

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/haierkeys/data-drive-service/internal/domain"

	"gorm.io/gorm"
)

// memFolderRepo 内存实现，供服务层测试使用
type memFolderRepo struct {
	seq     int64
	folders map[int64]*domain.Folder
}

func newMemFolderRepo() *memFolderRepo {
	return &memFolderRepo{folders: make(map[int64]*domain.Folder)}
}

func (m *memFolderRepo) GetByID(ctx context.Context, id int64) (*domain.Folder, error) {
	if f, ok := m.folders[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memFolderRepo) GetByNameAndParent(ctx context.Context, name string, parentID, uid int64) (*domain.Folder, error) {
	for _, f := range m.folders {
		if f.Name == name && f.ParentID == parentID && f.UID == uid {
			cp := *f
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memFolderRepo) Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m.seq++
	cp := *folder
	cp.ID = m.seq
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.folders[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memFolderRepo) Update(ctx context.Context, folder *domain.Folder) error {
	if f, ok := m.folders[folder.ID]; ok && f.UID == folder.UID {
		f.Name = folder.Name
		f.ParentID = folder.ParentID
		f.UpdatedAt = time.Now()
	}
	return nil
}

func (m *memFolderRepo) ListByParent(ctx context.Context, parentID, uid int64) ([]*domain.Folder, error) {
	var list []*domain.Folder
	for _, f := range m.folders {
		if f.ParentID == parentID && f.UID == uid {
			cp := *f
			list = append(list, &cp)
		}
	}
	// 创建时间倒序，与数据库层约定一致
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (m *memFolderRepo) ListByParentPage(ctx context.Context, parentID, uid int64, page, pageSize int) ([]*domain.Folder, error) {
	list, _ := m.ListByParent(ctx, parentID, uid)
	offset := 0
	if page > 0 {
		offset = (page - 1) * pageSize
	}
	if offset >= len(list) {
		return nil, nil
	}
	end := len(list)
	if pageSize > 0 && offset+pageSize < end {
		end = offset + pageSize
	}
	return list[offset:end], nil
}

func (m *memFolderRepo) CountByParent(ctx context.Context, parentID, uid int64) (int64, error) {
	list, _ := m.ListByParent(ctx, parentID, uid)
	return int64(len(list)), nil
}

func (m *memFolderRepo) ListIDsByParents(ctx context.Context, parentIDs []int64, uid int64) ([]int64, error) {
	parents := make(map[int64]bool, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = true
	}
	var ids []int64
	for _, f := range m.folders {
		if parents[f.ParentID] && f.UID == uid {
			ids = append(ids, f.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memFolderRepo) DeleteByIDs(ctx context.Context, ids []int64, uid int64) error {
	for _, id := range ids {
		if f, ok := m.folders[id]; ok && f.UID == uid {
			delete(m.folders, id)
		}
	}
	return nil
}

// memFileRepo 内存实现
type memFileRepo struct {
	seq       int64
	files     map[int64]*domain.File
	createErr error
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{files: make(map[int64]*domain.File)}
}

func (m *memFileRepo) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	if f, ok := m.files[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memFileRepo) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.seq++
	cp := *file
	cp.ID = m.seq
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.files[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memFileRepo) Update(ctx context.Context, file *domain.File) error {
	if f, ok := m.files[file.ID]; ok && f.UID == file.UID {
		f.Name = file.Name
		f.SavePath = file.SavePath
		f.Size = file.Size
		f.ContentHash = file.ContentHash
		f.UpdatedAt = time.Now()
	}
	return nil
}

func (m *memFileRepo) ListByFolder(ctx context.Context, folderID, uid int64) ([]*domain.File, error) {
	return m.ListByFolderIDs(ctx, []int64{folderID}, uid)
}

func (m *memFileRepo) ListByFolderIDs(ctx context.Context, folderIDs []int64, uid int64) ([]*domain.File, error) {
	folders := make(map[int64]bool, len(folderIDs))
	for _, id := range folderIDs {
		folders[id] = true
	}
	var list []*domain.File
	for _, f := range m.files {
		if folders[f.FolderID] && f.UID == uid {
			cp := *f
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (m *memFileRepo) Delete(ctx context.Context, id, uid int64) error {
	if f, ok := m.files[id]; ok && f.UID == uid {
		delete(m.files, id)
	}
	return nil
}

func (m *memFileRepo) DeleteByFolderIDs(ctx context.Context, folderIDs []int64, uid int64) error {
	folders := make(map[int64]bool, len(folderIDs))
	for _, id := range folderIDs {
		folders[id] = true
	}
	for id, f := range m.files {
		if folders[f.FolderID] && f.UID == uid {
			delete(m.files, id)
		}
	}
	return nil
}

// memStorage 内存存储实现
// Delete 可能被并发调用，需要加锁
type memStorage struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	sendErr error
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (m *memStorage) SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return m.SendContent(pathKey, content, modTime)
}

func (m *memStorage) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	if m.sendErr != nil {
		return "", m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[pathKey] = content
	return pathKey, nil
}

func (m *memStorage) GetContent(pathKey string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if content, ok := m.blobs[pathKey]; ok {
		return content, nil
	}
	return nil, io.ErrUnexpectedEOF
}

func (m *memStorage) Delete(pathKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, pathKey)
	return nil
}
