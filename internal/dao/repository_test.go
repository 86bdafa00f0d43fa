package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/haierkeys/data-drive-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngineWithConfig(Database{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "test.db"),
	}, "test")
	if err != nil {
		t.Fatal(err)
	}
	return New(db)
}

func TestFolderRepository_CreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Folder{
		UID:      1,
		Name:     "documents",
		ParentID: domain.RootFolderID,
	})
	assert.Nil(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "documents", created.Name)

	got, err := repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(1), got.UID)

	// 其他用户的文件夹依旧可按 ID 取到，归属判断在服务层
	assert.False(t, got.IsOwnedBy(2))

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFolderRepository_ListByParentOrder(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &domain.Folder{UID: 1, Name: name, ParentID: domain.RootFolderID})
		assert.Nil(t, err)
	}
	// 其他用户的数据不应出现在列表里
	_, err := repo.Create(ctx, &domain.Folder{UID: 2, Name: "other", ParentID: domain.RootFolderID})
	assert.Nil(t, err)

	list, err := repo.ListByParent(ctx, domain.RootFolderID, 1)
	assert.Nil(t, err)
	assert.Len(t, list, 3)

	// 创建时间倒序，最新的在前
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "first", list[2].Name)
}

func TestFolderRepository_ListByParentPage(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &domain.Folder{UID: 1, Name: name, ParentID: domain.RootFolderID})
		assert.Nil(t, err)
	}

	count, err := repo.CountByParent(ctx, domain.RootFolderID, 1)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), count)

	page2, err := repo.ListByParentPage(ctx, domain.RootFolderID, 1, 2, 2)
	assert.Nil(t, err)
	assert.Len(t, page2, 1)
	assert.Equal(t, "first", page2[0].Name)
}

func TestFolderRepository_Update(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Folder{UID: 1, Name: "before", ParentID: domain.RootFolderID})
	assert.Nil(t, err)

	created.Name = "after"
	assert.Nil(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, "after", got.Name)
}

func TestFolderRepository_DeleteByIDs(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	a, _ := repo.Create(ctx, &domain.Folder{UID: 1, Name: "a", ParentID: domain.RootFolderID})
	b, _ := repo.Create(ctx, &domain.Folder{UID: 1, Name: "b", ParentID: a.ID})

	ids, err := repo.ListIDsByParents(ctx, []int64{a.ID}, 1)
	assert.Nil(t, err)
	assert.Equal(t, []int64{b.ID}, ids)

	assert.Nil(t, repo.DeleteByIDs(ctx, []int64{a.ID, b.ID}, 1))

	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFileRepository_CRUD(t *testing.T) {
	d := newTestDao(t)
	folders := NewFolderRepository(d)
	files := NewFileRepository(d)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &domain.Folder{UID: 1, Name: "docs", ParentID: domain.RootFolderID})
	assert.Nil(t, err)

	created, err := files.Create(ctx, &domain.File{
		UID:      1,
		FolderID: folder.ID,
		Name:     "report.txt",
		SavePath: "2026-08-29/abc.txt",
		Size:     11,
	})
	assert.Nil(t, err)
	assert.NotZero(t, created.ID)

	got, err := files.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, "report.txt", got.Name)
	assert.Equal(t, folder.ID, got.FolderID)

	got.Name = "renamed.txt"
	assert.Nil(t, files.Update(ctx, got))

	list, err := files.ListByFolder(ctx, folder.ID, 1)
	assert.Nil(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "renamed.txt", list[0].Name)

	assert.Nil(t, files.Delete(ctx, created.ID, 1))
	_, err = files.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFileRepository_DeleteByFolderIDs(t *testing.T) {
	d := newTestDao(t)
	folders := NewFolderRepository(d)
	files := NewFileRepository(d)
	ctx := context.Background()

	folder, _ := folders.Create(ctx, &domain.Folder{UID: 1, Name: "bulk", ParentID: domain.RootFolderID})
	for _, name := range []string{"a.txt", "b.txt"} {
		_, err := files.Create(ctx, &domain.File{UID: 1, FolderID: folder.ID, Name: name})
		assert.Nil(t, err)
	}

	assert.Nil(t, files.DeleteByFolderIDs(ctx, []int64{folder.ID}, 1))

	list, err := files.ListByFolder(ctx, folder.ID, 1)
	assert.Nil(t, err)
	assert.Len(t, list, 0)
}
