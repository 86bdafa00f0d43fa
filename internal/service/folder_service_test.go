package service

import (
	"context"
	"errors"
	"testing"

	"github.com/haierkeys/data-drive-service/internal/domain"
	"github.com/haierkeys/data-drive-service/internal/dto"
	"github.com/haierkeys/data-drive-service/pkg/app"
	"github.com/haierkeys/data-drive-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestFolderService() (FolderService, *memFolderRepo, *memFileRepo, *memStorage) {
	folderRepo := newMemFolderRepo()
	fileRepo := newMemFileRepo()
	storager := newMemStorage()
	svc := NewFolderService(folderRepo, fileRepo, storager, zap.NewNop())
	return svc, folderRepo, fileRepo, storager
}

func codeOf(t *testing.T, err error) *code.Code {
	t.Helper()
	var c *code.Code
	if !errors.As(err, &c) {
		t.Fatalf("expected business code error, got %v", err)
	}
	return c
}

func TestFolderService_Create(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "docs", ParentID: domain.RootFolderID})
	assert.Nil(t, err)
	assert.Equal(t, "docs", created.Name)
	assert.Equal(t, domain.RootFolderID, created.ParentID)

	sub, err := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "inner", ParentID: created.ID})
	assert.Nil(t, err)
	assert.Equal(t, created.ID, sub.ParentID)
}

func TestFolderService_Create_InvalidName(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	for _, name := range []string{"", "   ", "a/b"} {
		_, err := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: name})
		assert.Equal(t, code.ErrorFolderNameInvalid.Code(), codeOf(t, err).Code(), "name %q", name)
	}
}

func TestFolderService_Create_ParentChecks(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	// 父文件夹不存在
	_, err := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "x", ParentID: 999})
	assert.Equal(t, code.ErrorFolderNotFound.Code(), codeOf(t, err).Code())

	// 父文件夹归属他人
	other, err := svc.Create(ctx, 2, &dto.FolderCreateRequest{Name: "theirs", ParentID: domain.RootFolderID})
	assert.Nil(t, err)

	_, err = svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "x", ParentID: other.ID})
	assert.Equal(t, code.ErrorAccessDenied.Code(), codeOf(t, err).Code())
}

func TestFolderService_Get_Authorization(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "mine", ParentID: domain.RootFolderID})
	assert.Nil(t, err)

	// 本人可见
	detail, err := svc.Get(ctx, 1, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, "mine", detail.Folder.Name)

	// 他人访问返回 AccessDenied 而非 NotFound
	_, err = svc.Get(ctx, 2, created.ID)
	assert.Equal(t, code.ErrorAccessDenied.Code(), codeOf(t, err).Code())

	// 不存在的 ID 返回 NotFound
	_, err = svc.Get(ctx, 1, 999)
	assert.Equal(t, code.ErrorFolderNotFound.Code(), codeOf(t, err).Code())
}

func TestFolderService_Get_Detail(t *testing.T) {
	svc, _, fileRepo, _ := newTestFolderService()
	ctx := context.Background()

	root, _ := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "root", ParentID: domain.RootFolderID})
	_, _ = svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "child-a", ParentID: root.ID})
	_, _ = svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "child-b", ParentID: root.ID})

	_, err := fileRepo.Create(ctx, &domain.File{UID: 1, FolderID: root.ID, Name: "readme.md"})
	assert.Nil(t, err)

	detail, err := svc.Get(ctx, 1, root.ID)
	assert.Nil(t, err)
	assert.Len(t, detail.SubFolders, 2)
	assert.Len(t, detail.Files, 1)

	// 创建时间倒序，后创建的在前
	assert.Equal(t, "child-b", detail.SubFolders[0].Name)
	assert.Equal(t, "child-a", detail.SubFolders[1].Name)
}

func TestFolderService_List_TopLevelScopedToOwner(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "mine", ParentID: domain.RootFolderID})
	_, _ = svc.Create(ctx, 2, &dto.FolderCreateRequest{Name: "theirs", ParentID: domain.RootFolderID})

	list, count, err := svc.List(ctx, 1, domain.RootFolderID, &app.Pager{Page: 1, PageSize: 10})
	assert.Nil(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].Name)
}

func TestFolderService_List_Pagination(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, _ = svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: name, ParentID: domain.RootFolderID})
	}

	list, count, err := svc.List(ctx, 1, domain.RootFolderID, &app.Pager{Page: 2, PageSize: 2})
	assert.Nil(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, list, 1)
	// 创建时间倒序，第二页只剩最早创建的
	assert.Equal(t, "a", list[0].Name)
}

func TestFolderService_Update(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "before", ParentID: domain.RootFolderID})

	updated, err := svc.Update(ctx, 1, created.ID, &dto.FolderUpdateRequest{Name: "after"})
	assert.Nil(t, err)
	assert.Equal(t, "after", updated.Name)

	// 他人不可改名
	_, err = svc.Update(ctx, 2, created.ID, &dto.FolderUpdateRequest{Name: "hijack"})
	assert.Equal(t, code.ErrorAccessDenied.Code(), codeOf(t, err).Code())

	// 空名校验
	_, err = svc.Update(ctx, 1, created.ID, &dto.FolderUpdateRequest{Name: ""})
	assert.Equal(t, code.ErrorFolderNameInvalid.Code(), codeOf(t, err).Code())
}

func TestFolderService_Delete_Cascade(t *testing.T) {
	svc, folderRepo, fileRepo, storager := newTestFolderService()
	ctx := context.Background()

	root, _ := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "root", ParentID: domain.RootFolderID})
	child, _ := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "child", ParentID: root.ID})
	grand, _ := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "grand", ParentID: child.ID})

	// 各层文件及存储内容
	storager.blobs["k-root"] = []byte("a")
	storager.blobs["k-grand"] = []byte("b")
	_, _ = fileRepo.Create(ctx, &domain.File{UID: 1, FolderID: root.ID, Name: "a.txt", SavePath: "k-root"})
	_, _ = fileRepo.Create(ctx, &domain.File{UID: 1, FolderID: grand.ID, Name: "b.txt", SavePath: "k-grand"})

	result, err := svc.Delete(ctx, 1, root.ID)
	assert.Nil(t, err)
	assert.Equal(t, domain.RootFolderID, result.ParentID)

	// 子树全部删除
	for _, id := range []int64{root.ID, child.ID, grand.ID} {
		_, err := folderRepo.GetByID(ctx, id)
		assert.NotNil(t, err)
	}
	assert.Len(t, fileRepo.files, 0)

	// 存储内容回收
	assert.Len(t, storager.blobs, 0)
}

func TestFolderService_Delete_Authorization(t *testing.T) {
	svc, _, _, _ := newTestFolderService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, 1, &dto.FolderCreateRequest{Name: "mine", ParentID: domain.RootFolderID})

	_, err := svc.Delete(ctx, 2, created.ID)
	assert.Equal(t, code.ErrorAccessDenied.Code(), codeOf(t, err).Code())

	_, err = svc.Delete(ctx, 1, 999)
	assert.Equal(t, code.ErrorFolderNotFound.Code(), codeOf(t, err).Code())
}
