package service

import (
	"context"
	"errors"
	"testing"

	"github.com/haierkeys/data-drive-service/internal/domain"
	"github.com/haierkeys/data-drive-service/internal/dto"
	"github.com/haierkeys/data-drive-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestFileService() (FileService, *memFolderRepo, *memFileRepo, *memStorage) {
	folderRepo := newMemFolderRepo()
	fileRepo := newMemFileRepo()
	storager := newMemStorage()
	svc := NewFileService(fileRepo, folderRepo, storager, zap.NewNop())
	return svc, folderRepo, fileRepo, storager
}

func mustFolder(t *testing.T, repo *memFolderRepo, uid int64, name string) *domain.Folder {
	t.Helper()
	folder, err := repo.Create(context.Background(), &domain.Folder{UID: uid, Name: name, ParentID: domain.RootFolderID})
	if err != nil {
		t.Fatal(err)
	}
	return folder
}

func TestFileService_Create(t *testing.T) {
	svc, folderRepo, _, storager := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	content := []byte("hello world")
	created, err := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "hello.txt", content)
	assert.Nil(t, err)
	assert.Equal(t, "hello.txt", created.Name)
	assert.Equal(t, int64(len(content)), created.Size)
	assert.NotEmpty(t, created.ContentHash)

	// 内容已写入存储
	assert.Len(t, storager.blobs, 1)
}

func TestFileService_Create_FolderChecks(t *testing.T) {
	svc, folderRepo, _, _ := newTestFileService()
	ctx := context.Background()

	// 目标文件夹不存在
	_, err := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: 999}, "x.txt", []byte("x"))
	assert.Equal(t, code.ErrorFolderNotFound.Code(), codeOf(t, err).Code())

	// 目标文件夹归属他人
	other := mustFolder(t, folderRepo, 2, "theirs")
	_, err = svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: other.ID}, "x.txt", []byte("x"))
	assert.Equal(t, code.ErrorAccessDenied.Code(), codeOf(t, err).Code())
}

func TestFileService_Create_InvalidName(t *testing.T) {
	svc, folderRepo, _, _ := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	_, err := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID, Name: ""}, "", []byte("x"))
	assert.Equal(t, code.ErrorFileNameInvalid.Code(), codeOf(t, err).Code())
}

func TestFileService_Create_StorageFailure(t *testing.T) {
	svc, folderRepo, fileRepo, storager := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	storager.sendErr = errors.New("disk full")

	_, err := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "x.txt", []byte("x"))
	assert.Equal(t, code.ErrorStorageUpload.Code(), codeOf(t, err).Code())

	// 存储失败时不得留下元数据
	assert.Len(t, fileRepo.files, 0)
}

func TestFileService_Create_MetadataFailureCleansBlob(t *testing.T) {
	svc, folderRepo, fileRepo, storager := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	fileRepo.createErr = errors.New("constraint violation")

	_, err := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "x.txt", []byte("x"))
	assert.Equal(t, code.ErrorDBQuery.Code(), codeOf(t, err).Code())

	// 元数据写入失败时回收已写的存储内容
	assert.Len(t, storager.blobs, 0)
}

func TestFileService_GetContent_RoundTrip(t *testing.T) {
	svc, folderRepo, _, _ := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	content := []byte("round trip payload")
	created, err := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "data.bin", content)
	assert.Nil(t, err)

	got, err := svc.GetContent(ctx, 1, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, content, got.Content)
	assert.Equal(t, created.ID, got.File.ID)
}

func TestFileService_Get_Authorization(t *testing.T) {
	svc, folderRepo, _, _ := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	created, err := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "a.txt", []byte("a"))
	assert.Nil(t, err)

	_, err = svc.Get(ctx, 2, created.ID)
	assert.Equal(t, code.ErrorAccessDenied.Code(), codeOf(t, err).Code())

	_, err = svc.Get(ctx, 1, 999)
	assert.Equal(t, code.ErrorFileNotFound.Code(), codeOf(t, err).Code())
}

func TestFileService_Update_Rename(t *testing.T) {
	svc, folderRepo, _, _ := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	created, _ := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "before.txt", []byte("v1"))

	updated, err := svc.Update(ctx, 1, created.ID, &dto.FileUpdateRequest{Name: "after.txt"}, nil)
	assert.Nil(t, err)
	assert.Equal(t, "after.txt", updated.Name)
	// 未替换内容时大小不变
	assert.Equal(t, created.Size, updated.Size)
}

func TestFileService_Update_InvalidName(t *testing.T) {
	svc, folderRepo, _, _ := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	created, _ := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "a.txt", []byte("v1"))

	_, err := svc.Update(ctx, 1, created.ID, &dto.FileUpdateRequest{Name: "  "}, nil)
	assert.Equal(t, code.ErrorFileNameInvalid.Code(), codeOf(t, err).Code())

	// 校验失败时已存名称保持不变
	got, err := svc.Get(ctx, 1, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, "a.txt", got.Name)
}

func TestFileService_Update_ReplaceContent(t *testing.T) {
	svc, folderRepo, _, storager := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	created, _ := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "data.txt", []byte("v1"))

	newContent := []byte("version two")
	updated, err := svc.Update(ctx, 1, created.ID, &dto.FileUpdateRequest{Name: "data.txt"}, newContent)
	assert.Nil(t, err)
	assert.Equal(t, int64(len(newContent)), updated.Size)

	// 旧存储键已回收，只剩新内容
	assert.Len(t, storager.blobs, 1)

	got, err := svc.GetContent(ctx, 1, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, newContent, got.Content)
}

func TestFileService_Delete(t *testing.T) {
	svc, folderRepo, fileRepo, storager := newTestFileService()
	ctx := context.Background()
	folder := mustFolder(t, folderRepo, 1, "docs")

	created, _ := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "bye.txt", []byte("bye"))

	result, err := svc.Delete(ctx, 1, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, folder.ID, result.FolderID)

	assert.Len(t, fileRepo.files, 0)
	assert.Len(t, storager.blobs, 0)

	// 他人不可删除
	again, _ := svc.Create(ctx, 1, &dto.FileCreateRequest{FolderID: folder.ID}, "keep.txt", []byte("keep"))
	_, err = svc.Delete(ctx, 2, again.ID)
	assert.Equal(t, code.ErrorAccessDenied.Code(), codeOf(t, err).Code())
}
