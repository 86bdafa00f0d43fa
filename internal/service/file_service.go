package service

import (
	"context"
	"errors"
	"time"

	"github.com/haierkeys/data-drive-service/internal/domain"
	"github.com/haierkeys/data-drive-service/internal/dto"
	"github.com/haierkeys/data-drive-service/pkg/code"
	"github.com/haierkeys/data-drive-service/pkg/fileurl"
	"github.com/haierkeys/data-drive-service/pkg/storage"
	"github.com/haierkeys/data-drive-service/pkg/timex"
	"github.com/haierkeys/data-drive-service/pkg/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FileService 定义文件业务服务接口
type FileService interface {
	// Create 上传文件到指定文件夹
	Create(ctx context.Context, uid int64, params *dto.FileCreateRequest, filename string, content []byte) (*dto.FileDTO, error)

	// Get 获取文件元数据
	Get(ctx context.Context, uid, id int64) (*dto.FileDTO, error)

	// GetContent 获取文件内容及元数据
	GetContent(ctx context.Context, uid, id int64) (*dto.FileContentDTO, error)

	// Update 重命名文件；content 不为 nil 时同时替换内容
	Update(ctx context.Context, uid, id int64, params *dto.FileUpdateRequest, content []byte) (*dto.FileDTO, error)

	// Delete 删除文件及其存储内容
	Delete(ctx context.Context, uid, id int64) (*dto.FileDeleteResultDTO, error)
}

// fileService 实现 FileService 接口
type fileService struct {
	fileRepo   domain.FileRepository
	folderRepo domain.FolderRepository
	storager   storage.Storager
	logger     *zap.Logger
}

// NewFileService 创建 FileService 实例
func NewFileService(fileRepo domain.FileRepository, folderRepo domain.FolderRepository, storager storage.Storager, logger *zap.Logger) FileService {
	return &fileService{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		storager:   storager,
		logger:     logger,
	}
}

// fileDomainToDTO 将文件领域模型转换为 DTO
func fileDomainToDTO(file *domain.File) *dto.FileDTO {
	if file == nil {
		return nil
	}
	return &dto.FileDTO{
		ID:          file.ID,
		FolderID:    file.FolderID,
		Name:        file.Name,
		Size:        file.Size,
		ContentHash: file.ContentHash,
		CreatedAt:   timex.Time(file.CreatedAt),
		UpdatedAt:   timex.Time(file.UpdatedAt),
	}
}

// authorizedFile 获取文件并校验归属
// 不存在返回 ErrorFileNotFound，归属他人返回 ErrorAccessDenied
func (s *fileService) authorizedFile(ctx context.Context, id, uid int64) (*domain.File, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFileNotFound
		}
		return nil, code.ErrorDBQuery
	}
	if !file.IsOwnedBy(uid) {
		return nil, code.ErrorAccessDenied
	}
	return file, nil
}

// authorizedFolder 获取所属文件夹并校验归属
func (s *fileService) authorizedFolder(ctx context.Context, id, uid int64) (*domain.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, code.ErrorDBQuery
	}
	if !folder.IsOwnedBy(uid) {
		return nil, code.ErrorAccessDenied
	}
	return folder, nil
}

// Create 上传文件
// 内容先写入存储，元数据写入失败时回收已写的存储内容
func (s *fileService) Create(ctx context.Context, uid int64, params *dto.FileCreateRequest, filename string, content []byte) (*dto.FileDTO, error) {
	name := params.Name
	if name == "" {
		name = filename
	}
	if !util.IsValidResourceName(name) {
		return nil, code.ErrorFileNameInvalid
	}

	if _, err := s.authorizedFolder(ctx, params.FolderID, uid); err != nil {
		return nil, err
	}

	saveKey := fileurl.GenerateSaveKey(filename)
	savePath, err := s.storager.SendContent(saveKey, content, time.Time{})
	if err != nil {
		return nil, code.ErrorStorageUpload.WithDetails(err.Error())
	}

	file, err := s.fileRepo.Create(ctx, &domain.File{
		UID:         uid,
		FolderID:    params.FolderID,
		Name:        name,
		SavePath:    savePath,
		Size:        int64(len(content)),
		ContentHash: util.EncodeContentMD5(content),
	})
	if err != nil {
		if delErr := s.storager.Delete(savePath); delErr != nil && s.logger != nil {
			s.logger.Warn("FileService.Create orphan cleanup failed",
				zap.String("savePath", savePath),
				zap.Error(delErr),
			)
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	return fileDomainToDTO(file), nil
}

// Get 获取文件元数据
func (s *fileService) Get(ctx context.Context, uid, id int64) (*dto.FileDTO, error) {
	file, err := s.authorizedFile(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	return fileDomainToDTO(file), nil
}

// GetContent 获取文件内容及元数据
func (s *fileService) GetContent(ctx context.Context, uid, id int64) (*dto.FileContentDTO, error) {
	file, err := s.authorizedFile(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	content, err := s.storager.GetContent(file.SavePath)
	if err != nil {
		return nil, code.ErrorStorageRead.WithDetails(err.Error())
	}

	return &dto.FileContentDTO{
		File:    fileDomainToDTO(file),
		Content: content,
	}, nil
}

// Update 重命名文件；content 不为 nil 时替换内容并回收旧存储键
func (s *fileService) Update(ctx context.Context, uid, id int64, params *dto.FileUpdateRequest, content []byte) (*dto.FileDTO, error) {
	if !util.IsValidResourceName(params.Name) {
		return nil, code.ErrorFileNameInvalid
	}

	file, err := s.authorizedFile(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	oldSavePath := ""
	file.Name = params.Name

	if content != nil {
		saveKey := fileurl.GenerateSaveKey(params.Name)
		savePath, err := s.storager.SendContent(saveKey, content, time.Time{})
		if err != nil {
			return nil, code.ErrorStorageUpload.WithDetails(err.Error())
		}
		oldSavePath = file.SavePath
		file.SavePath = savePath
		file.Size = int64(len(content))
		file.ContentHash = util.EncodeContentMD5(content)
	}

	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if oldSavePath != "" {
		if err := s.storager.Delete(oldSavePath); err != nil && s.logger != nil {
			s.logger.Warn("FileService.Update old content cleanup failed",
				zap.Int64("fileId", file.ID),
				zap.String("savePath", oldSavePath),
				zap.Error(err),
			)
		}
	}

	updated, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	return fileDomainToDTO(updated), nil
}

// Delete 删除文件
// 元数据删除成功后再清理存储内容，存储清理失败仅记录日志
func (s *fileService) Delete(ctx context.Context, uid, id int64) (*dto.FileDeleteResultDTO, error) {
	file, err := s.authorizedFile(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	if err := s.fileRepo.Delete(ctx, id, uid); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if file.SavePath != "" {
		if err := s.storager.Delete(file.SavePath); err != nil && s.logger != nil {
			s.logger.Warn("FileService.Delete storage cleanup failed",
				zap.Int64("fileId", file.ID),
				zap.String("savePath", file.SavePath),
				zap.Error(err),
			)
		}
	}

	return &dto.FileDeleteResultDTO{FolderID: file.FolderID}, nil
}

// 确保 fileService 实现了 FileService 接口
var _ FileService = (*fileService)(nil)
