package service

import (
	"context"
	"errors"

	"github.com/haierkeys/data-drive-service/internal/domain"
	"github.com/haierkeys/data-drive-service/internal/dto"
	"github.com/haierkeys/data-drive-service/pkg/app"
	"github.com/haierkeys/data-drive-service/pkg/code"
	"github.com/haierkeys/data-drive-service/pkg/storage"
	"github.com/haierkeys/data-drive-service/pkg/timex"
	"github.com/haierkeys/data-drive-service/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// storageCleanupConcurrency 删除子树时存储清理的并发上限
const storageCleanupConcurrency = 8

// FolderService 定义文件夹业务服务接口
type FolderService interface {
	// Create 创建文件夹，ParentID 为 0 时在顶层创建
	Create(ctx context.Context, uid int64, params *dto.FolderCreateRequest) (*dto.FolderDTO, error)

	// Get 获取文件夹详情，包含子文件夹与文件
	Get(ctx context.Context, uid, id int64) (*dto.FolderDetailDTO, error)

	// List 分页获取子文件夹列表，按创建时间倒序
	List(ctx context.Context, uid, parentID int64, pager *app.Pager) ([]*dto.FolderDTO, int, error)

	// Update 重命名文件夹
	Update(ctx context.Context, uid, id int64, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error)

	// Delete 删除文件夹及其整个子树（含文件与存储内容）
	Delete(ctx context.Context, uid, id int64) (*dto.FolderDeleteResultDTO, error)
}

// folderService 实现 FolderService 接口
type folderService struct {
	folderRepo domain.FolderRepository
	fileRepo   domain.FileRepository
	storager   storage.Storager
	logger     *zap.Logger
}

// NewFolderService 创建 FolderService 实例
func NewFolderService(folderRepo domain.FolderRepository, fileRepo domain.FileRepository, storager storage.Storager, logger *zap.Logger) FolderService {
	return &folderService{
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
		storager:   storager,
		logger:     logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *folderService) domainToDTO(folder *domain.Folder) *dto.FolderDTO {
	if folder == nil {
		return nil
	}
	return &dto.FolderDTO{
		ID:        folder.ID,
		Name:      folder.Name,
		ParentID:  folder.ParentID,
		CreatedAt: timex.Time(folder.CreatedAt),
		UpdatedAt: timex.Time(folder.UpdatedAt),
	}
}

// authorizedFolder 获取文件夹并校验归属
// 不存在返回 ErrorFolderNotFound，归属他人返回 ErrorAccessDenied
func (s *folderService) authorizedFolder(ctx context.Context, id, uid int64) (*domain.Folder, error) {
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

// Create 创建文件夹
func (s *folderService) Create(ctx context.Context, uid int64, params *dto.FolderCreateRequest) (*dto.FolderDTO, error) {
	if !util.IsValidResourceName(params.Name) {
		return nil, code.ErrorFolderNameInvalid
	}

	// 非顶层创建时，父文件夹必须存在且归属当前用户
	if params.ParentID != domain.RootFolderID {
		if _, err := s.authorizedFolder(ctx, params.ParentID, uid); err != nil {
			return nil, err
		}
	}

	folder, err := s.folderRepo.Create(ctx, &domain.Folder{
		UID:      uid,
		Name:     params.Name,
		ParentID: params.ParentID,
	})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(folder), nil
}

// Get 获取文件夹详情，子文件夹与文件均按创建时间倒序
func (s *folderService) Get(ctx context.Context, uid, id int64) (*dto.FolderDetailDTO, error) {
	folder, err := s.authorizedFolder(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	subFolders, err := s.folderRepo.ListByParent(ctx, id, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	files, err := s.fileRepo.ListByFolder(ctx, id, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	detail := &dto.FolderDetailDTO{
		Folder:     s.domainToDTO(folder),
		SubFolders: make([]*dto.FolderDTO, 0, len(subFolders)),
		Files:      make([]*dto.FileDTO, 0, len(files)),
	}
	for _, sub := range subFolders {
		detail.SubFolders = append(detail.SubFolders, s.domainToDTO(sub))
	}
	for _, f := range files {
		detail.Files = append(detail.Files, fileDomainToDTO(f))
	}
	return detail, nil
}

// List 分页获取子文件夹列表
// parentID 为 0 时列出当前用户的顶层文件夹
func (s *folderService) List(ctx context.Context, uid, parentID int64, pager *app.Pager) ([]*dto.FolderDTO, int, error) {
	if parentID != domain.RootFolderID {
		if _, err := s.authorizedFolder(ctx, parentID, uid); err != nil {
			return nil, 0, err
		}
	}

	folders, err := s.folderRepo.ListByParentPage(ctx, parentID, uid, pager.Page, pager.PageSize)
	if err != nil {
		return nil, 0, code.ErrorDBQuery
	}

	count, err := s.folderRepo.CountByParent(ctx, parentID, uid)
	if err != nil {
		return nil, 0, code.ErrorDBQuery
	}

	list := make([]*dto.FolderDTO, 0, len(folders))
	for _, folder := range folders {
		list = append(list, s.domainToDTO(folder))
	}
	return list, int(count), nil
}

// Update 重命名文件夹
func (s *folderService) Update(ctx context.Context, uid, id int64, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error) {
	if !util.IsValidResourceName(params.Name) {
		return nil, code.ErrorFolderNameInvalid
	}

	folder, err := s.authorizedFolder(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	folder.Name = params.Name
	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	updated, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	return s.domainToDTO(updated), nil
}

// collectSubtreeIDs 广度优先收集整个子树的文件夹 ID（含根）
func (s *folderService) collectSubtreeIDs(ctx context.Context, rootID, uid int64) ([]int64, error) {
	all := []int64{rootID}
	frontier := []int64{rootID}

	for len(frontier) > 0 {
		children, err := s.folderRepo.ListIDsByParents(ctx, frontier, uid)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break
		}
		all = append(all, children...)
		frontier = children
	}
	return all, nil
}

// Delete 删除文件夹及整个子树
// 元数据删除成功后再清理存储内容，存储清理失败仅记录日志
func (s *folderService) Delete(ctx context.Context, uid, id int64) (*dto.FolderDeleteResultDTO, error) {
	folder, err := s.authorizedFolder(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	folderIDs, err := s.collectSubtreeIDs(ctx, id, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	// 先取出待清理的存储键
	files, err := s.fileRepo.ListByFolderIDs(ctx, folderIDs, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	if err := s.fileRepo.DeleteByFolderIDs(ctx, folderIDs, uid); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if err := s.folderRepo.DeleteByIDs(ctx, folderIDs, uid); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	// 并发清理存储内容，单个失败不影响其他文件
	g := new(errgroup.Group)
	g.SetLimit(storageCleanupConcurrency)
	for _, f := range files {
		if f.SavePath == "" {
			continue
		}
		f := f
		g.Go(func() error {
			if err := s.storager.Delete(f.SavePath); err != nil && s.logger != nil {
				s.logger.Warn("FolderService.Delete storage cleanup failed",
					zap.Int64("fileId", f.ID),
					zap.String("savePath", f.SavePath),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return &dto.FolderDeleteResultDTO{ParentID: folder.ParentID}, nil
}

// 确保 folderService 实现了 FolderService 接口
var _ FolderService = (*folderService)(nil)
