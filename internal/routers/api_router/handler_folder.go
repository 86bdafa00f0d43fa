package api_router

import (
	"github.com/haierkeys/data-drive-service/internal/app"
	"github.com/haierkeys/data-drive-service/internal/dto"
	pkgapp "github.com/haierkeys/data-drive-service/pkg/app"
	"github.com/haierkeys/data-drive-service/pkg/code"
	"github.com/haierkeys/data-drive-service/pkg/convert"
	apperrors "github.com/haierkeys/data-drive-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FolderHandler folder API router handler
// FolderHandler 文件夹 API 路由处理器
type FolderHandler struct {
	*Handler
}

// NewFolderHandler creates FolderHandler instance
// NewFolderHandler 创建 FolderHandler 实例
func NewFolderHandler(a *app.App) *FolderHandler {
	return &FolderHandler{
		Handler: NewHandler(a),
	}
}

// Create creates a folder
// @Summary Create folder
// @Description Create a folder under the given parent. ParentID 0 creates at the top level.
// @Description 在指定父目录下创建文件夹，ParentID 为 0 时在顶层创建。
// @Tags Folder
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Accept json
// @Produce json
// @Param params body dto.FolderCreateRequest true "Create Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.FolderDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters / Invalid Name"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "Parent Not Found"
// @Router /api/folder [post]
func (h *FolderHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FolderHandler.Create err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	folderDTO, err := h.App.FolderService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreate.WithData(folderDTO))
}

// Get retrieves folder detail
// @Summary Get folder detail
// @Description Get the folder with its direct sub folders and files, both ordered by creation time descending.
// @Description 获取文件夹及其下一级子文件夹与文件，均按创建时间倒序。
// @Tags Folder
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} pkgapp.Res{data=dto.FolderDetailDTO} "Success"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "Folder Not Found"
// @Router /api/folder/{id} [get]
func (h *FolderHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FolderHandler.Get err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	detailDTO, err := h.App.FolderService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "FolderHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(detailDTO))
}

// List lists sub folders
// @Summary List folders
// @Description List direct sub folders of the given parent, ordered by creation time descending. ParentID 0 lists top-level folders.
// @Description 列出指定父目录的下一级子文件夹，按创建时间倒序。ParentID 为 0 时列出顶层文件夹。
// @Tags Folder
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Param params query dto.FolderListRequest true "List Parameters"
// @Param page query int false "Page"
// @Param pageSize query int false "Page Size"
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes{list=[]dto.FolderDTO}} "Success"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "Parent Not Found"
// @Router /api/folders [get]
func (h *FolderHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderListRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FolderHandler.List err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()
	pager := &pkgapp.Pager{Page: pkgapp.GetPage(c), PageSize: pkgapp.GetPageSize(c)}

	list, count, err := h.App.FolderService.List(ctx, uid, params.ParentID, pager)
	if err != nil {
		h.logError(ctx, "FolderHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, list, count)
}

// Update renames a folder
// @Summary Rename folder
// @Description Rename the folder, name must be non-empty after trimming.
// @Description 重命名文件夹，名称去除空白后不能为空。
// @Tags Folder
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param params body dto.FolderUpdateRequest true "Rename Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.FolderDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters / Invalid Name"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "Folder Not Found"
// @Router /api/folder/{id} [put]
func (h *FolderHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderUpdateRequest{}

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FolderHandler.Update err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	folderDTO, err := h.App.FolderService.Update(ctx, uid, id, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessUpdate.WithData(folderDTO))
}

// Delete deletes a folder and its subtree
// @Summary Delete folder
// @Description Delete the folder together with all nested sub folders, files and stored contents.
// @Description 删除文件夹及其全部嵌套子文件夹、文件与存储内容。
// @Tags Folder
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} pkgapp.Res{data=dto.FolderDeleteResultDTO} "Success"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "Folder Not Found"
// @Router /api/folder/{id} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FolderHandler.Delete err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	result, err := h.App.FolderService.Delete(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "FolderHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessDelete.WithData(result))
}
