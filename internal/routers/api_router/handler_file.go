package api_router

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/haierkeys/data-drive-service/internal/app"
	"github.com/haierkeys/data-drive-service/internal/dto"
	pkgapp "github.com/haierkeys/data-drive-service/pkg/app"
	"github.com/haierkeys/data-drive-service/pkg/code"
	"github.com/haierkeys/data-drive-service/pkg/convert"
	apperrors "github.com/haierkeys/data-drive-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileHandler file API router handler
// FileHandler 文件 API 路由处理器
type FileHandler struct {
	*Handler
}

// NewFileHandler creates FileHandler instance
// NewFileHandler 创建 FileHandler 实例
func NewFileHandler(a *app.App) *FileHandler {
	return &FileHandler{
		Handler: NewHandler(a),
	}
}

// readUploadPart 读取 multipart form 的 file 字段
// 未提交 file 字段时返回 (nil, "", nil)；失败时返回对应的业务错误码
func (h *FileHandler) readUploadPart(c *gin.Context) ([]byte, string, *code.Code) {
	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", nil
		}
		// 非 multipart 请求体或表单损坏
		return nil, "", code.ErrorInvalidParams.WithDetails(err.Error())
	}
	defer file.Close()

	maxSize := h.App.Config().GetUploadMaxSize()
	if fileHeader.Size > maxSize {
		return nil, "", code.ErrorFileTooLarge.WithDetails(fmt.Sprintf("file size %d exceeds limit %d", fileHeader.Size, maxSize))
	}

	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, "", code.ErrorInvalidParams.WithDetails(err.Error())
	}
	if int64(len(content)) > maxSize {
		return nil, "", code.ErrorFileTooLarge.WithDetails(fmt.Sprintf("file size exceeds limit %d", maxSize))
	}

	return content, fileHeader.Filename, nil
}

// Create uploads a file
// @Summary Upload file
// @Description Upload a file into the given folder. Content is submitted as the multipart form field "file"; name defaults to the uploaded filename.
// @Description 上传文件到指定文件夹。内容通过 multipart form 的 file 字段提交，名称缺省为上传文件名。
// @Tags File
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Accept multipart/form-data
// @Produce json
// @Param folderId formData int true "Folder ID"
// @Param name formData string false "File Name"
// @Param file formData file true "File Content"
// @Success 200 {object} pkgapp.Res{data=dto.FileDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters / Invalid Name / Too Large"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "Folder Not Found"
// @Router /api/file [post]
func (h *FileHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FileCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FileHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FileHandler.Create err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	content, filename, errCode := h.readUploadPart(c)
	if errCode != nil {
		h.App.Logger().Error("FileHandler.Create.readUploadPart err", zap.Error(errCode))
		response.ToResponse(errCode)
		return
	}
	if content == nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("missing file field"))
		return
	}

	ctx := c.Request.Context()

	fileDTO, err := h.App.FileService.Create(ctx, uid, params, filename, content)
	if err != nil {
		h.logError(ctx, "FileHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreate.WithData(fileDTO))
}

// Get retrieves file metadata
// @Summary Get file metadata
// @Description Get metadata of a file without its content.
// @Description 获取文件元数据，不含内容。
// @Tags File
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} pkgapp.Res{data=dto.FileDTO} "Success"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "File Not Found"
// @Router /api/file/{id} [get]
func (h *FileHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FileHandler.Get err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	fileDTO, err := h.App.FileService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "FileHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(fileDTO))
}

// GetContent downloads file content
// @Summary Download file
// @Description Get raw binary content of a file, with Content-Disposition and ETag headers.
// @Description 获取文件的原始二进制内容，带 Content-Disposition 与 ETag 响应头。
// @Tags File
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce octet-stream
// @Param id path int true "File ID"
// @Success 200 {file} binary "Success"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "File Not Found"
// @Router /api/file/{id}/content [get]
func (h *FileHandler) GetContent(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FileHandler.GetContent err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	contentDTO, err := h.App.FileService.GetContent(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "FileHandler.GetContent", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(contentDTO.File.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", contentDTO.File.Name))
	if contentDTO.File.ContentHash != "" {
		c.Header("ETag", fmt.Sprintf("%q", contentDTO.File.ContentHash))
	}
	c.Data(http.StatusOK, contentType, contentDTO.Content)
}

// Update renames a file, optionally replacing its content
// @Summary Rename or replace file
// @Description Rename the file; when the multipart form field "file" is present the stored content is replaced as well.
// @Description 重命名文件；multipart form 提交 file 字段时同时替换存储内容。
// @Tags File
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "File ID"
// @Param name formData string true "File Name"
// @Param file formData file false "Replacement Content"
// @Success 200 {object} pkgapp.Res{data=dto.FileDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters / Invalid Name / Too Large"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "File Not Found"
// @Router /api/file/{id} [put]
func (h *FileHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FileUpdateRequest{}

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FileHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FileHandler.Update err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	// file 字段可选，缺省时仅重命名
	content, _, errCode := h.readUploadPart(c)
	if errCode != nil {
		h.App.Logger().Error("FileHandler.Update.readUploadPart err", zap.Error(errCode))
		response.ToResponse(errCode)
		return
	}

	ctx := c.Request.Context()

	fileDTO, err := h.App.FileService.Update(ctx, uid, id, params, content)
	if err != nil {
		h.logError(ctx, "FileHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessUpdate.WithData(fileDTO))
}

// Delete deletes a file
// @Summary Delete file
// @Description Delete the file metadata and its stored content.
// @Description 删除文件元数据及其存储内容。
// @Tags File
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} pkgapp.Res{data=dto.FileDeleteResultDTO} "Success"
// @Failure 403 {object} pkgapp.Res "Access Denied"
// @Failure 404 {object} pkgapp.Res "File Not Found"
// @Router /api/file/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("FileHandler.Delete err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	result, err := h.App.FileService.Delete(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "FileHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessDelete.WithData(result))
}
