// Package videohdl xử lý các request quản lý video.
package videohdl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	basehdl "video_tube/internal/api/base/handler"
	videodto "video_tube/internal/api/video/dto"
	videomodels "video_tube/internal/api/video/models"
	videosvc "video_tube/internal/api/video/service"
	"video_tube/internal/common"
	"video_tube/internal/logger"
	"video_tube/internal/utility"
)

// VideoHandler xử lý các request video.
type VideoHandler struct {
	*basehdl.BaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput]
	videoService *videosvc.VideoService
}

// NewVideoHandler tạo instance mới của VideoHandler.
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput](videoService)
	return &VideoHandler{
		BaseHandler:  baseHandler,
		videoService: videoService,
	}, nil
}

// saveUploadedFile lưu một file trong form multipart ra đĩa tạm.
// Caller chịu trách nhiệm xóa file sau khi dùng xong.
func saveUploadedFile(c fiber.Ctx, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Thiếu file '%s' trong form", field), common.StatusBadRequest, err)
	}

	localPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, localPath); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể lưu file tải lên", common.StatusInternalServerError, err)
	}
	return localPath, nil
}

// HandleUpload tạo video mới từ form multipart (videoFile, thumbnail, title, description).
func (h *VideoHandler) HandleUpload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := videodto.VideoCreateInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoPath, err := saveUploadedFile(c, "videoFile")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer removeTempFile(videoPath)

		thumbnailPath, err := saveUploadedFile(c, "thumbnail")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer removeTempFile(thumbnailPath)

		video, err := h.videoService.CreateVideo(c.Context(), userID, &input, videoPath, thumbnailPath)
		h.HandleResponse(c, video, err)
		return nil
	})
}

func removeTempFile(path string) {
	if err := os.Remove(path); err != nil {
		logger.GetAppLogger().Warnf("Không thể xóa file tạm %s: %v", path, err)
	}
}

// parseVideoID đọc và kiểm tra tham số videoId trên URI.
func (h *VideoHandler) parseVideoID(c fiber.Ctx) (*videodto.VideoIDParam, error) {
	var params videodto.VideoIDParam
	if err := h.ParseRequestParams(c, &params); err != nil {
		return nil, err
	}
	if utility.String2ObjectID(params.VideoID).IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "videoId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
	}
	return &params, nil
}

// HandleGetById trả về một video theo ID.
func (h *VideoHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		params, err := h.parseVideoID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.GetVideoById(c.Context(), utility.String2ObjectID(params.VideoID), userID)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleUpdate cập nhật metadata video của chủ sở hữu.
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		params, err := h.parseVideoID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input videodto.VideoUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.UpdateVideo(c.Context(), utility.String2ObjectID(params.VideoID), userID, &input)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleDelete xóa video của chủ sở hữu.
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		params, err := h.parseVideoID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.videoService.DeleteVideo(c.Context(), utility.String2ObjectID(params.VideoID), userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleTogglePublish đảo trạng thái công khai của video.
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		params, err := h.parseVideoID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.TogglePublish(c.Context(), utility.String2ObjectID(params.VideoID), userID)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleList liệt kê video theo filter/sort/trang từ query string.
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var query videodto.VideoListQuery
		if err := c.Bind().Query(&query); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Tham số truy vấn không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		result, err := h.videoService.ListVideos(c.Context(), &query)
		h.HandleResponse(c, result, err)
		return nil
	})
}
