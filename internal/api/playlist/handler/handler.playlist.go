// Package playlisthdl xử lý các request quản lý playlist.
package playlisthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	playlistdto "video_tube/internal/api/playlist/dto"
	playlistmodels "video_tube/internal/api/playlist/models"
	playlistsvc "video_tube/internal/api/playlist/service"
	"video_tube/internal/common"
	"video_tube/internal/utility"
)

// PlaylistHandler xử lý các request playlist.
type PlaylistHandler struct {
	*basehdl.BaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput]
	playlistService *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo instance mới của PlaylistHandler.
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput](playlistService)
	return &PlaylistHandler{
		BaseHandler:     baseHandler,
		playlistService: playlistService,
	}, nil
}

// paramObjectID đọc một tham số URI dạng ObjectID, trả lỗi khi sai định dạng.
func paramObjectID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := utility.String2ObjectID(c.Params(name))
	if id.IsZero() {
		return id, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Tham số '%s' không đúng định dạng ObjectID", name), common.StatusBadRequest, nil)
	}
	return id, nil
}

// HandleCreate tạo playlist mới cho người dùng hiện tại.
func (h *PlaylistHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.CreatePlaylist(c.Context(), userID, &input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleUpdate cập nhật tên/mô tả playlist của chủ sở hữu.
func (h *PlaylistHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := paramObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.UpdatePlaylist(c.Context(), playlistID, userID, &input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleDelete xóa playlist của chủ sở hữu.
func (h *PlaylistHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := paramObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.playlistService.DeletePlaylist(c.Context(), playlistID, userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleAddVideo thêm video vào playlist. Tham số URI được validate qua
// PlaylistVideoParam (videoId phải tồn tại trong collection videos) rồi
// transform sang cặp ObjectID.
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var param playlistdto.PlaylistVideoParam
		if err := h.ParseRequestParams(c, &param); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		ref, err := basehdl.TransformParams[playlistdto.PlaylistVideoRef](&param)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Tham số URI không đúng định dạng ObjectID", common.StatusBadRequest, err))
			return nil
		}

		playlist, err := h.playlistService.AddVideo(c.Context(), ref.PlaylistID, ref.VideoID, userID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleRemoveVideo gỡ video khỏi playlist.
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := paramObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := paramObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.RemoveVideo(c.Context(), playlistID, videoID, userID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleUserPlaylists báo cáo toàn bộ playlist của một người dùng.
func (h *PlaylistHandler) HandleUserPlaylists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := paramObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlists, err := h.playlistService.UserPlaylists(c.Context(), userID)
		h.HandleResponse(c, playlists, err)
		return nil
	})
}

// HandleGetById báo cáo một playlist với các video đã công khai.
func (h *PlaylistHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := paramObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.PlaylistById(c.Context(), playlistID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}
