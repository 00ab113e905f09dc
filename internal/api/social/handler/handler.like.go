// Package socialhdl xử lý các request like, subscription và tweet.
package socialhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	socialmodels "video_tube/internal/api/social/models"
	socialsvc "video_tube/internal/api/social/service"
	"video_tube/internal/common"
	"video_tube/internal/utility"
)

// LikeHandler xử lý các request like. Like chỉ có thao tác toggle và báo cáo,
// không có CRUD surface riêng.
type LikeHandler struct {
	likeService *socialsvc.LikeService
}

// NewLikeHandler tạo instance mới của LikeHandler.
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := socialsvc.NewLikeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %v", err)
	}
	return &LikeHandler{likeService: likeService}, nil
}

// paramObjectID đọc một tham số URI dạng ObjectID, trả lỗi khi sai định dạng.
func paramObjectID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := utility.String2ObjectID(c.Params(name))
	if id.IsZero() {
		return id, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Tham số '%s' không đúng định dạng ObjectID", name), common.StatusBadRequest, nil)
	}
	return id, nil
}

// handleToggle đảo trạng thái like trên một loại subject.
func (h *LikeHandler) handleToggle(c fiber.Ctx, kind string, paramName string) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		subjectID, err := paramObjectID(c, paramName)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.likeService.ToggleReaction(c.Context(), kind, subjectID, userID)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleToggleVideo đảo trạng thái like trên một video.
func (h *LikeHandler) HandleToggleVideo(c fiber.Ctx) error {
	return h.handleToggle(c, socialmodels.ReactionKindVideo, "videoId")
}

// HandleToggleComment đảo trạng thái like trên một comment.
func (h *LikeHandler) HandleToggleComment(c fiber.Ctx) error {
	return h.handleToggle(c, socialmodels.ReactionKindComment, "commentId")
}

// HandleToggleTweet đảo trạng thái like trên một tweet.
func (h *LikeHandler) HandleToggleTweet(c fiber.Ctx) error {
	return h.handleToggle(c, socialmodels.ReactionKindTweet, "tweetId")
}

// HandleLikedVideos báo cáo các video người dùng hiện tại đã thích.
func (h *LikeHandler) HandleLikedVideos(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		rows, err := h.likeService.LikedVideosByUser(c.Context(), userID)
		basehdl.HandleResponse(c, rows, err)
		return nil
	})
}
