package socialhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	socialdto "video_tube/internal/api/social/dto"
	socialmodels "video_tube/internal/api/social/models"
	socialsvc "video_tube/internal/api/social/service"
)

// TweetHandler xử lý các request tweet.
type TweetHandler struct {
	*basehdl.BaseHandler[socialmodels.Tweet, socialdto.TweetCreateInput, socialdto.TweetUpdateInput]
	tweetService *socialsvc.TweetService
}

// NewTweetHandler tạo instance mới của TweetHandler.
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := socialsvc.NewTweetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[socialmodels.Tweet, socialdto.TweetCreateInput, socialdto.TweetUpdateInput](tweetService)
	return &TweetHandler{
		BaseHandler:  baseHandler,
		tweetService: tweetService,
	}, nil
}

// HandleCreate tạo tweet mới cho người dùng hiện tại.
func (h *TweetHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input socialdto.TweetCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.CreateTweet(c.Context(), userID, &input)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleUpdate sửa nội dung tweet của chủ sở hữu.
func (h *TweetHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := paramObjectID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input socialdto.TweetUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.UpdateTweet(c.Context(), tweetID, userID, &input)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleDelete xóa tweet của chủ sở hữu.
func (h *TweetHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := paramObjectID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.tweetService.DeleteTweet(c.Context(), tweetID, userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleUserTweets báo cáo tweet gộp của một người dùng.
func (h *TweetHandler) HandleUserTweets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := paramObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.tweetService.UserTweetsJoined(c.Context(), userID)
		h.HandleResponse(c, result, err)
		return nil
	})
}
