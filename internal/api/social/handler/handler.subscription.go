package socialhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	socialsvc "video_tube/internal/api/social/service"
)

// SubscriptionHandler xử lý các request đăng ký kênh.
type SubscriptionHandler struct {
	subscriptionService *socialsvc.SubscriptionService
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler.
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := socialsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	return &SubscriptionHandler{subscriptionService: subscriptionService}, nil
}

// HandleToggle đảo trạng thái đăng ký của người dùng hiện tại với một kênh.
func (h *SubscriptionHandler) HandleToggle(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		channelID, err := paramObjectID(c, "channelId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.subscriptionService.ToggleSubscription(c.Context(), channelID, userID)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
