// Package dashboardhdl xử lý các request báo cáo kênh.
package dashboardhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	dashboardsvc "video_tube/internal/api/dashboard/service"
)

// DashboardHandler xử lý các request báo cáo kênh của người dùng hiện tại.
type DashboardHandler struct {
	dashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo instance mới của DashboardHandler.
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %v", err)
	}
	return &DashboardHandler{dashboardService: dashboardService}, nil
}

// HandleStats trả về chỉ số tổng hợp kênh của người dùng hiện tại.
func (h *DashboardHandler) HandleStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.dashboardService.GetChannelStats(c.Context(), userID)
		basehdl.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleVideos trả về danh sách video của kênh kèm lượt thích.
func (h *DashboardHandler) HandleVideos(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		videos, err := h.dashboardService.GetChannelVideos(c.Context(), userID)
		basehdl.HandleResponse(c, videos, err)
		return nil
	})
}
