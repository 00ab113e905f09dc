// Package router đăng ký các route thuộc domain dashboard (báo cáo kênh).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "video_tube/internal/api/dashboard/handler"
	"video_tube/internal/api/middleware"
	apirouter "video_tube/internal/api/router"
)

// Register đăng ký tất cả route dashboard lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	dashboardHandler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", mws, dashboardHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/videos", mws, dashboardHandler.HandleVideos)
	return nil
}
