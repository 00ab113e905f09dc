// Package router đăng ký các route thuộc domain video.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	apirouter "video_tube/internal/api/router"
	videohdl "video_tube/internal/api/video/handler"
)

// Register đăng ký tất cả route video lên v1.
// Ngoài các route nghiệp vụ còn kèm CRUD surface generic cho back-office.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	videoHandler, err := videohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/", mws, videoHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/", mws, videoHandler.HandleUpload)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/:videoId", mws, videoHandler.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:videoId", mws, videoHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "DELETE", "/:videoId", mws, videoHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:videoId/toggle-publish", mws, videoHandler.HandleTogglePublish)

	r.RegisterCRUDRoutes(v1, "/crud/videos", videoHandler, apirouter.ReadOnlyConfig)
	return nil
}
