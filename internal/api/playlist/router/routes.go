// Package router đăng ký các route thuộc domain playlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	playlisthdl "video_tube/internal/api/playlist/handler"
	apirouter "video_tube/internal/api/router"
)

// Register đăng ký tất cả route playlist lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	playlistHandler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("failed to create playlist handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "POST", "/", mws, playlistHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "GET", "/user/:userId", mws, playlistHandler.HandleUserPlaylists)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "GET", "/:playlistId", mws, playlistHandler.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/:playlistId", mws, playlistHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "DELETE", "/:playlistId", mws, playlistHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/:playlistId/videos/:videoId", mws, playlistHandler.HandleAddVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "DELETE", "/:playlistId/videos/:videoId", mws, playlistHandler.HandleRemoveVideo)

	r.RegisterCRUDRoutes(v1, "/crud/playlists", playlistHandler, apirouter.ReadOnlyConfig)
	return nil
}
