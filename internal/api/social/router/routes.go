// Package router đăng ký các route thuộc domain social: like, subscription, tweet.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	apirouter "video_tube/internal/api/router"
	socialhdl "video_tube/internal/api/social/handler"
)

// Register đăng ký tất cả route social lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerLikeRoutes(v1); err != nil {
		return err
	}
	if err := registerSubscriptionRoutes(v1); err != nil {
		return err
	}
	return registerTweetRoutes(v1, r)
}

func registerLikeRoutes(router fiber.Router) error {
	likeHandler, err := socialhdl.NewLikeHandler()
	if err != nil {
		return fmt.Errorf("failed to create like handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(router, "/likes", "POST", "/toggle/video/:videoId", mws, likeHandler.HandleToggleVideo)
	apirouter.RegisterRouteWithMiddleware(router, "/likes", "POST", "/toggle/comment/:commentId", mws, likeHandler.HandleToggleComment)
	apirouter.RegisterRouteWithMiddleware(router, "/likes", "POST", "/toggle/tweet/:tweetId", mws, likeHandler.HandleToggleTweet)
	apirouter.RegisterRouteWithMiddleware(router, "/likes", "GET", "/videos", mws, likeHandler.HandleLikedVideos)
	return nil
}

func registerSubscriptionRoutes(router fiber.Router) error {
	subscriptionHandler, err := socialhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/subscriptions", "POST", "/toggle/:channelId", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleToggle)
	return nil
}

func registerTweetRoutes(router fiber.Router, r *apirouter.Router) error {
	tweetHandler, err := socialhdl.NewTweetHandler()
	if err != nil {
		return fmt.Errorf("failed to create tweet handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "POST", "/", mws, tweetHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "GET", "/user/:userId", mws, tweetHandler.HandleUserTweets)
	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "PATCH", "/:tweetId", mws, tweetHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/tweets", "DELETE", "/:tweetId", mws, tweetHandler.HandleDelete)

	r.RegisterCRUDRoutes(router, "/crud/tweets", tweetHandler, apirouter.ReadOnlyConfig)
	return nil
}
