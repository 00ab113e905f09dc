package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"video_tube/config"
	"video_tube/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Videos        string // Tên collection cho video
	Likes         string // Tên collection cho lượt thích (video, comment, tweet)
	Subscriptions string // Tên collection cho lượt đăng ký kênh
	Playlists     string // Tên collection cho playlist
	Tweets        string // Tên collection cho tweet
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	Users:         "users",
	Videos:        "videos",
	Likes:         "likes",
	Subscriptions: "subscriptions",
	Playlists:     "playlists",
	Tweets:        "tweets",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
