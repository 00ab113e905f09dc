// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// Password không bao giờ được serialize ra JSON response.
type User struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username      string               `json:"username" bson:"username" index:"unique"`
	Email         string               `json:"email" bson:"email" index:"unique"`
	FullName      string               `json:"fullName" bson:"fullName" index:"single:1"`
	AvatarURL     string               `json:"avatarUrl" bson:"avatarUrl"`
	CoverImageURL string               `json:"coverImageUrl,omitempty" bson:"coverImageUrl,omitempty"`
	Password      string               `json:"-" bson:"password,omitempty"`
	WatchHistory  []primitive.ObjectID `json:"watchHistory,omitempty" bson:"watchHistory,omitempty"`
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt" bson:"updatedAt"`
}
