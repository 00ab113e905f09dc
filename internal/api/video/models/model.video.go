// Package models - model Video thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video định nghĩa mô hình video.
// Duration tính bằng giây (đọc từ metadata của file khi upload).
// Views được tăng từ bên ngoài (player), IsPublished chỉ chủ sở hữu được đổi.
type Video struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID      primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"`
	VideoFileURL string             `json:"videoFileUrl" bson:"videoFileUrl"`
	ThumbnailURL string             `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Title        string             `json:"title" bson:"title" index:"text"`
	Description  string             `json:"description" bson:"description"`
	Duration     float64            `json:"duration" bson:"duration"`
	Views        int64              `json:"views" bson:"views"`
	IsPublished  bool               `json:"isPublished" bson:"isPublished" index:"single:1" default:"true"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
