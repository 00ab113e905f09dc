// Package models - Playlist thuộc domain playlist.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist là danh sách phát video của người dùng.
// VideoIDs giữ đúng thứ tự thêm vào và cho phép trùng lặp.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID   `json:"ownerId" bson:"ownerId" index:"single:1"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	VideoIDs    []primitive.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}
