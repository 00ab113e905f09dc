// Package models - Tweet thuộc domain social.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet là một bài viết ngắn của người dùng.
type Tweet struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
