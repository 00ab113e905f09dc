// Package models - Subscription thuộc domain social.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription là cạnh có hướng: subscriber đăng ký kênh (channel).
// Một subscriber đăng ký được nhiều kênh, một kênh có nhiều subscriber.
// Không cho phép tự đăng ký kênh của chính mình.
type Subscription struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SubscriberID primitive.ObjectID `json:"subscriberId" bson:"subscriber" index:"single:1"`
	ChannelID    primitive.ObjectID `json:"channelId" bson:"channel" index:"single:1"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
