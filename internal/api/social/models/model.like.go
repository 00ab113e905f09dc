// Package models - các model Like, Subscription, Tweet thuộc domain social.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionKind các loại đối tượng có thể được like
const (
	ReactionKindVideo   = "video"
	ReactionKindComment = "comment"
	ReactionKindTweet   = "tweet"
)

// Like là một reaction record: đúng một trong VideoID/CommentID/TweetID được set,
// kèm người like. Tính duy nhất per (subject, likedBy) được đảm bảo bằng toggle
// semantics, không phải ràng buộc của store.
type Like struct {
	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	VideoID   *primitive.ObjectID `json:"videoId,omitempty" bson:"video,omitempty" index:"single:1"`
	CommentID *primitive.ObjectID `json:"commentId,omitempty" bson:"comment,omitempty" index:"single:1"`
	TweetID   *primitive.ObjectID `json:"tweetId,omitempty" bson:"tweet,omitempty" index:"single:1"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy" index:"single:1"`
	CreatedAt int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64               `json:"updatedAt" bson:"updatedAt"`
}

// SubjectField trả về tên field bson tương ứng với một reaction kind.
// Trả về chuỗi rỗng nếu kind không hợp lệ.
func SubjectField(kind string) string {
	switch kind {
	case ReactionKindVideo:
		return "video"
	case ReactionKindComment:
		return "comment"
	case ReactionKindTweet:
		return "tweet"
	default:
		return ""
	}
}
