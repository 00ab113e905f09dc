package socialdto

import (
	socialmodels "video_tube/internal/api/social/models"
)

// TweetCreateInput đầu vào tạo tweet.
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,no_xss"`
}

// TweetUpdateInput đầu vào cập nhật tweet.
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss"`
}

// ToggleReactionResult kết quả của thao tác like/unlike.
// Like chỉ có mặt khi toggle-on, mang document vừa được tạo.
type ToggleReactionResult struct {
	Liked bool               `json:"liked"`
	Like  *socialmodels.Like `json:"like,omitempty"`
}

// ToggleSubscriptionResult kết quả của thao tác subscribe/unsubscribe.
type ToggleSubscriptionResult struct {
	Subscribed bool `json:"subscribed"`
}
