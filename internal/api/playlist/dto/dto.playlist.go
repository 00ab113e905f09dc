package playlistdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistCreateInput đầu vào tạo playlist.
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description" validate:"required,no_xss"`
}

// PlaylistUpdateInput đầu vào cập nhật playlist.
type PlaylistUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// PlaylistVideoParam tham số URI cho thao tác thêm video vào playlist.
// VideoID phải trỏ tới một video đang tồn tại trong collection videos.
type PlaylistVideoParam struct {
	PlaylistID string `uri:"playlistId" validate:"required" transform:"str_objectid"`
	VideoID    string `uri:"videoId" validate:"required,exists=videos" transform:"str_objectid"`
}

// PlaylistVideoRef cặp ObjectID sau khi transform từ PlaylistVideoParam.
type PlaylistVideoRef struct {
	PlaylistID primitive.ObjectID
	VideoID    primitive.ObjectID
}
