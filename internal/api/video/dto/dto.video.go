package videodto

// VideoCreateInput đầu vào tạo video (metadata, file tải riêng qua form).
type VideoCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss" transform:"string"`
	Description string `json:"description" validate:"required,no_xss"`
}

// VideoUpdateInput đầu vào cập nhật metadata video.
type VideoUpdateInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// VideoIDParam tham số URI chứa ID video.
type VideoIDParam struct {
	VideoID string `uri:"videoId" validate:"required" transform:"str_objectid"`
}

// VideoListQuery tham số truy vấn danh sách video.
type VideoListQuery struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserID   string `query:"userId"`
}
