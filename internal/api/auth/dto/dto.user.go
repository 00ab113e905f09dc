package authdto

// UserRegisterInput đầu vào đăng ký người dùng (các trường text của form
// multipart). Avatar và cover image đi kèm dưới dạng file, avatar bắt buộc.
type UserRegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"fullName" form:"fullName" validate:"required,no_xss"`
	Password string `json:"password" form:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập. Identifier là username hoặc email.
type UserLoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UserUpdateInput đầu vào cập nhật thông tin người dùng.
type UserUpdateInput struct {
	FullName      string `json:"fullName,omitempty" validate:"omitempty,no_xss"`
	AvatarURL     string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	CoverImageURL string `json:"coverImageUrl,omitempty" validate:"omitempty,url"`
}
