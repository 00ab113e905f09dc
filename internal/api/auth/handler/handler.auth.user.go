// Package authhdl xử lý các request đăng ký, đăng nhập và thông tin người dùng.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "video_tube/internal/api/auth/dto"
	authmodels "video_tube/internal/api/auth/models"
	authsvc "video_tube/internal/api/auth/service"
	basehdl "video_tube/internal/api/base/handler"
	"video_tube/internal/common"
)

// UserHandler xử lý các request xác thực và quản lý người dùng.
type UserHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.UserRegisterInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler.
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[authmodels.User, authdto.UserRegisterInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleRegister đăng ký người dùng mới từ form multipart
// (username, email, fullName, password + file avatar bắt buộc, coverImage tùy chọn).
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := authdto.UserRegisterInput{
			Username: c.FormValue("username"),
			Email:    c.FormValue("email"),
			FullName: c.FormValue("fullName"),
			Password: c.FormValue("password"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		avatar, err := c.FormFile("avatar")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file 'avatar' trong form", common.StatusBadRequest, err))
			return nil
		}
		// coverImage không bắt buộc
		coverImage, _ := c.FormFile("coverImage")

		user, err := h.userService.Register(c.Context(), &input, avatar, coverImage)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin đăng nhập bằng username hoặc email.
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMe trả về thông tin người dùng hiện tại.
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.CurrentUser(c.Context(), userID)
		h.HandleResponse(c, user, err)
		return nil
	})
}
