// Package authsvc - Test ràng buộc đầu vào khi đăng ký.
package authsvc

import (
	"context"
	"errors"
	"testing"

	authdto "video_tube/internal/api/auth/dto"
	"video_tube/internal/common"
)

func TestRegister_ThieuAvatarBiTuChoi(t *testing.T) {
	s := &UserService{}
	input := &authdto.UserRegisterInput{
		Username: "nguyenvana",
		Email:    "a@example.com",
		FullName: "Nguyễn Văn A",
		Password: "MatKhau@123",
	}

	_, err := s.Register(context.Background(), input, nil, nil)
	if err == nil {
		t.Fatal("đăng ký không có avatar phải bị từ chối")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi phải là *common.Error, có %T", err)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("thiếu avatar phải là lỗi 400, có %d", customErr.StatusCode)
	}
	if customErr.Code.Code != common.ErrCodeValidationInput.Code {
		t.Errorf("mã lỗi phải là validation input, có %s", customErr.Code.Code)
	}
}
