package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRequireOwner_ChuSoHuu(t *testing.T) {
	id := primitive.NewObjectID()
	if err := RequireOwner(id, id); err != nil {
		t.Errorf("chủ sở hữu hợp lệ không được trả lỗi, có: %v", err)
	}
}

func TestRequireOwner_KhongPhaiChuSoHuu(t *testing.T) {
	err := RequireOwner(primitive.NewObjectID(), primitive.NewObjectID())
	if err == nil {
		t.Fatal("user khác chủ sở hữu phải bị từ chối")
	}
	if !errors.Is(err, ErrNotResourceOwner) {
		t.Errorf("lỗi phải là ErrNotResourceOwner, có: %v", err)
	}
}
