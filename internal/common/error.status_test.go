package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError_GiuDayDuThongTin(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Thiếu tên playlist", StatusBadRequest, "name")

	customErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("NewError phải trả về *Error, có %T", err)
	}
	if customErr.Code.Code != ErrCodeValidationInput.Code {
		t.Errorf("code sai: %s", customErr.Code.Code)
	}
	if customErr.Message != "Thiếu tên playlist" {
		t.Errorf("message sai: %q", customErr.Message)
	}
	if customErr.StatusCode != StatusBadRequest {
		t.Errorf("status code sai: %d", customErr.StatusCode)
	}
	if customErr.Details != "name" {
		t.Errorf("details sai: %v", customErr.Details)
	}
	if err.Error() != "Thiếu tên playlist" {
		t.Errorf("Error() phải trả về message, có %q", err.Error())
	}
}

func TestErrorsIs_SentinelMatch(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("ErrNotFound phải match chính nó")
	}
	if !errors.Is(ErrNotResourceOwner, ErrNotResourceOwner) {
		t.Error("ErrNotResourceOwner phải match chính nó")
	}
	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("ErrNotFound không được match ErrDuplicate")
	}
}

func TestErrorsIs_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("failed to get users collection: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("sentinel bị wrap vẫn phải match qua errors.Is")
	}
}

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải giữ nguyên nil, có %v", got)
	}

	// ErrNotFound không được convert sang lỗi khác
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, có %v", got)
	}

	got := ConvertMongoError(mongo.CommandError{Code: 150, Message: "host unreachable"})
	if !errors.Is(got, ErrMongoConnection) {
		t.Errorf("command error dải 1xx phải ra ErrMongoConnection, có %v", got)
	}

	got = ConvertMongoError(mongo.CommandError{Code: 550, Message: "internal"})
	if !errors.Is(got, ErrMongoSystem) {
		t.Errorf("command error dải 5xx phải ra ErrMongoSystem, có %v", got)
	}
}

func TestConvertMongoError_LoiKhongXacDinh(t *testing.T) {
	got := ConvertMongoError(errors.New("loi la"))
	customErr, ok := got.(*Error)
	if !ok {
		t.Fatalf("lỗi không xác định phải được wrap thành *Error, có %T", got)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi không xác định phải là 500, có %d", customErr.StatusCode)
	}
}
