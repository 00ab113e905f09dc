package registry

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegister_VaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("videos", 7)
	if err != nil {
		t.Fatalf("register hợp lệ không được lỗi: %v", err)
	}
	if !isNew {
		t.Error("lần đăng ký đầu tiên phải là item mới")
	}

	got, exists := r.Get("videos")
	if !exists {
		t.Fatal("item đã đăng ký phải tồn tại")
	}
	if got != 7 {
		t.Errorf("giá trị sai: muốn 7, có %d", got)
	}
}

func TestRegister_GhiDe(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("key", "cu")

	isNew, err := r.Register("key", "moi")
	if err != nil {
		t.Fatalf("ghi đè không được lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè item cũ phải trả isNew=false")
	}

	got, _ := r.Get("key")
	if got != "moi" {
		t.Errorf("ghi đè phải giữ giá trị mới, có %q", got)
	}
}

func TestRegister_TenRong(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("name rỗng phải bị từ chối")
	}
}

func TestGet_KhongTonTai(t *testing.T) {
	r := NewRegistry[int]()
	if _, exists := r.Get("khong-co"); exists {
		t.Error("item chưa đăng ký không được tồn tại")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0
	creator := func() (string, error) {
		calls++
		return "tao-moi", nil
	}

	got, err := r.GetOrCreate("key", creator)
	if err != nil {
		t.Fatalf("tạo mới không được lỗi: %v", err)
	}
	if got != "tao-moi" {
		t.Errorf("giá trị sai: %q", got)
	}

	// Lần hai phải dùng lại item đã có, không gọi creator nữa
	got, err = r.GetOrCreate("key", creator)
	if err != nil {
		t.Fatalf("lấy lại không được lỗi: %v", err)
	}
	if got != "tao-moi" || calls != 1 {
		t.Errorf("creator phải được gọi đúng 1 lần, có %d lần", calls)
	}
}

func TestGetOrCreate_CreatorLoi(t *testing.T) {
	r := NewRegistry[string]()
	wantErr := errors.New("khong ket noi duoc")
	_, err := r.GetOrCreate("key", func() (string, error) {
		return "", wantErr
	})
	if err == nil || !errors.Is(err, wantErr) {
		t.Errorf("lỗi từ creator phải được propagate, có: %v", err)
	}
	if _, exists := r.Get("key"); exists {
		t.Error("creator lỗi thì không được lưu item")
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("key", 1)

	cleaned := false
	deleted, err := r.Clear("key", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("clear không được lỗi: %v", err)
	}
	if !deleted || !cleaned {
		t.Error("clear phải gọi cleanup và xóa item")
	}
	if _, exists := r.Get("key"); exists {
		t.Error("item đã clear không được tồn tại")
	}
}

func TestClear_CleanupLoiGiuNguyenItem(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("key", 1)

	deleted, err := r.Clear("key", func(int) error {
		return fmt.Errorf("dang ban")
	})
	if err == nil || deleted {
		t.Error("cleanup lỗi thì item phải được giữ nguyên")
	}
	if _, exists := r.Get("key"); !exists {
		t.Error("item phải còn trong registry sau khi cleanup lỗi")
	}
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("clearAll không được lỗi: %v", err)
	}
	if count != 2 {
		t.Errorf("phải xóa 2 item, có %d", count)
	}
	if _, exists := r.Get("a"); exists {
		t.Error("registry phải rỗng sau clearAll")
	}
}
