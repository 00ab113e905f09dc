// Package basesvc - Test chuyển đổi dữ liệu update và default tags.
package basesvc

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_MapThuongWrapTrongSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"title": "video moi"})
	if err != nil {
		t.Fatalf("map thường phải chuyển được, lỗi: %v", err)
	}
	if update.Set["title"] != "video moi" {
		t.Errorf("map thường phải được wrap trong $set, có: %+v", update)
	}
	if update.Push != nil || update.Pull != nil {
		t.Errorf("các operator khác phải rỗng, có: %+v", update)
	}
}

func TestToUpdateData_GiuNguyenOperator(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$set":  bson.M{"name": "playlist"},
		"$pull": bson.M{"videos": "abc"},
	})
	if err != nil {
		t.Fatalf("map có operator phải chuyển được, lỗi: %v", err)
	}
	if update.Set["name"] != "playlist" {
		t.Errorf("$set phải được giữ, có: %+v", update.Set)
	}
	if update.Pull["videos"] != "abc" {
		t.Errorf("$pull phải được giữ, có: %+v", update.Pull)
	}
}

func TestToUpdateData_UpdateDataPassthrough(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"content": "x"}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("UpdateData phải passthrough, lỗi: %v", err)
	}
	if out != in {
		t.Error("con trỏ UpdateData phải được trả nguyên vẹn")
	}
}

type defaultTagModel struct {
	IsPublished bool   `bson:"isPublished" default:"true"`
	Retries     int64  `bson:"retries" default:"3"`
	Status      string `bson:"status" default:"pending"`
	Title       string `bson:"title"`
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultTagModel{}))

	if defaults["isPublished"] != true {
		t.Errorf("default bool phải parse thành true, có: %v", defaults["isPublished"])
	}
	if defaults["retries"] != int64(3) {
		t.Errorf("default int64 phải parse thành 3, có: %v (%T)", defaults["retries"], defaults["retries"])
	}
	if defaults["status"] != "pending" {
		t.Errorf("default string phải giữ nguyên, có: %v", defaults["status"])
	}
	if _, ok := defaults["title"]; ok {
		t.Error("trường không có default tag không được xuất hiện")
	}
}

func TestApplyInsertDefaultsToModel_KhongGhiDeGiaTriDaSet(t *testing.T) {
	m := defaultTagModel{Status: "done"}
	applyInsertDefaultsToModel(&m)

	if m.Status != "done" {
		t.Errorf("giá trị đã set không được ghi đè, có: %q", m.Status)
	}
	if !m.IsPublished {
		t.Error("trường zero phải nhận giá trị default")
	}
	if m.Retries != 3 {
		t.Errorf("trường zero phải nhận default 3, có: %d", m.Retries)
	}
}

func TestPaginationWindow_TrangHaiLayDungCuaSo(t *testing.T) {
	page, limit, skip := paginationWindow(2, 5)
	if page != 2 || limit != 5 {
		t.Fatalf("page/limit hợp lệ phải giữ nguyên, có page=%d limit=%d", page, limit)
	}
	// Trang 2 với limit 5 phải bỏ qua 5 bản ghi đầu, tức lấy bản ghi 6-10
	if skip != 5 {
		t.Errorf("skip phải là 5, có %d", skip)
	}
}

func TestPaginationWindow_ChuanHoaGiaTriKhongHopLe(t *testing.T) {
	page, limit, skip := paginationWindow(0, -1)
	if page != 1 {
		t.Errorf("page < 1 phải được đưa về 1, có %d", page)
	}
	if limit != 10 {
		t.Errorf("limit <= 0 phải được đưa về 10, có %d", limit)
	}
	if skip != 0 {
		t.Errorf("trang đầu phải có skip 0, có %d", skip)
	}
}
