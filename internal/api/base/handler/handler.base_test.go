package basehdl

import (
	"testing"
)

func TestParseSortWithOrder_GiuThuTuField(t *testing.T) {
	sort := parseSortWithOrder(`{"sort": {"views": -1, "createdAt": 1, "title": -1}}`)
	if len(sort) != 3 {
		t.Fatalf("sort phải có 3 field, có %d", len(sort))
	}
	wantKeys := []string{"views", "createdAt", "title"}
	wantVals := []int{-1, 1, -1}
	for i, e := range sort {
		if e.Key != wantKeys[i] {
			t.Errorf("field thứ %d phải là %q, có %q", i, wantKeys[i], e.Key)
		}
		if e.Value != wantVals[i] {
			t.Errorf("giá trị sort của %q phải là %d, có %v", e.Key, wantVals[i], e.Value)
		}
	}
}

func TestParseSortWithOrder_BoQuaGiaTriKhongHopLe(t *testing.T) {
	sort := parseSortWithOrder(`{"sort": {"views": 2, "createdAt": -1, "title": "desc"}}`)
	if len(sort) != 1 {
		t.Fatalf("chỉ giá trị 1/-1 được chấp nhận, có %d field", len(sort))
	}
	if sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("field hợp lệ duy nhất phải là createdAt:-1, có %v", sort[0])
	}
}

func TestParseSortWithOrder_KhongCoSort(t *testing.T) {
	if sort := parseSortWithOrder(`{"limit": 10}`); len(sort) != 0 {
		t.Errorf("options không có sort phải trả về bson.D rỗng, có %v", sort)
	}
	if sort := parseSortWithOrder(`not-json`); len(sort) != 0 {
		t.Errorf("JSON hỏng phải trả về bson.D rỗng, có %v", sort)
	}
}
