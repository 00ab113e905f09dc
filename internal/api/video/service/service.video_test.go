// Package videosvc - Test filter và sort của listing video.
package videosvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListingFilter_KhongCoUserId(t *testing.T) {
	filter, err := BuildListingFilter("")
	if err != nil {
		t.Fatalf("không có userId vẫn phải hợp lệ, lỗi: %v", err)
	}
	if len(filter) != 0 {
		t.Errorf("filter phải rỗng khi không lọc theo owner, có: %v", filter)
	}
}

func TestBuildListingFilter_UserIdHopLe(t *testing.T) {
	ownerID := primitive.NewObjectID()
	filter, err := BuildListingFilter(ownerID.Hex())
	if err != nil {
		t.Fatalf("userId hợp lệ nhưng lỗi: %v", err)
	}
	if filter["ownerId"] != ownerID {
		t.Errorf("filter phải lọc theo ownerId, có: %v", filter)
	}
}

func TestBuildListingFilter_UserIdSaiDinhDang(t *testing.T) {
	if _, err := BuildListingFilter("khong-phai-objectid"); err == nil {
		t.Error("userId sai định dạng phải trả lỗi")
	}
}

func TestBuildListingSort(t *testing.T) {
	if sort := BuildListingSort("", "desc"); sort != nil {
		t.Errorf("không có sortBy thì không sort, có: %v", sort)
	}

	sort := BuildListingSort("views", "")
	if len(sort) != 1 || sort[0].Key != "views" || sort[0].Value != 1 {
		t.Errorf("mặc định phải sắp tăng dần, có: %v", sort)
	}

	sort = BuildListingSort("views", "desc")
	if sort[0].Value != -1 {
		t.Errorf("sortType desc phải sắp giảm dần, có: %v", sort)
	}

	// giá trị sortType lạ coi như tăng dần
	sort = BuildListingSort("title", "DESC")
	if sort[0].Value != 1 {
		t.Errorf("sortType không phải 'desc' thì tăng dần, có: %v", sort)
	}
}
