// Package dashboardsvc - Test shape của các pipeline báo cáo kênh.
package dashboardsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildChannelStatsPipeline_Shape(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipe := BuildChannelStatsPipeline(ownerID)

	if len(pipe) != 4 {
		t.Fatalf("pipeline phải có 4 stage, có %d", len(pipe))
	}

	match, ok := pipe[0]["$match"].(bson.M)
	if !ok {
		t.Fatal("stage đầu tiên phải là $match")
	}
	if match["ownerId"] != ownerID {
		t.Errorf("$match phải lọc theo ownerId, có: %v", match)
	}

	lookup, ok := pipe[1]["$lookup"].(bson.M)
	if !ok {
		t.Fatal("stage thứ hai phải là $lookup")
	}
	if lookup["from"] != "likes" || lookup["foreignField"] != "video" {
		t.Errorf("$lookup phải join likes theo video, có: %v", lookup)
	}

	group, ok := pipe[3]["$group"].(bson.M)
	if !ok {
		t.Fatal("stage cuối phải là $group")
	}
	for _, field := range []string{"totalLikes", "totalViews", "totalVideos"} {
		if _, ok := group[field]; !ok {
			t.Errorf("$group thiếu trường %s", field)
		}
	}
}

func TestBuildChannelVideosPipeline_SortMoiNhatTruoc(t *testing.T) {
	pipe := BuildChannelVideosPipeline(primitive.NewObjectID())

	sort, ok := pipe[1]["$sort"].(bson.M)
	if !ok {
		t.Fatal("stage thứ hai phải là $sort")
	}
	if sort["createdAt"] != -1 {
		t.Errorf("video kênh phải sắp theo createdAt giảm dần, có: %v", sort)
	}
}

func TestBuildChannelVideosPipeline_TachNgayTao(t *testing.T) {
	pipe := BuildChannelVideosPipeline(primitive.NewObjectID())
	if len(pipe) != 5 {
		t.Fatalf("pipeline phải có 5 stage (match, sort, lookup, addFields, project), có %d", len(pipe))
	}

	addFields, ok := pipe[3]["$addFields"].(bson.M)
	if !ok {
		t.Fatal("stage thứ tư phải là $addFields")
	}
	created, ok := addFields["createdAt"].(bson.M)
	if !ok {
		t.Fatal("createdAt phải được ghi đè bằng $dateToParts")
	}
	if _, ok := created["$dateToParts"]; !ok {
		t.Errorf("createdAt phải dùng $dateToParts, có: %v", created)
	}

	project, ok := pipe[4]["$project"].(bson.M)
	if !ok {
		t.Fatal("stage cuối phải là $project")
	}
	parts, ok := project["createdAt"].(bson.M)
	if !ok {
		t.Fatal("$project phải giữ lại createdAt dạng year/month/day")
	}
	for _, field := range []string{"year", "month", "day"} {
		if _, ok := parts[field]; !ok {
			t.Errorf("createdAt thiếu phần %s", field)
		}
	}
	if _, ok := project["likesCount"]; !ok {
		t.Error("$project phải giữ likesCount")
	}
}
