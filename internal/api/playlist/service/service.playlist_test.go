// Package playlistsvc - Test shape của các pipeline báo cáo playlist.
package playlistsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildUserPlaylistsPipeline_Shape(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipe := BuildUserPlaylistsPipeline(ownerID)

	match, ok := pipe[0]["$match"].(bson.M)
	if !ok {
		t.Fatal("stage đầu tiên phải là $match")
	}
	if match["ownerId"] != ownerID {
		t.Errorf("$match phải lọc theo ownerId, có: %v", match)
	}

	addFields, ok := pipe[3]["$addFields"].(bson.M)
	if !ok {
		t.Fatal("stage thứ tư phải là $addFields")
	}
	size, ok := addFields["totalVideos"].(bson.M)
	if !ok || size["$size"] != "$videos" {
		t.Errorf("totalVideos phải là $size của videos, có: %v", addFields["totalVideos"])
	}
	sum, ok := addFields["totalViews"].(bson.M)
	if !ok || sum["$sum"] != "$videos.views" {
		t.Errorf("totalViews phải là $sum của videos.views, có: %v", addFields["totalViews"])
	}
	first, ok := addFields["owner"].(bson.M)
	if !ok || first["$first"] != "$owner" {
		t.Errorf("owner phải lấy $first từ lookup, có: %v", addFields["owner"])
	}
}

func TestBuildPlaylistByIdPipeline_ChiLayVideoDaCongKhai(t *testing.T) {
	playlistID := primitive.NewObjectID()
	pipe := BuildPlaylistByIdPipeline(playlistID)

	match, ok := pipe[0]["$match"].(bson.M)
	if !ok || match["_id"] != playlistID {
		t.Fatalf("stage đầu tiên phải là $match theo _id, có: %v", pipe[0])
	}

	lookup, ok := pipe[1]["$lookup"].(bson.M)
	if !ok {
		t.Fatal("stage thứ hai phải là $lookup videos")
	}
	sub, ok := lookup["pipeline"].([]bson.M)
	if !ok || len(sub) == 0 {
		t.Fatal("$lookup phải dùng sub-pipeline để lọc video")
	}
	subMatch, ok := sub[0]["$match"].(bson.M)
	if !ok {
		t.Fatal("sub-pipeline phải bắt đầu bằng $match")
	}
	if subMatch["isPublished"] != true {
		t.Errorf("video chưa công khai không được lọt qua lookup, có: %v", subMatch)
	}
}

func TestVideoSummaryProjection_GiuDuTruong(t *testing.T) {
	proj := videoSummaryProjection()
	for _, field := range []string{"_id", "videoFileUrl", "thumbnailUrl", "title", "description", "duration", "views", "createdAt"} {
		if _, ok := proj[field]; !ok {
			t.Errorf("projection video thiếu trường %s", field)
		}
	}
}
