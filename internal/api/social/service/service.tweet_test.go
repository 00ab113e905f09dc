// Package socialsvc - Test pipeline gộp tweet theo người dùng.
package socialsvc

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	socialmodels "video_tube/internal/api/social/models"
)

func TestBuildUserTweetsPipeline_GomNoiDungVaoMotMang(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipe := BuildUserTweetsPipeline(ownerID)

	match, ok := pipe[0]["$match"].(bson.M)
	if !ok || match["ownerId"] != ownerID {
		t.Fatalf("stage đầu tiên phải là $match theo ownerId, có: %v", pipe[0])
	}

	group, ok := pipe[3]["$group"].(bson.M)
	if !ok {
		t.Fatal("stage thứ tư phải là $group")
	}
	if group["_id"] != nil {
		t.Errorf("$group phải dồn mọi tweet vào một document (_id: null), có: %v", group["_id"])
	}
	push, ok := group["content"].(bson.M)
	if !ok || push["$push"] != "$content" {
		t.Errorf("content phải là $push của nội dung tweet, có: %v", group["content"])
	}
}

func TestUserTweetsReport_MangCaDanhSachLanBanGop(t *testing.T) {
	report := UserTweetsReport{
		Tweets: []socialmodels.Tweet{
			{ID: primitive.NewObjectID(), OwnerID: primitive.NewObjectID(), Content: "xin chào", CreatedAt: 1700000000000},
		},
		Joined: TweetsJoined{Content: []string{"xin chào"}},
	}

	raw, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal báo cáo thất bại: %v", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal báo cáo thất bại: %v", err)
	}
	if _, ok := payload["tweets"]; !ok {
		t.Error("báo cáo phải mang danh sách tweet đầy đủ (trường tweets)")
	}
	if _, ok := payload["joined"]; !ok {
		t.Error("báo cáo phải mang bản gộp {content, user} (trường joined)")
	}

	var tweets []socialmodels.Tweet
	if err := json.Unmarshal(payload["tweets"], &tweets); err != nil {
		t.Fatalf("trường tweets không phải danh sách tweet: %v", err)
	}
	if len(tweets) != 1 || tweets[0].ID.IsZero() || tweets[0].CreatedAt == 0 {
		t.Errorf("mỗi tweet trong danh sách phải giữ id và timestamps, có: %+v", tweets)
	}
}

func TestBuildUserTweetsPipeline_UserShape(t *testing.T) {
	pipe := BuildUserTweetsPipeline(primitive.NewObjectID())

	project, ok := pipe[4]["$project"].(bson.M)
	if !ok {
		t.Fatal("stage cuối phải là $project")
	}
	user, ok := project["user"].(bson.M)
	if !ok {
		t.Fatal("$project phải trả về user")
	}
	for _, field := range []string{"fullName", "avatar", "email", "username"} {
		if _, ok := user[field]; !ok {
			t.Errorf("user thiếu trường %s", field)
		}
	}
}
