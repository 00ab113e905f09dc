// Package socialsvc - Test filter toggle like và pipeline video đã thích.
package socialsvc

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	socialdto "video_tube/internal/api/social/dto"
	socialmodels "video_tube/internal/api/social/models"
)

func TestToggleReactionResult_ToggleOnMangLikeVuaTao(t *testing.T) {
	videoID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()
	on := socialdto.ToggleReactionResult{
		Liked: true,
		Like:  &socialmodels.Like{ID: primitive.NewObjectID(), VideoID: &videoID, LikedBy: callerID},
	}

	raw, err := json.Marshal(on)
	if err != nil {
		t.Fatalf("marshal kết quả toggle thất bại: %v", err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal kết quả toggle thất bại: %v", err)
	}
	rawLike, ok := payload["like"]
	if !ok {
		t.Fatal("toggle-on phải trả về document Like vừa tạo")
	}
	var like socialmodels.Like
	if err := json.Unmarshal(rawLike, &like); err != nil {
		t.Fatalf("trường like không phải document Like: %v", err)
	}
	if like.ID.IsZero() || like.LikedBy != callerID || like.VideoID == nil || *like.VideoID != videoID {
		t.Errorf("Like trả về phải giữ id, subject và likedBy, có: %+v", like)
	}
}

func TestToggleReactionResult_ToggleOffKhongMangLike(t *testing.T) {
	raw, err := json.Marshal(socialdto.ToggleReactionResult{Liked: false})
	if err != nil {
		t.Fatalf("marshal kết quả toggle thất bại: %v", err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal kết quả toggle thất bại: %v", err)
	}
	if _, ok := payload["like"]; ok {
		t.Error("toggle-off không được mang document Like")
	}
}

func TestBuildToggleFilter_TheoKind(t *testing.T) {
	subjectID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	cases := []struct {
		kind  string
		field string
	}{
		{socialmodels.ReactionKindVideo, "video"},
		{socialmodels.ReactionKindComment, "comment"},
		{socialmodels.ReactionKindTweet, "tweet"},
	}
	for _, tc := range cases {
		filter := BuildToggleFilter(tc.kind, subjectID, callerID)
		if filter == nil {
			t.Fatalf("kind %s hợp lệ nhưng filter nil", tc.kind)
		}
		if filter[tc.field] != subjectID {
			t.Errorf("kind %s phải lọc theo trường %s, có: %v", tc.kind, tc.field, filter)
		}
		if filter["likedBy"] != callerID {
			t.Errorf("filter phải ghim likedBy về caller, có: %v", filter)
		}
	}
}

func TestBuildToggleFilter_KindKhongHopLe(t *testing.T) {
	if filter := BuildToggleFilter("channel", primitive.NewObjectID(), primitive.NewObjectID()); filter != nil {
		t.Errorf("kind không hợp lệ phải trả nil, có: %v", filter)
	}
}

func TestBuildLikedVideosPipeline_ChiLayLikeVideo(t *testing.T) {
	userID := primitive.NewObjectID()
	pipe := BuildLikedVideosPipeline(userID)

	match, ok := pipe[0]["$match"].(bson.M)
	if !ok {
		t.Fatal("stage đầu tiên phải là $match")
	}
	exists, ok := match["video"].(bson.M)
	if !ok || exists["$exists"] != true {
		t.Errorf("$match phải loại like trên comment/tweet, có: %v", match)
	}
	if match["likedBy"] != userID {
		t.Errorf("$match phải lọc theo likedBy, có: %v", match)
	}
}

func TestBuildLikedVideosPipeline_ProjectionShape(t *testing.T) {
	pipe := BuildLikedVideosPipeline(primitive.NewObjectID())

	project, ok := pipe[len(pipe)-1]["$project"].(bson.M)
	if !ok {
		t.Fatal("stage cuối phải là $project")
	}
	videodetail, ok := project["videodetail"].(bson.M)
	if !ok {
		t.Fatal("$project phải giữ videodetail")
	}
	for _, field := range []string{"_id", "videoFileUrl", "thumbnailUrl"} {
		if _, ok := videodetail[field]; !ok {
			t.Errorf("videodetail thiếu trường %s", field)
		}
	}
	userdetail, ok := project["userdetail"].(bson.M)
	if !ok {
		t.Fatal("$project phải giữ userdetail")
	}
	if _, ok := userdetail["username"]; !ok {
		t.Error("userdetail thiếu username")
	}
}
