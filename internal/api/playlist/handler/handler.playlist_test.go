package playlisthdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	playlistdto "video_tube/internal/api/playlist/dto"
)

func TestPlaylistVideoParam_TransformSangObjectID(t *testing.T) {
	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()
	param := playlistdto.PlaylistVideoParam{
		PlaylistID: playlistID.Hex(),
		VideoID:    videoID.Hex(),
	}

	ref, err := basehdl.TransformParams[playlistdto.PlaylistVideoRef](&param)
	if err != nil {
		t.Fatalf("transform param hợp lệ không được lỗi, có: %v", err)
	}
	if ref.PlaylistID != playlistID {
		t.Errorf("PlaylistID phải là %s, có %s", playlistID.Hex(), ref.PlaylistID.Hex())
	}
	if ref.VideoID != videoID {
		t.Errorf("VideoID phải là %s, có %s", videoID.Hex(), ref.VideoID.Hex())
	}
}

func TestPlaylistVideoParam_HexHongBiTuChoi(t *testing.T) {
	param := playlistdto.PlaylistVideoParam{
		PlaylistID: "khong-phai-hex",
		VideoID:    primitive.NewObjectID().Hex(),
	}
	if _, err := basehdl.TransformParams[playlistdto.PlaylistVideoRef](&param); err == nil {
		t.Fatal("hex không hợp lệ phải bị từ chối khi transform")
	}
}
