// Package playlistsvc - Quản lý playlist và các báo cáo tổng hợp của playlist.
package playlistsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "video_tube/internal/api/auth/models"
	basesvc "video_tube/internal/api/base/service"
	playlistdto "video_tube/internal/api/playlist/dto"
	playlistmodels "video_tube/internal/api/playlist/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// PlaylistService là service quản lý playlists.
// Các service phụ thuộc (users, videos) được tiêm vào để kiểm tra tham chiếu,
// logic báo cáo không tự mở collection nào ngoài cái được cấp.
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[playlistmodels.Playlist]
	userCRUD  basesvc.BaseServiceMongo[authmodels.User]
	videoCRUD basesvc.BaseServiceMongo[videomodels.Video]
}

// NewPlaylistService tạo mới PlaylistService.
func NewPlaylistService() (*PlaylistService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	videoCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[playlistmodels.Playlist](collection),
		userCRUD:             basesvc.NewBaseServiceMongo[authmodels.User](userCol),
		videoCRUD:            basesvc.NewBaseServiceMongo[videomodels.Video](videoCol),
	}, nil
}

// CreatePlaylist tạo playlist mới, danh sách video khởi tạo rỗng.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, ownerID primitive.ObjectID, input *playlistdto.PlaylistCreateInput) (*playlistmodels.Playlist, error) {
	playlist := playlistmodels.Playlist{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		VideoIDs:    []primitive.ObjectID{},
	}
	created, err := s.InsertOne(ctx, playlist)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// findOwned trả về playlist nếu caller là chủ sở hữu.
func (s *PlaylistService) findOwned(ctx context.Context, playlistID, callerID primitive.ObjectID) (*playlistmodels.Playlist, error) {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireOwner(playlist.OwnerID, callerID); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// UpdatePlaylist cập nhật tên/mô tả playlist. Chỉ chủ sở hữu được phép.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistID, callerID primitive.ObjectID, input *playlistdto.PlaylistUpdateInput) (*playlistmodels.Playlist, error) {
	if _, err := s.findOwned(ctx, playlistID, callerID); err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, playlistID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePlaylist xóa playlist. Chỉ chủ sở hữu được phép.
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, callerID primitive.ObjectID) error {
	if _, err := s.findOwned(ctx, playlistID, callerID); err != nil {
		return err
	}
	return s.DeleteById(ctx, playlistID)
}

// AddVideo thêm video vào cuối playlist. Cho phép trùng lặp, giữ thứ tự thêm vào.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, callerID primitive.ObjectID) (*playlistmodels.Playlist, error) {
	if _, err := s.findOwned(ctx, playlistID, callerID); err != nil {
		return nil, err
	}

	exists, err := s.videoCRUD.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewError(common.ErrCodeValidationInput, "Video không tồn tại", common.StatusNotFound, nil)
	}

	updated, err := s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		Push: bson.M{"videos": videoID},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveVideo gỡ mọi lần xuất hiện của video khỏi playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, callerID primitive.ObjectID) (*playlistmodels.Playlist, error) {
	if _, err := s.findOwned(ctx, playlistID, callerID); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		Pull: bson.M{"videos": videoID},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// PlaylistOwnerSummary thông tin rút gọn của chủ playlist trong báo cáo.
type PlaylistOwnerSummary struct {
	Username  string `bson:"username" json:"username"`
	FullName  string `bson:"fullName" json:"fullName"`
	AvatarURL string `bson:"avatarUrl" json:"avatarUrl"`
}

// PlaylistVideoSummary thông tin rút gọn của một video trong playlist.
type PlaylistVideoSummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	VideoFileURL string             `bson:"videoFileUrl" json:"videoFileUrl"`
	ThumbnailURL string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Duration     float64            `bson:"duration" json:"duration"`
	Views        int64              `bson:"views" json:"views"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
}

// PlaylistSummary một dòng kết quả báo cáo playlist.
type PlaylistSummary struct {
	ID          primitive.ObjectID     `bson:"_id" json:"id"`
	Name        string                 `bson:"name" json:"name"`
	Description string                 `bson:"description" json:"description"`
	CreatedAt   int64                  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64                  `bson:"updatedAt" json:"updatedAt"`
	TotalVideos int64                  `bson:"totalVideos" json:"totalVideos"`
	TotalViews  int64                  `bson:"totalViews" json:"totalViews"`
	Owner       *PlaylistOwnerSummary  `bson:"owner" json:"owner"`
	Videos      []PlaylistVideoSummary `bson:"videos" json:"videos"`
}

// videoSummaryProjection các trường video được giữ lại trong báo cáo.
func videoSummaryProjection() bson.M {
	return bson.M{
		"_id":          1,
		"videoFileUrl": 1,
		"thumbnailUrl": 1,
		"title":        1,
		"description":  1,
		"duration":     1,
		"views":        1,
		"createdAt":    1,
	}
}

// BuildUserPlaylistsPipeline dựng pipeline liệt kê playlist của một người dùng
// kèm tổng số video, tổng lượt xem và thông tin chủ sở hữu.
func BuildUserPlaylistsPipeline(ownerID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"ownerId": ownerID}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "ownerId",
			"foreignField": "_id",
			"as":           "owner",
		}},
		{"$addFields": bson.M{
			"totalVideos": bson.M{"$size": "$videos"},
			"totalViews":  bson.M{"$sum": "$videos.views"},
			"owner":       bson.M{"$first": "$owner"},
		}},
		{"$project": bson.M{
			"name":        1,
			"description": 1,
			"createdAt":   1,
			"updatedAt":   1,
			"totalVideos": 1,
			"totalViews":  1,
			"owner":       bson.M{"username": 1, "fullName": 1, "avatarUrl": 1},
			"videos":      videoSummaryProjection(),
		}},
	}
}

// BuildPlaylistByIdPipeline dựng pipeline báo cáo cho một playlist,
// chỉ resolve các video đã công khai (isPublished = true).
func BuildPlaylistByIdPipeline(playlistID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"_id": playlistID}},
		{"$lookup": bson.M{
			"from": global.MongoDB_ColNames.Videos,
			"let":  bson.M{"videoIds": "$videos"},
			"pipeline": []bson.M{
				{"$match": bson.M{
					"$expr":       bson.M{"$in": []interface{}{"$_id", "$$videoIds"}},
					"isPublished": true,
				}},
			},
			"as": "videos",
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "ownerId",
			"foreignField": "_id",
			"as":           "owner",
		}},
		{"$addFields": bson.M{
			"totalVideos": bson.M{"$size": "$videos"},
			"totalViews":  bson.M{"$sum": "$videos.views"},
			"owner":       bson.M{"$first": "$owner"},
		}},
		{"$project": bson.M{
			"name":        1,
			"description": 1,
			"createdAt":   1,
			"updatedAt":   1,
			"totalVideos": 1,
			"totalViews":  1,
			"owner":       bson.M{"username": 1, "fullName": 1, "avatarUrl": 1},
			"videos":      videoSummaryProjection(),
		}},
	}
}

// UserPlaylists báo cáo toàn bộ playlist của một người dùng.
// Trả NotFound nếu userId không trỏ tới người dùng nào.
func (s *PlaylistService) UserPlaylists(ctx context.Context, userID primitive.ObjectID) ([]PlaylistSummary, error) {
	exists, err := s.userCRUD.DocumentExists(ctx, bson.M{"_id": userID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}

	results := []PlaylistSummary{}
	if err := s.Aggregate(ctx, BuildUserPlaylistsPipeline(userID), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// PlaylistById báo cáo một playlist với các video đã công khai.
// Playlist không có video công khai nào vẫn trả về với totals bằng 0.
func (s *PlaylistService) PlaylistById(ctx context.Context, playlistID primitive.ObjectID) (*PlaylistSummary, error) {
	results := []PlaylistSummary{}
	if err := s.Aggregate(ctx, BuildPlaylistByIdPipeline(playlistID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}
