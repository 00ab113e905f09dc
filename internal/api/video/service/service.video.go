// Package videosvc - Quản lý vòng đời video: upload, metadata, publish, listing.
package videosvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	videodto "video_tube/internal/api/video/dto"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/storage"
	"video_tube/internal/utility"
)

// VideoService là service quản lý videos.
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Video]
	assets *storage.AssetStore
}

// NewVideoService tạo mới VideoService.
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	assets, err := storage.GetAssetStore(global.MongoDB_ServerConfig)
	if err != nil {
		return nil, err
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[videomodels.Video](collection),
		assets:               assets,
	}, nil
}

// CreateVideo upload file video + thumbnail lên object storage, đọc duration
// từ metadata của file rồi lưu document video. Video mới mặc định published.
func (s *VideoService) CreateVideo(ctx context.Context, ownerID primitive.ObjectID, input *videodto.VideoCreateInput, videoPath, thumbnailPath string) (*videomodels.Video, error) {
	duration, err := storage.ProbeDuration(videoPath)
	if err != nil {
		return nil, err
	}

	videoURL, err := s.assets.UploadFile(ctx, videoPath, "video/mp4", "videos")
	if err != nil {
		return nil, err
	}
	thumbnailURL, err := s.assets.UploadFile(ctx, thumbnailPath, "image/jpeg", "thumbnails")
	if err != nil {
		return nil, err
	}

	video := videomodels.Video{
		OwnerID:      ownerID,
		VideoFileURL: videoURL,
		ThumbnailURL: thumbnailURL,
		Title:        input.Title,
		Description:  input.Description,
		Duration:     duration,
		IsPublished:  true,
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetVideoById trả về video theo ID. Video chưa công khai chỉ chủ sở hữu xem được.
func (s *VideoService) GetVideoById(ctx context.Context, videoID, callerID primitive.ObjectID) (*videomodels.Video, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != callerID {
		return nil, common.ErrVideoUnpublished
	}
	return &video, nil
}

// UpdateVideo cập nhật metadata video. Chỉ chủ sở hữu được phép.
func (s *VideoService) UpdateVideo(ctx context.Context, videoID, callerID primitive.ObjectID, input *videodto.VideoUpdateInput) (*videomodels.Video, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireOwner(video.OwnerID, callerID); err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		return &video, nil
	}

	updated, err := s.UpdateById(ctx, videoID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVideo xóa video. Chỉ chủ sở hữu được phép. Asset trên storage
// được xóa best-effort, lỗi xóa asset không chặn thao tác.
func (s *VideoService) DeleteVideo(ctx context.Context, videoID, callerID primitive.ObjectID) error {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return err
	}
	if err := common.RequireOwner(video.OwnerID, callerID); err != nil {
		return err
	}

	if err := s.DeleteById(ctx, videoID); err != nil {
		return err
	}

	if err := s.assets.RemoveByURL(ctx, video.VideoFileURL); err != nil {
		logger.GetAppLogger().Warnf("Không thể xóa file video trên storage: %v", err)
	}
	if err := s.assets.RemoveByURL(ctx, video.ThumbnailURL); err != nil {
		logger.GetAppLogger().Warnf("Không thể xóa thumbnail trên storage: %v", err)
	}
	return nil
}

// TogglePublish đảo trạng thái công khai của video. Chỉ chủ sở hữu được phép.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, callerID primitive.ObjectID) (*videomodels.Video, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireOwner(video.OwnerID, callerID); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, videoID, &basesvc.UpdateData{
		Set: bson.M{"isPublished": !video.IsPublished},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// IncrementViews tăng lượt xem của video thêm 1.
func (s *VideoService) IncrementViews(ctx context.Context, videoID primitive.ObjectID) error {
	_, err := s.UpdateOne(ctx, bson.M{"_id": videoID}, bson.M{"$inc": bson.M{"views": 1}}, nil)
	return err
}

// BuildListingFilter dựng filter cho listing từ userId (tùy chọn).
func BuildListingFilter(userID string) (bson.M, error) {
	filter := bson.M{}
	if userID != "" {
		ownerID := utility.String2ObjectID(userID)
		if ownerID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, "userId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
		}
		filter["ownerId"] = ownerID
	}
	return filter, nil
}

// BuildListingSort dựng sort cho listing. Mặc định tăng dần, "desc" giảm dần.
func BuildListingSort(sortBy, sortType string) bson.D {
	if sortBy == "" {
		return nil
	}
	direction := 1
	if sortType == "desc" {
		direction = -1
	}
	return bson.D{{Key: sortBy, Value: direction}}
}

// ListVideos liệt kê video theo filter/sort/trang. Không có kết quả trả mảng rỗng.
func (s *VideoService) ListVideos(ctx context.Context, query *videodto.VideoListQuery) (*basemodels.PaginateResult[videomodels.Video], error) {
	filter, err := BuildListingFilter(query.UserID)
	if err != nil {
		return nil, err
	}

	opts := options.Find()
	if sort := BuildListingSort(query.SortBy, query.SortType); sort != nil {
		opts.SetSort(sort)
	}

	page := query.Page
	if page < 1 {
		page = global.MongoDB_ServerConfig.Pagination_DefaultPage
	}
	limit := query.Limit
	if limit <= 0 {
		limit = global.MongoDB_ServerConfig.Pagination_DefaultLimit
	}

	return s.FindWithPagination(ctx, filter, page, limit, opts)
}
