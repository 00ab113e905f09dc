// Package socialsvc - Like, subscription và tweet.
package socialsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "video_tube/internal/api/auth/models"
	basesvc "video_tube/internal/api/base/service"
	socialdto "video_tube/internal/api/social/dto"
	socialmodels "video_tube/internal/api/social/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// LikeService là service quản lý likes trên video, comment và tweet.
// Like là cạnh thuần túy: toggle-on tạo document, toggle-off xóa document.
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[socialmodels.Like]
	userCRUD  basesvc.BaseServiceMongo[authmodels.User]
	videoCRUD basesvc.BaseServiceMongo[videomodels.Video]
	tweetCRUD basesvc.BaseServiceMongo[socialmodels.Tweet]
}

// NewLikeService tạo mới LikeService.
func NewLikeService() (*LikeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	videoCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	tweetCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[socialmodels.Like](collection),
		userCRUD:             basesvc.NewBaseServiceMongo[authmodels.User](userCol),
		videoCRUD:            basesvc.NewBaseServiceMongo[videomodels.Video](videoCol),
		tweetCRUD:            basesvc.NewBaseServiceMongo[socialmodels.Tweet](tweetCol),
	}, nil
}

// BuildToggleFilter dựng filter định danh cạnh like của một caller trên một subject.
// Trả nil nếu kind không hợp lệ.
func BuildToggleFilter(kind string, subjectID, callerID primitive.ObjectID) bson.M {
	field := socialmodels.SubjectField(kind)
	if field == "" {
		return nil
	}
	return bson.M{field: subjectID, "likedBy": callerID}
}

// validateSubject kiểm tra subject của like có tồn tại không.
// Comment không có store riêng nên chỉ kiểm tra định dạng kind.
func (s *LikeService) validateSubject(ctx context.Context, kind string, subjectID primitive.ObjectID) error {
	switch kind {
	case socialmodels.ReactionKindVideo:
		exists, err := s.videoCRUD.DocumentExists(ctx, bson.M{"_id": subjectID})
		if err != nil {
			return err
		}
		if !exists {
			return common.NewError(common.ErrCodeValidationInput, "Video không tồn tại", common.StatusNotFound, nil)
		}
	case socialmodels.ReactionKindTweet:
		exists, err := s.tweetCRUD.DocumentExists(ctx, bson.M{"_id": subjectID})
		if err != nil {
			return err
		}
		if !exists {
			return common.NewError(common.ErrCodeValidationInput, "Tweet không tồn tại", common.StatusNotFound, nil)
		}
	case socialmodels.ReactionKindComment:
		// comment nằm ngoài store, chấp nhận theo ID
	default:
		return common.NewError(common.ErrCodeValidationInput, "Loại subject không hợp lệ", common.StatusBadRequest, nil)
	}
	return nil
}

// ToggleReaction đảo trạng thái like của caller trên một subject.
// Xóa cạnh nếu đã tồn tại, ngược lại tạo cạnh mới. Một lần gọi, một thao tác ghi.
func (s *LikeService) ToggleReaction(ctx context.Context, kind string, subjectID, callerID primitive.ObjectID) (*socialdto.ToggleReactionResult, error) {
	if err := s.validateSubject(ctx, kind, subjectID); err != nil {
		return nil, err
	}

	filter := BuildToggleFilter(kind, subjectID, callerID)
	if filter == nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "Loại subject không hợp lệ", common.StatusBadRequest, nil)
	}

	_, err := s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return &socialdto.ToggleReactionResult{Liked: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	like := socialmodels.Like{LikedBy: callerID}
	switch kind {
	case socialmodels.ReactionKindVideo:
		like.VideoID = &subjectID
	case socialmodels.ReactionKindComment:
		like.CommentID = &subjectID
	case socialmodels.ReactionKindTweet:
		like.TweetID = &subjectID
	}

	created, err := s.InsertOne(ctx, like)
	if err != nil {
		return nil, err
	}
	return &socialdto.ToggleReactionResult{Liked: true, Like: &created}, nil
}

// LikedVideoDetail thông tin rút gọn của video trong báo cáo video đã thích.
type LikedVideoDetail struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	VideoFileURL string             `bson:"videoFileUrl" json:"videoFileUrl"`
	ThumbnailURL string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
}

// LikedUserDetail thông tin rút gọn của người thích.
type LikedUserDetail struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
}

// LikedVideoRow một dòng kết quả báo cáo video đã thích.
type LikedVideoRow struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	VideoID     primitive.ObjectID `bson:"video" json:"video"`
	VideoDetail LikedVideoDetail   `bson:"videodetail" json:"videodetail"`
	UserDetail  LikedUserDetail    `bson:"userdetail" json:"userdetail"`
}

// BuildLikedVideosPipeline dựng pipeline liệt kê video mà một người dùng đã thích,
// join chi tiết video và người thích.
func BuildLikedVideosPipeline(userID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{
			"video":   bson.M{"$exists": true},
			"likedBy": userID,
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "videodetail",
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "likedBy",
			"foreignField": "_id",
			"as":           "userdetail",
		}},
		{"$unwind": "$videodetail"},
		{"$unwind": "$userdetail"},
		{"$project": bson.M{
			"video": 1,
			"videodetail": bson.M{
				"_id":          1,
				"videoFileUrl": 1,
				"thumbnailUrl": 1,
			},
			"userdetail": bson.M{
				"_id":      1,
				"username": 1,
			},
		}},
	}
}

// LikedVideosByUser báo cáo các video một người dùng đã thích.
func (s *LikeService) LikedVideosByUser(ctx context.Context, userID primitive.ObjectID) ([]LikedVideoRow, error) {
	results := []LikedVideoRow{}
	if err := s.Aggregate(ctx, BuildLikedVideosPipeline(userID), &results); err != nil {
		return nil, err
	}
	return results, nil
}
