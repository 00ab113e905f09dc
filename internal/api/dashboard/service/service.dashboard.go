// Package dashboardsvc - Báo cáo tổng hợp kênh: chỉ số kênh và danh sách video kèm lượt thích.
package dashboardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "video_tube/internal/api/base/service"
	socialmodels "video_tube/internal/api/social/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// DashboardService tổng hợp báo cáo kênh từ videos, likes và subscriptions.
// Các store được tiêm vào khi khởi tạo, logic báo cáo không tự mở collection.
type DashboardService struct {
	videoCRUD        basesvc.BaseServiceMongo[videomodels.Video]
	subscriptionCRUD basesvc.BaseServiceMongo[socialmodels.Subscription]
}

// NewDashboardService tạo mới DashboardService.
func NewDashboardService() (*DashboardService, error) {
	videoCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	subCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	return &DashboardService{
		videoCRUD:        basesvc.NewBaseServiceMongo[videomodels.Video](videoCol),
		subscriptionCRUD: basesvc.NewBaseServiceMongo[socialmodels.Subscription](subCol),
	}, nil
}

// ChannelStats các chỉ số tổng hợp của một kênh.
// Kênh không có video hay subscriber nào trả về toàn 0, không bao giờ null.
type ChannelStats struct {
	TotalSubscribers int64 `bson:"totalSubscribers" json:"totalSubscribers"`
	TotalLikes       int64 `bson:"totalLikes" json:"totalLikes"`
	TotalViews       int64 `bson:"totalViews" json:"totalViews"`
	TotalVideos      int64 `bson:"totalVideos" json:"totalVideos"`
}

// BuildChannelStatsPipeline dựng pipeline tổng hợp video của kênh:
// join likes theo video rồi cộng dồn lượt thích, lượt xem và số video.
func BuildChannelStatsPipeline(ownerID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"ownerId": ownerID}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}},
		{"$addFields": bson.M{
			"likesCount": bson.M{"$size": "$likes"},
		}},
		{"$group": bson.M{
			"_id":         nil,
			"totalLikes":  bson.M{"$sum": "$likesCount"},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalVideos": bson.M{"$sum": 1},
		}},
	}
}

// GetChannelStats trả về chỉ số tổng hợp của một kênh.
func (s *DashboardService) GetChannelStats(ctx context.Context, ownerID primitive.ObjectID) (*ChannelStats, error) {
	totalSubscribers, err := s.subscriptionCRUD.CountDocuments(ctx, bson.M{"channel": ownerID})
	if err != nil {
		return nil, err
	}

	rows := []ChannelStats{}
	if err := s.videoCRUD.Aggregate(ctx, BuildChannelStatsPipeline(ownerID), &rows); err != nil {
		return nil, err
	}

	stats := ChannelStats{TotalSubscribers: totalSubscribers}
	if len(rows) > 0 {
		stats.TotalLikes = rows[0].TotalLikes
		stats.TotalViews = rows[0].TotalViews
		stats.TotalVideos = rows[0].TotalVideos
	}
	return &stats, nil
}

// DateParts ngày tạo video tách thành năm/tháng/ngày.
type DateParts struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
	Day   int `bson:"day" json:"day"`
}

// ChannelVideoRow một video của kênh kèm số lượt thích.
type ChannelVideoRow struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	VideoFileURL string             `bson:"videoFileUrl" json:"videoFileUrl"`
	ThumbnailURL string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	CreatedAt    DateParts          `bson:"createdAt" json:"createdAt"`
	IsPublished  bool               `bson:"isPublished" json:"isPublished"`
	LikesCount   int64              `bson:"likesCount" json:"likesCount"`
}

// BuildChannelVideosPipeline dựng pipeline liệt kê video của kênh,
// mới nhất trước, mỗi video kèm số lượt thích và ngày tạo tách phần.
func BuildChannelVideosPipeline(ownerID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"ownerId": ownerID}},
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}},
		{"$addFields": bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"createdAt": bson.M{"$dateToParts": bson.M{
				"date": bson.M{"$toDate": "$createdAt"},
			}},
		}},
		{"$project": bson.M{
			"_id":          1,
			"videoFileUrl": 1,
			"thumbnailUrl": 1,
			"title":        1,
			"description":  1,
			"isPublished":  1,
			"likesCount":   1,
			"createdAt": bson.M{
				"year":  "$createdAt.year",
				"month": "$createdAt.month",
				"day":   "$createdAt.day",
			},
		}},
	}
}

// GetChannelVideos trả về toàn bộ video của kênh kèm lượt thích.
func (s *DashboardService) GetChannelVideos(ctx context.Context, ownerID primitive.ObjectID) ([]ChannelVideoRow, error) {
	rows := []ChannelVideoRow{}
	if err := s.videoCRUD.Aggregate(ctx, BuildChannelVideosPipeline(ownerID), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
