package socialsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "video_tube/internal/api/base/service"
	socialdto "video_tube/internal/api/social/dto"
	socialmodels "video_tube/internal/api/social/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// TweetService là service quản lý tweets.
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[socialmodels.Tweet]
}

// NewTweetService tạo mới TweetService.
func NewTweetService() (*TweetService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[socialmodels.Tweet](collection),
	}, nil
}

// CreateTweet tạo tweet mới cho caller.
func (s *TweetService) CreateTweet(ctx context.Context, ownerID primitive.ObjectID, input *socialdto.TweetCreateInput) (*socialmodels.Tweet, error) {
	tweet := socialmodels.Tweet{
		OwnerID: ownerID,
		Content: input.Content,
	}
	created, err := s.InsertOne(ctx, tweet)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTweet sửa nội dung tweet. Chỉ chủ sở hữu được phép.
func (s *TweetService) UpdateTweet(ctx context.Context, tweetID, callerID primitive.ObjectID, input *socialdto.TweetUpdateInput) (*socialmodels.Tweet, error) {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireOwner(tweet.OwnerID, callerID); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, tweetID, &basesvc.UpdateData{
		Set: bson.M{"content": input.Content},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTweet xóa tweet. Chỉ chủ sở hữu được phép.
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID, callerID primitive.ObjectID) error {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return err
	}
	if err := common.RequireOwner(tweet.OwnerID, callerID); err != nil {
		return err
	}
	return s.DeleteById(ctx, tweetID)
}

// TweetAuthorSummary thông tin tác giả trong báo cáo tweet gộp.
type TweetAuthorSummary struct {
	FullName string `bson:"fullName" json:"fullName"`
	Avatar   string `bson:"avatar" json:"avatar"`
	Email    string `bson:"email" json:"email"`
	Username string `bson:"username" json:"username"`
}

// TweetsJoined kết quả báo cáo tweet gộp: toàn bộ nội dung tweet của một
// người dùng dồn vào một mảng, kèm một bản ghi tác giả duy nhất.
type TweetsJoined struct {
	Content []string           `bson:"content" json:"content"`
	User    TweetAuthorSummary `bson:"user" json:"user"`
}

// BuildUserTweetsPipeline dựng pipeline gộp tweet của một người dùng.
// Kết quả là một document duy nhất {content: [...], user: {...}}.
func BuildUserTweetsPipeline(ownerID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"ownerId": ownerID}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "ownerId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$group": bson.M{
			"_id":      nil,
			"content":  bson.M{"$push": "$content"},
			"fullName": bson.M{"$first": "$user.fullName"},
			"avatar":   bson.M{"$first": "$user.avatarUrl"},
			"email":    bson.M{"$first": "$user.email"},
			"username": bson.M{"$first": "$user.username"},
		}},
		{"$project": bson.M{
			"_id":     0,
			"content": 1,
			"user": bson.M{
				"fullName": "$fullName",
				"avatar":   "$avatar",
				"email":    "$email",
				"username": "$username",
			},
		}},
	}
}

// UserTweetsReport gồm danh sách tweet đầy đủ của một người dùng
// kèm bản gộp denormalized {content, user} tính từ cùng tập tweet.
type UserTweetsReport struct {
	Tweets []socialmodels.Tweet `json:"tweets"`
	Joined TweetsJoined         `json:"joined"`
}

// UserTweetsJoined báo cáo tweet của một người dùng: danh sách tweet
// (đủ id và timestamps) đi kèm bản gộp. Người dùng chưa có tweet nào
// trả về danh sách rỗng và content rỗng, không phải lỗi.
func (s *TweetService) UserTweetsJoined(ctx context.Context, ownerID primitive.ObjectID) (*UserTweetsReport, error) {
	tweets, err := s.Find(ctx, bson.M{"ownerId": ownerID}, nil)
	if err != nil {
		return nil, err
	}

	joined := []TweetsJoined{}
	if err := s.Aggregate(ctx, BuildUserTweetsPipeline(ownerID), &joined); err != nil {
		return nil, err
	}

	report := &UserTweetsReport{
		Tweets: tweets,
		Joined: TweetsJoined{Content: []string{}},
	}
	if len(joined) > 0 {
		report.Joined = joined[0]
	}
	return report, nil
}
