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
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// SubscriptionService là service quản lý đăng ký kênh.
// Subscription là cạnh thuần túy subscriber → channel, toggle như like.
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[socialmodels.Subscription]
	userCRUD basesvc.BaseServiceMongo[authmodels.User]
}

// NewSubscriptionService tạo mới SubscriptionService.
func NewSubscriptionService() (*SubscriptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[socialmodels.Subscription](collection),
		userCRUD:             basesvc.NewBaseServiceMongo[authmodels.User](userCol),
	}, nil
}

// ToggleSubscription đảo trạng thái đăng ký của caller với một kênh.
// Không cho phép tự đăng ký kênh của chính mình.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, channelID, callerID primitive.ObjectID) (*socialdto.ToggleSubscriptionResult, error) {
	if channelID == callerID {
		return nil, common.ErrSelfSubscription
	}

	exists, err := s.userCRUD.DocumentExists(ctx, bson.M{"_id": channelID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}

	filter := bson.M{"subscriber": callerID, "channel": channelID}
	_, err = s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return &socialdto.ToggleSubscriptionResult{Subscribed: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	sub := socialmodels.Subscription{
		SubscriberID: callerID,
		ChannelID:    channelID,
	}
	if _, err := s.InsertOne(ctx, sub); err != nil {
		return nil, err
	}
	return &socialdto.ToggleSubscriptionResult{Subscribed: true}, nil
}
