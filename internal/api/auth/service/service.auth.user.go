// Package authsvc - Đăng ký, đăng nhập và tra cứu người dùng.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "video_tube/internal/api/auth/dto"
	authmodels "video_tube/internal/api/auth/models"
	basesvc "video_tube/internal/api/base/service"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/storage"
)

// UserService là service quản lý users.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
	assets *storage.AssetStore
}

// NewUserService tạo mới UserService.
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	assets, err := storage.GetAssetStore(global.MongoDB_ServerConfig)
	if err != nil {
		return nil, err
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](collection),
		assets:               assets,
	}, nil
}

// LoginResult kết quả đăng nhập trả về cho client.
type LoginResult struct {
	User        *authmodels.User `json:"user"`
	AccessToken string           `json:"accessToken"`
}

// uploadImage đẩy một file ảnh trong form multipart lên asset store
// và trả về URL công khai.
func (s *UserService) uploadImage(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, "Không thể đọc file ảnh tải lên", common.StatusBadRequest, err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return s.assets.Upload(ctx, file, fileHeader.Size, fileHeader.Filename, contentType, folder)
}

// Register đăng ký người dùng mới. Username và email phải chưa tồn tại,
// avatar là bắt buộc và được đẩy lên asset store trước khi lưu document.
// Mật khẩu được băm bằng bcrypt, không bao giờ trả về trong response.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput, avatar, coverImage *multipart.FileHeader) (*authmodels.User, error) {
	if avatar == nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "Thiếu avatar khi đăng ký", common.StatusBadRequest, nil)
	}

	exists, err := s.DocumentExists(ctx, bson.M{"$or": []bson.M{
		{"username": input.Username},
		{"email": input.Email},
	}})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessState, "Username hoặc email đã được sử dụng", common.StatusConflict, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeBusinessOperation, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	avatarURL, err := s.uploadImage(ctx, avatar, "avatars")
	if err != nil {
		return nil, err
	}

	coverImageURL := ""
	if coverImage != nil {
		coverImageURL, err = s.uploadImage(ctx, coverImage, "covers")
		if err != nil {
			return nil, err
		}
	}

	user := authmodels.User{
		Username:      input.Username,
		Email:         input.Email,
		FullName:      input.FullName,
		Password:      string(hashed),
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	created.Password = ""
	return &created, nil
}

// Login xác thực người dùng theo username hoặc email và phát hành JWT.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*LoginResult, error) {
	user, err := s.FindOne(ctx, bson.M{"$or": []bson.M{
		{"username": input.Identifier},
		{"email": input.Identifier},
	}}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &LoginResult{User: &user, AccessToken: token}, nil
}

// issueToken phát hành access token HS256 với thời gian sống cấu hình được.
func (s *UserService) issueToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	expire := time.Duration(global.MongoDB_ServerConfig.JwtExpireHours) * time.Hour
	claims := authmodels.JwtClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(global.MongoDB_ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể phát hành access token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// CurrentUser trả về thông tin người dùng hiện tại (không kèm mật khẩu).
func (s *UserService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*authmodels.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}
