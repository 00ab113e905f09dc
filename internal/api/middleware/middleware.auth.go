package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	models "video_tube/internal/api/auth/models"
	basesvc "video_tube/internal/api/base/service"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/utility"
)

// AuthManager quản lý xác thực người dùng.
// Cache giữ kết quả tra cứu user để không phải query database trên mỗi request.
type AuthManager struct {
	UserCRUD *basesvc.BaseServiceMongoImpl[models.User]
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &AuthManager{
		UserCRUD: basesvc.NewBaseServiceMongo[models.User](userCollection),
		// Thời gian sống 5 phút, dọn dẹp mỗi 10 phút
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// verifyToken parse và verify JWT access token, trả về userID bên trong claims.
func (am *AuthManager) verifyToken(tokenStr string) (string, error) {
	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không được hỗ trợ: %v", t.Header["alg"])
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		return "", common.ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return "", common.ErrTokenInvalid
	}
	return claims.UserID, nil
}

// resolveUser kiểm tra user trong claims còn tồn tại không, có cache 5 phút.
func (am *AuthManager) resolveUser(ctx context.Context, userID string) (*models.User, error) {
	cacheKey := "auth_user:" + userID
	if cached, found := am.Cache.Get(cacheKey); found {
		user := cached.(models.User)
		return &user, nil
	}

	user, err := am.UserCRUD.FindOneById(ctx, utility.String2ObjectID(userID))
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// AuthMiddleware middleware xác thực JWT cho Fiber.
// Sau khi xác thực thành công, user_id (hex string) và user được lưu vào Locals.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		userID, err := authManager.verifyToken(parts[1])
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := authManager.resolveUser(c.Context(), userID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": userID,
			}).Warn("Token hợp lệ nhưng user không còn tồn tại")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)

		return c.Next()
	}
}
