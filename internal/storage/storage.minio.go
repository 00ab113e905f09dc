// Package storage cung cấp asset store (MinIO) cho video, thumbnail và avatar.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"video_tube/config"
	"video_tube/internal/common"
	"video_tube/internal/logger"
)

// AssetStore bọc MinIO client, chịu trách nhiệm upload asset và trả về URL công khai.
type AssetStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var (
	assetStoreInstance *AssetStore
	assetStoreOnce     sync.Once
	assetStoreErr      error
)

// GetAssetStore trả về instance duy nhất của AssetStore (singleton pattern).
// Bucket được tạo tự động nếu chưa tồn tại.
func GetAssetStore(cfg *config.Configuration) (*AssetStore, error) {
	assetStoreOnce.Do(func() {
		assetStoreInstance, assetStoreErr = newAssetStore(cfg)
	})
	return assetStoreInstance, assetStoreErr
}

// newAssetStore khởi tạo MinIO client và đảm bảo bucket tồn tại.
func newAssetStore(cfg *config.Configuration) (*AssetStore, error) {
	client, err := minio.New(cfg.MinIO_Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO_AccessKey, cfg.MinIO_SecretKey, ""),
		Secure: cfg.MinIO_UseSSL,
	})
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo MinIO client", common.StatusInternalServerError, err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIO_Bucket)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể kiểm tra bucket MinIO", common.StatusInternalServerError, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO_Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo bucket MinIO", common.StatusInternalServerError, err)
		}
	}

	publicURL := cfg.MinIO_PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIO_UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIO_Endpoint)
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"endpoint": cfg.MinIO_Endpoint,
		"bucket":   cfg.MinIO_Bucket,
	}).Info("Khởi tạo asset store thành công")

	return &AssetStore{
		client:    client,
		bucket:    cfg.MinIO_Bucket,
		publicURL: publicURL,
	}, nil
}

// objectKey sinh object key duy nhất cho một asset: <folder>/<uuid><ext>
func objectKey(folder, filename string) string {
	return folder + "/" + uuid.NewString() + filepath.Ext(filename)
}

// Upload đẩy một asset từ reader lên bucket và trả về URL công khai của asset.
// folder phân loại asset (videos, thumbnails, avatars, covers).
func (s *AssetStore) Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType, folder string) (string, error) {
	key := objectKey(folder, filename)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"object": key,
			"error":  err.Error(),
		}).Error("Upload asset thất bại")
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể upload asset", common.StatusInternalServerError, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// UploadFile đẩy một file trên đĩa lên bucket và trả về URL công khai.
// Dùng cho các asset đã lưu tạm ra đĩa (video cần probe duration trước khi upload).
func (s *AssetStore) UploadFile(ctx context.Context, localPath, contentType, folder string) (string, error) {
	key := objectKey(folder, localPath)
	_, err := s.client.FPutObject(ctx, s.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"object": key,
			"path":   localPath,
			"error":  err.Error(),
		}).Error("Upload file thất bại")
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể upload asset", common.StatusInternalServerError, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// RemoveByURL xóa asset theo URL công khai đã trả về khi upload.
func (s *AssetStore) RemoveByURL(ctx context.Context, assetURL string) error {
	prefix := fmt.Sprintf("%s/%s/", s.publicURL, s.bucket)
	if !strings.HasPrefix(assetURL, prefix) {
		return common.NewError(common.ErrCodeValidationFormat, "URL asset không thuộc bucket hiện tại", common.StatusBadRequest, nil)
	}
	return s.Remove(ctx, strings.TrimPrefix(assetURL, prefix))
}

// Remove xóa một asset khỏi bucket theo object key.
func (s *AssetStore) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể xóa asset", common.StatusInternalServerError, err)
	}
	return nil
}
