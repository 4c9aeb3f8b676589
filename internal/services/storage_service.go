// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/rmagrichem/agrichem-backend/internal/config"
)

// StorageService turns uploaded product images into addressable
// references. With S3 configured the reference is a stable URL; without
// it the image lives in process memory behind a transient handle that
// is gone after a restart.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config

	mu    sync.RWMutex
	local map[string]localObject
}

type localObject struct {
	data        []byte
	contentType string
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
	Durable  bool   `json:"durable"`
}

const (
	maxImageSize = 10 * 1024 * 1024 // 10MB
	imageFolder  = "products"
)

var allowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func NewStorageService(config *config.Config) (*StorageService, error) {
	svc := &StorageService{
		config: config,
		local:  make(map[string]localObject),
	}

	if config.AWS.AccessKeyID == "" {
		// Transient in-memory mode for local development
		return svc, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	svc.s3Client = s3.New(sess)
	return svc, nil
}

func (s *StorageService) UploadImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > maxImageSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, int64(maxImageSize))
	}

	fileExt := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, allowedType := range allowedImageTypes {
		if fileExt == allowedType {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("file type %s is not allowed", fileExt)
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if !isValidImageData(fileBytes) {
		return nil, fmt.Errorf("invalid image file")
	}

	key := s.generateKey(header.Filename)
	contentType := header.Header.Get("Content-Type")

	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, contentType)
	}

	return s.storeLocal(fileBytes, key, contentType), nil
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
		Durable:  true,
	}, nil
}

// storeLocal keeps the image in memory. The handle it returns is only
// valid for the current process lifetime and must never be persisted.
func (s *StorageService) storeLocal(fileBytes []byte, key, contentType string) *UploadResult {
	s.mu.Lock()
	s.local[key] = localObject{data: fileBytes, contentType: contentType}
	s.mu.Unlock()

	return &UploadResult{
		URL:      fmt.Sprintf("/uploads/%s", key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
		Durable:  false,
	}
}

// GetLocalObject serves a transient handle created by storeLocal.
func (s *StorageService) GetLocalObject(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.local[key]
	if !ok {
		return nil, "", false
	}
	return obj.data, obj.contentType, true
}

func (s *StorageService) DeleteImage(key string) error {
	if s.s3Client == nil {
		s.mu.Lock()
		delete(s.local, key)
		s.mu.Unlock()
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *StorageService) generateKey(originalName string) string {
	id := uuid.New()
	ext := filepath.Ext(originalName)
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s_%s%s", imageFolder, timestamp, id.String()[:8], ext)
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

func isValidImageData(buffer []byte) bool {
	// Check for JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}

	// Check for PNG
	if len(buffer) >= 8 && buffer[0] == 0x89 && buffer[1] == 0x50 && buffer[2] == 0x4E && buffer[3] == 0x47 {
		return true
	}

	// Check for GIF
	if len(buffer) >= 6 && (string(buffer[0:6]) == "GIF87a" || string(buffer[0:6]) == "GIF89a") {
		return true
	}

	// Check for WebP (RIFF....WEBP)
	if len(buffer) >= 12 && string(buffer[0:4]) == "RIFF" && string(buffer[8:12]) == "WEBP" {
		return true
	}

	return false
}
