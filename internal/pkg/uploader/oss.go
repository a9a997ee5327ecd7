package uploader

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"microblog/internal/pkg/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// Uploader 对象存储抽象，头像文件由外部 Blob 存储托管
type Uploader interface {
	Upload(file *multipart.FileHeader) (string, error)
	Delete(objectURL string) error
}

// AliyunOSSUploader 阿里云 OSS 实现
type AliyunOSSUploader struct {
	client *oss.Client
	bucket *oss.Bucket
	config config.OSSConfig
}

// NewAliyunOSSUploader 创建 OSS 上传器，配置由调用方注入
func NewAliyunOSSUploader(cfg config.OSSConfig) (*AliyunOSSUploader, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, err
	}

	return &AliyunOSSUploader{
		client: client,
		bucket: bucket,
		config: cfg,
	}, nil
}

// Upload 上传文件并返回公开访问 URL
func (u *AliyunOSSUploader) Upload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Generate unique filename: YYYYMMDD/uuid.ext
	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s/%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	if err := u.bucket.PutObject(filename, src); err != nil {
		return "", err
	}

	// Assuming bucket is public-read or fronted by CDN
	return fmt.Sprintf("https://%s.%s/%s", u.config.BucketName, u.config.Endpoint, filename), nil
}

// Delete 删除对象，入参为 Upload 返回的 URL
func (u *AliyunOSSUploader) Delete(objectURL string) error {
	parsed, err := url.Parse(objectURL)
	if err != nil {
		return err
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return fmt.Errorf("invalid object url: %s", objectURL)
	}
	return u.bucket.DeleteObject(key)
}
