package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	internalConfig "github.com/sefazor/photobooth-backend/internal/config"
)

// Zip indirme sırasında fotoğraf başına sabit getirme zaman aşımı
const downloadTimeout = 10 * time.Second

type S3Storage struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

func NewS3Storage(cfg *internalConfig.Config) (*S3Storage, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.S3.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
	}

	// MinIO / R2 gibi S3 uyumlu servisler için özel endpoint
	if cfg.S3.Endpoint != "" {
		endpoint := cfg.S3.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: endpoint}, nil
		})
		opts = append(opts, awsConfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Özel endpoint'ler bucket'ı host yerine path'te bekler
		o.UsePathStyle = cfg.S3.Endpoint != ""
	})

	return &S3Storage{
		client:    client,
		bucket:    cfg.S3.Bucket,
		region:    cfg.S3.Region,
		publicURL: cfg.S3.PublicURL,
	}, nil
}

// Upload dosyayı S3'e yükler ve public URL'ini döner.
func (s *S3Storage) Upload(key string, reader io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.URLFor(key), nil
}

// Download saklanan objeyi sabit zaman aşımı ile getirir. Gövde zaman aşımı
// penceresi içinde tamamen okunur; dönen reader isteğin context'ine bağlı
// değildir, çağıran istediği zaman tüketebilir.
func (s *S3Storage) Download(key string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download from S3: %w", err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object: %w", err)
	}

	return io.NopCloser(bytes.NewReader(content)), nil
}

// Delete objeyi S3'ten siler. Çağıran taraf hatayı loglayıp yutabilir.
func (s *S3Storage) Delete(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	_, err := s.client.DeleteObject(context.TODO(), input)
	return err
}

func (s *S3Storage) URLFor(key string) string {
	if s.publicURL != "" {
		return strings.TrimSuffix(s.publicURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// ObjectKey etkinlik id'si altında rastgele, uzantısı korunmuş bir anahtar üretir:
// events/<event_id>/<random>.<ext>
func ObjectKey(eventID, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("events/%s/%s.%s", eventID, uuid.New().String(), ext)
}
