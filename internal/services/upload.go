package services

import (
	"bytes"
	"fmt"
	"net/http"

	appconfig "github.com/Hemanth-Krishna-A-B/presenting-IT/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

type UploadService struct {
	sess    *session.Session
	bucket  string
	baseURL string
}

func NewUploadService(cfg *appconfig.Config) (*UploadService, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
	})
	if err != nil {
		return nil, err
	}

	baseURL := cfg.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.AWSRegion)
	}

	return &UploadService{sess: sess, bucket: cfg.S3Bucket, baseURL: baseURL}, nil
}

// UploadImage stores a slide or poll image under a unique key and returns the
// public URL to persist in the content tables.
func (s *UploadService) UploadImage(file []byte, filename string) (string, error) {
	key := "uploads/" + uuid.NewString() + "-" + filename

	_, err := s3.New(s.sess).PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ACL:           aws.String("public-read"),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(http.DetectContentType(file)),
	})
	if err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
