package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// S3Config holds the settings for the avatar bucket.
type S3Config struct {
	Region        string
	Bucket        string
	Endpoint      string
	PublicBaseURL string
	AccessKey     string
	SecretKey     string
}

// S3Store implements domain.AssetStore on an S3-compatible bucket. Uploads
// are resized to the requested width before storage; the asset id is the
// object key.
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store creates a new S3-backed asset store.
func NewS3Store(ctx context.Context, cfg S3Config) (domain.AssetStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload implements domain.AssetStore. The payload is a base64 image,
// optionally wrapped in a data URL.
func (s *S3Store) Upload(ctx context.Context, payload, folder string, width int) (*domain.AssetRef, error) {
	img, err := decodeImagePayload(payload)
	if err != nil {
		return nil, err
	}

	if width > 0 && img.Bounds().Dx() > width {
		// height 0 preserves the aspect ratio
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var body bytes.Buffer
	if err := imaging.Encode(&body, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode avatar: %w", err)
	}

	key := fmt.Sprintf("%s/%s.png", folder, uuid.NewString())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload asset: %w", err)
	}

	return &domain.AssetRef{
		AssetID: key,
		URL:     fmt.Sprintf("%s/%s", s.publicBaseURL, key),
	}, nil
}

// Destroy implements domain.AssetStore.
func (s *S3Store) Destroy(ctx context.Context, assetID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(assetID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// decodeImagePayload accepts "data:image/...;base64,xxxx" or bare base64.
func decodeImagePayload(payload string) (image.Image, error) {
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid image payload: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
