package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strings"

	"cloud.google.com/go/storage"
)

const gcsPublicHost = "https://storage.googleapis.com/"

// ImageStorage uploads product images to a GCS bucket
type ImageStorage struct {
	client *storage.Client
	bucket string
}

// NewImageStorage creates the GCS client using application default credentials
func NewImageStorage(ctx context.Context, bucket string) (*ImageStorage, error) {
	if bucket == "" {
		return nil, errors.New("GCP_BUCKET_NAME not set")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCP storage client: %w", err)
	}
	return &ImageStorage{client: client, bucket: bucket}, nil
}

// UploadImage stores data under a random prefix and returns its public URL
func (s *ImageStorage) UploadImage(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	name, err := uniqueObjectName(fileName)
	if err != nil {
		return "", err
	}

	writer := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("GCS upload failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("GCS upload finalization failed: %w", err)
	}

	return publicURL(s.bucket, name), nil
}

// DeleteImage removes the object behind imageURL. A missing object is not an error.
func (s *ImageStorage) DeleteImage(ctx context.Context, imageURL string) error {
	name := objectName(imageURL)
	if name == "" {
		return nil
	}
	err := s.client.Bucket(s.bucket).Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("GCS delete failed: %w", err)
	}
	return nil
}

func (s *ImageStorage) Close() error {
	return s.client.Close()
}

func uniqueObjectName(fileName string) (string, error) {
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate object name: %w", err)
	}
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" {
		base = "image"
	}
	return hex.EncodeToString(randomBytes) + "-" + base, nil
}

func publicURL(bucket, name string) string {
	return gcsPublicHost + bucket + "/" + name
}

func objectName(imageURL string) string {
	if imageURL == "" {
		return ""
	}
	parts := strings.Split(imageURL, "/")
	return parts[len(parts)-1]
}
