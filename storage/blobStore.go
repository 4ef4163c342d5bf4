package storage

import (
	"bytes"
	"context"
	"log"
	"strings"

	"fixitsl-be/errs"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// BlobStore uploads report images to a MinIO bucket and returns durable
// public URLs for them.
type BlobStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewBlobStore(client *minio.Client, bucket, publicURL string) *BlobStore {
	return &BlobStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores the image bytes under a fresh object key and returns the
// URL the stored object is served from.
func (b *BlobStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	objectName := "reports/" + uuid.NewString() + extensionFor(contentType)

	_, err := b.client.PutObject(
		ctx,
		b.bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		log.Println("Error uploading image:", err)
		return "", errs.Wrap("upload image", errs.ErrMediaUpload)
	}

	return b.publicURL + "/" + b.bucket + "/" + objectName, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
