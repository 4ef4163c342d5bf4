package config

import (
	"log"
	"os"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	storageClient *minio.Client
	storageOnce   sync.Once
)

// ConnectStorage initializes the MinIO client used for report images
func ConnectStorage() *minio.Client {
	storageOnce.Do(func() {
		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			log.Fatal("Please define the MINIO_ENDPOINT environment variable")
		}

		c, err := minio.New(endpoint, &minio.Options{
			Creds: credentials.NewStaticV4(
				os.Getenv("MINIO_ACCESS_KEY"),
				os.Getenv("MINIO_SECRET_KEY"),
				"",
			),
			Secure: os.Getenv("MINIO_USE_SSL") == "true",
		})
		if err != nil {
			log.Fatalf("Failed to create storage client: %v", err)
		}

		log.Println("Connected to MinIO!")
		storageClient = c
	})

	return storageClient
}
