package storage

import (
	"fmt"

	"github.com/BruksfildServices01/lahermandad/internal/config"
)

type FactoryResult struct {
	Driver  string
	Storage Storage
}

func FromConfig(cfg config.StorageConfig) (FactoryResult, error) {
	switch cfg.Driver {
	case "", "local":
		return FactoryResult{
			Driver:  "local",
			Storage: NewLocal(cfg.LocalDir, cfg.LocalURLPrefix),
		}, nil

	case "s3":
		if cfg.S3Bucket == "" || cfg.S3PublicBaseURL == "" {
			return FactoryResult{}, fmt.Errorf("S3 config missing: S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		s, err := NewS3(S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Prefix:          cfg.S3Prefix,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Storage: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", cfg.Driver)
	}
}
