package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"drift-detector/core/storage"

	"github.com/minio/minio-go/v7"
)

// Publish uploads the given report artifact files to the bucket, keyed
// under the report's run ID. The bucket is created if missing.
func Publish(ctx context.Context, client storage.Client, bucket string, r *Report, paths []string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read artifact %s: %w", path, err)
		}

		objectName := r.RunID + "/" + filepath.Base(path)
		_, err = client.PutObject(ctx, bucket, objectName,
			bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: contentType(path)})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", objectName, err)
		}
	}
	return nil
}

func contentType(path string) string {
	switch filepath.Ext(path) {
	case ".json":
		return "application/json"
	case ".html":
		return "text/html"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
