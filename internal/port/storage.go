package port

import "context"

// DownloadOutput is an object fetched from storage.
type DownloadOutput struct {
	Body        []byte
	ContentType string
	Size        int64
}

// ObjectSource abstracts read-only access to documents kept in object storage.
type ObjectSource interface {
	Download(ctx context.Context, bucket, key string) (*DownloadOutput, error)
}
