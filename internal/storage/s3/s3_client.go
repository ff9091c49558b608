package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"docforensics/internal/config"
	"docforensics/internal/domain"
	"docforensics/internal/port"
)

// URIScheme prefixes object references accepted by ParseURI.
const URIScheme = "s3://"

// GetObjectAPI is the subset of the S3 client used for downloads.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Client struct {
	client  GetObjectAPI
	maxSize int64
}

// NewS3Client creates a new S3-backed ObjectSource. Objects larger than
// maxSize bytes are refused; zero disables the check.
func NewS3Client(cfg *config.S3Config, maxSize int64) (port.ObjectSource, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return NewWithClient(s3.NewFromConfig(awsCfg, s3Opts...), maxSize), nil
}

// NewWithClient wraps an existing GetObject implementation.
func NewWithClient(client GetObjectAPI, maxSize int64) port.ObjectSource {
	return &s3Client{client: client, maxSize: maxSize}
}

func (c *s3Client) Download(ctx context.Context, bucket, key string) (*port.DownloadOutput, error) {
	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download: %w", err)
	}
	defer result.Body.Close()

	size := aws.ToInt64(result.ContentLength)
	if c.maxSize > 0 && size > c.maxSize {
		return nil, fmt.Errorf("s3 download %s/%s: %w", bucket, key, domain.ErrFileTooLarge)
	}

	body := io.Reader(result.Body)
	if c.maxSize > 0 {
		body = io.LimitReader(result.Body, c.maxSize+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("s3 download read: %w", err)
	}
	if c.maxSize > 0 && int64(len(data)) > c.maxSize {
		return nil, fmt.Errorf("s3 download %s/%s: %w", bucket, key, domain.ErrFileTooLarge)
	}

	return &port.DownloadOutput{
		Body:        data,
		ContentType: aws.ToString(result.ContentType),
		Size:        int64(len(data)),
	}, nil
}

// ParseURI splits an s3://bucket/key reference.
func ParseURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, URIScheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %q does not start with %s", domain.ErrInvalidStorageReference, uri, URIScheme)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q must be %sbucket/key", domain.ErrInvalidStorageReference, uri, URIScheme)
	}
	return bucket, key, nil
}

// IsURI reports whether s looks like an object storage reference.
func IsURI(s string) bool {
	return strings.HasPrefix(s, URIScheme)
}
