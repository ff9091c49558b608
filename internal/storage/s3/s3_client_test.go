package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/domain"
	s3storage "docforensics/internal/storage/s3"
)

type fakeGetObject struct {
	body        string
	contentType string
	size        int64
	err         error
	gotBucket   string
	gotKey      string
}

func (f *fakeGetObject) GetObject(_ context.Context, in *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	f.gotBucket = aws.ToString(in.Bucket)
	f.gotKey = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &awss3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(f.body)),
		ContentType:   aws.String(f.contentType),
		ContentLength: aws.Int64(f.size),
	}, nil
}

func TestDownload(t *testing.T) {
	fake := &fakeGetObject{body: "%PDF-1.7", contentType: "application/pdf", size: 8}
	src := s3storage.NewWithClient(fake, 1024)

	out, err := src.Download(context.Background(), "invoices", "2026/acme.pdf")

	require.NoError(t, err)
	assert.Equal(t, "invoices", fake.gotBucket)
	assert.Equal(t, "2026/acme.pdf", fake.gotKey)
	assert.Equal(t, []byte("%PDF-1.7"), out.Body)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, int64(8), out.Size)
}

func TestDownload_TooLarge(t *testing.T) {
	declared := &fakeGetObject{body: "0123456789", size: 10}
	_, err := s3storage.NewWithClient(declared, 4).Download(context.Background(), "b", "k")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	undeclared := &fakeGetObject{body: "0123456789"}
	_, err = s3storage.NewWithClient(undeclared, 4).Download(context.Background(), "b", "k")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestDownload_Error(t *testing.T) {
	fake := &fakeGetObject{err: errors.New("access denied")}
	_, err := s3storage.NewWithClient(fake, 0).Download(context.Background(), "b", "k")
	assert.ErrorContains(t, err, "access denied")
}

func TestParseURI(t *testing.T) {
	bucket, key, err := s3storage.ParseURI("s3://invoices/2026/q3/acme.png")
	require.NoError(t, err)
	assert.Equal(t, "invoices", bucket)
	assert.Equal(t, "2026/q3/acme.png", key)

	for _, bad := range []string{"invoices/acme.png", "s3://invoices", "s3:///acme.png", "s3://invoices/"} {
		_, _, err := s3storage.ParseURI(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidStorageReference, bad)
	}

	assert.True(t, s3storage.IsURI("s3://a/b"))
	assert.False(t, s3storage.IsURI("./a.pdf"))
}
