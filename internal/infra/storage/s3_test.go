package storage

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

type fakePutObject struct {
	input *s3.PutObjectInput
	body  []byte
}

func (f *fakePutObject) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	fake := &fakePutObject{}
	u := NewS3Uploader(fake, "clinic-exports")

	err := u.Upload(context.Background(), "exports/calendar.json", []byte(`{"ok":true}`), "application/json")
	require.NoError(t, err)

	assert.Equal(t, "clinic-exports", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "exports/calendar.json", aws.ToString(fake.input.Key))
	assert.Equal(t, "application/json", aws.ToString(fake.input.ContentType))
	assert.Equal(t, `{"ok":true}`, string(fake.body))
}

func TestNewS3Client_CustomEndpoint(t *testing.T) {
	client := NewS3Client(config.S3Config{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})

	opts := client.Options()
	assert.Equal(t, "us-east-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.NotNil(t, opts.Credentials)
}
