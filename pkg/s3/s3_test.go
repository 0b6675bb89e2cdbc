package s3

import (
	"testing"

	"content-ledger/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineClient(t *testing.T, cfg *aws.Config) *Client {
	t.Helper()
	sess, err := session.NewSession(cfg)
	require.NoError(t, err)
	return &Client{s3Client: s3.New(sess), bucket: "snapshots"}
}

func TestObjectURL_AWS(t *testing.T) {
	client := newOfflineClient(t, &aws.Config{Region: aws.String("eu-west-1")})

	assert.Equal(t, "https://snapshots.s3.eu-west-1.amazonaws.com/snapshots/42.json", client.objectURL("snapshots/42.json"))
}

func TestObjectURL_MinIO(t *testing.T) {
	client := newOfflineClient(t, &aws.Config{
		Region:           aws.String("us-east-1"),
		Endpoint:         aws.String("http://localhost:9000"),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(true),
	})

	assert.Equal(t, "http://localhost:9000/snapshots/snapshots/42.json", client.objectURL("snapshots/42.json"))
}

func TestConfigDefaultsBucket(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.S3BucketName)
}
