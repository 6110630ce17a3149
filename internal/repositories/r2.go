package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// AvatarStore hands out presigned upload URLs for user avatars kept in an
// R2 (S3-compatible) bucket.
type AvatarStore struct {
	client        *s3.Client
	presigner     *s3.PresignClient
	bucket        string
	publicBaseURL string
}

// NewAvatarStore builds an R2 client using static credentials and the
// account endpoint.
func NewAvatarStore(accessKey, secretKey, accountID, bucket, region, publicBaseURL string) *AvatarStore {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &AvatarStore{
		client:        client,
		presigner:     s3.NewPresignClient(client),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// AvatarKey is the object key prefix reserved for one user's avatars.
func AvatarKey(userID int64) string {
	return fmt.Sprintf("avatars/%d/%s", userID, uuid.NewString())
}

// OwnsKey reports whether key lies under the user's avatar prefix.
func OwnsKey(userID int64, key string) bool {
	return strings.HasPrefix(key, fmt.Sprintf("avatars/%d/", userID)) && !strings.Contains(key, "..")
}

// PresignUpload creates a presigned PUT URL for key.
func (s *AvatarStore) PresignUpload(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Exists checks whether key was uploaded.
func (s *AvatarStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *s3types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PublicURL is the address browsers load the object from.
func (s *AvatarStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}
