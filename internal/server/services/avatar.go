package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/mpetrovs/newsbrief/internal/server/config"
)

// AvatarService issues presigned PUT URLs so clients upload profile pictures
// straight to the S3-compatible backend.
type AvatarService struct {
	config *sc.Config
}

func NewAvatarService(config *sc.Config) *AvatarService {
	return &AvatarService{config: config}
}

// AvatarStorageKey places each upload under the owning user with a unique
// name, so repeated uploads never collide.
func AvatarStorageKey(userID string) string {
	return fmt.Sprintf("avatars/%s/%v.jpg", userID, uuid.New())
}

func (s *AvatarService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// PresignedAvatarPutURL returns the upload URL the client PUTs the image to
// and the public URL the avatar will be served from afterwards.
func (s *AvatarService) PresignedAvatarPutURL(ctx context.Context, userID string) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := AvatarStorageKey(userID)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	publicURL := strings.TrimSuffix(s.config.S3PublicBaseURL, "/") + "/" + key
	return req.URL, publicURL, nil
}
