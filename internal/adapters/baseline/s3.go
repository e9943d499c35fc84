package baseline

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SavedDependenciesRepository = (*S3Store)(nil)

// ObjectAPI is the subset of the S3 client used by S3Store.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config configures the s3 backend.
type S3Config struct {
	Bucket   string
	Key      string
	Region   string
	Endpoint string
	// AccessKeyID and SecretAccessKey, when both set, replace the default credential chain.
	AccessKeyID     string
	SecretAccessKey string
}

// S3Store keeps the baseline as a single JSON object. A PUT replaces the object atomically.
type S3Store struct {
	client ObjectAPI
	bucket string
	key    string
	codec  jsonCodec
}

// OpenS3Store creates an S3Store using static keys when configured, else the default AWS credential chain.
// A custom endpoint (e.g. MinIO) switches to path-style addressing.
func OpenS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, zerr.With(domain.ErrInvalidConfig, "field", "baseline.bucket")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreConnectFailed.Error()), "backend", domain.BackendS3)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3Store(client, cfg.Bucket, cfg.Key), nil
}

// NewS3Store creates an S3Store over an existing client.
func NewS3Store(client ObjectAPI, bucket, key string) *S3Store {
	if key == "" {
		key = DefaultObjectKey
	}
	return &S3Store{client: client, bucket: bucket, key: key}
}

// DefaultObjectKey is the object key used when none is configured.
const DefaultObjectKey = "retrial/baseline.json"

// Describe returns the s3 URL of the baseline object.
func (s *S3Store) Describe() string {
	return "s3://" + s.bucket + "/" + s.key
}

// Close implements io.Closer.
func (s *S3Store) Close() error {
	return nil
}

// Set uploads the whole baseline document in one PutObject call.
func (s *S3Store) Set(ctx context.Context, b domain.Baseline) error {
	data, err := s.codec.encode(newDocument(b))
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "object", s.Describe())
	}
	return nil
}

// Get downloads the baseline. A missing object yields an empty baseline.
func (s *S3Store) Get(ctx context.Context) (domain.Baseline, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return domain.Baseline{}, nil
		}
		return domain.Baseline{}, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "object", s.Describe())
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Baseline{}, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "object", s.Describe())
	}

	doc, err := s.codec.decode(data)
	if err != nil {
		return domain.Baseline{}, zerr.With(err, "object", s.Describe())
	}
	b, err := doc.baseline()
	if err != nil {
		return domain.Baseline{}, zerr.With(err, "object", s.Describe())
	}
	return b, nil
}
