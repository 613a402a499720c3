package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	domain "github.com/deuslabs/pitchboard/internal/domain/uploads"
	"github.com/deuslabs/pitchboard/internal/platform/logger"
)

// Config holds the object store settings. Endpoint, AccessKey,
// SecretKey and Bucket are all required.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// Store implements the uploads.ObjectStore port on MinIO-compatible
// blob storage.
type Store struct {
	client   *minio.Client
	bucket   string
	endpoint string
	scheme   string
	log      *logger.Logger
}

var _ domain.ObjectStore = (*Store)(nil)

// New connects to the object store. Missing credentials are a fatal
// configuration error, reported loudly instead of degrading silently.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*Store, error) {
	if missing := missingSettings(cfg); len(missing) > 0 {
		return nil, fmt.Errorf("object storage configuration is missing: %s", strings.Join(missing, ", "))
	}
	if log == nil {
		log = logger.NewNop()
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	// ensure the bucket exists
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, err
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &Store{
		client:   cli,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		scheme:   scheme,
		log:      log,
	}, nil
}

func missingSettings(cfg Config) []string {
	var missing []string
	if cfg.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if cfg.AccessKey == "" {
		missing = append(missing, "accessKey")
	}
	if cfg.SecretKey == "" {
		missing = append(missing, "secretKey")
	}
	if cfg.Bucket == "" {
		missing = append(missing, "bucket")
	}
	return missing
}

// Upload writes the file, tagging metadata with the original name,
// size and upload timestamp. An empty key derives one from the upload
// time and original name to avoid collisions. Transport errors come
// back tagged in the result, never as a raw error.
func (s *Store) Upload(ctx context.Context, f domain.File, key string) domain.UploadResult {
	if key == "" {
		key = fmt.Sprintf("%d_%s", time.Now().UnixMilli(), f.Name)
	}

	opts := minio.PutObjectOptions{
		ContentType: f.ContentType,
		UserMetadata: map[string]string{
			"uploadedAt":   time.Now().UTC().Format(time.RFC3339),
			"originalName": f.Name,
			"size":         strconv.FormatInt(f.Size, 10),
		},
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, f.Content, f.Size, opts); err != nil {
		s.log.Error("object upload failed", "key", key, "error", err)
		return domain.UploadResult{Success: false, Err: err.Error()}
	}

	return domain.UploadResult{
		Success: true,
		Key:     key,
		URL:     s.ResolveURL(key),
	}
}

// Download reads the whole object into memory, accumulating the stream
// chunk by chunk. ok=false on any failure so callers can fall back to
// the direct URL.
func (s *Store) Download(ctx context.Context, key string) ([]byte, bool) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		s.log.Error("object download failed", "key", key, "error", err)
		return nil, false
	}
	defer obj.Close()

	var buf bytes.Buffer
	chunk := make([]byte, 32*1024)
	for {
		n, err := obj.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.Error("object read failed", "key", key, "error", err)
			return nil, false
		}
	}
	return buf.Bytes(), true
}

// Remove deletes the object. Removing a key that does not exist is
// not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil
		}
		return err
	}
	return nil
}

// CheckReachable probes the bucket. Used for diagnostics only; it never
// gates the upload flow.
func (s *Store) CheckReachable(ctx context.Context) bool {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.log.Warn("storage reachability check failed", "error", err)
		return false
	}
	return exists
}

// ResolveURL builds the direct-access URL for a key. Pure, no I/O.
func (s *Store) ResolveURL(key string) string {
	return fmt.Sprintf("%s://%s/%s/%s", s.scheme, s.endpoint, s.bucket, key)
}
