package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gabriel-vasile/mimetype"

	"krishaBack/internal/models"
)

// Photo is an opened stored photo. The caller closes Body.
type Photo struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	ModTime     time.Time
}

// PhotoStore keeps uploaded photos by bare filename. Save overwrites silently
// and Open returns models.ErrPhotoNotFound for unknown names.
type PhotoStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Open(ctx context.Context, name string) (Photo, error)
}

func validPhotoName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// LocalPhotoStore keeps photos in a directory on disk.
type LocalPhotoStore struct {
	Dir string
}

func NewLocalPhotoStore(dir string) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo directory: %w", err)
	}
	return &LocalPhotoStore{Dir: dir}, nil
}

func (s *LocalPhotoStore) Save(_ context.Context, name string, r io.Reader) error {
	if !validPhotoName(name) {
		return models.Validationf("invalid photo name %q", name)
	}
	tmp, err := os.CreateTemp(s.Dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("write photo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close photo: %w", err)
	}
	// rename поверх старого файла: последняя загрузка побеждает
	if err := os.Rename(tmp.Name(), filepath.Join(s.Dir, name)); err != nil {
		return fmt.Errorf("store photo: %w", err)
	}
	return nil
}

func (s *LocalPhotoStore) Open(_ context.Context, name string) (Photo, error) {
	if !validPhotoName(name) {
		return Photo{}, models.ErrPhotoNotFound
	}
	full := filepath.Join(s.Dir, name)
	f, err := os.Open(full)
	if errors.Is(err, os.ErrNotExist) {
		return Photo{}, models.ErrPhotoNotFound
	}
	if err != nil {
		return Photo{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return Photo{}, err
	}
	if info.IsDir() {
		f.Close()
		return Photo{}, models.ErrPhotoNotFound
	}
	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return Photo{}, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return Photo{}, err
	}
	return Photo{Body: f, ContentType: mtype.String(), Size: info.Size(), ModTime: info.ModTime()}, nil
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	AccessKey string
	SecretKey string
}

// S3PhotoStore keeps photos as objects under Prefix in an S3 compatible bucket.
type S3PhotoStore struct {
	Client s3iface.S3API
	Bucket string
	Prefix string
}

func NewS3PhotoStore(cfg S3Config) (*S3PhotoStore, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}
	return &S3PhotoStore{Client: s3.New(sess), Bucket: cfg.Bucket, Prefix: cfg.Prefix}, nil
}

func (s *S3PhotoStore) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

func (s *S3PhotoStore) Save(ctx context.Context, name string, r io.Reader) error {
	if !validPhotoName(name) {
		return models.Validationf("invalid photo name %q", name)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read photo: %w", err)
	}
	_, err = s.Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mimetype.Detect(data).String()),
	})
	if err != nil {
		return fmt.Errorf("unable to upload file to S3: %w", err)
	}
	return nil
}

func (s *S3PhotoStore) Open(ctx context.Context, name string) (Photo, error) {
	if !validPhotoName(name) {
		return Photo{}, models.ErrPhotoNotFound
	}
	out, err := s.Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && (aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound") {
			return Photo{}, models.ErrPhotoNotFound
		}
		return Photo{}, fmt.Errorf("unable to download file from S3: %w", err)
	}
	photo := Photo{
		Body:        out.Body,
		ContentType: aws.StringValue(out.ContentType),
		Size:        aws.Int64Value(out.ContentLength),
		ModTime:     aws.TimeValue(out.LastModified),
	}
	if photo.ContentType == "" {
		photo.ContentType = "application/octet-stream"
	}
	return photo, nil
}
