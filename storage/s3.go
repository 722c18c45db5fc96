package storage

import (
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const presignViewURLFor = 15 * time.Minute

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage(bucket, region, key, secret string) *S3Storage {
	cfg := aws.Config{Region: aws.String(region)}
	if key != "" {
		cfg.Credentials = credentials.NewStaticCredentials(key, secret, "")
	}
	return &S3Storage{
		bucket:   bucket,
		s3Client: s3.New(session.Must(session.NewSession(&cfg))),
	}
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
		Body:   reader,
	})
	// The manager does not report a size; the caller has the bytes anyway
	return 0, err
}

// Serve redirects to a short-lived presigned URL instead of proxying
// the object through this process.
func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	url, err := req.Presign(presignViewURLFor)
	if err != nil {
		http.Error(writer, "media unavailable", http.StatusNotFound)
		return
	}
	http.Redirect(writer, request, url, http.StatusFound)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	return err
}
