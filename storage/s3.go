package storage

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gallery/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const presignViewURLFor = time.Hour

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage() StorageAPI {
	awsConfig := aws.Config{
		Region: aws.String(config.S3_REGION),
	}
	if config.S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if config.S3_AUTH != "" {
		keySecret := strings.SplitN(config.S3_AUTH, ":", 2)
		if len(keySecret) == 2 {
			awsConfig.Credentials = credentials.NewStaticCredentials(keySecret[0], keySecret[1], "")
		}
	}
	return &S3Storage{
		bucket:   config.S3_BUCKET,
		s3Client: s3.New(session.Must(session.NewSession(&awsConfig))),
	}
}

// GetFullPath returns a local temp path in case of S3
func (s *S3Storage) GetFullPath(path string) string {
	return config.TMP_DIR + "/" + strings.ReplaceAll(path, "/", "_")
}

func (s *S3Storage) GetSize(path string) int64 {
	resp, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil || resp.ContentLength == nil {
		return -1
	}
	return *resp.ContentLength
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	// Spool to a local file first so we can report the stored size
	tmpName := s.GetFullPath(path)
	tmp, err := os.Create(tmpName)
	if err != nil {
		return 0, err
	}
	size, err := io.Copy(tmp, reader)
	tmp.Close()
	if err != nil {
		os.Remove(tmpName)
		return 0, err
	}
	data, err := os.Open(tmpName)
	if err != nil {
		return 0, err
	}
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
		Body:   data,
	})
	data.Close()
	os.Remove(tmpName)
	if err != nil {
		return 0, err
	}
	return size, nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

// Serve redirects to a presigned download URL
func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	url, err := req.Presign(presignViewURLFor)
	if err != nil {
		http.Error(writer, "presign error", http.StatusInternalServerError)
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

func (s *S3Storage) GetTotalSpace() uint64 {
	return 0 // not meaningful for S3
}

func (s *S3Storage) GetFreeSpace() uint64 {
	return 0
}
