package storage

import (
	"io"
	"log"
	"net/http"

	"gallery/config"
)

type StorageAPI interface {
	GetFullPath(path string) string
	GetSize(path string) int64
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetTotalSpace() uint64
	GetFreeSpace() uint64
}

var active StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		active = NewS3Storage()
		log.Printf("Storage: S3 bucket %s", config.S3_BUCKET)
		return
	}
	active = NewDiskStorage(config.UPLOADS_DIR)
	log.Printf("Storage: disk at %s", config.UPLOADS_DIR)
}

func Get() StorageAPI {
	if active == nil {
		panic("no storage available")
	}
	return active
}
