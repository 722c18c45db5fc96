package storage

import (
	"io"
	"net/http"
	"strings"

	"server/config"
)

// StorageAPI is where uploaded post images live. Paths are relative,
// namespaced under "posts/".
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var instance StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		key, secret, _ := strings.Cut(config.S3_AUTH, ":")
		instance = NewS3Storage(config.S3_BUCKET, config.S3_REGION, key, secret)
		return
	}
	instance = NewDiskStorage(config.MEDIA_DIR)
}

func Get() StorageAPI {
	if instance == nil {
		panic("storage not initialised")
	}
	return instance
}

// SetForTesting swaps the storage backend, returning the old one.
func SetForTesting(s StorageAPI) StorageAPI {
	old := instance
	instance = s
	return old
}
