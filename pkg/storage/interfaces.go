package storage

import "io"

type ObjectStorage interface {
	Upload(key string, reader io.Reader, contentType string) (string, error) // returns public URL
	Download(key string) (io.ReadCloser, error)
	Delete(key string) error
}
