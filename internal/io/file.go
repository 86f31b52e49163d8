// Package ioutils provides file system utilities for the met-downloader.
//
// This package contains:
//   - ImageSink, which writes downloaded images as <id><ext> files
//   - Directory creation
//
// All file access goes through an afero.Fs so callers can swap the real
// file system for an in-memory one.
package ioutils

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
)

// ImageSink persists artwork images to a directory, one file per artwork.
//
// Writes are not transactional: a failure halfway through can leave a
// partial file behind.
//
// Example usage:
//
//	sink := NewImageSink(afero.NewOsFs(), NewImageService(), 0)
//	path, err := sink.Save(ctx, 436535, ".jpg", data, "/home/me/Pictures/Met")
//	// path = "/home/me/Pictures/Met/436535.jpg"
type ImageSink struct {
	fs      afero.Fs
	images  *ImageService
	maxSize int
}

// NewImageSink creates an ImageSink writing to fs.
//
// When maxSize is positive, images are scaled to fit within maxSize x maxSize
// and saved as JPEG. Otherwise the downloaded bytes are written unchanged.
func NewImageSink(fs afero.Fs, images *ImageService, maxSize int) *ImageSink {
	return &ImageSink{
		fs:      fs,
		images:  images,
		maxSize: maxSize,
	}
}

// Save writes data to dir/<id><ext>, creating dir if needed, and returns
// the file path.
//
// Returns an error if:
//   - The directory cannot be created
//   - Resizing is enabled and the image cannot be decoded
//   - The file cannot be written
func (s *ImageSink) Save(ctx context.Context, id int, ext string, data []byte, dir string) (string, error) {
	if s.maxSize > 0 {
		resized, err := s.images.ResizeImage(ctx, data, s.maxSize, s.maxSize)
		if err != nil {
			return "", fmt.Errorf("resizing image %d: %w", id, err)
		}
		data = resized
		ext = ".jpg"
	}

	if err := EnsureDir(s.fs, dir); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, strconv.Itoa(id)+ext)
	if err := WriteFile(ctx, s.fs, path, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(ctx context.Context, fs afero.Fs, path string, data []byte) error {
	return afero.WriteFile(fs, path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, 0755)
}
