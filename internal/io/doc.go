// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Saving downloaded artwork images
//   - Directory creation and file writing on an afero.Fs
//   - Image resizing
//
// # Saving Images
//
//	sink := ioutils.NewImageSink(afero.NewOsFs(), ioutils.NewImageService(), 0)
//	path, err := sink.Save(ctx, art.ID, art.ImageExt(), data, "/home/me/Pictures/Met")
//
// # Image Processing
//
// With a positive maximum size the sink scales images before writing:
//
//	sink := ioutils.NewImageSink(fs, ioutils.NewImageService(), 1600)
//	// saved as <id>.jpg, at most 1600x1600
package ioutils
