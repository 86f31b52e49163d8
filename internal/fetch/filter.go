package fetch

import "github.com/handiism/met-downloader/internal/model"

// Verdict is the outcome of checking a fetched artwork.
type Verdict int

const (
	// Accept means the artwork should be downloaded.
	Accept Verdict = iota

	// RejectNoImage means the artwork has no primary image.
	RejectNoImage

	// RejectDuplicate means the artwork was already downloaded in this run.
	RejectDuplicate
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case RejectNoImage:
		return "no image"
	case RejectDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Reason describes a rejection for skip messages.
func (v Verdict) Reason() string {
	switch v {
	case RejectNoImage:
		return "it is missing an image"
	case RejectDuplicate:
		return "it has already been downloaded"
	default:
		return "it was not accepted"
	}
}

// Evaluate decides whether art should be accepted given what has already
// been downloaded. The image check runs first. Evaluate has no side
// effects, so asking twice with the same inputs gives the same answer.
func Evaluate(art *model.Artwork, viewed *model.ViewedSet) Verdict {
	if !art.HasImage() {
		return RejectNoImage
	}
	if viewed.Contains(art.ID) {
		return RejectDuplicate
	}
	return Accept
}
