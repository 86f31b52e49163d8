package dto

import (
	"encoding/json"

	"github.com/handiism/met-downloader/internal/model"
)

// JSONObject represents an object record from the collection API.
//
// Only the fields the downloader uses are listed; the full document is
// kept separately as raw JSON.
type JSONObject struct {
	ObjectID          int    `json:"objectID"`
	IsPublicDomain    bool   `json:"isPublicDomain"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	Medium            string `json:"medium"`
	Department        string `json:"department"`
	Culture           string `json:"culture"`
	ObjectURL         string `json:"objectURL"`
}

// ToArtwork converts JSONObject to a model.Artwork.
//
// requestedID is used when the record carries no objectID of its own.
func (jo *JSONObject) ToArtwork(requestedID int, raw json.RawMessage) *model.Artwork {
	id := jo.ObjectID
	if id == 0 {
		id = requestedID
	}

	return &model.Artwork{
		ID:                id,
		PrimaryImage:      jo.PrimaryImage,
		PrimaryImageSmall: jo.PrimaryImageSmall,
		Title:             jo.Title,
		Artist:            jo.ArtistDisplayName,
		Date:              jo.ObjectDate,
		Medium:            jo.Medium,
		Department:        jo.Department,
		Culture:           jo.Culture,
		ObjectURL:         jo.ObjectURL,
		PublicDomain:      jo.IsPublicDomain,
		Raw:               raw,
	}
}
