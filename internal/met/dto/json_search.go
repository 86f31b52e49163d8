package dto

// JSONSearch is the response of both the search and the object listing
// endpoints. ObjectIDs is null when nothing matched.
type JSONSearch struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// IDs returns the object identifiers, never nil.
func (js *JSONSearch) IDs() []int {
	if js.ObjectIDs == nil {
		return []int{}
	}
	return js.ObjectIDs
}
