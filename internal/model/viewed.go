package model

// ViewedSet is the ordered collection of artworks downloaded during a run.
//
// It doubles as the duplicate index and as the report payload. The set only
// grows, and no two entries ever share an ID: Add refuses an artwork whose ID
// is already present.
//
// A ViewedSet is not safe for concurrent use. The selection loop is its only
// writer.
type ViewedSet struct {
	artworks []*Artwork
	index    map[int]struct{}
}

// NewViewedSet creates an empty ViewedSet.
func NewViewedSet() *ViewedSet {
	return &ViewedSet{index: make(map[int]struct{})}
}

// Contains reports whether an artwork with the given ID has been added.
func (v *ViewedSet) Contains(id int) bool {
	_, ok := v.index[id]
	return ok
}

// Add appends the artwork, returning false if its ID is already present.
func (v *ViewedSet) Add(a *Artwork) bool {
	if a == nil || v.Contains(a.ID) {
		return false
	}
	if v.index == nil {
		v.index = make(map[int]struct{})
	}
	v.index[a.ID] = struct{}{}
	v.artworks = append(v.artworks, a)
	return true
}

// Len returns the number of artworks in the set.
func (v *ViewedSet) Len() int {
	return len(v.artworks)
}

// Artworks returns the artworks in the order they were added.
// The returned slice is a copy; the artworks themselves are shared.
func (v *ViewedSet) Artworks() []*Artwork {
	out := make([]*Artwork, len(v.artworks))
	copy(out, v.artworks)
	return out
}

// IDs returns the identifiers in the order they were added.
func (v *ViewedSet) IDs() []int {
	ids := make([]int, len(v.artworks))
	for i, a := range v.artworks {
		ids[i] = a.ID
	}
	return ids
}
