package domain

// InstituteIndex assigns dense 1-based positions to institute codes in the
// order they are first added. A position never changes once assigned.
type InstituteIndex struct {
	positions map[string]int
	codes     []string
}

// NewInstituteIndex creates an empty index.
func NewInstituteIndex() *InstituteIndex {
	return &InstituteIndex{positions: make(map[string]int)}
}

// Add records code and returns its position. Codes already present keep
// the position they were given first.
func (x *InstituteIndex) Add(code string) int {
	if pos, ok := x.positions[code]; ok {
		return pos
	}
	x.codes = append(x.codes, code)
	pos := len(x.codes)
	x.positions[code] = pos
	return pos
}

// Position returns the position of code.
func (x *InstituteIndex) Position(code string) (int, bool) {
	pos, ok := x.positions[code]
	return pos, ok
}

// Codes returns the indexed codes ordered by position.
func (x *InstituteIndex) Codes() []string {
	out := make([]string, len(x.codes))
	copy(out, x.codes)
	return out
}

// Len returns the number of indexed codes.
func (x *InstituteIndex) Len() int {
	return len(x.codes)
}

// BuildInstituteIndex walks authors in order, and each author's codes in
// order, indexing every code on first sight. Authors that are not included
// contribute nothing.
func BuildInstituteIndex(authors []Author) *InstituteIndex {
	idx := NewInstituteIndex()
	for i := range authors {
		if !authors[i].Included {
			continue
		}
		for _, code := range authors[i].InstituteCodes {
			idx.Add(code)
		}
	}
	return idx
}
