package model

// Ayah is the smallest addressable unit of content: one verse with its audio
// locator, original-script text, and translation.
type Ayah struct {
	Number        int    `json:"number"`        // global ayah number across the corpus
	NumberInSurah int    `json:"numberInSurah"` // 1-based position within the surah
	AudioURL      string `json:"audio"`
	Text          string `json:"text"`
	Translation   string `json:"-"` // assembled from the translation edition
}

// Bundle holds the assembled content for one (surah, edition) pair. It is
// replaced wholesale on every selection change and never mutated in place.
type Bundle struct {
	Surah     Surah
	EditionID string
	Ayahs     []Ayah
}

// Len returns the number of ayahs in the bundle.
func (b *Bundle) Len() int {
	return len(b.Ayahs)
}

// LastIndex returns the index of the final ayah, or -1 for an empty bundle.
func (b *Bundle) LastIndex() int {
	return len(b.Ayahs) - 1
}

// AyahAt returns the ayah at index i, or false when i is out of range.
func (b *Bundle) AyahAt(i int) (*Ayah, bool) {
	if b == nil || i < 0 || i >= len(b.Ayahs) {
		return nil, false
	}
	return &b.Ayahs[i], true
}
