package model

// TotalSurahs is the fixed number of surahs in the corpus.
const TotalSurahs = 114

// Surah is an immutable reference to a single chapter. The field tags match
// the content API response so the list can be decoded directly.
type Surah struct {
	Number         int    `json:"number"`         // 1..TotalSurahs
	Name           string `json:"name"`           // Arabic-script name
	EnglishName    string `json:"englishName"`    // display name
	AyahCount      int    `json:"numberOfAyahs"`  // total units in this surah
	RevelationType string `json:"revelationType"` // "Meccan" or "Medinan"
}

// Edition is an immutable reference to a narration or text rendering.
type Edition struct {
	ID       string `json:"identifier"`
	Name     string `json:"englishName"`
	Language string `json:"language"`
	Format   string `json:"format"` // "audio" or "text"
	Type     string `json:"type"`   // e.g. "versebyverse", "translation"
}

// IsAudioNarration reports whether the edition is a verse-by-verse Arabic
// audio narration, the only kind the player can bind to.
func (e Edition) IsAudioNarration() bool {
	return e.Format == "audio" && e.Language == "ar" && e.Type == "versebyverse"
}
