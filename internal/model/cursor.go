package model

// Cursor describes where playback stands: which surah, which ayah within it,
// and whether the user intends audio to be running. PlayIntent is decoupled
// from the audio resource's actual state, which may lag or fail.
type Cursor struct {
	SurahNumber int  // 1..TotalSurahs
	AyahIndex   int  // 0..(bundle.Len()-1), always valid for the loaded bundle
	PlayIntent  bool
}

// NewCursor returns the application-start cursor: surah 1, first ayah,
// not playing.
func NewCursor() Cursor {
	return Cursor{SurahNumber: 1, AyahIndex: 0}
}

// AtFirstAyah reports whether the cursor sits on the very first unit of the
// whole corpus.
func (c Cursor) AtFirstAyah() bool {
	return c.SurahNumber == 1 && c.AyahIndex == 0
}

// ClampSurah bounds a requested surah number to the valid range.
func ClampSurah(n int) int {
	if n < 1 {
		return 1
	}
	if n > TotalSurahs {
		return TotalSurahs
	}
	return n
}
