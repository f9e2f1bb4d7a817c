package playback

import "github.com/tartilapp/tartil/internal/model"

// Navigation operations and the continuity policy: what happens when the
// cursor runs off either end of a surah's ayah sequence.

// Advance moves to the next ayah. At the end of a surah it proceeds to the
// next surah when continuity mode is on, and stops playback otherwise or at
// the end of the corpus. Natural track end routes here, which is the sole
// mechanism of unattended progression.
func (c *Controller) Advance() {
	c.mu.Lock()
	c.advanceLocked()
	c.mu.Unlock()
	c.publish()
}

func (c *Controller) advanceLocked() {
	if c.bundle == nil {
		return
	}

	if c.cursor.AyahIndex < c.bundle.LastIndex() {
		c.cursor.AyahIndex++
		c.reconcileLocked()
		return
	}

	if c.continuity && c.cursor.SurahNumber < model.TotalSurahs {
		c.selectLocked(c.cursor.SurahNumber+1, c.editionID)
		return
	}

	// End of the corpus, or continuity off: stop, cursor stays put.
	c.cursor.PlayIntent = false
	c.reconcileLocked()
}

// Retreat moves to the previous ayah. At ayah 0 of surah k>1 it switches to
// surah k-1 and lands on its FIRST ayah, not its last. That asymmetry with
// Advance is kept from the product design; flagged for review, do not "fix".
func (c *Controller) Retreat() {
	c.mu.Lock()
	if c.bundle != nil && c.cursor.AyahIndex > 0 {
		c.cursor.AyahIndex--
		c.reconcileLocked()
	} else if c.cursor.SurahNumber > 1 {
		c.selectLocked(c.cursor.SurahNumber-1, c.editionID)
	}
	c.mu.Unlock()
	c.publish()
}

// NextSurah switches to the following surah; no-op on the last one.
func (c *Controller) NextSurah() {
	c.mu.Lock()
	if c.cursor.SurahNumber < model.TotalSurahs {
		c.selectLocked(c.cursor.SurahNumber+1, c.editionID)
	}
	c.mu.Unlock()
	c.publish()
}

// PreviousSurah switches to the preceding surah; no-op on the first one.
func (c *Controller) PreviousSurah() {
	c.mu.Lock()
	if c.cursor.SurahNumber > 1 {
		c.selectLocked(c.cursor.SurahNumber-1, c.editionID)
	}
	c.mu.Unlock()
	c.publish()
}

// SetContinuityMode controls whether reaching the end of a surah proceeds to
// the next one automatically.
func (c *Controller) SetContinuityMode(enabled bool) {
	c.mu.Lock()
	c.continuity = enabled
	c.mu.Unlock()
	c.publish()
}

// ContinuityMode returns the current continuity setting.
func (c *Controller) ContinuityMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.continuity
}
