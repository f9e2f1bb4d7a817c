package playback

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tartilapp/tartil/internal/model"
	"github.com/tartilapp/tartil/internal/player"
)

// Provider turns a (surah, edition) selection into a content bundle.
type Provider interface {
	GetBundle(ctx context.Context, surahNumber int, editionID string) (*model.Bundle, error)
}

// Snapshot is the read-only view of the controller published to the
// presentation layer after every state change.
type Snapshot struct {
	Status     model.PlaybackStatus
	Cursor     model.Cursor
	Surah      model.Surah // zero value until a bundle is loaded
	Ayah       model.Ayah  // current unit; valid when HasAyah
	HasAyah    bool
	Continuity bool

	// AtFirstAyah is true on the very first unit of the corpus. AtLastAyah
	// is true on the very last unit with continuity off; with continuity on
	// there is no hard "last" from the user's perspective.
	AtFirstAyah bool
	AtLastAyah  bool

	Position time.Duration
	Duration time.Duration
	Volume   float64
	Muted    bool

	Err string
}

// Controller binds the audio resource to the playback cursor and the loaded
// content bundle. It is the only component that mutates the resource.
type Controller struct {
	mu       sync.Mutex
	log      zerolog.Logger
	provider Provider
	resource player.Resource

	editionID  string
	continuity bool

	bundle *model.Bundle
	cursor model.Cursor

	// epoch tags each selection; a fetch result whose epoch no longer
	// matches is discarded instead of applied.
	epoch   uint64
	loading bool
	errMsg  string

	// pendingAutoplay records that playback should start as soon as the
	// just-assigned source becomes ready. Read exclusively through
	// consumePendingAutoplayLocked.
	pendingAutoplay bool

	position time.Duration
	duration time.Duration

	onUpdate func(Snapshot)
}

// New creates a controller bound to the given provider and audio resource.
// The cursor starts at surah 1, first ayah, not playing.
func New(provider Provider, resource player.Resource, editionID string, log zerolog.Logger) *Controller {
	c := &Controller{
		log:       log.With().Str("component", "playback").Logger(),
		provider:  provider,
		resource:  resource,
		editionID: editionID,
		cursor:    model.NewCursor(),
	}
	resource.SetHandlers(player.Handlers{
		OnReady:    c.handleReady,
		OnProgress: c.handleProgress,
		OnEnded:    c.handleEnded,
	})
	return c
}

// SetUpdateCallback sets the callback invoked with a fresh snapshot after
// every state change.
func (c *Controller) SetUpdateCallback(fn func(Snapshot)) {
	c.mu.Lock()
	c.onUpdate = fn
	c.mu.Unlock()
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// EditionID returns the currently selected narration edition.
func (c *Controller) EditionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editionID
}

// SelectSurah switches to the given surah, refetching content. Re-selecting
// the current surah refetches too, which is how users recover from a failed
// fetch.
func (c *Controller) SelectSurah(n int) {
	n = model.ClampSurah(n)
	c.mu.Lock()
	c.selectLocked(n, c.editionID)
	c.mu.Unlock()
	c.publish()
}

// SelectEdition switches the narration edition, refetching content for the
// current surah.
func (c *Controller) SelectEdition(id string) {
	c.mu.Lock()
	c.selectLocked(c.cursor.SurahNumber, id)
	c.mu.Unlock()
	c.publish()
}

// selectLocked begins the two-phase selection transition: the bundle is
// discarded and the cursor reset immediately, the fetch commits later only if
// its epoch is still current. Play intent survives the transition.
func (c *Controller) selectLocked(surahNumber int, editionID string) {
	c.editionID = editionID
	c.cursor = model.Cursor{
		SurahNumber: surahNumber,
		AyahIndex:   0,
		PlayIntent:  c.cursor.PlayIntent,
	}
	c.bundle = nil
	c.pendingAutoplay = false
	c.errMsg = ""
	c.loading = true
	c.position = 0
	c.duration = 0
	c.epoch++

	go c.fetch(c.epoch, surahNumber, editionID)
}

func (c *Controller) fetch(epoch uint64, surahNumber int, editionID string) {
	fetchID := uuid.NewString()
	c.log.Debug().
		Str("fetch_id", fetchID).
		Int("surah", surahNumber).
		Str("edition", editionID).
		Msg("fetching content")

	bundle, err := c.provider.GetBundle(context.Background(), surahNumber, editionID)

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		c.log.Debug().Str("fetch_id", fetchID).Msg("discarding stale fetch result")
		return
	}

	c.loading = false
	if err != nil {
		c.bundle = nil
		c.errMsg = err.Error()
		c.cursor.PlayIntent = false
		c.pendingAutoplay = false
		c.resource.Pause()
		c.mu.Unlock()
		c.log.Error().Str("fetch_id", fetchID).Err(err).Msg("content fetch failed")
		c.publish()
		return
	}

	c.bundle = bundle
	c.cursor.AyahIndex = 0
	c.reconcileLocked()
	c.mu.Unlock()

	c.log.Debug().Str("fetch_id", fetchID).Int("ayahs", bundle.Len()).Msg("content loaded")
	c.publish()
}

// reconcileLocked converges the audio resource on (bundle, cursor): the
// loaded source must correspond to the current ayah and the play/pause state
// to the play intent. Callers hold c.mu.
func (c *Controller) reconcileLocked() {
	ayah, ok := c.bundle.AyahAt(c.cursor.AyahIndex)
	if !ok {
		return
	}

	sourceChanged := false
	if c.resource.Source() != ayah.AudioURL {
		c.resource.Load(ayah.AudioURL)
		c.position = 0
		c.duration = 0
		sourceChanged = true
	}

	if !c.cursor.PlayIntent {
		c.pendingAutoplay = false
		c.resource.Pause()
		return
	}

	if sourceChanged {
		// The resource is not ready yet; playback starts on the ready event.
		c.pendingAutoplay = true
		return
	}

	if err := c.resource.Play(); err != nil {
		c.cursor.PlayIntent = false
		c.pendingAutoplay = false
		c.log.Warn().Err(err).Msg("playback rejected")
	}
}

// consumePendingAutoplayLocked reads and clears the flag in a single step so
// it can trigger at most once per source change. Callers hold c.mu.
func (c *Controller) consumePendingAutoplayLocked() bool {
	v := c.pendingAutoplay
	c.pendingAutoplay = false
	return v
}

// currentSourceLocked returns the audio locator the cursor points at, or "".
func (c *Controller) currentSourceLocked() string {
	if ayah, ok := c.bundle.AyahAt(c.cursor.AyahIndex); ok {
		return ayah.AudioURL
	}
	return ""
}

func (c *Controller) handleReady(src string) {
	c.mu.Lock()
	if c.currentSourceLocked() != src {
		c.mu.Unlock()
		return
	}

	c.duration = c.resource.Duration()
	if c.consumePendingAutoplayLocked() {
		if err := c.resource.Play(); err != nil {
			c.cursor.PlayIntent = false
			c.log.Warn().Err(err).Msg("playback rejected")
		}
	}
	c.mu.Unlock()
	c.publish()
}

func (c *Controller) handleProgress(pos, dur time.Duration) {
	c.mu.Lock()
	if c.bundle == nil {
		c.mu.Unlock()
		return
	}
	c.position = pos
	c.duration = dur
	c.mu.Unlock()
	c.publish()
}

func (c *Controller) handleEnded(src string) {
	c.mu.Lock()
	if c.currentSourceLocked() != src {
		c.mu.Unlock()
		return
	}
	c.advanceLocked()
	c.mu.Unlock()
	c.publish()
}

// TogglePlay flips the play intent. While a fetch is outstanding the intent
// is remembered and applied when the content commits.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	if c.bundle == nil && !c.loading {
		c.mu.Unlock()
		return
	}
	c.cursor.PlayIntent = !c.cursor.PlayIntent
	c.reconcileLocked()
	c.mu.Unlock()
	c.publish()
}

// Seek moves the playback position within the current source. Out-of-range
// targets are clamped by the resource.
func (c *Controller) Seek(d time.Duration) {
	c.mu.Lock()
	if c.bundle == nil {
		c.mu.Unlock()
		return
	}
	c.resource.Seek(d)
	c.position = c.resource.Position()
	c.mu.Unlock()
	c.publish()
}

// SetVolume applies a volume level immediately; never reloads.
func (c *Controller) SetVolume(level float64) {
	c.resource.SetVolume(level)
	c.publish()
}

// ToggleMute flips the muted flag; the stored volume level is untouched.
func (c *Controller) ToggleMute() {
	c.resource.SetMuted(!c.resource.Muted())
	c.publish()
}

// publish delivers a fresh snapshot to the update callback, outside the lock
// so the callback may call back into the controller.
func (c *Controller) publish() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	cb := c.onUpdate
	c.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Status:      c.statusLocked(),
		Cursor:      c.cursor,
		Continuity:  c.continuity,
		AtFirstAyah: c.cursor.AtFirstAyah(),
		Position:    c.position,
		Duration:    c.duration,
		Volume:      c.resource.Volume(),
		Muted:       c.resource.Muted(),
		Err:         c.errMsg,
	}
	if c.bundle != nil {
		s.Surah = c.bundle.Surah
		if ayah, ok := c.bundle.AyahAt(c.cursor.AyahIndex); ok {
			s.Ayah = *ayah
			s.HasAyah = true
		}
		s.AtLastAyah = !c.continuity &&
			c.cursor.SurahNumber == model.TotalSurahs &&
			c.cursor.AyahIndex == c.bundle.LastIndex()
	}
	return s
}

func (c *Controller) statusLocked() model.PlaybackStatus {
	switch {
	case c.loading:
		return model.StatusLoading
	case c.errMsg != "":
		return model.StatusError
	case c.bundle == nil:
		return model.StatusIdle
	case c.cursor.PlayIntent:
		return model.StatusPlaying
	default:
		return model.StatusPaused
	}
}
