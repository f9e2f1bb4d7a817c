package player

import (
	"testing"
	"time"
)

func TestVolumeDB(t *testing.T) {
	tests := []struct {
		level    float64
		expected float64
	}{
		{-0.5, MinVolumeDB},
		{0, MinVolumeDB},
		{1, 0},
		{1.5, 0},
	}

	for _, test := range tests {
		if got := volumeDB(test.level); got != test.expected {
			t.Errorf("volumeDB(%v) = %v, expected %v", test.level, got, test.expected)
		}
	}

	// Mid levels attenuate monotonically.
	if volumeDB(0.25) >= volumeDB(0.75) {
		t.Errorf("volumeDB should attenuate more at lower levels: %v vs %v", volumeDB(0.25), volumeDB(0.75))
	}
	if volumeDB(0.5) >= 0 || volumeDB(0.5) <= MinVolumeDB {
		t.Errorf("volumeDB(0.5) = %v, expected a value strictly between %v and 0", volumeDB(0.5), MinVolumeDB)
	}
}

func TestMock_SeekClamps(t *testing.T) {
	m := NewMock()
	m.SetDuration(10 * time.Second)

	m.Seek(25 * time.Second)
	if m.Position() != 10*time.Second {
		t.Errorf("Position() = %v, expected clamp to duration", m.Position())
	}

	m.Seek(-3 * time.Second)
	if m.Position() != 0 {
		t.Errorf("Position() = %v, expected clamp to 0", m.Position())
	}
}

func TestMock_MutePreservesLevel(t *testing.T) {
	m := NewMock()
	m.SetVolume(0.3)
	m.SetMuted(true)

	if m.EffectiveVolume() != 0 {
		t.Errorf("EffectiveVolume() = %v, expected 0 while muted", m.EffectiveVolume())
	}
	if m.Volume() != 0.3 {
		t.Errorf("Volume() = %v, expected stored level 0.3", m.Volume())
	}

	m.SetMuted(false)
	if m.EffectiveVolume() != 0.3 {
		t.Errorf("EffectiveVolume() = %v, expected 0.3 after unmute", m.EffectiveVolume())
	}
}

func TestMock_EventsCarrySource(t *testing.T) {
	m := NewMock()

	var readySrc, endedSrc string
	m.SetHandlers(Handlers{
		OnReady: func(src string) { readySrc = src },
		OnEnded: func(src string) { endedSrc = src },
	})

	m.Load("https://cdn/1.mp3")
	m.FireReady()
	m.FireEnded()

	if readySrc != "https://cdn/1.mp3" {
		t.Errorf("OnReady src = %q", readySrc)
	}
	if endedSrc != "https://cdn/1.mp3" {
		t.Errorf("OnEnded src = %q", endedSrc)
	}
}
