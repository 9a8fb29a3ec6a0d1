// Package audio plays named music tracks and sound effects.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

// SampleRate is the rate of the shared audio context
const SampleRate = 48000

// ErrDisabled is returned by Load when there is no audio context
var ErrDisabled = errors.New("audio disabled")

// Manager loads sounds by name and plays them on demand.
// A missing sound or audio context is logged once and otherwise ignored.
type Manager struct {
	ctx     *audio.Context
	fsys    fs.FS
	players map[string]*audio.Player
	warned  map[string]bool
}

// NewManager creates a manager. ctx may be nil, in which case every call is a no-op.
func NewManager(ctx *audio.Context, fsys fs.FS) *Manager {
	return &Manager{
		ctx:     ctx,
		fsys:    fsys,
		players: make(map[string]*audio.Player),
		warned:  make(map[string]bool),
	}
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

// Load decodes the file at p (wav, mp3 or ogg) and registers it under name.
// Looping sounds restart from the beginning when they end.
func (m *Manager) Load(name, p string, loop bool) error {
	if m.ctx == nil {
		return ErrDisabled
	}

	data, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return fmt.Errorf("failed to read sound %s: %w", p, err)
	}
	reader := bytes.NewReader(data)

	var stream lengthStream
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(reader)
	case ".mp3":
		stream, err = mp3.DecodeWithoutResampling(reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(reader)
	default:
		return fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to decode sound %s: %w", p, err)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := m.ctx.NewPlayer(src)
	if err != nil {
		return fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	if old, ok := m.players[name]; ok {
		old.Close()
	}
	m.players[name] = player
	return nil
}

// LoadAll loads every configured sound, logging and joining failures
func (m *Manager) LoadAll(sounds []config.SoundConfig) error {
	if m.ctx == nil {
		log.Printf("[Audio] no audio context, %d sounds skipped", len(sounds))
		return nil
	}

	var errs []error
	for _, s := range sounds {
		if err := m.Load(s.Name, s.Path, s.Loop); err != nil {
			log.Printf("[Audio] %v", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Play starts name from the beginning
func (m *Manager) Play(name string) {
	player, ok := m.lookup(name)
	if !ok {
		return
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] failed to rewind %s: %v", name, err)
	}
	player.Play()
}

// Stop pauses name and rewinds it
func (m *Manager) Stop(name string) {
	player, ok := m.lookup(name)
	if !ok {
		return
	}

	player.Pause()
	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] failed to rewind %s: %v", name, err)
	}
}

// IsPlaying reports whether name is currently playing
func (m *Manager) IsPlaying(name string) bool {
	player, ok := m.players[name]
	return ok && player.IsPlaying()
}

// Has reports whether name was loaded
func (m *Manager) Has(name string) bool {
	_, ok := m.players[name]
	return ok
}

// Close releases every player
func (m *Manager) Close() {
	for name, player := range m.players {
		if err := player.Close(); err != nil {
			log.Printf("[Audio] failed to close %s: %v", name, err)
		}
	}
	clear(m.players)
}

func (m *Manager) lookup(name string) (*audio.Player, bool) {
	player, ok := m.players[name]
	if !ok && m.ctx != nil && !m.warned[name] {
		log.Printf("[Audio] sound %q not found", name)
		m.warned[name] = true
	}
	return player, ok
}
