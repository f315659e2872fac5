// Package audio loads the lobby music asset and plays it on demand.
// Playback is best effort: failures are logged and never surface to callers.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog"
)

// ErrAssetNotFound indicates no supported file matched the asset name.
var ErrAssetNotFound = errors.New("audio asset not found")

// supportedExts lists the extensions tried, in order, for a bare asset name.
var supportedExts = []string{".mp3", ".wav"}

// Speaker is the output device. The default implementation wraps the beep
// speaker package.
type Speaker interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Clear()
	Play(streamers ...beep.Streamer)
}

type systemSpeaker struct{}

func (systemSpeaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (systemSpeaker) Clear() { speaker.Clear() }

func (systemSpeaker) Play(streamers ...beep.Streamer) { speaker.Play(streamers...) }

// Player plays one decoded asset. A Player without a buffer is silent.
type Player struct {
	name    string
	path    string
	buffer  *beep.Buffer
	speaker Speaker
	logger  zerolog.Logger
}

// Option configures Load.
type Option func(*Player)

// WithSpeaker replaces the system speaker.
func WithSpeaker(s Speaker) Option {
	return func(p *Player) {
		if s != nil {
			p.speaker = s
		}
	}
}

// Load resolves name under dir, decodes it into memory and initializes the
// speaker. Any failure is logged and yields a silent Player.
func Load(dir, name string, logger zerolog.Logger, opts ...Option) *Player {
	p := &Player{
		name:    name,
		speaker: systemSpeaker{},
		logger:  logger.With().Str("component", "audio").Str("asset", name).Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	path, err := resolveAsset(dir, name)
	if err != nil {
		p.logger.Warn().Err(err).Str("dir", dir).Msg("audio asset unavailable")
		return p
	}
	p.path = path

	buffer, err := decodeFile(path)
	if err != nil {
		p.logger.Warn().Err(err).Str("path", path).Msg("audio asset could not be decoded")
		return p
	}
	format := buffer.Format()
	if err := p.speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		p.logger.Warn().Err(err).Msg("audio output unavailable")
		return p
	}
	p.buffer = buffer
	p.logger.Debug().Str("path", path).Int("samples", buffer.Len()).Msg("audio asset loaded")
	return p
}

// Available reports whether Play will produce sound.
func (p *Player) Available() bool {
	return p != nil && p.buffer != nil
}

// Play starts the asset from the beginning, replacing any playback in
// progress. It returns immediately.
func (p *Player) Play() {
	if !p.Available() {
		if p != nil {
			p.logger.Debug().Msg("play requested but audio is unavailable")
		}
		return
	}
	p.speaker.Clear()
	p.speaker.Play(p.buffer.Streamer(0, p.buffer.Len()))
	p.logger.Debug().Msg("audio playback started")
}

// Path returns the resolved asset path, empty when unresolved.
func (p *Player) Path() string {
	if p == nil {
		return ""
	}
	return p.path
}

// resolveAsset finds name under dir, trying supported extensions when name
// has none.
func resolveAsset(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrAssetNotFound)
	}
	candidates := []string{filepath.Join(dir, name)}
	if !isSupported(filepath.Ext(name)) {
		candidates = candidates[:0]
		for _, ext := range supportedExts {
			candidates = append(candidates, filepath.Join(dir, name+ext))
		}
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("stat %q: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrAssetNotFound, name, dir)
}

func isSupported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range supportedExts {
		if ext == supported {
			return true
		}
	}
	return false
}

// decodeFile decodes the whole file into an in-memory buffer so it can be
// replayed without reopening.
func decodeFile(path string) (*beep.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	default:
		err = fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	defer closeQuietly(streamer)

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return buffer, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
