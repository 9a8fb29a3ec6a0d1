// Package assets loads and caches the images and fonts scenes draw with.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

// Library caches images and font sources by name.
// It is not safe for concurrent use; load everything before the game loop starts.
type Library struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	sources map[string]*text.GoTextFaceSource
	faces   map[string]*text.GoTextFace
}

// NewLibrary creates an empty library reading from fsys
func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:    fsys,
		images:  make(map[string]*ebiten.Image),
		sources: make(map[string]*text.GoTextFaceSource),
		faces:   make(map[string]*text.GoTextFace),
	}
}

// LoadImage decodes the image at path and stores it under name
func (l *Library) LoadImage(name, path string) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read image %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	l.images[name] = ebiten.NewImageFromImage(img)
	return nil
}

// LoadFont parses the TrueType/OpenType font at path and stores it under name
func (l *Library) LoadFont(name, path string) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	l.sources[name] = source
	return nil
}

// LoadAll loads every image and font in cfg. Failures are logged and joined;
// whatever loaded stays usable.
func (l *Library) LoadAll(cfg config.AssetsConfig) error {
	var errs []error

	for _, name := range sortedKeys(cfg.Images) {
		if err := l.LoadImage(name, cfg.Images[name]); err != nil {
			log.Printf("[Assets] %v", err)
			errs = append(errs, err)
		}
	}
	for _, name := range sortedKeys(cfg.Fonts) {
		if err := l.LoadFont(name, cfg.Fonts[name]); err != nil {
			log.Printf("[Assets] %v", err)
			errs = append(errs, err)
		}
	}

	log.Printf("[Assets] loaded %d images, %d fonts", len(l.images), len(l.sources))
	return errors.Join(errs...)
}

// Image returns the image stored under name, or nil
func (l *Library) Image(name string) *ebiten.Image {
	return l.images[name]
}

// Face returns a face of the named font at size, or nil when the font did not load
func (l *Library) Face(name string, size float64) text.Face {
	key := fmt.Sprintf("%s:%.1f", name, size)
	if face, ok := l.faces[key]; ok {
		return face
	}

	source, ok := l.sources[name]
	if !ok {
		return nil
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	l.faces[key] = face
	return face
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
