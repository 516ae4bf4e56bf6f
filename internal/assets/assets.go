// Package assets loads the two static images the effect needs: the brush
// stroke sprite and the base texture. Loading is asynchronous; callers keep
// drawing with a placeholder until Poll reports the real image.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/Distortions81/brush-displace/internal/pointer"
)

// ErrEmptyImage is returned for images with zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// Decode reads an image file in any registered format.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%q (%s): %w", path, format, ErrEmptyImage)
	}
	return img, nil
}

// Result is the outcome of one asynchronous load.
type Result struct {
	Name  string
	Image image.Image
	Err   error
}

// Loader decodes images on background goroutines and hands results to the
// frame goroutine one at a time.
type Loader struct {
	name   string
	done   *pointer.Mailbox[Result]
	result *Result
}

// Load starts decoding path. An empty path resolves immediately to the
// generated fallback.
func Load(name, path string, fallback func() image.Image) *Loader {
	l := &Loader{name: name, done: pointer.NewMailbox[Result]()}
	go func() {
		if path == "" {
			l.done.Put(Result{Name: name, Image: fallback()})
			return
		}
		img, err := Decode(path)
		if err != nil {
			l.done.Put(Result{Name: name, Image: fallback(), Err: err})
			return
		}
		l.done.Put(Result{Name: name, Image: img})
	}()
	return l
}

// Poll returns the result once, the first time it is available. Later calls
// report false.
func (l *Loader) Poll() (Result, bool) {
	if l.result != nil {
		return Result{}, false
	}
	r, ok := l.done.Take()
	if !ok {
		return Result{}, false
	}
	l.result = &r
	return r, true
}

// Name identifies the asset in logs.
func (l *Loader) Name() string { return l.name }

// Fit resamples src to exactly width×height.
func Fit(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 || src == nil {
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
