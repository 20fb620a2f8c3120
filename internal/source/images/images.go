// Package images provides a frame source that cycles through still images in
// a directory, for replaying captured camera frames.
package images

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/vovakirdan/hazard-arena/internal/arena"
	"github.com/vovakirdan/hazard-arena/internal/source"
)

// ID is the registry identifier.
const ID = "images"

const (
	defaultRate = 2.0 // Images per second
	maxSide     = 320 // Longest side after downscaling, when no size is given
)

// ErrNoImages is returned when the path holds no decodable image files.
var ErrNoImages = errors.New("no images found")

// extensions lists the file types the sequence picks up.
var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func init() {
	source.Register(source.Info{ID: ID, Title: "Image sequence from a directory"}, func(opts source.Options) (source.Source, error) {
		return Open(opts)
	})
}

// Source holds the decoded sequence.
type Source struct {
	frames []*arena.Frame
	names  []string
	rate   float64
}

// Open decodes every image under opts.Path (a directory or a single file).
// Files are ordered by name. Every frame is scaled to opts.Width x opts.Height
// when both are set, otherwise to fit within maxSide.
func Open(opts source.Options) (*Source, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("images: path is required")
	}
	paths, err := listImages(opts.Path)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("images: %s: %w", opts.Path, ErrNoImages)
	}

	rate := opts.Rate
	if rate <= 0 {
		rate = defaultRate
	}

	s := &Source{rate: rate}
	for _, p := range paths {
		img, err := decodeFile(p)
		if err != nil {
			return nil, err
		}
		s.frames = append(s.frames, ToFrame(img, opts.Width, opts.Height))
		s.names = append(s.names, filepath.Base(p))
	}
	return s, nil
}

// listImages returns the sorted image files at path.
func listImages(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("images: read dir %s: %w", path, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(path, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("images: decode %s: %w", path, err)
	}
	return img, nil
}

// ToFrame converts an image to a 3-channel frame with values in [0, 1],
// scaling it to w x h, or to fit within maxSide when either is zero.
func ToFrame(img image.Image, w, h int) *arena.Frame {
	b := img.Bounds()
	if w <= 0 || h <= 0 {
		w, h = b.Dx(), b.Dy()
		if long := max(w, h); long > maxSide {
			w = max(1, w*maxSide/long)
			h = max(1, h*maxSide/long)
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)
	}

	f := arena.NewFrame(w, h, 3)
	for i, j := 0, 0; i < len(rgba.Pix); i, j = i+4, j+3 {
		f.Pix[j] = float64(rgba.Pix[i]) / 255
		f.Pix[j+1] = float64(rgba.Pix[i+1]) / 255
		f.Pix[j+2] = float64(rgba.Pix[i+2]) / 255
	}
	return f
}

// ID returns the registry identifier.
func (s *Source) ID() string {
	return ID
}

// Len returns the number of images in the sequence.
func (s *Source) Len() int {
	return len(s.frames)
}

// Index returns the sequence position shown at time t. The sequence loops.
func (s *Source) Index(t float64) int {
	n := len(s.frames)
	i := int(math.Floor(t*s.rate)) % n
	if i < 0 {
		i += n
	}
	return i
}

// Name returns the file name of image i.
func (s *Source) Name(i int) string {
	return s.names[i]
}

// Frame returns the image shown at time t.
func (s *Source) Frame(t float64) *arena.Frame {
	return s.frames[s.Index(t)]
}

// Close drops the decoded frames.
func (s *Source) Close() error {
	s.frames = nil
	s.names = nil
	return nil
}
