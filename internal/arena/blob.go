package arena

import "math"

// DetectStride is the raster step between candidate seed pixels.
// Regions that have no pixel on the stride grid are not found.
const DetectStride = 5

// Frame is an externally supplied image: Height x Width x Channels values,
// row-major and interleaved, intended range [0, 1].
type Frame struct {
	Width    int
	Height   int
	Channels int // 1 (gray), 3 (RGB) or 4 (RGBA)
	Pix      []float64
}

// NewFrame creates a black frame.
func NewFrame(w, h, channels int) *Frame {
	return &Frame{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      make([]float64, w*h*channels),
	}
}

// Valid returns true if the frame can be read: positive dimensions, a
// supported channel count and enough samples.
func (f *Frame) Valid() bool {
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return false
	}
	switch f.Channels {
	case 1, 3, 4:
	default:
		return false
	}
	return len(f.Pix) >= f.Width*f.Height*f.Channels
}

// Gray returns the brightness of (x, y): the value itself for one channel,
// the mean of R, G and B otherwise. Alpha is ignored.
func (f *Frame) Gray(x, y int) float64 {
	i := (y*f.Width + x) * f.Channels
	if f.Channels == 1 {
		return f.Pix[i]
	}
	return (f.Pix[i] + f.Pix[i+1] + f.Pix[i+2]) / 3
}

// SetGray writes v to every color channel of (x, y) and sets alpha to 1.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) SetGray(x, y int, v float64) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * f.Channels
	switch f.Channels {
	case 1:
		f.Pix[i] = v
	case 3:
		f.Pix[i], f.Pix[i+1], f.Pix[i+2] = v, v, v
	case 4:
		f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = v, v, v, 1
	}
}

// FillRect sets a w x h block of pixels to brightness v.
func (f *Frame) FillRect(x, y, w, h int, v float64) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			f.SetGray(xx, yy, v)
		}
	}
}

// Blob is a connected bright region found in a frame.
// IDs run 1..K in scan order and are only meaningful within one tick.
type Blob struct {
	ID          int
	X           float64 // Centroid in destination pixels
	Y           float64
	NX          float64 // Centroid normalized to [0, 1]
	NY          float64
	Radius      float64 // sqrt(area/π) in source pixels
	PixelRadius float64 // Radius scaled by the horizontal destination ratio
	Area        int     // Member pixel count in the source frame
	SourceX     float64 // Centroid in source pixels
	SourceY     float64
}

// DetectParams configures blob detection.
type DetectParams struct {
	Threshold float64 // Pixels strictly brighter than this are foreground
	MinArea   int     // Smaller regions are discarded
	Stride    int     // Seed raster step; DetectStride when zero
}

// Detector finds blobs. It keeps its mask, visited bitmap and stack between
// calls to avoid reallocating them every tick. The zero value is ready to use.
type Detector struct {
	mask    []bool
	visited []bool
	stack   []int
}

// Detect thresholds the frame and returns its connected bright regions with
// centroids mapped into a dstW x dstH destination. A nil or degenerate frame
// yields no blobs.
func (d *Detector) Detect(f *Frame, dstW, dstH int, p DetectParams) []Blob {
	if !f.Valid() || dstW <= 0 || dstH <= 0 {
		return nil
	}

	stride := p.Stride
	if stride <= 0 {
		stride = DetectStride
	}

	w, h := f.Width, f.Height
	d.prepare(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.mask[y*w+x] = f.Gray(x, y) > p.Threshold
		}
	}

	scaleX := float64(dstW) / float64(w)
	scaleY := float64(dstH) / float64(h)

	var blobs []Blob
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			i := y*w + x
			if !d.mask[i] || d.visited[i] {
				continue
			}

			area, sumX, sumY := d.fill(i, w, h)
			if area < p.MinArea {
				continue
			}

			cx := sumX / float64(area)
			cy := sumY / float64(area)
			radius := math.Sqrt(float64(area) / math.Pi)
			blobs = append(blobs, Blob{
				ID:          len(blobs) + 1,
				X:           cx * scaleX,
				Y:           cy * scaleY,
				NX:          cx / float64(w),
				NY:          cy / float64(h),
				Radius:      radius,
				PixelRadius: radius * scaleX,
				Area:        area,
				SourceX:     cx,
				SourceY:     cy,
			})
		}
	}
	return blobs
}

// fill runs a 4-connected flood fill from seed over the full-resolution mask,
// marking members visited. Returns the member count and coordinate sums.
func (d *Detector) fill(seed, w, h int) (area int, sumX, sumY float64) {
	d.stack = append(d.stack[:0], seed)
	d.visited[seed] = true

	for len(d.stack) > 0 {
		i := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]

		x, y := i%w, i/w
		area++
		sumX += float64(x)
		sumY += float64(y)

		if x > 0 {
			d.push(i - 1)
		}
		if x < w-1 {
			d.push(i + 1)
		}
		if y > 0 {
			d.push(i - w)
		}
		if y < h-1 {
			d.push(i + w)
		}
	}
	return area, sumX, sumY
}

func (d *Detector) push(i int) {
	if d.mask[i] && !d.visited[i] {
		d.visited[i] = true
		d.stack = append(d.stack, i)
	}
}

// prepare sizes and clears the scratch buffers for n pixels.
func (d *Detector) prepare(n int) {
	if cap(d.mask) < n {
		d.mask = make([]bool, n)
		d.visited = make([]bool, n)
	}
	d.mask = d.mask[:n]
	d.visited = d.visited[:n]
	clear(d.visited)
}
