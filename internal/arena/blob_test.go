package arena

import (
	"math"
	"reflect"
	"testing"
)

func TestDetectSquareBlob(t *testing.T) {
	f := NewFrame(100, 100, 1)
	f.FillRect(40, 40, 20, 20, 1.0)

	blobs := detect(f, 100, 100, DetectParams{Threshold: 0.8, MinArea: 10})
	if len(blobs) != 1 {
		t.Fatalf("expected exactly 1 blob, got %d", len(blobs))
	}

	b := blobs[0]
	if b.ID != 1 {
		t.Errorf("ID = %d, expected 1", b.ID)
	}
	if b.Area != 400 {
		t.Errorf("Area = %d, expected 400", b.Area)
	}
	wantRadius := math.Sqrt(400 / math.Pi)
	if math.Abs(b.Radius-wantRadius) > 1e-9 || math.Abs(b.Radius-11.28) > 0.01 {
		t.Errorf("Radius = %f, expected %f", b.Radius, wantRadius)
	}
	if b.SourceX != 49.5 || b.SourceY != 49.5 {
		t.Errorf("centroid = (%f, %f), expected (49.5, 49.5)", b.SourceX, b.SourceY)
	}
	if b.NX != 0.495 || b.NY != 0.495 {
		t.Errorf("normalized centroid = (%f, %f), expected (0.495, 0.495)", b.NX, b.NY)
	}
}

func TestDetectMapsToDestination(t *testing.T) {
	f := NewFrame(100, 50, 1)
	f.FillRect(10, 10, 10, 10, 1.0)

	blobs := detect(f, 200, 200, DetectParams{Threshold: 0.5, MinArea: 1})
	if len(blobs) != 1 {
		t.Fatalf("expected 1 blob, got %d", len(blobs))
	}
	b := blobs[0]
	if b.X != 14.5*2 || b.Y != 14.5*4 {
		t.Errorf("destination centroid = (%f, %f), expected (29, 58)", b.X, b.Y)
	}
	// Only the horizontal ratio scales the radius.
	if math.Abs(b.PixelRadius-b.Radius*2) > 1e-9 {
		t.Errorf("PixelRadius = %f, expected %f", b.PixelRadius, b.Radius*2)
	}
}

func TestDetectDiscardsSmallRegions(t *testing.T) {
	f := NewFrame(100, 100, 1)
	f.FillRect(0, 0, 3, 3, 1.0)     // 9 px
	f.FillRect(50, 50, 10, 10, 1.0) // 100 px

	blobs := detect(f, 100, 100, DetectParams{Threshold: 0.5, MinArea: 10})
	if len(blobs) != 1 {
		t.Fatalf("expected 1 blob, got %d", len(blobs))
	}
	if blobs[0].Area < 10 {
		t.Errorf("blob area %d below minimum", blobs[0].Area)
	}
	if blobs[0].ID != 1 {
		t.Errorf("surviving blob ID = %d, expected 1", blobs[0].ID)
	}
}

func TestDetectThresholdIsStrict(t *testing.T) {
	f := NewFrame(20, 20, 1)
	f.FillRect(0, 0, 10, 10, 0.5)

	if blobs := detect(f, 20, 20, DetectParams{Threshold: 0.5, MinArea: 1}); len(blobs) != 0 {
		t.Errorf("pixels equal to the threshold should not count, got %d blobs", len(blobs))
	}
	if blobs := detect(f, 20, 20, DetectParams{Threshold: 0.49, MinArea: 1}); len(blobs) != 1 {
		t.Errorf("expected 1 blob just under the threshold, got %d", len(blobs))
	}
}

func TestDetectFloodFillFollowsFullResolution(t *testing.T) {
	f := NewFrame(60, 60, 1)
	// An L shape: the vertical arm is one pixel wide, off the stride grid,
	// but still connected to the seed through the horizontal arm.
	f.FillRect(0, 0, 30, 2, 1.0)
	f.FillRect(28, 0, 1, 40, 1.0)

	blobs := detect(f, 60, 60, DetectParams{Threshold: 0.5, MinArea: 1})
	if len(blobs) != 1 {
		t.Fatalf("expected 1 blob, got %d", len(blobs))
	}
	if want := 30*2 + 38; blobs[0].Area != want {
		t.Errorf("Area = %d, expected %d", blobs[0].Area, want)
	}
}

func TestDetectFourConnectivity(t *testing.T) {
	f := NewFrame(20, 20, 1)
	f.FillRect(0, 0, 5, 5, 1.0)
	f.FillRect(5, 5, 5, 5, 1.0) // Touches only at a corner

	blobs := detect(f, 20, 20, DetectParams{Threshold: 0.5, MinArea: 1})
	if len(blobs) != 2 {
		t.Fatalf("diagonal neighbours must not connect: expected 2 blobs, got %d", len(blobs))
	}
	if blobs[0].ID != 1 || blobs[1].ID != 2 {
		t.Errorf("IDs = %d, %d, expected 1, 2 in scan order", blobs[0].ID, blobs[1].ID)
	}
}

func TestDetectMissesRegionOffStrideGrid(t *testing.T) {
	f := NewFrame(100, 100, 1)
	f.FillRect(1, 1, 3, 3, 1.0) // No pixel with x%5 == 0 and y%5 == 0

	if blobs := detect(f, 100, 100, DetectParams{Threshold: 0.5, MinArea: 1}); len(blobs) != 0 {
		t.Errorf("expected region off the stride grid to be missed, got %d blobs", len(blobs))
	}
}

func TestDetectColorFrameAveragesChannels(t *testing.T) {
	f := NewFrame(30, 30, 3)
	for y := 10; y < 20; y++ {
		for x := 10; x < 20; x++ {
			i := (y*30 + x) * 3
			f.Pix[i] = 1.0 // Pure red: gray = 1/3
		}
	}

	if blobs := detect(f, 30, 30, DetectParams{Threshold: 0.4, MinArea: 1}); len(blobs) != 0 {
		t.Errorf("red at 1/3 brightness should be under 0.4, got %d blobs", len(blobs))
	}
	if blobs := detect(f, 30, 30, DetectParams{Threshold: 0.3, MinArea: 1}); len(blobs) != 1 {
		t.Errorf("expected 1 blob over 0.3, got %d", len(blobs))
	}
}

func TestDetectRGBAIgnoresAlpha(t *testing.T) {
	f := NewFrame(20, 20, 4)
	for i := 3; i < len(f.Pix); i += 4 {
		f.Pix[i] = 1 // Opaque black everywhere
	}
	if blobs := detect(f, 20, 20, DetectParams{Threshold: 0.1, MinArea: 1}); len(blobs) != 0 {
		t.Errorf("alpha should not contribute to brightness, got %d blobs", len(blobs))
	}
}

func TestDetectDegenerateFrames(t *testing.T) {
	tests := []struct {
		name  string
		frame *Frame
	}{
		{"nil frame", nil},
		{"zero width", &Frame{Width: 0, Height: 10, Channels: 1}},
		{"negative height", &Frame{Width: 10, Height: -1, Channels: 1}},
		{"bad channel count", &Frame{Width: 2, Height: 2, Channels: 2, Pix: make([]float64, 8)}},
		{"short pixel data", &Frame{Width: 10, Height: 10, Channels: 1, Pix: make([]float64, 5)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if blobs := detect(tc.frame, 100, 100, DetectParams{Threshold: 0.5, MinArea: 1}); len(blobs) != 0 {
				t.Errorf("expected no blobs, got %d", len(blobs))
			}
		})
	}
}

func TestDetectorIsDeterministicAndReusable(t *testing.T) {
	f := NewFrame(120, 80, 1)
	f.FillRect(5, 5, 12, 9, 0.9)
	f.FillRect(60, 30, 25, 25, 1.0)
	f.FillRect(100, 60, 15, 15, 0.95)

	var d Detector
	p := DetectParams{Threshold: 0.5, MinArea: 20}
	first := d.Detect(f, 256, 256, p)
	if len(first) != 3 {
		t.Fatalf("expected 3 blobs, got %d", len(first))
	}

	// A different frame in between must not leak into later results.
	other := NewFrame(50, 50, 1)
	other.FillRect(0, 0, 50, 50, 1.0)
	d.Detect(other, 256, 256, p)

	again := d.Detect(f, 256, 256, p)
	if !reflect.DeepEqual(first, again) {
		t.Errorf("detection not deterministic:\n first %+v\n again %+v", first, again)
	}
}

func detect(f *Frame, dstW, dstH int, p DetectParams) []Blob {
	var d Detector
	return d.Detect(f, dstW, dstH, p)
}
