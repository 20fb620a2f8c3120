package arena

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

func TestStaticSafeZonesIdenticalEveryTick(t *testing.T) {
	p := config.SafeZoneTuning{Count: 4, Size: 40, Moving: false}
	first := PlaceSafeZones(256, 256, 0, p)

	if len(first) != 4 {
		t.Fatalf("expected 4 zones, got %d", len(first))
	}
	for _, tm := range []float64{0.016, 1, 37.5, 1000} {
		got := PlaceSafeZones(256, 256, tm, p)
		if !reflect.DeepEqual(got, first) {
			t.Errorf("t=%f: static layout changed:\n got %+v\nwant %+v", tm, got, first)
		}
	}
}

func TestMovingSafeZonesMove(t *testing.T) {
	p := config.SafeZoneTuning{Count: 3, Size: 30, Moving: true}
	a := PlaceSafeZones(256, 256, 0, p)
	b := PlaceSafeZones(256, 256, 2, p)

	if reflect.DeepEqual(a, b) {
		t.Error("moving zones should change position over time")
	}
	// Per-zone phase offsets keep zones apart at the same instant.
	if a[0].XStart == a[1].XStart && a[0].YStart == a[1].YStart {
		t.Error("zones with different phases should not coincide")
	}
}

func TestSafeZonesWithinFrame(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		p    config.SafeZoneTuning
	}{
		{"static", 256, 256, config.SafeZoneTuning{Count: 8, Size: 40}},
		{"moving", 200, 120, config.SafeZoneTuning{Count: 5, Size: 50, Moving: true}},
		{"zone larger than frame", 32, 32, config.SafeZoneTuning{Count: 2, Size: 100}},
		{"moving zone larger than frame", 32, 16, config.SafeZoneTuning{Count: 2, Size: 100, Moving: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, tm := range []float64{0, 0.7, 3.1, 9.9} {
				zones := PlaceSafeZones(tc.w, tc.h, tm, tc.p)
				if len(zones) == 0 {
					t.Fatal("expected zones")
				}
				for _, z := range zones {
					if z.XStart < 0 || z.YStart < 0 || z.XEnd >= tc.w || z.YEnd >= tc.h {
						t.Errorf("zone %+v outside %dx%d frame", z, tc.w, tc.h)
					}
					if z.Width() <= 0 || z.Height() <= 0 {
						t.Errorf("zone %+v has no area", z)
					}
					if z.CenterX < 0 || z.CenterX > 1 || z.CenterY < 0 || z.CenterY > 1 {
						t.Errorf("zone %+v center not normalized", z)
					}
				}
			}
		})
	}
}

func TestSafeZoneIDsFollowLoopIndex(t *testing.T) {
	zones := PlaceSafeZones(256, 256, 0, config.SafeZoneTuning{Count: 5, Size: 20})
	for i, z := range zones {
		if z.ID != i {
			t.Errorf("zone %d has ID %d, expected %d", i, z.ID, i)
		}
	}
}

func TestMovingSafeZonePosition(t *testing.T) {
	p := config.SafeZoneTuning{Count: 2, Size: 40, Moving: true}
	zones := PlaceSafeZones(256, 256, 0, p)
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zones))
	}

	span := 256.0 - 40
	tests := []struct {
		i      int
		xs, ys int
	}{
		{0, int((math.Sin(0)*0.3 + 0.5) * span), int((math.Cos(0)*0.3 + 0.5) * span)},
		{1, int((math.Sin(2)*0.3 + 0.5) * span), int((math.Cos(1.5)*0.3 + 0.5) * span)},
	}
	for _, tc := range tests {
		z := zones[tc.i]
		if z.XStart != tc.xs || z.YStart != tc.ys {
			t.Errorf("zone %d at (%d, %d), expected (%d, %d)", tc.i, z.XStart, z.YStart, tc.xs, tc.ys)
		}
		if z.Width() != 40 || z.Height() != 40 {
			t.Errorf("zone %d is %dx%d, expected 40x40", tc.i, z.Width(), z.Height())
		}
	}
}

func TestStaticSafeZonesUseFixedSeed(t *testing.T) {
	rng := NewRNG(42)
	zones := PlaceSafeZones(256, 256, 5, config.SafeZoneTuning{Count: 3, Size: 40})

	span := 256.0 - 40
	for i, z := range zones {
		xs, ys := int(rng.Float()*span), int(rng.Float()*span)
		if z.XStart != xs || z.YStart != ys {
			t.Errorf("zone %d at (%d, %d), expected (%d, %d)", i, z.XStart, z.YStart, xs, ys)
		}
	}
}

func TestSafeZonesDisabled(t *testing.T) {
	if zones := PlaceSafeZones(256, 256, 0, config.SafeZoneTuning{Count: 0, Size: 20}); len(zones) != 0 {
		t.Errorf("expected no zones, got %d", len(zones))
	}
	if zones := PlaceSafeZones(0, 256, 0, config.SafeZoneTuning{Count: 3, Size: 20}); len(zones) != 0 {
		t.Errorf("expected no zones for empty frame, got %d", len(zones))
	}
}

func TestClipZone(t *testing.T) {
	tests := []struct {
		name       string
		x, y, size int
		ok         bool
		xs, xe     int
		ys, ye     int
	}{
		{"inside", 10, 10, 5, true, 10, 14, 10, 14},
		{"clipped right", 60, 0, 10, true, 60, 63, 0, 9},
		{"clipped top left", -4, -4, 10, true, 0, 5, 0, 5},
		{"fully outside", 70, 70, 5, false, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z, ok := clipZone(tc.x, tc.y, tc.size, 64, 64)
			if ok != tc.ok {
				t.Fatalf("clipZone() ok = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if z.XStart != tc.xs || z.XEnd != tc.xe || z.YStart != tc.ys || z.YEnd != tc.ye {
				t.Errorf("clipZone() = %+v", z)
			}
		})
	}
}

func TestSafeZoneContainsInclusive(t *testing.T) {
	z := SafeZone{XStart: 10, XEnd: 20, YStart: 5, YEnd: 8}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 6, true},
		{"top-left corner", 10, 5, true},
		{"bottom-right corner (inclusive)", 20, 8, true},
		{"outside right", 21, 6, false},
		{"outside bottom", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := z.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}
