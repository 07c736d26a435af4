package nv12

import (
	"errors"
	"testing"
)

func TestGenerateWhite(t *testing.T) {
	w, h := 8, 4
	frame, err := Generate(PatternWhite, w, h)
	if err != nil {
		t.Fatal(err)
	}
	if len(frame) != FrameSize(w, h) {
		t.Fatalf("size %v is not %v", len(frame), FrameSize(w, h))
	}
	for i := 0; i < w*h; i++ {
		if frame[i] != 255 {
			t.Fatalf("luma byte %v is %v, not 255", i, frame[i])
		}
	}
	for i := w * h; i < len(frame); i++ {
		if frame[i] != 128 {
			t.Fatalf("chroma byte %v is %v, not 128", i, frame[i])
		}
	}
}

func TestGenerateCheckerboard(t *testing.T) {
	w, h := 64, 64
	frame, err := Generate(PatternChecker, w, h)
	if err != nil {
		t.Fatal(err)
	}

	luma := []struct {
		x, y int
		want byte
	}{
		{x: 0, y: 0, want: 200},
		{x: 31, y: 31, want: 200},
		{x: 32, y: 0, want: 50},
		{x: 0, y: 32, want: 50},
		{x: 32, y: 32, want: 200},
	}
	for _, tt := range luma {
		if got := frame[tt.y*w+tt.x]; got != tt.want {
			t.Errorf("luma (%v,%v) is %v, not %v", tt.x, tt.y, got, tt.want)
		}
	}

	uv := frame[w*h:]
	for i := 0; i < len(uv); i += 2 {
		if uv[i] != 90 || uv[i+1] != 240 {
			t.Fatalf("chroma pair %v is (%v,%v), not (90,240)", i/2, uv[i], uv[i+1])
		}
	}
}

func TestGenerateGradient(t *testing.T) {
	w, h := 256, 16
	frame, err := Generate(PatternGradient, w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		if frame[y*w] != 0 || frame[y*w+w-1] != 255 {
			t.Fatalf("luma row %v doesn't ramp 0..255: %v..%v", y, frame[y*w], frame[y*w+w-1])
		}
	}
	uv := frame[w*h:]
	if uv[0] != 0 || uv[(h/2-1)*w] != 255 {
		t.Errorf("U doesn't ramp 0..255: %v..%v", uv[0], uv[(h/2-1)*w])
	}
	for i := 1; i < len(uv); i += 2 {
		if uv[i] != 128 {
			t.Fatalf("V byte %v is %v, not 128", i, uv[i])
		}
	}
}

func TestGenerateRejects(t *testing.T) {
	for _, p := range []Pattern{PatternWhite, PatternChecker, PatternGradient} {
		if _, err := Generate(p, 5, 4); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%v accepted odd width: %v", p, err)
		}
	}
	if _, err := Generate("plasma", 4, 4); err == nil {
		t.Error("unknown pattern accepted")
	}
}
