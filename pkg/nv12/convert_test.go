package nv12

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// solid builds a frame with every luma byte set to y and
// every chroma pair set to (u, v).
func solid(w, h int, y, u, v byte) []byte {
	frame := make([]byte, FrameSize(w, h))
	for i := 0; i < w*h; i++ {
		frame[i] = y
	}
	uv := frame[w*h:]
	for i := 0; i < len(uv); i += 2 {
		uv[i], uv[i+1] = u, v
	}
	return frame
}

func TestConvertSolid(t *testing.T) {
	tests := []struct {
		name    string
		y, u, v byte
		want    [3]byte
	}{
		// (298*112+128)>>8 = 130
		{name: "neutral gray", y: 128, u: 128, v: 128, want: [3]byte{130, 130, 130}},
		// (298*239+128)>>8 = 278, clamped
		{name: "white", y: 255, u: 128, v: 128, want: [3]byte{255, 255, 255}},
		// saturation on both ends of the clamp
		{name: "peak", y: 255, u: 255, v: 255, want: [3]byte{255, 125, 255}},
		{name: "floor", y: 0, u: 0, v: 0, want: [3]byte{0, 135, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := 6, 4
			out, err := ToRGB(solid(w, h, tt.y, tt.u, tt.v), w, h)
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != RGBSize(w, h) {
				t.Fatalf("output size %v is not %v", len(out), RGBSize(w, h))
			}
			for i := 0; i < len(out); i += 3 {
				if out[i] != tt.want[0] || out[i+1] != tt.want[1] || out[i+2] != tt.want[2] {
					t.Fatalf("pixel %v is %v, not %v", i/3, out[i:i+3], tt.want)
				}
			}
		})
	}
}

// Every 2x2 luma block reads one U,V pair, and the UV plane rows are
// width bytes wide. For a 4x2 frame the left block maps to the pair at
// w*h+0 and the right block to the pair at w*h+2.
func TestConvertChromaMapping(t *testing.T) {
	w, h := 4, 2
	frame := solid(w, h, 128, 0, 0)
	copy(frame[w*h:], []byte{100, 200, 200, 100})

	out, err := ToRGB(frame, w, h)
	if err != nil {
		t.Fatal(err)
	}

	left, right := [3]byte{245, 83, 74}, [3]byte{86, 125, 255}
	for _, px := range [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {2, 0, 1}, {3, 0, 1}, {2, 1, 1}, {3, 1, 1}} {
		x, y := px[0], px[1]
		want := left
		if px[2] == 1 {
			want = right
		}
		p := (y*w + x) * 3
		if got := [3]byte{out[p], out[p+1], out[p+2]}; got != want {
			t.Errorf("pixel (%v,%v) is %v, not %v", x, y, got, want)
		}
	}
}

func TestConvertRejects(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		size int
		want error
	}{
		{name: "odd width", w: 3, h: 2, size: FrameSize(4, 2), want: ErrInvalidDimensions},
		{name: "odd height", w: 4, h: 3, size: FrameSize(4, 2), want: ErrInvalidDimensions},
		{name: "zero", w: 0, h: 2, size: 0, want: ErrInvalidDimensions},
		{name: "negative", w: -4, h: 2, size: 0, want: ErrInvalidDimensions},
		{name: "short buffer", w: 4, h: 2, size: FrameSize(4, 2) - 1, want: ErrBufferSize},
		{name: "long buffer", w: 4, h: 2, size: FrameSize(4, 2) + 1, want: ErrBufferSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ToRGB(make([]byte, tt.size), tt.w, tt.h)
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v is not %v", err, tt.want)
			}
			if out != nil {
				t.Errorf("got output %v bytes on error", len(out))
			}
		})
	}
}

func TestConvertDeterminism(t *testing.T) {
	w, h := 64, 32
	frame := make([]byte, FrameSize(w, h))
	for i := range frame {
		frame[i] = byte(i * 31)
	}

	first, err := ToRGB(frame, w, h)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := ToRGB(frame, w, h)
	if !bytes.Equal(first, second) {
		t.Error("sequential runs differ")
	}

	for _, threads := range []int{2, 3, 5} {
		c, err := New(w, h, Threaded(true), Threads(threads))
		if err != nil {
			t.Fatal(err)
		}
		out, err := c.Convert(frame)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, out) {
			t.Errorf("%v threads produced different bytes", threads)
		}
		c.Put(&out)
	}
}

func BenchmarkConvert(b *testing.B) {
	tests := []struct {
		w, h    int
		threads int
	}{
		{w: 640, h: 480, threads: 0},
		{w: 640, h: 480, threads: 4},
		{w: 1280, h: 720, threads: 0},
		{w: 1280, h: 720, threads: 4},
	}
	for _, bn := range tests {
		frame := make([]byte, FrameSize(bn.w, bn.h))
		for i := range frame {
			frame[i] = byte(i * 7)
		}
		c, err := New(bn.w, bn.h, Threaded(bn.threads > 0), Threads(bn.threads))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("%vx%v_%vth", bn.w, bn.h, bn.threads), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				out, _ := c.Convert(frame)
				c.Put(&out)
			}
			b.ReportAllocs()
		})
	}
}
