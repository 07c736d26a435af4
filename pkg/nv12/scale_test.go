package nv12

import (
	"bytes"
	"errors"
	"testing"
)

func TestScaleDown(t *testing.T) {
	src := []byte{
		10, 11, 12, 13,
		20, 21, 22, 23,
		30, 31, 32, 33,
		40, 41, 42, 43,
		// UV rows
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	want := []byte{
		10, 12,
		30, 32,
		// UV
		1, 2,
	}
	got, err := Scale(src, 4, 4, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("scaled frame is\n%v, not\n%v", got, want)
	}
}

func TestScaleUp(t *testing.T) {
	src := []byte{
		1, 2,
		3, 4,
		// UV
		9, 8,
	}
	want := []byte{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
		// UV
		9, 8, 9, 8,
		9, 8, 9, 8,
	}
	got, err := Scale(src, 2, 2, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("scaled frame is\n%v, not\n%v", got, want)
	}
}

func TestScaleIdentity(t *testing.T) {
	src, err := Checkerboard(64, 32)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Scale(src, 64, 32, 64, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, src) {
		t.Error("identity scale changed the frame")
	}
	src[0] ^= 0xff
	if got[0] == src[0] {
		t.Error("identity scale shares the source buffer")
	}
}

func TestScaleRejects(t *testing.T) {
	src := make([]byte, FrameSize(4, 4))
	if _, err := Scale(src, 4, 4, 3, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("odd output accepted: %v", err)
	}
	if _, err := Scale(src, 4, 4, 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero output accepted: %v", err)
	}
	if _, err := Scale(src[:len(src)-1], 4, 4, 2, 2); !errors.Is(err, ErrBufferSize) {
		t.Errorf("short input accepted: %v", err)
	}
}
