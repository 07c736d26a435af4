// Package nv12 works with raw NV12 (YUV 4:2:0 semi-planar) frames on the CPU:
// colorspace conversion to RGB24, plane-wise scaling, and test-pattern
// synthesis. A frame is a Y plane of w*h bytes followed by an interleaved
// UV plane of w*h/2 bytes, one U,V pair per 2x2 luma block.
package nv12

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrBufferSize        = errors.New("buffer size mismatch")
)

// FrameSize returns the byte length of an NV12 frame.
func FrameSize(w, h int) int { return w*h + w*h/2 }

// RGBSize returns the byte length of an interleaved RGB24 frame.
func RGBSize(w, h int) int { return w * h * 3 }

// 4:2:0 subsampling stores one U,V pair per 2x2 luma block,
// so both dimensions have to be even.
func checkDims(w, h int) error {
	if w <= 0 || h <= 0 || w%2 != 0 || h%2 != 0 {
		return fmt.Errorf("%w [%vx%v]", ErrInvalidDimensions, w, h)
	}
	return nil
}

func checkFrame(frame []byte, w, h int) error {
	if err := checkDims(w, h); err != nil {
		return err
	}
	if len(frame) != FrameSize(w, h) {
		return fmt.Errorf("%w [%v!=%v]", ErrBufferSize, len(frame), FrameSize(w, h))
	}
	return nil
}
