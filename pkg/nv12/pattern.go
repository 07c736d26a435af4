package nv12

import "fmt"

type Pattern string

const (
	PatternWhite    Pattern = "white"
	PatternChecker  Pattern = "checker"
	PatternGradient Pattern = "gradient"
)

// checkerboard block size and levels
const (
	checkerBlock = 32
	checkerLight = 200
	checkerDark  = 50
	checkerU     = 90
	checkerV     = 240
)

// Generate renders the named test pattern into a new NV12 buffer.
func Generate(p Pattern, w, h int) ([]byte, error) {
	switch p {
	case PatternWhite:
		return White(w, h)
	case PatternChecker:
		return Checkerboard(w, h)
	case PatternGradient:
		return Gradient(w, h)
	}
	return nil, fmt.Errorf("unknown pattern [%v]", p)
}

// White fills a frame with peak luma and neutral chroma.
func White(w, h int) ([]byte, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	frame := make([]byte, FrameSize(w, h))
	for i := 0; i < w*h; i++ {
		frame[i] = 255
	}
	for i := w * h; i < len(frame); i++ {
		frame[i] = chromaZero
	}
	return frame, nil
}

// Checkerboard draws alternating luma blocks over a constant red-ish chroma.
func Checkerboard(w, h int) ([]byte, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	frame := make([]byte, FrameSize(w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(checkerDark)
			if (x/checkerBlock+y/checkerBlock)%2 == 0 {
				v = checkerLight
			}
			frame[y*w+x] = v
		}
	}
	uv := frame[w*h:]
	for i := 0; i < len(uv); i += 2 {
		uv[i], uv[i+1] = checkerU, checkerV
	}
	return frame, nil
}

// Gradient ramps luma left to right and U top to bottom, V stays neutral.
func Gradient(w, h int) ([]byte, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	frame := make([]byte, FrameSize(w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			frame[y*w+x] = byte(x * 255 / (w - 1))
		}
	}
	rows := h / 2
	ry := rows - 1
	if ry < 1 {
		ry = 1
	}
	uv := frame[w*h:]
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x += 2 {
			uv[y*w+x] = byte(y * 255 / ry)
			uv[y*w+x+1] = chromaZero
		}
	}
	return frame, nil
}
