package nv12

import (
	"runtime"
	"sync"
)

// BT.601 conversion table, fixed-point scaled by 256.
// Both the CPU path and the generated shader sources are derived from it.
const (
	coefY  = 298
	coefRV = 409
	coefGU = 100
	coefGV = 208
	coefBU = 516

	lumaMin    = 16
	chromaZero = 128
	bias       = 128
)

// Converter turns NV12 frames of a fixed geometry into interleaved RGB24.
// Output buffers are pooled; callers may hand them back with Put.
type Converter struct {
	w, h    int
	size    int // Y plane length
	threads int
	chunk   int
	pool    sync.Pool
}

// New creates a converter for the given frame geometry.
func New(w, h int, options ...Option) (*Converter, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	opts := &Options{Threads: runtime.NumCPU()}
	opts.override(options...)

	c := &Converter{w: w, h: h, size: w * h}
	rgb := RGBSize(w, h)
	c.pool = sync.Pool{New: func() any { b := make([]byte, rgb); return &b }}

	if opts.Threaded {
		threads := opts.Threads
		if threads < 1 {
			threads = runtime.NumCPU()
		}
		// at least two rows per goroutine
		if threads > h/2 {
			threads = h / 2
		}
		// chunks the image evenly, aligned with the 2x2 chroma blocks
		chunk := h / threads
		if chunk%2 != 0 {
			chunk--
		}
		c.threads = threads
		c.chunk = chunk
	}
	return c, nil
}

// ToRGB converts a single NV12 frame into a freshly allocated RGB24 buffer.
func ToRGB(src []byte, w, h int) ([]byte, error) {
	c, err := New(w, h)
	if err != nil {
		return nil, err
	}
	return c.Convert(src)
}

// Convert validates the frame and renders it into an RGB24 buffer taken
// from the pool. On error no output is produced.
func (c *Converter) Convert(src []byte) ([]byte, error) {
	if err := checkFrame(src, c.w, c.h); err != nil {
		return nil, err
	}
	dst := *c.pool.Get().(*[]byte)
	if c.threads > 1 {
		c.parallel(src, dst)
	} else {
		c.rows(src, dst, 0, c.h)
	}
	return dst, nil
}

// Put returns an output buffer to the pool for reuse.
func (c *Converter) Put(b *[]byte) { c.pool.Put(b) }

// Size returns the converter frame geometry.
func (c *Converter) Size() (w, h int) { return c.w, c.h }

func (c *Converter) parallel(src, dst []byte) {
	wg := sync.WaitGroup{}
	wg.Add(c.threads)
	for i := 0; i < c.threads; i++ {
		from, to := i*c.chunk, (i+1)*c.chunk
		if i == c.threads-1 {
			to = c.h
		}
		go func(from, to int) {
			c.rows(src, dst, from, to)
			wg.Done()
		}(from, to)
	}
	wg.Wait()
}

// rows converts the full-range YUV rows [from, to) into RGB24.
// Every output pixel depends only on reads from src, so row ranges
// can be rendered in any order or in parallel.
func (c *Converter) rows(src, dst []byte, from, to int) {
	for y := from; y < to; y++ {
		yRow := y * c.w
		uvRow := c.size + (y>>1)*c.w
		for x := 0; x < c.w; x++ {
			uv := uvRow + (x &^ 1)
			cc := coefY * (int(src[yRow+x]) - lumaMin)
			d := int(src[uv]) - chromaZero
			e := int(src[uv+1]) - chromaZero

			p := (yRow + x) * 3
			dst[p] = clamp((cc + coefRV*e + bias) >> 8)
			dst[p+1] = clamp((cc - coefGU*d - coefGV*e + bias) >> 8)
			dst[p+2] = clamp((cc + coefBU*d + bias) >> 8)
		}
	}
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
