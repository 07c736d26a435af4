package nv12

// Scale resizes an NV12 frame with nearest-neighbor sampling, plane-wise:
// luma at full resolution, interleaved chroma at half resolution.
// Identity geometry still returns a fresh copy.
func Scale(src []byte, sw, sh, dw, dh int) ([]byte, error) {
	if err := checkFrame(src, sw, sh); err != nil {
		return nil, err
	}
	if err := checkDims(dw, dh); err != nil {
		return nil, err
	}

	dst := make([]byte, FrameSize(dw, dh))
	for y := 0; y < dh; y++ {
		sy := y * sh / dh
		for x := 0; x < dw; x++ {
			dst[y*dw+x] = src[sy*sw+x*sw/dw]
		}
	}

	// the chroma plane is half the height with full-width rows of U,V pairs
	srcUV, dstUV := src[sw*sh:], dst[dw*dh:]
	scw, sch := sw/2, sh/2
	dcw, dch := dw/2, dh/2
	for y := 0; y < dch; y++ {
		sy := y * sch / dch
		for x := 0; x < dcw; x++ {
			sx := x * scw / dcw
			d, s := y*dw+x*2, sy*sw+sx*2
			dstUV[d], dstUV[d+1] = srcUV[s], srcUV[s+1]
		}
	}
	return dst, nil
}
