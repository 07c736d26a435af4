package nv12

import (
	"strconv"
	"strings"
	"testing"
)

// The shader sources must carry the exact float equivalents of the
// fixed-point table, so the GPU paths stay bit-close to the CPU oracle.
func TestShaderCoefficients(t *testing.T) {
	sources := map[string]string{
		"fragment": FragmentShaderSource(),
		"compute":  ComputeShaderSource(),
	}
	literals := []string{
		coef(coefY),  // 1.1640625
		coef(coefRV), // 1.59765625
		coef(coefGU), // 0.390625
		coef(coefGV), // 0.8125
		coef(coefBU), // 2.015625
		norm(lumaMin),
		norm(chromaZero),
	}
	for name, src := range sources {
		for _, lit := range literals {
			if !strings.Contains(src, lit) {
				t.Errorf("%v shader misses %v", name, lit)
			}
		}
	}
	if !strings.Contains(sources["fragment"], "texture(") {
		t.Error("fragment shader doesn't sample textures")
	}
	if !strings.Contains(sources["compute"], "gl_GlobalInvocationID") {
		t.Error("compute shader misses the invocation id")
	}
}

func TestShaderCoefDerivation(t *testing.T) {
	tests := []struct {
		c    int
		want float64
	}{
		{c: coefY, want: 298.0 / 256},
		{c: coefRV, want: 409.0 / 256},
		{c: coefGU, want: 100.0 / 256},
		{c: coefGV, want: 208.0 / 256},
		{c: coefBU, want: 516.0 / 256},
	}
	for _, tt := range tests {
		got, err := strconv.ParseFloat(coef(tt.c), 64)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%v/256 printed as %v, not %v", tt.c, got, tt.want)
		}
	}
}
