package nv12

import (
	"fmt"
	"strconv"
)

// The shader variants encode the conversion from convert.go with the
// fixed-point table folded into float literals on normalized samples.

func coef(c int) string { return strconv.FormatFloat(float64(c)/256, 'f', -1, 64) }
func norm(c int) string { return strconv.FormatFloat(float64(c)/255, 'f', -1, 64) }

// FragmentShaderSource returns a GLSL ES fragment shader that samples the
// Y and interleaved UV textures of a frame.
func FragmentShaderSource() string {
	return fmt.Sprintf(fragmentTemplate,
		coef(coefY), norm(lumaMin), norm(chromaZero),
		coef(coefRV), coef(coefGU), coef(coefGV), coef(coefBU))
}

// ComputeShaderSource returns a GLSL compute shader over image bindings.
func ComputeShaderSource() string {
	return fmt.Sprintf(computeTemplate,
		coef(coefY), norm(lumaMin), norm(chromaZero),
		coef(coefRV), coef(coefGU), coef(coefGV), coef(coefBU))
}

const fragmentTemplate = `#version 300 es
precision mediump float;

in vec2 vTexCoord;
out vec4 outColor;

uniform sampler2D texY;
uniform sampler2D texUV;

void main() {
    float c = %[1]s * (texture(texY, vTexCoord).r - %[2]s);
    vec2 duv = texture(texUV, vTexCoord).rg - vec2(%[3]s);
    vec3 rgb = vec3(
        c + %[4]s * duv.y,
        c - %[5]s * duv.x - %[6]s * duv.y,
        c + %[7]s * duv.x);
    outColor = vec4(clamp(rgb, 0.0, 1.0), 1.0);
}
`

const computeTemplate = `#version 450

layout(local_size_x = 16, local_size_y = 16) in;
layout(binding = 0, r8) readonly uniform image2D imgY;
layout(binding = 1, rg8) readonly uniform image2D imgUV;
layout(binding = 2, rgba8) writeonly uniform image2D imgRGB;

void main() {
    ivec2 p = ivec2(gl_GlobalInvocationID.xy);
    float c = %[1]s * (imageLoad(imgY, p).r - %[2]s);
    vec2 duv = imageLoad(imgUV, p / 2).rg - vec2(%[3]s);
    vec3 rgb = vec3(
        c + %[4]s * duv.y,
        c - %[5]s * duv.x - %[6]s * duv.y,
        c + %[7]s * duv.x);
    imageStore(imgRGB, p, vec4(clamp(rgb, 0.0, 1.0), 1.0));
}
`
