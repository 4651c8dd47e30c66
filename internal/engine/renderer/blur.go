package renderer

import (
	gomath "math"
)

// MaxBlurRadius bounds the kernel; it matches the uWeights array size in
// the blur shader minus the centre tap.
const MaxBlurRadius = 31

const blurVertexShader = `
#version 410 core

out vec2 vUV;

// Fullscreen triangle from the vertex index, no buffers needed
void main() {
	vec2 pos = vec2(float((gl_VertexID << 1) & 2), float(gl_VertexID & 2));
	vUV = pos;
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

const blurFragmentShader = `
#version 410 core

in vec2 vUV;

uniform sampler2D uImage;
uniform vec2 uStep;
uniform int uRadius;
uniform float uWeights[32];

out vec4 FragColor;

void main() {
	vec4 sum = texture(uImage, vUV) * uWeights[0];
	for (int i = 1; i <= uRadius; i++) {
		vec2 off = uStep * float(i);
		sum += texture(uImage, vUV + off) * uWeights[i];
		sum += texture(uImage, vUV - off) * uWeights[i];
	}
	FragColor = sum;
}
`

// GaussianKernel returns the one-sided weights of a normalized Gaussian:
// w[0] is the centre tap and w[i] applies at both +i and -i, so
// w[0] + 2*(w[1]+...+w[radius]) == 1. The radius is clamped to
// [0, MaxBlurRadius]; sigma <= 0 gives the identity kernel.
func GaussianKernel(radius int, sigma float32) []float32 {
	radius = min(max(radius, 0), MaxBlurRadius)
	if sigma <= 0 || radius == 0 {
		return []float32{1}
	}

	weights := make([]float32, radius+1)
	s2 := 2 * float64(sigma) * float64(sigma)
	var total float64
	for i := range weights {
		w := gomath.Exp(-float64(i*i) / s2)
		weights[i] = float32(w)
		if i == 0 {
			total += w
		} else {
			total += 2 * w
		}
	}
	for i := range weights {
		weights[i] = float32(float64(weights[i]) / total)
	}
	return weights
}
