package renderer

// Solid cubes: flat color with one directional light.
const solidVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;

out vec3 vNormal;

void main() {
	vNormal = aNormal;
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const solidFragmentShader = `
#version 410 core

in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;

out vec4 FragColor;

void main() {
	float diff = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
	vec3 light = uAmbient + uDiffuse * diff;
	FragColor = vec4(uColor * light, 1.0);
}
`

// Lines: per-vertex color, unlit.
const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uViewProj;

out vec3 vColor;

void main() {
	vColor = aColor;
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

in vec3 vColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`
