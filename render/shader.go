package render

// Shading-language sources for the color-conversion pass, for hardware
// backends that execute programs as text. The software backend uses
// the equivalent Go fragment function instead; both forms are handed
// to the backend in one ProgramSpec so they cannot drift apart
// unnoticed.

// VertexProgramSource transforms the full-screen quad and forwards the
// texture coordinate.
const VertexProgramSource = `#version 150

uniform mat4 modelViewProjection;

in vec4 position;
in vec2 texCoord0;

out vec2 vertTexCoord0;

void main(void)
{
	vertTexCoord0 = texCoord0;
	gl_Position = modelViewProjection * position;
}`

// FragmentProgramSource implements the BT.601-style conversion with
// the brightness/contrast/gamma tone parameters.
const FragmentProgramSource = `#version 150

uniform sampler2D texUnit1, texUnit2, texUnit3;
uniform float brightness;
uniform float contrast;
uniform vec3  gamma;

in vec2 vertTexCoord0;

out vec4 fragColor;

void main(void)
{
	vec3 yuv;
	yuv.x = texture(texUnit1, vertTexCoord0.st).x - 16.0/256.0 + brightness;
	yuv.y = texture(texUnit2, vertTexCoord0.st).x - 128.0/256.0;
	yuv.z = texture(texUnit3, vertTexCoord0.st).x - 128.0/256.0;

	fragColor.r = dot(yuv, vec3(1.164,  0.000,  1.596)) - 0.5;
	fragColor.g = dot(yuv, vec3(1.164, -0.391, -0.813)) - 0.5;
	fragColor.b = dot(yuv, vec3(1.164,  2.018,  0.000)) - 0.5;
	fragColor.a = 1.0;

	fragColor.rgb = fragColor.rgb * contrast + vec3(0.5);
	fragColor.rgb = pow(fragColor.rgb, gamma);
}`
