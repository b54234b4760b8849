package main

const vsTargetSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in vec2 aVertexAttr;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uPointScale;
	vec4 viewPosition;
	flat out lowp float vKind;
	flat out highp float vRotation;

	void main(void) {
		viewPosition = uModelViewMatrix * aVertexPosition;
		gl_Position = uProjectionMatrix * viewPosition;
		gl_PointSize = uPointScale / max(-viewPosition.z, 0.1);
		vKind = aVertexAttr[0];
		vRotation = aVertexAttr[1];
	}
`

const fsTargetSource = `#version 300 es
	flat in lowp float vKind;
	flat in highp float vRotation;
	uniform bool uTextured;
	uniform lowp float uCheckerScale;
	out lowp vec4 outColor;

	void main(void) {
		highp vec2 p = gl_PointCoord * 2.0 - 1.0;
		highp float r2 = dot(p, p);
		if (r2 > 1.0) {
			discard;
		}
		highp vec3 n = vec3(p.x, -p.y, sqrt(1.0 - r2));
		lowp float light = 0.25 + 0.75 * max(dot(n, normalize(vec3(0.3, 0.5, 1.0))), 0.0);

		lowp vec3 base;
		if (vKind < 0.5) {
			base = vec3(1.0, 0.0, 0.0);
			if (uTextured) {
				lowp float ring = fract(sqrt(r2) * 2.5);
				base = ring < 0.5 ? vec3(1.0, 0.0, 0.0) : vec3(1.0, 1.0, 1.0);
			}
		} else {
			base = vec3(0.0, 0.0, 1.0);
			if (uTextured) {
				highp float s = sin(vRotation);
				highp float c = cos(vRotation);
				highp vec2 q = mat2(c, s, -s, c) * p;
				bool odd = mod(floor(q.x * uCheckerScale * 0.5) + floor(q.y * uCheckerScale * 0.5), 2.0) > 0.5;
				base = odd ? vec3(1.0, 1.0, 1.0) : vec3(0.0, 0.0, 0.0);
			}
		}
		outColor = vec4(base * light, 1.0);
	}
`

const vsRoomSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
	}
`

const fsRoomSource = `#version 300 es
	uniform lowp vec3 uColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vec4(uColor, 1.0);
	}
`
