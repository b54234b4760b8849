package main

import (
	"log"

	webgl "github.com/seqsense/webgl-go"
)

func showDebugInfo(gl *webgl.WebGL, logger *log.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Print("Failed to get debug info")
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		logger.Print("GPU info: hidden by the browser privacy setting")
		return
	}
	logger.Print("GPU: ",
		gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(), " ",
		gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	)
}
