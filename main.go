//go:build !js

package main

import (
	"log"
)

func main() {
	log.Fatal("targetrange runs in the browser: build with GOOS=js GOARCH=wasm")
}
