package main

import (
	"errors"
	"fmt"
	"log"
	"syscall/js"

	"github.com/seqsense/targetrange/config"
)

func fetchGet(path string) ([]byte, error) {
	var b []byte
	var errored bool
	chErr := make(chan error, 1)
	js.Global().Call("fetch", path, map[string]interface{}{
		"cache": "no-store",
	}).Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if !args[0].Get("ok").Bool() {
				errored = true
				if args[0].Get("status").Int() == 404 {
					chErr <- fmt.Errorf("fetching %s: %w", path, errNotFound)
					return nil
				}
				chErr <- fmt.Errorf("fetching %s: %s", path, args[0].Get("statusText").String())
				return nil
			}
			return args[0].Call("arrayBuffer")
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			errored = true
			chErr <- fmt.Errorf("fetching %s: request failed", path)
			return nil
		}),
	).Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if errored {
				return nil
			}
			array := js.Global().Get("Uint8Array").New(args[0])
			n := array.Get("byteLength").Int()
			b = make([]byte, n)
			js.CopyBytesToGo(b, array)
			chErr <- nil
			return nil
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if !errored {
				chErr <- errors.New("failed to handle received data")
			}
			return nil
		}),
	)

	if err := <-chErr; err != nil {
		return nil, err
	}

	return b, nil
}

// loadConfig reads config.yaml next to the page, falling back to the
// defaults when it is missing or invalid.
func loadConfig(path string, logger *log.Logger) *config.Config {
	b, err := fetchGet(path)
	switch {
	case errors.Is(err, errNotFound):
		return config.Default()
	case err != nil:
		logger.Printf("using default config: %v", err)
		return config.Default()
	}
	cfg, err := config.Parse(b)
	if err != nil {
		logger.Printf("using default config: %v", err)
		return config.Default()
	}
	logger.Printf("config loaded from %s", path)
	return cfg
}
