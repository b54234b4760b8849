package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

var (
	errContextLostEvent       = errors.New("received context lost event")
	errPointerLockUnsupported = errors.New("pointer lock is not supported")
	errNotFound               = errors.New("not found")
)

// errorToJS converts err for a value returned to JavaScript callers,
// such as the debug console.
func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

// consoleResultToJS returns the console output or a JavaScript Error.
func consoleResultToJS(res consoleResult) interface{} {
	if res.err != nil {
		return errorToJS(fmt.Errorf("console: %w", res.err))
	}
	return res.out
}
