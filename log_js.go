package main

import (
	"html"
	"syscall/js"
)

// logWriter appends each write to the page's log element.
type logWriter struct {
	div js.Value
}

func (w logWriter) Write(p []byte) (int, error) {
	if w.div.IsNull() || w.div.IsUndefined() {
		return len(p), nil
	}
	cur := w.div.Get("innerHTML").String()
	w.div.Set("innerHTML", cur+html.EscapeString(string(p))+"<br/>")
	return len(p), nil
}
