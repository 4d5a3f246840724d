//go:build js

package common

import (
	"github.com/gopherjs/gopherjs/js"
)

func console(method string, args ...interface{}) {
	c := js.Global.Get("console")
	if c == nil || c == js.Undefined {
		return
	}
	c.Call(method, args...)
}

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		console("log", args...)
	}
}

// DebugWarn logs a warning to the browser console.
func DebugWarn(args ...interface{}) {
	console("warn", args...)
}

// DebugError logs an error to the browser console.
func DebugError(args ...interface{}) {
	console("error", args...)
}
