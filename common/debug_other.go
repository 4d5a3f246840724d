//go:build !js

package common

import (
	"log"
)

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		log.Println(args...)
	}
}

// DebugWarn logs a warning.
func DebugWarn(args ...interface{}) {
	log.Println(append([]interface{}{"warn:"}, args...)...)
}

// DebugError logs an error.
func DebugError(args ...interface{}) {
	log.Println(append([]interface{}{"error:"}, args...)...)
}
