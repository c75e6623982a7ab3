package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.Mutex
	resetHook func()
)

// SetResetHook registers the function that restores the output device on crash
// The terminal host registers screen.Fini so the crash message lands on a sane tty
func SetResetHook(fn func()) {
	resetMu.Lock()
	resetHook = fn
	resetMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	hook := resetHook
	resetMu.Unlock()
	if hook != nil {
		hook()
	}

	os.Stdout.Sync()

	// \r\n in case the tty is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
