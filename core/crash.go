package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Finisher restores the terminal to its normal state. Satisfied by
// tcell.Screen.
type Finisher interface {
	Fini()
}

var crashScreen Finisher

// RegisterCrashScreen records the screen to restore before a crash
// report. Call once after screen init, from the main goroutine.
func RegisterCrashScreen(s Finisher) {
	crashScreen = s
}

// HandleCrash restores the terminal and prints the panic with its
// stack trace. A raw stack dump into an alternate-screen terminal is
// unreadable, so the screen is released first.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashScreen != nil {
		crashScreen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery. Use this
// instead of the 'go' keyword so a panic off the main goroutine still
// restores the terminal.
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
