package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
)

// SetCrashScreen registers the screen restored by HandleCrash. Pass nil to clear
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

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
