package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

// sentryFlushTimeout bounds how long a crash waits for the report to leave
const sentryFlushTimeout = 2 * time.Second

var (
	cleanupMu sync.Mutex
	cleanup   func()
)

// SetCrashCleanup registers the function that restores the terminal before a crash report is printed
// The binary sets this to the tcell screen's Fini once the screen is initialized
func SetCrashCleanup(fn func()) {
	cleanupMu.Lock()
	cleanup = fn
	cleanupMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal, reports to Sentry and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	cleanupMu.Lock()
	fn := cleanup
	cleanup = nil
	cleanupMu.Unlock()
	if fn != nil {
		fn()
	}

	// No-op when sentry.Init was never called: the current hub has no client
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.Recover(r)
		hub.Flush(sentryFlushTimeout)
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

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
