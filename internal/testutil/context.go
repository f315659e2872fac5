// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

// DefaultTimeout bounds one scripted quiz session.
const DefaultTimeout = 5 * time.Second

// Context returns a context that ends with the test, after timeout, or just
// before the test binary deadline, whichever comes first.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, isDeadliner := t.(interface{ Deadline() (time.Time, bool) }); isDeadliner {
		if deadline, ok := dt.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Lines returns typed input, one command per line.
func Lines(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
