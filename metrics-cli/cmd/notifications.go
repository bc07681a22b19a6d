package main

import (
	"fmt"
	"os"
)

// cliNotifier prints session-guard notices to stderr so they never mingle
// with command output that may be piped elsewhere.
type cliNotifier struct{}

func (c *cliNotifier) SessionExpired() {
	fmt.Fprintln(
		os.Stderr,
		"Your session has expired. Use `metrics login` to continue.",
	)
}

func (c *cliNotifier) PermissionDenied() {
	fmt.Fprintln(
		os.Stderr,
		"You do not have permission to perform that action.",
	)
}

func (c *cliNotifier) RateLimited() {
	fmt.Fprintln(
		os.Stderr,
		"The server is rate limiting requests. Try again shortly.",
	)
}
