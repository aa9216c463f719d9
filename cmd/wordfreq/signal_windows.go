//go:build windows

package main

import (
	"os"
	"os/signal"
)

// notifySignals routes the signals that cancel a running command to ch.
// Windows has no SIGTERM.
func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
