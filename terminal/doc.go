// Package terminal restores the controlling terminal after a crash and
// reports whether the process has one.
//
// tcell owns the screen during normal operation; these helpers only cover
// the paths where its Fini never runs.
package terminal
