//go:build windows
// +build windows

// File: internal/poll/poll_windows.go
//
// The windows backend waits on native handles and needs no poll(2) shim;
// this file keeps the package buildable on windows.

package poll
