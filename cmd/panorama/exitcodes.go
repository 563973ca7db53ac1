package main

import "fmt"

// Exit codes for the panorama CLI.
const (
	ExitOK          = 0 // Command succeeded.
	ExitInvalidArgs = 1 // Invalid arguments or bad path.
	ExitLoadFailure = 2 // Input files could not be loaded.
	ExitWriteFailed = 3 // Report could not be written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError with a formatted message.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
