package main

// Exit codes.
const (
	ExitSuccess     = 0 // All files processed
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config file)
	ExitDataError   = 3 // One or more files failed extraction or validation
)
