package encryption

import "time"

// Result is what the printer goroutine receives for each file.
type Result struct {
	// Input and Output are the source and destination paths
	Input, Output string

	// OutputSize is the size of the written file in bytes
	OutputSize int64

	// Elapsed is the time spent on the file
	Elapsed time.Duration

	// Error is set when the file failed
	Error error
}
