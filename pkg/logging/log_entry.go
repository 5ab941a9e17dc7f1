package logging

// LogEntry is a single structured log record handed to every Output.
type LogEntry struct {
	Time     int64 // Unix nanoseconds
	Severity Severity
	Message  string

	// Caller information
	File     string
	Line     int
	Function string

	// Structured fields attached by the logger
	Fields map[string]interface{}
}
