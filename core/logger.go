package core

// Logger is any service that can log messages.
// args may hold errors, map[string]interface{} extras, a RequestInfo or any printable value.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// RequestInfo identifies the API request a log entry was produced by.
type RequestInfo struct {
	ID     string
	Method string
	Path   string
}
