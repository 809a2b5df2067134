package core

// Logger is implemented by the logging services.
// args may carry errors and Fields.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Fields is extra data attached to a log entry.
type Fields map[string]interface{}
