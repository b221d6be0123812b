package i

// Logger is the leveled logger the services and handlers write to.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
