package i

// Logger is a component logger. Messages are complete sentences; callers
// format them with fmt.Sprintf.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
