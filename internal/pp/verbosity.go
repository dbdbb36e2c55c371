package pp

// Verbosity is the type of message levels.
type Verbosity int

// Pre-defined verbosity levels.
const (
	Info             Verbosity = iota // useful additional info
	Notice                            // important messages
	Warning                           // unusual but harmless situations
	Error                             // failures that stop the current task
	Verbose          Verbosity = Info
	Quiet            Verbosity = Notice
	DefaultVerbosity Verbosity = Verbose
)
