package systems

import (
	"fmt"
	"log"
)

// StatusLog keeps the most recent status lines of a run for the HUD,
// optionally mirroring each line to a standard logger.
type StatusLog struct {
	Lines    []string
	MaxLines int

	logger *log.Logger
}

// Global status log instance (singleton)
var globalStatusLog *StatusLog

// GetStatusLog returns the global status log instance
func GetStatusLog() *StatusLog {
	if globalStatusLog == nil {
		globalStatusLog = NewStatusLog(nil)
	}
	return globalStatusLog
}

// NewStatusLog creates a status log mirroring to logger, which may be nil
func NewStatusLog(logger *log.Logger) *StatusLog {
	return &StatusLog{
		MaxLines: 32,
		logger:   logger,
	}
}

// SetLogger mirrors every later line to logger
func (sl *StatusLog) SetLogger(logger *log.Logger) {
	sl.logger = logger
}

// Add appends a line, dropping the oldest beyond MaxLines
func (sl *StatusLog) Add(message string) {
	sl.Lines = append(sl.Lines, message)
	if len(sl.Lines) > sl.MaxLines {
		sl.Lines = sl.Lines[len(sl.Lines)-sl.MaxLines:]
	}

	if sl.logger != nil {
		sl.logger.Print(message)
	}
}

// Addf formats and appends a line
func (sl *StatusLog) Addf(format string, args ...any) {
	sl.Add(fmt.Sprintf(format, args...))
}

// Recent returns up to n most recent lines, oldest first
func (sl *StatusLog) Recent(n int) []string {
	if n > len(sl.Lines) {
		n = len(sl.Lines)
	}

	result := make([]string, n)
	copy(result, sl.Lines[len(sl.Lines)-n:])
	return result
}
