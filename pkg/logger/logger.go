// Package logger is the process-wide run log. Messages are dropped until
// Init or SetOutput is called.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	globalLogger *log.Logger
	logFile      *os.File
	debugEnabled bool
	mu           sync.Mutex
)

// Init opens (appending) the log file at logPath and directs the logger to it.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	globalLogger = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// SetOutput directs the logger to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()
	if w == nil {
		globalLogger = nil
		return
	}
	globalLogger = log.New(w, "", log.Ltime|log.Lmicroseconds)
}

// SetDebug enables or disables Debug messages.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// Close closes the log file and disables logging.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()
	globalLogger = nil
}

func closeFileLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	printf("[INFO] ", format, v...)
}

// Debug logs a debug message when debug output is enabled.
func Debug(format string, v ...interface{}) {
	mu.Lock()
	enabled := debugEnabled
	mu.Unlock()

	if enabled {
		printf("[DEBUG] ", format, v...)
	}
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	printf("[WARN] ", format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	printf("[ERROR] ", format, v...)
}

func printf(level, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf(level+format, v...)
	}
}
