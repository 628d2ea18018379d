package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables file logging at startup.
const EnvVar = "UILAYOUT_DEBUG"

var (
	out     io.Writer
	logFile *os.File
	mu      sync.Mutex
)

func init() {
	if path := os.Getenv(EnvVar); path != "" {
		_ = Init(path)
	}
}

// Init starts appending debug output to the file at path.
// If path is empty, uses "uilayout-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "uilayout-debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	out = f
	return nil
}

// SetOutput sends debug output to w. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out = w
}

// Close closes the debug log file opened by Init and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// closeLocked does the actual close work. Caller must hold mu.
func closeLocked() error {
	out = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether log output is configured.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	write("", format, args...)
}

// Warn writes a warning-prefixed message. Layout passes use it for values
// they replace with a best-effort result instead of failing.
func Warn(format string, args ...any) {
	write("[warn] ", format, args...)
}

func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s%s\n", timestamp, prefix, msg)
	if logFile != nil {
		logFile.Sync()
	}
}
