// Package logger writes CLI and TUI diagnostics to a file, since the terminal
// belongs to the dashboard while it runs.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	sugar   = zap.NewNop().Sugar()
	logFile *os.File
)

// Init opens dir/cli-<timestamp>.log and routes Log and LogError to it.
// Until Init is called every log call is discarded.
func Init(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("cli-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named("cli").Sugar()
	return path, nil
}

// Log writes a log message
func Log(format string, v ...any) {
	mu.Lock()
	s := sugar
	mu.Unlock()
	s.Infof(format, v...)
}

// LogError writes an error log message
func LogError(err error, format string, v ...any) {
	mu.Lock()
	s := sugar
	mu.Unlock()
	s.Errorw(fmt.Sprintf(format, v...), zap.Error(err))
}

// CloseLog flushes and closes the log file
func CloseLog() {
	mu.Lock()
	defer mu.Unlock()
	_ = sugar.Sync()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	sugar = zap.NewNop().Sugar()
}
