// Package logging provides pre-configured per-component loggers. Collectors
// log one debug line per collection; nothing in the pipeline logs above warn
// during normal operation, so an interactive terminal stays clean.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/config"
	"github.com/traceyt-cree8/gitterm-sub000/util/pathutil"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	cfg       config.LoggingConfig
	cfgSet    bool
)

// Configure sets the logging configuration used by subsequently created
// loggers. Loggers created before Configure use defaults plus environment
// overrides.
func Configure(c config.LoggingConfig) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	cfg = c
	cfgSet = true
}

// NewLogger creates and returns a pre-configured logger for a specific
// component. It uses a singleton pattern per component to avoid
// re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logCfg := cfg
	if !cfgSet {
		logCfg = config.Default().Logging
	}

	// Configure level
	levelStr := logCfg.Level
	if env := os.Getenv("GITVIEW_LOG_LEVEL"); env != "" {
		levelStr = env
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("GITVIEW_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	if logCfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	var writers []io.Writer
	if path := logFilePath(component, logCfg); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				writers = append(writers, file)
			}
		}
	}

	// Structured logs go to stderr only in debug mode or when the terminal
	// is non-interactive (piped, CI). An interactive TUI session must not
	// have log lines painted over it.
	isDebug := os.Getenv("GITVIEW_DEBUG") == "1" || logger.GetLevel() == logrus.DebugLevel
	isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if isDebug || !isInteractive {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// logFilePath resolves the file sink location: the configured path when set,
// otherwise .gitview/logs/<component>-<date>.log under the working directory.
func logFilePath(component string, logCfg config.LoggingConfig) string {
	if logCfg.FilePath != "" {
		if expanded, err := pathutil.Expand(logCfg.FilePath); err == nil {
			return expanded
		}
		return logCfg.FilePath
	}
	base, err := os.Getwd()
	if err != nil {
		base, err = os.UserHomeDir()
		if err != nil {
			return ""
		}
	}
	dateStr := time.Now().Format("2006-01-02")
	return filepath.Join(base, ".gitview", "logs", fmt.Sprintf("%s-%s.log", component, dateStr))
}
