package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/slumber/internal/osutil"
	"github.com/ayoisaiah/slumber/internal/pathutil"
)

// initLogger sends slog output to a rotating JSON log file.
func initLogger(debug bool) (io.Closer, error) {
	path := pathutil.LogFilePath()

	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))

	return w, nil
}
