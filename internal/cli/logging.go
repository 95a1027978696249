package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tartampluch/go-partytype/internal/config"
)

// setupLogging installs the default JSON logger. Standard output is kept for
// command results, so logs go to errOut and to a file in the cache directory.
// Only warnings reach errOut unless debug is set.
func setupLogging(errOut io.Writer, debug bool) io.Closer {
	writers := []io.Writer{errOut}
	var logFile *os.File

	if logPath, err := logFilePath(); err == nil {
		// O_TRUNC keeps the file from growing across runs.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(errOut, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

func logFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(appDir, config.LogFileName), nil
}

func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompCLI,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
