package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mediajanitor/internal/config"
	"mediajanitor/internal/logging"
	"mediajanitor/internal/runlock"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
	logErr     error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// logger builds the process logger lazily. Every record carries a run_id so
// interleaved log files from repeated runs stay attributable.
func (c *commandContext) logger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logErr = err
			return
		}
		outputs := []string{"stderr"}
		if cfg.Logging.File != "" {
			outputs = append(outputs, cfg.Logging.File)
		}
		logger, err := logging.New(logging.Options{
			Level:            cfg.Logging.Level,
			Format:           cfg.Logging.Format,
			OutputPaths:      outputs,
			ErrorOutputPaths: outputs,
		})
		if err != nil {
			c.logErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.log = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	})
	return c.log, c.logErr
}

// acquireLock takes the single-instance lock for a mutating run rooted at
// root. Dry runs skip locking. The caller must Unlock the returned lock;
// Unlock on a nil lock is a no-op.
func (c *commandContext) acquireLock(root string, dryRun bool) (*runlock.Lock, error) {
	if dryRun {
		return nil, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	path := cfg.Organize.LockFile
	if path == "" {
		path = runlock.DefaultPath(root)
	}
	return runlock.Acquire(path)
}

// openViewer returns a callback that launches the configured external viewer
// without waiting for it to exit.
func (c *commandContext) openViewer() func(path string) error {
	return func(path string) error {
		cfg, err := c.ensureConfig()
		if err != nil {
			return err
		}
		return exec.Command(cfg.Viewer.Command, path).Start()
	}
}

// stdinIsTerminal reports whether interactive prompting is feasible.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
