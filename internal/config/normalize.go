package config

import (
	"runtime"
	"sort"
	"strings"
)

func (c *Config) normalize() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File != "" {
		expanded, err := ExpandPath(c.Logging.File)
		if err != nil {
			return err
		}
		c.Logging.File = expanded
	}

	c.Viewer.Command = strings.TrimSpace(c.Viewer.Command)
	if c.Viewer.Command == "" {
		c.Viewer.Command = defaultViewerCommand()
	}

	if c.Organize.LockFile != "" {
		expanded, err := ExpandPath(c.Organize.LockFile)
		if err != nil {
			return err
		}
		c.Organize.LockFile = expanded
	}

	sortEras(c.Health.PhotoEras)
	sortEras(c.Health.VideoEras)
	return nil
}

// sortEras orders era tables chronologically with the open-ended era
// (MaxYear 0) last.
func sortEras(eras []Era) {
	sort.SliceStable(eras, func(i, j int) bool {
		a, b := eras[i].MaxYear, eras[j].MaxYear
		if a == 0 {
			return false
		}
		if b == 0 {
			return true
		}
		return a < b
	})
}

func defaultViewerCommand() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}
