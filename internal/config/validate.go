package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if err := validateEras("health.photo_eras", c.Health.PhotoEras); err != nil {
		return err
	}
	if err := validateEras("health.video_eras", c.Health.VideoEras); err != nil {
		return err
	}
	return nil
}

func validateEras(section string, eras []Era) error {
	if len(eras) == 0 {
		return fmt.Errorf("%s must contain at least one era", section)
	}
	openEnded := 0
	for _, era := range eras {
		if era.MinBytes < 0 || era.MinWidth < 0 || era.MinHeight < 0 {
			return fmt.Errorf("%s: thresholds must be non-negative", section)
		}
		if era.MaxYear == 0 {
			openEnded++
		}
	}
	if openEnded != 1 {
		return errors.New(section + " must contain exactly one open-ended era (max_year = 0)")
	}
	return nil
}
