package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateResolver(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DriveFSDir == "" {
		return errors.New("paths.drivefs_dir must be set")
	}
	if c.Paths.CloudStorageDir == "" {
		return errors.New("paths.cloud_storage_dir must be set")
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.MaxParentDepth < 1 {
		return errors.New("resolver.max_parent_depth must be at least 1")
	}
	if c.Resolver.ProbeBufferSize < 1 {
		return errors.New("resolver.probe_buffer_size must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
