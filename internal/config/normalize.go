package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeResolver()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DriveFSDir) == "" {
		c.Paths.DriveFSDir = defaultDriveFSDir
	}
	if c.Paths.DriveFSDir, err = expandPath(c.Paths.DriveFSDir); err != nil {
		return fmt.Errorf("paths.drivefs_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CloudStorageDir) == "" {
		c.Paths.CloudStorageDir = defaultCloudStorageDir
	}
	if c.Paths.CloudStorageDir, err = expandPath(c.Paths.CloudStorageDir); err != nil {
		return fmt.Errorf("paths.cloud_storage_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeResolver() {
	c.Resolver.Account = strings.TrimSpace(c.Resolver.Account)
	if c.Resolver.MaxParentDepth <= 0 {
		c.Resolver.MaxParentDepth = defaultMaxParentDepth
	}
	if c.Resolver.ProbeBufferSize <= 0 {
		c.Resolver.ProbeBufferSize = defaultProbeBufferSize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
