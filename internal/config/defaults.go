package config

const (
	defaultDriveFSDir      = "~/Library/Application Support/Google/DriveFS"
	defaultCloudStorageDir = "~/Library/CloudStorage"
	defaultLogDir          = "~/.local/share/drivefind/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"

	// DriveFS nesting rarely exceeds ~10 levels; anything past this bound is
	// treated as a corrupt ancestor chain.
	defaultMaxParentDepth = 50

	// Drive file IDs are 33-44 bytes; 256 covers the attribute value plus
	// headroom without a second syscall.
	defaultProbeBufferSize = 256
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DriveFSDir:      defaultDriveFSDir,
			CloudStorageDir: defaultCloudStorageDir,
			LogDir:          defaultLogDir,
		},
		Resolver: Resolver{
			MaxParentDepth:  defaultMaxParentDepth,
			ScanFallback:    true,
			ProbeBufferSize: defaultProbeBufferSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
