package config

const (
	defaultLibraryDir         = "~/library"
	defaultLogDir             = "~/.local/share/subsync/logs"
	defaultDataDir            = "~/.local/share/subsync"
	defaultContainerExtension = ".mp4"
	defaultSubtitleExtension  = ".srt"
	defaultFFSubsyncBinary    = "ffsubsync"
	defaultFFprobeBinary      = "ffprobe"
	defaultShell              = "bash"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
			DataDir:    defaultDataDir,
		},
		Sync: Sync{
			ContainerExtension:  defaultContainerExtension,
			SubtitleExtension:   defaultSubtitleExtension,
			FFSubsyncBinary:     defaultFFSubsyncBinary,
			FFprobeBinary:       defaultFFprobeBinary,
			Shell:               defaultShell,
			GoldenSectionSearch: true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
