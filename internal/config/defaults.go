package config

const (
	defaultLogDir             = "~/.local/share/kodi-tools/logs"
	defaultHistoryPath        = "~/.local/share/kodi-tools/history.db"
	defaultLogFormat          = "auto"
	defaultLogLevel           = "info"
	defaultOutOfBandThreshold = 10000
	defaultExtrasMinEpisode   = 1000
	defaultThumbnailQuality   = 2
	defaultFallbackTimestamp  = "00:00:05"
	defaultFFmpegBinary       = "ffmpeg"
	defaultFFprobeBinary      = "ffprobe"
	defaultProbeTimeout       = 10
	defaultExtractTimeout     = 30
)

func defaultVideoExtensions() []string {
	return []string{".mkv", ".mp4", ".avi", ".m4v", ".ts", ".mov"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Sequencing: Sequencing{
			OutOfBandThreshold: defaultOutOfBandThreshold,
		},
		Extras: Extras{
			MinEpisode:        defaultExtrasMinEpisode,
			VideoExtensions:   defaultVideoExtensions(),
			Labels:            true,
			ThumbnailQuality:  defaultThumbnailQuality,
			FallbackTimestamp: defaultFallbackTimestamp,
		},
		FFmpeg: FFmpeg{
			FFmpegBinary:   defaultFFmpegBinary,
			FFprobeBinary:  defaultFFprobeBinary,
			ProbeTimeout:   defaultProbeTimeout,
			ExtractTimeout: defaultExtractTimeout,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
