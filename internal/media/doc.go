// Package media wraps the external ffprobe and ffmpeg binaries: duration
// probing, single-frame thumbnail extraction, and drawtext label overlays.
// Nothing here inspects media content in-process; the tools own the heavy
// lifting and this package owns argument assembly and error reporting.
package media
