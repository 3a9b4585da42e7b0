package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ProbeResult represents the parsed output from an ffprobe inspection.
type ProbeResult struct {
	Format ProbeFormat `json:"format"`
}

// ProbeFormat captures container-level metadata extracted by ffprobe.
type ProbeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
}

// DurationSeconds returns the container duration in seconds, or 0 when
// unavailable.
func (r ProbeResult) DurationSeconds() float64 {
	value := strings.TrimSpace(r.Format.Duration)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// Probe executes ffprobe against the provided path and decodes the JSON
// response.
func Probe(ctx context.Context, binary string, path string) (ProbeResult, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return ProbeResult{}, errors.New("ffprobe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return ProbeResult{}, fmt.Errorf("ffprobe: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return ProbeResult{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// MidpointTimestamp converts a duration in seconds into the HH:MM:SS
// timestamp of the video midpoint.
func MidpointTimestamp(durationSeconds float64) string {
	middle := int(durationSeconds / 2)
	hours := middle / 3600
	minutes := (middle % 3600) / 60
	seconds := middle % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
