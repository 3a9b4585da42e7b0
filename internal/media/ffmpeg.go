package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// ExtractFrame grabs a single frame from the video at the given HH:MM:SS
// timestamp and writes it as a JPEG to outputPath. quality maps to ffmpeg's
// -q:v scale (1 best, 31 worst).
func ExtractFrame(ctx context.Context, binary, videoPath, outputPath, timestamp string, quality int) error {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	if strings.TrimSpace(videoPath) == "" || strings.TrimSpace(outputPath) == "" {
		return errors.New("ffmpeg extract: empty path")
	}
	if quality < 1 {
		quality = 2
	}

	cmd := exec.CommandContext(ctx, binary,
		"-ss", timestamp,
		"-i", videoPath,
		"-vframes", "1",
		"-q:v", strconv.Itoa(quality),
		"-y",
		outputPath,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract frame: %w: %s", err, strings.TrimSpace(string(output)))
	}
	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("ffmpeg extract frame: no output written: %w", err)
	}
	return nil
}

// OverlayCorner positions a burned-in label on the image.
type OverlayCorner int

const (
	// CornerBottomLeft places the label in the lower left, where content
	// labels (TRAILER, INTERVIEW, ...) render.
	CornerBottomLeft OverlayCorner = iota
	// CornerTopRight places the label in the upper right, where season
	// affixes (S02, S02-E05) render.
	CornerTopRight
)

// OverlayLabel burns a text label onto the image in place using ffmpeg's
// drawtext filter: white text on a semi-transparent rounded box, sized
// relative to the image height. The rendering itself stays in ffmpeg; this
// wrapper only assembles the filter expression.
func OverlayLabel(ctx context.Context, binary, imagePath, label string, corner OverlayCorner) error {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.New("ffmpeg overlay: empty label")
	}

	var x, y string
	switch corner {
	case CornerTopRight:
		x, y = "w-tw-h*0.04", "h*0.04"
	default:
		x, y = "h*0.04", "h-th-h*0.04"
	}

	filter := fmt.Sprintf(
		"drawtext=text='%s':fontcolor=white:fontsize=h*0.06:box=1:boxcolor=black@0.7:boxborderw=10:x=%s:y=%s",
		escapeDrawtext(label), x, y,
	)

	tmpPath := imagePath + ".tmp.jpg"
	cmd := exec.CommandContext(ctx, binary,
		"-i", imagePath,
		"-vf", filter,
		"-q:v", "2",
		"-y",
		tmpPath,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("ffmpeg overlay label: %w: %s", err, strings.TrimSpace(string(output)))
	}
	if err := os.Rename(tmpPath, imagePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("ffmpeg overlay label: replace image: %w", err)
	}
	return nil
}

// escapeDrawtext escapes the characters drawtext treats specially inside a
// single-quoted text value.
func escapeDrawtext(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`%`, `\%`,
	)
	return replacer.Replace(value)
}
