// Package extras maintains manually managed special episodes: it organizes
// each video into its own folder, writes the Kodi NFO, extracts a thumbnail
// from the video midpoint, and burns a content label onto the image.
package extras

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/JanKremser/kodi-tools/internal/config"
	"github.com/JanKremser/kodi-tools/internal/fileutil"
	"github.com/JanKremser/kodi-tools/internal/library"
	"github.com/JanKremser/kodi-tools/internal/logging"
	"github.com/JanKremser/kodi-tools/internal/media"
	"github.com/JanKremser/kodi-tools/internal/nfo"
	"github.com/JanKremser/kodi-tools/internal/services"
)

// Options selects what the generator regenerates.
type Options struct {
	// ForceNFO rewrites NFO files even when they already exist.
	ForceNFO bool
	// ForceThumb recreates thumbnails even when they already exist.
	ForceThumb bool
	// Labels enables burning detected content labels onto thumbnails.
	Labels bool
	// DryRun reports planned work without touching the library.
	DryRun bool
}

// Outcome describes what happened to a single extra video.
type Outcome struct {
	VideoPath string
	ID        library.EpisodeID
	Title     string
	Moved     bool
	NFO       bool
	Thumbnail bool
	Label     string
	Err       error
}

// Report summarizes a generator run.
type Report struct {
	Root      string
	Outcomes  []Outcome
	Processed int
	Failed    int
}

// Generator drives the extras workflow for one library tree.
type Generator struct {
	cfg    *config.Config
	logger *slog.Logger
	opts   Options
}

// NewGenerator builds a generator. A nil logger disables logging.
func NewGenerator(cfg *config.Config, logger *slog.Logger, opts Options) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "extras"),
		opts:   opts,
	}
}

// Run discovers every extra video under root and processes each one. Errors
// scoped to a single video are recorded in its outcome and do not stop the
// run; only configuration-level failures abort.
func (g *Generator) Run(ctx context.Context, root string) (*Report, error) {
	videos, err := library.FindExtraVideos(root, g.cfg.Extras.VideoExtensions, g.cfg.Extras.MinEpisode)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "extras", "scan", "discover extra videos", err)
	}

	report := &Report{Root: root, Outcomes: make([]Outcome, 0, len(videos))}
	for _, video := range videos {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		outcome := g.processVideo(ctx, video)
		if outcome.Err != nil {
			report.Failed++
			g.logger.Warn("extra failed",
				logging.String(logging.FieldRecord, video.Path),
				logging.Error(outcome.Err))
			if !services.IsRecordLocal(outcome.Err) {
				report.Outcomes = append(report.Outcomes, outcome)
				return report, outcome.Err
			}
		} else {
			report.Processed++
			attrs := []logging.Attr{logging.String(logging.FieldRecord, outcome.VideoPath)}
			if outcome.NFO {
				attrs = append(attrs, logging.Bool("nfo", true))
			}
			if outcome.Thumbnail {
				attrs = append(attrs, logging.Bool("thumbnail", true))
			}
			if outcome.Label != "" {
				attrs = append(attrs, logging.String("label", outcome.Label))
			}
			g.logger.Debug("extra processed", logging.Args(attrs...)...)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

func (g *Generator) processVideo(ctx context.Context, video library.ExtraVideo) Outcome {
	title := video.ID.Title
	if title == "" {
		title = fmt.Sprintf("Episode %d", video.ID.Episode)
	}
	outcome := Outcome{VideoPath: video.Path, ID: video.ID, Title: title}

	currentPath, moved, err := g.organize(video.Path, video.ID, title)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Moved = moved
	outcome.VideoPath = currentPath

	meta, found, err := LoadMetadata(currentPath)
	if err != nil {
		outcome.Err = services.Wrap(services.ErrPersistence, "extras", "metadata", currentPath, err)
		return outcome
	}
	if !found {
		meta = Metadata{
			VideoFile: filepath.Base(currentPath),
			Season:    video.ID.Season,
			Episode:   video.ID.Episode,
			Title:     title,
			Metadata: EpisodeMetadata{
				Aired: time.Now().Format(nfo.AiredLayout),
			},
		}
	}

	nfoPath := NFOPath(currentPath)
	thumbPath := ThumbnailPath(currentPath)
	needsNFO := g.opts.ForceNFO || !fileExists(nfoPath)
	needsThumb := g.opts.ForceThumb || !fileExists(thumbPath)

	if needsNFO {
		if err := g.writeNFO(nfoPath, video.ID, title, meta.Metadata); err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.NFO = true
	}

	if needsThumb {
		timestamp, label, err := g.writeThumbnail(ctx, currentPath, thumbPath, meta, title)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Thumbnail = true
		outcome.Label = label
		meta.ThumbnailTimestamp = timestamp
	}

	if g.opts.DryRun {
		return outcome
	}

	meta.VideoFile = filepath.Base(currentPath)
	meta.Season = video.ID.Season
	meta.Episode = video.ID.Episode
	meta.Title = title
	meta.NFOCreated = fileExists(nfoPath)
	meta.ThumbCreated = fileExists(thumbPath)
	meta.LastProcessed = time.Now().Format(time.RFC3339)
	if err := SaveMetadata(currentPath, meta); err != nil {
		outcome.Err = services.Wrap(services.ErrPersistence, "extras", "metadata", currentPath, err)
	}
	return outcome
}

// organize moves the video into its per-episode folder "S00E1001 - Title/".
// Returns the video's path after the move. In dry-run mode the original path
// is kept so later probing still finds the file.
func (g *Generator) organize(videoPath string, id library.EpisodeID, title string) (string, bool, error) {
	folderName := library.ExtraFolderName(id, title)
	parent := filepath.Dir(videoPath)
	if filepath.Base(parent) == folderName {
		return videoPath, false, nil
	}

	targetDir := filepath.Join(parent, folderName)
	targetPath := filepath.Join(targetDir, filepath.Base(videoPath))
	if fileExists(targetPath) {
		return "", false, services.Wrap(services.ErrPersistence, "extras", "organize",
			fmt.Sprintf("target already exists: %s", targetPath), nil)
	}

	if g.opts.DryRun {
		g.logger.Info("would organize",
			logging.String(logging.FieldRecord, videoPath),
			logging.String("folder", folderName))
		return videoPath, true, nil
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", false, services.Wrap(services.ErrPersistence, "extras", "organize", targetDir, err)
	}
	if err := fileutil.MoveFile(videoPath, targetPath); err != nil {
		return "", false, services.Wrap(services.ErrPersistence, "extras", "organize", videoPath, err)
	}
	g.logger.Info("organized",
		logging.String(logging.FieldRecord, filepath.Base(videoPath)),
		logging.String("folder", folderName))
	return targetPath, true, nil
}

func (g *Generator) writeNFO(nfoPath string, id library.EpisodeID, title string, meta EpisodeMetadata) error {
	episode := nfo.Episode{
		Title:    title,
		Season:   id.Season,
		Episode:  id.Episode,
		Aired:    meta.Aired,
		Plot:     meta.Plot,
		Rating:   meta.Rating,
		Director: meta.Director,
		Credits:  meta.Credits,
	}
	for _, actor := range meta.Actors {
		episode.Actors = append(episode.Actors, nfo.Actor{Name: actor.Name, Role: actor.Role})
	}

	if g.opts.DryRun {
		g.logger.Info("would write nfo", logging.String(logging.FieldRecord, nfoPath))
		return nil
	}
	if err := episode.Save(nfoPath); err != nil {
		return services.Wrap(services.ErrPersistence, "extras", "nfo", nfoPath, err)
	}
	g.logger.Info("nfo written", logging.String(logging.FieldRecord, filepath.Base(nfoPath)))
	return nil
}

// writeThumbnail extracts a frame and optionally burns on the detected label.
// Returns the timestamp used so it can be persisted for later runs.
func (g *Generator) writeThumbnail(ctx context.Context, videoPath, thumbPath string, meta Metadata, title string) (string, string, error) {
	timestamp := meta.ThumbnailTimestamp
	if timestamp == "" {
		timestamp = g.midpointTimestamp(ctx, videoPath)
	}

	labelText := ""
	label, hasLabel := Label{}, false
	if g.opts.Labels {
		label, hasLabel = DetectLabel(title)
		if hasLabel {
			labelText = label.Text
		}
	}

	if g.opts.DryRun {
		g.logger.Info("would write thumbnail",
			logging.String(logging.FieldRecord, thumbPath),
			logging.String("timestamp", timestamp))
		return timestamp, labelText, nil
	}

	extractCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.FFmpeg.ExtractTimeout)*time.Second)
	defer cancel()
	if err := media.ExtractFrame(extractCtx, g.cfg.FFmpeg.FFmpegBinary, videoPath, thumbPath, timestamp, g.cfg.Extras.ThumbnailQuality); err != nil {
		return "", "", services.Wrap(services.ErrExternalTool, "extras", "thumbnail", videoPath, err)
	}

	if hasLabel {
		if err := media.OverlayLabel(extractCtx, g.cfg.FFmpeg.FFmpegBinary, thumbPath, label.Text, media.CornerBottomLeft); err != nil {
			return "", "", services.Wrap(services.ErrExternalTool, "extras", "label", thumbPath, err)
		}
		if label.SeasonTag != "" {
			if err := media.OverlayLabel(extractCtx, g.cfg.FFmpeg.FFmpegBinary, thumbPath, label.SeasonTag, media.CornerTopRight); err != nil {
				return "", "", services.Wrap(services.ErrExternalTool, "extras", "label", thumbPath, err)
			}
		}
		g.logger.Info("label applied",
			logging.String(logging.FieldRecord, filepath.Base(thumbPath)),
			logging.String("label", label.Text))
	}

	g.logger.Info("thumbnail written",
		logging.String(logging.FieldRecord, filepath.Base(thumbPath)),
		logging.String("timestamp", timestamp))
	return timestamp, labelText, nil
}

// midpointTimestamp probes the video duration and returns the HH:MM:SS
// midpoint, falling back to the configured timestamp when probing fails.
func (g *Generator) midpointTimestamp(ctx context.Context, videoPath string) string {
	probeCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.FFmpeg.ProbeTimeout)*time.Second)
	defer cancel()

	result, err := media.Probe(probeCtx, g.cfg.FFmpeg.FFprobeBinary, videoPath)
	if err != nil || result.DurationSeconds() <= 0 {
		g.logger.Warn("duration probe failed, using fallback timestamp",
			logging.String(logging.FieldRecord, videoPath),
			logging.String("fallback", g.cfg.Extras.FallbackTimestamp))
		return g.cfg.Extras.FallbackTimestamp
	}
	return media.MidpointTimestamp(result.DurationSeconds())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
