package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JanKremser/kodi-tools/internal/config"
	"github.com/JanKremser/kodi-tools/internal/sidecar"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the side-car placement caches",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheRemoveCommand())
	cacheCmd.AddCommand(newCacheClearCommand())
	return cacheCmd
}

type cacheEntryView struct {
	Path            string `json:"path"`
	OriginalSeason  int    `json:"original_season"`
	OriginalEpisode int    `json:"original_episode"`
	Aired           string `json:"aired"`
	DisplaySeason   int    `json:"display_season"`
	DisplayEpisode  int    `json:"display_episode"`
	LastModified    string `json:"last_modified"`
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <path>",
		Short: "List cached placements under a library tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			found, err := sidecar.FindUnder(root)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				views := make([]cacheEntryView, 0, len(found))
				for _, item := range found {
					views = append(views, cacheEntryView{
						Path:            item.Path,
						OriginalSeason:  item.Entry.OriginalSeason,
						OriginalEpisode: item.Entry.OriginalEpisode,
						Aired:           item.Entry.Aired,
						DisplaySeason:   item.Entry.DisplaySeason,
						DisplayEpisode:  item.Entry.DisplayEpisode,
						LastModified:    item.Entry.LastModified,
					})
				}
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, "No cached placements found")
				return nil
			}
			rows := make([][]string, 0, len(found))
			for _, item := range found {
				rows = append(rows, []string{
					fmt.Sprintf("S%02dE%02d", item.Entry.OriginalSeason, item.Entry.OriginalEpisode),
					item.Entry.Aired,
					fmt.Sprintf("S%02dE%02d", item.Entry.DisplaySeason, item.Entry.DisplayEpisode),
					item.Entry.LastModified,
					filepath.Base(item.Path),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Original", "Aired", "Display", "Modified", "Cache"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d cached placement(s)\n", len(found))
			return nil
		},
	}
}

func newCacheRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <nfo-or-cache-path>",
		Short: "Remove one placement cache so the next run recomputes it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			if !strings.HasSuffix(strings.ToLower(target), ".nfo.json") {
				target = sidecar.PathFor(target)
			}
			if err := sidecar.Remove(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", target)
			return nil
		},
	}
}

func newCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <path>",
		Short: "Remove every placement cache under a library tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			found, err := sidecar.FindUnder(root)
			if err != nil {
				return err
			}
			removed := 0
			for _, item := range found {
				if err := sidecar.Remove(item.Path); err != nil {
					return err
				}
				removed++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached placement(s)\n", removed)
			return nil
		},
	}
}
