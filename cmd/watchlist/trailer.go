package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vmunix/watchlist/internal/cards"
	"github.com/vmunix/watchlist/internal/trailer"
)

func init() {
	trailerCmd := &cobra.Command{
		Use:   "trailer <title>",
		Short: "Resolve the trailer of a title",
		Long: `Asks the server for the YouTube embed URL of a trailer.

The title is given the way cards show it; a trailing "(YYYY)" is used as
the release year.

Examples:
  watchlist trailer "Breaking Bad (2008)" --type series --country us
  watchlist trailer "Heat (1995)"`,
		Args: cobra.ExactArgs(1),
		RunE: runTrailer,
	}
	trailerCmd.Flags().String("type", "movie", "Type: movie, series or tv")
	trailerCmd.Flags().String("country", "", "Country code used as search region")

	localCmd := &cobra.Command{
		Use:   "local <name>",
		Short: "Find local video files for a title",
		Args:  cobra.ExactArgs(1),
		RunE:  runLocal,
	}
	localCmd.Flags().String("type", "movie", "Type: movie or series")

	rootCmd.AddCommand(trailerCmd, localCmd)
}

func runTrailer(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("type")
	country, _ := cmd.Flags().GetString("country")

	name, _ := trailer.ParseTitle(args[0])
	card := cards.Card{ID: "cli", Title: args[0], Name: name, Type: kind, Country: country}

	var alert string
	player := trailer.NewPlayer(trailer.NewClient(serverURL), trailer.NotifierFunc(func(msg string) {
		alert = msg
	}), slog.New(slog.DiscardHandler))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err := player.Open(ctx, card)
	out := cmd.OutOrStdout()
	if jsonOutput {
		resp := trailer.Response{}
		if src := player.Modal().Src; src != "" {
			resp.TrailerURL = &src
		}
		if err != nil && !errors.Is(err, trailer.ErrNotFound) {
			return fmt.Errorf("trailer lookup failed: %w", err)
		}
		return printJSON(out, resp)
	}

	if err != nil {
		if errors.Is(err, trailer.ErrNotFound) {
			fmt.Fprintln(out, alert)
			return nil
		}
		return fmt.Errorf("%s: %w", alert, err)
	}
	fmt.Fprintln(out, player.Modal().Src)
	return nil
}

func runLocal(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("type")

	resp, err := NewClient(serverURL).LocalMedia(args[0], kind)
	if err != nil {
		return fmt.Errorf("local media lookup failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}
	if len(resp.Results) == 0 {
		fmt.Fprintf(out, "No local files for %q\n", args[0])
		return nil
	}
	for _, r := range resp.Results {
		if r.Episode != "" {
			fmt.Fprintf(out, "  %-8s %-50s %8s\n", r.Episode, r.Name, r.Size)
			continue
		}
		fmt.Fprintf(out, "  %-50s %8s\n", r.Name, r.Size)
	}
	return nil
}
