package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List the cards of a tab",
		Long: `Lists the cards of one tab with the card filter applied.

A card is shown when its name contains the query, when its name contains
every word of the query, or when its type contains the query. --condition
keeps only cards with that ribbon label.

Examples:
  watchlist list                          # all series
  watchlist list --tab movies "dark"      # movies matching "dark"
  watchlist list --condition watching     # series you are watching`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
	listCmd.Flags().StringP("tab", "t", "", "Tab to list (series, movies)")
	listCmd.Flags().StringP("condition", "c", "", "Condition filter (default all)")
	listCmd.Flags().BoolP("all", "a", false, "Include cards hidden by the filter")

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an entry",
		Long:  "Adds a movie or series. The poster is looked up from the metadata provider when --poster is not given.",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}
	addCmd.Flags().String("category", "series", "Category: series or movies")
	addCmd.Flags().String("year", "", "Release year")
	addCmd.Flags().String("country", "", "Country code, e.g. US")
	addCmd.Flags().String("type", "", "Type label, e.g. movie, series, anime")
	addCmd.Flags().String("poster", "", "Poster URL")
	addCmd.Flags().String("ep", "", "Current episode (series only)")
	addCmd.Flags().String("condition", "", "Condition label (series only)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Long:  "Deletes an entry by numeric id or card id (series-3).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Server status",
		RunE:  runStatus,
	}

	rootCmd.AddCommand(listCmd, addCmd, deleteCmd, statusCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runList(cmd *cobra.Command, args []string) error {
	tab, _ := cmd.Flags().GetString("tab")
	condition, _ := cmd.Flags().GetString("condition")
	showAll, _ := cmd.Flags().GetBool("all")
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	resp, err := NewClient(serverURL).Cards(tab, query, condition)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}
	printCards(out, resp, showAll)
	return nil
}

func printCards(w io.Writer, resp *CardsResponse, showAll bool) {
	if resp.Visible == 0 && !showAll {
		fmt.Fprintf(w, "No %s match\n", resp.Tab)
		return
	}

	fmt.Fprintf(w, "%s (%d of %d):\n\n", resp.Tab, resp.Visible, len(resp.Cards))
	fmt.Fprintf(w, "  %-12s │ %-40s │ %-10s │ %s\n", "ID", "TITLE", "TYPE", "CONDITION")
	fmt.Fprintln(w, "──────────────┼──────────────────────────────────────────┼────────────┼──────────")
	for _, c := range resp.Cards {
		if !c.Visible && !showAll {
			continue
		}
		title := c.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		mark := " "
		if !c.Visible {
			mark = "-"
		}
		fmt.Fprintf(w, "%s %-12s │ %-40s │ %-10s │ %s\n", mark, c.ID, title, c.Type, c.Condition)
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	req := AddEntryRequest{Name: args[0]}
	req.Category, _ = cmd.Flags().GetString("category")
	req.Year, _ = cmd.Flags().GetString("year")
	req.Country, _ = cmd.Flags().GetString("country")
	req.Type, _ = cmd.Flags().GetString("type")
	req.PosterURL, _ = cmd.Flags().GetString("poster")
	req.Ep, _ = cmd.Flags().GetString("ep")
	req.Condition, _ = cmd.Flags().GetString("condition")

	entry, err := NewClient(serverURL).AddEntry(req)
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, entry)
	}
	fmt.Fprintf(out, "Added %s-%d: %s\n", entry.Category, entry.ID, entry.Name)
	if entry.PosterURL == "" {
		fmt.Fprintln(out, "  no poster found")
	}
	return nil
}

// parseEntryID accepts a numeric id or a card id such as "series-3".
func parseEntryID(s string) (int64, error) {
	if i := strings.LastIndex(s, "-"); i >= 0 {
		s = s[i+1:]
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry ID: %q", s)
	}
	return id, nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}
	if err := NewClient(serverURL).DeleteEntry(id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	status, err := NewClient(serverURL).Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, status)
	}
	fmt.Fprintf(out, "Server:     %s (%s)\n", serverURL, status.Status)
	fmt.Fprintf(out, "Version:    %s\n", status.Version)
	fmt.Fprintf(out, "Entries:    %d\n", status.Entries)
	if status.Provider != "" {
		fmt.Fprintf(out, "Provider:   %s\n", status.Provider)
	}
	return nil
}
