package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/watchlist/internal/config"
	"github.com/vmunix/watchlist/internal/library"
	"github.com/vmunix/watchlist/internal/migrations"
)

func init() {
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Long:  "Writes a commented default config.toml. Without a path the config is written to the user config directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	configTestCmd := &cobra.Command{
		Use:   "test [path]",
		Short: "Validate configuration file",
		Long:  "Validates config.toml syntax, settings and environment variable substitution without starting the server.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigTest,
	}
	configCmd.AddCommand(configTestCmd)

	importCmd := &cobra.Command{
		Use:   "import <my_list.json>",
		Short: "Import a list file into the database",
		Long:  `Reads a {"series": [...], "movies": [...]} list file and adds every entry in one transaction. Use "-" for stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the database as a list file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}

	rootCmd.AddCommand(initCmd, configCmd, importCmd, exportCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// resolveConfigPath returns the explicit path, the --config flag, or the
// discovered config, in that order.
func resolveConfigPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if configPath != "" {
		return configPath, nil
	}
	return config.Discover()
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return errors.New("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	fmt.Fprintf(w, "  Database:   %s\n", cfg.Database.Path)
	fmt.Fprintf(w, "  Provider:   %s", cfg.Metadata.Provider)
	if cfg.Metadata.APIKey == "" && cfg.Metadata.Provider != config.ProviderCustom {
		fmt.Fprint(w, " (no API key)")
	}
	fmt.Fprintln(w)
	if cfg.Media.LocalPath != "" {
		fmt.Fprintf(w, "  Media:      %s\n", cfg.Media.LocalPath)
	}
	fmt.Fprintf(w, "  Posters:    %s\n", cfg.Posters.CacheDir)
}

// openStore opens the database named by the config for offline commands.
func openStore() (*library.Store, func(), error) {
	path, err := resolveConfigPath(nil)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.Database.Path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return library.NewStore(db), func() { _ = db.Close() }, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open list file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	n, err := store.ImportJSON(r)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", n)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	if len(args) == 0 || args[0] == "-" {
		return store.ExportJSON(cmd.OutOrStdout())
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create list file: %w", err)
	}
	if err := store.ExportJSON(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("export failed: %w", err)
	}
	return f.Close()
}
