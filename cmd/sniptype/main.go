// Package main provides the CLI entrypoint for sniptype.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/sniptype/internal/config"
	"github.com/verte-zerg/sniptype/internal/generator"
	"github.com/verte-zerg/sniptype/internal/model"
	"github.com/verte-zerg/sniptype/internal/snippets"
	"github.com/verte-zerg/sniptype/internal/stats"
	"github.com/verte-zerg/sniptype/internal/store"
	"github.com/verte-zerg/sniptype/internal/tui"
)

const (
	defaultLang   = "javascript"
	defaultLevel  = "beginner"
	defaultSource = ""
	defaultSound  = false
)

var (
	practiceLang   string
	practiceLevel  string
	practiceSource string
	practiceSound  bool

	langsSource string

	catalogLang string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sniptype",
		Short:         "Code snippet typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "snippet language")
	rootCmd.Flags().StringVar(&practiceLevel, "level", defaultLevel, "difficulty: beginner, intermediate or advanced")
	rootCmd.Flags().StringVar(&practiceSource, "source", defaultSource, "snippet source: directory, http(s) URL or 'catalog' (default: built-in)")
	rootCmd.Flags().BoolVar(&practiceSound, "sound", defaultSound, "ring the terminal bell on each keystroke")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyStringConfig(cmd, "level", &practiceLevel, fileCfg.Practice.Level)
	applyStringConfig(cmd, "source", &practiceSource, fileCfg.Practice.Source)
	applyBoolConfig(cmd, "sound", &practiceSound, fileCfg.Practice.Sound)

	level, err := model.ParseLevel(practiceLevel)
	if err != nil {
		return fmt.Errorf("invalid --level: %w", err)
	}
	cfg := model.Config{
		Lang:      strings.ToLower(strings.TrimSpace(practiceLang)),
		Level:     level,
		Source:    practiceSource,
		Sound:     practiceSound,
		Languages: fileCfg.Practice.Languages,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("sniptype needs an interactive terminal")
	}

	logger, closeLog := openLogger(config.DefaultLogPath())
	defer closeLog()

	src, closeSrc, err := openSource(cfg.Source)
	if err != nil {
		return err
	}
	defer closeSrc()

	if len(cfg.Languages) == 0 {
		cfg.Languages = listLanguages(context.Background(), src, logger)
	}

	m := tui.NewModel(tui.Options{
		Config:    cfg,
		Source:    src,
		Generator: generator.New(),
		Clipboard: tui.SystemClipboard(),
		Bell:      tui.TerminalBell(os.Stderr),
		Logger:    logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if tm, ok := finalModel.(*tui.Model); ok {
		if res, ok := tm.LastResult(); ok {
			if err := stats.RenderResult(cmd.OutOrStdout(), res); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List snippet languages available from the source",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
	cmd.Flags().StringVar(&langsSource, "source", defaultSource, "snippet source (default: config or built-in)")
	return cmd
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "source", &langsSource, fileCfg.Practice.Source)

	src, closeSrc, err := openSource(langsSource)
	if err != nil {
		return err
	}
	defer closeSrc()

	lister, ok := src.(snippets.Lister)
	if !ok {
		if len(fileCfg.Practice.Languages) == 0 {
			return fmt.Errorf("source %q cannot list languages; set practice.languages in the config", langsSource)
		}
		return printLines(cmd.OutOrStdout(), fileCfg.Practice.Languages)
	}
	langs, err := lister.Languages(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	if len(langs) == 0 {
		logErrln("No snippet languages found. Import some with: sniptype catalog import <file>")
		return fmt.Errorf("no languages found")
	}
	return printLines(cmd.OutOrStdout(), langs)
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local snippet catalog",
	}
	importCmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import <lang>-snippets.json/.yaml files into the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCatalogImportCmd,
	}
	importCmd.Flags().StringVar(&catalogLang, "lang", "", "language for all files (default: from file name)")
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show catalog contents",
		Args:  cobra.NoArgs,
		RunE:  runCatalogListCmd,
	}
	cmd.AddCommand(importCmd, listCmd)
	return cmd
}

func runCatalogImportCmd(cmd *cobra.Command, args []string) error {
	st, err := store.Open(config.DefaultCatalogPath())
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close catalog: %v\n", cerr)
		}
	}()

	total := 0
	for _, path := range args {
		list, err := snippets.ReadFile(path, catalogLang)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		added, err := st.ImportSnippets(cmd.Context(), list)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}
		logErrf("Imported %d of %d snippets from %s\n", added, len(list), path)
		total += added
	}
	logErrf("Catalog: %s (%d new snippets)\n", config.DefaultCatalogPath(), total)
	return nil
}

func runCatalogListCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultCatalogPath())
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close catalog: %v\n", cerr)
		}
	}()
	entries, err := st.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	return stats.RenderCatalog(cmd.OutOrStdout(), entries)
}

// openSource resolves the configured source. The returned close func is
// always safe to call.
func openSource(location string) (snippets.Source, func(), error) {
	var st *store.Store
	src, err := snippets.Open(location, func() (snippets.CatalogSource, error) {
		var err error
		st, err = store.Open(config.DefaultCatalogPath())
		if err != nil {
			return nil, err
		}
		return st, nil
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open snippet source: %w", err)
	}
	closeFn := func() {
		if st == nil {
			return
		}
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close catalog: %v\n", cerr)
		}
	}
	return src, closeFn, nil
}

func listLanguages(ctx context.Context, src snippets.Source, logger *slog.Logger) []string {
	lister, ok := src.(snippets.Lister)
	if !ok {
		return nil
	}
	langs, err := lister.Languages(ctx)
	if err != nil {
		logger.Warn("failed to list languages", "err", err)
		return nil
	}
	return langs
}

// openLogger writes diagnostics to a file so they never reach the terminal
// owned by the TUI.
func openLogger(path string) (*slog.Logger, func()) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard, func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard, func() {}
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for the log file.
			_ = cerr
		}
	}
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sniptype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q       # Snippet language
# level = %q        # beginner, intermediate or advanced
# source = ""               # Directory, http(s) URL or "catalog" (default: built-in)
# sound = %t              # Ring the terminal bell on each keystroke
# languages = ["javascript", "python", "go"]  # Languages cycled with ctrl+l
`,
		defaultLang,
		defaultLevel,
		defaultSound,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if strings.ContainsAny(cfg.Lang, `/\`) {
		return fmt.Errorf("--lang must not contain path separators")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
