// Package main provides the CLI entrypoint for typedrill.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avelichko/typedrill/internal/catalog"
	"github.com/avelichko/typedrill/internal/config"
	"github.com/avelichko/typedrill/internal/model"
	"github.com/avelichko/typedrill/internal/progress"
	"github.com/avelichko/typedrill/internal/statsui"
	"github.com/avelichko/typedrill/internal/tui"
)

const defaultCurveWindow = 5

var (
	practiceLessons  string
	practiceProgress string
	practiceUser     string

	statsUser        string
	statsLesson      int
	statsSince       string
	statsLast        int
	statsCurveWindow int

	lessonsPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typedrill",
		Short:         "TUI typing lessons",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLessons, "lessons", config.DefaultLessonsPath(), "lesson file path")
	rootCmd.Flags().StringVar(&practiceProgress, "progress", config.DefaultProgressPath(), "progress log path")
	rootCmd.Flags().StringVar(&practiceUser, "user", progress.AnonymousUser, "user name for recorded attempts")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLessonsCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolvePracticeConfig(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.LessonsPath)
	if err != nil {
		return fmt.Errorf("failed to load lessons: %w", err)
	}

	store := progress.NewStore(cfg.ProgressPath)
	m, err := tui.NewModel(cfg, store, cat)
	if err != nil {
		return fmt.Errorf("failed to build TUI: %w", err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolvePracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lessons", &practiceLessons, fileCfg.Practice.Lessons)
	applyStringConfig(cmd, "progress", &practiceProgress, fileCfg.Practice.Progress)
	applyStringConfig(cmd, "user", &practiceUser, fileCfg.Practice.User)

	cfg := model.Config{
		LessonsPath:  practiceLessons,
		ProgressPath: practiceProgress,
		User:         strings.TrimSpace(practiceUser),
	}
	if cfg.User == "" {
		cfg.User = progress.AnonymousUser
	}
	if cfg.LessonsPath == "" {
		return model.Config{}, fmt.Errorf("--lessons must not be empty")
	}
	if cfg.ProgressPath == "" {
		return model.Config{}, fmt.Errorf("--progress must not be empty")
	}
	return cfg, nil
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

func newLessonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List lessons",
		Args:  cobra.NoArgs,
		RunE:  runLessonsCmd,
	}
	cmd.Flags().StringVar(&lessonsPath, "lessons", config.DefaultLessonsPath(), "lesson file path")
	return cmd
}

func runLessonsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lessons", &lessonsPath, fileCfg.Practice.Lessons)

	cat, err := catalog.Load(lessonsPath)
	if err != nil {
		return fmt.Errorf("failed to load lessons: %w", err)
	}
	for _, lesson := range cat.Lessons() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", lesson.ID, lesson.Title); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Browse attempt history",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&practiceProgress, "progress", config.DefaultProgressPath(), "progress log path")
	cmd.Flags().StringVar(&statsUser, "user", "", "user filter")
	cmd.Flags().IntVar(&statsLesson, "lesson", 0, "lesson id filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N attempts")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "progress", &practiceProgress, fileCfg.Practice.Progress)

	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if statsCurveWindow < 1 {
		return fmt.Errorf("--curve-window must be >= 1")
	}

	filter := model.Filter{
		User:        strings.TrimSpace(statsUser),
		LessonID:    statsLesson,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	store := progress.NewStore(practiceProgress)
	m := statsui.NewModel(store, filter)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typedrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lessons-file = %q
# progress-file = %q
# user = %q
`,
		config.DefaultLessonsPath(),
		config.DefaultProgressPath(),
		progress.AnonymousUser,
	)
}
