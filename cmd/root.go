package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Melek-Sahlia/AI-Agent-Assistant/app"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/client"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/config"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/markdown"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/style"
)

var (
	flagURL     string
	flagProfile string
	flagTheme   string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "agent-tui",
	Short: "Terminal chat client for the AI agent service",
	Long: `agent-tui is a terminal front end for the AI agent service: it sends
chat messages, renders structured responses with tool badges and manages
the conversation history.`,
	SilenceUsage: true,
	RunE:         run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "agent-tui: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagURL, "url", "", "agent service base URL (overrides AGENT_URL and config)")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "profile directory (default ~/.agent-tui)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: dark, light or catppuccin")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors")
}

func run(cmd *cobra.Command, args []string) error {
	profileDir := flagProfile
	if profileDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		profileDir = filepath.Join(home, ".agent-tui")
	}
	app.ProfileDir = profileDir

	// Stdout belongs to the terminal UI, so diagnostics go to a file.
	logFile := setupLogging(profileDir)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Load(profileDir)

	baseURL := flagURL
	if baseURL == "" {
		baseURL = os.Getenv("AGENT_URL")
	}
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if baseURL == "" {
		baseURL = "http://localhost:5001"
	}

	theme := flagTheme
	if theme == "" {
		theme = cfg.Theme
	}
	if theme == "" {
		// Auto-detect terminal background and set theme accordingly
		if lipgloss.HasDarkBackground() {
			theme = "dark"
		} else {
			theme = "light"
		}
	}
	if !style.SetTheme(theme) {
		slog.Warn("unknown theme, falling back to dark", "theme", theme)
		style.SetTheme("dark")
	}

	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	markdown.SetWrap(cfg.WordWrap)

	slog.Info("starting", "version", Version, "url", baseURL, "theme", style.CurrentThemeName)

	m := app.New(client.New(baseURL), Version)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// setupLogging routes slog to <profile>/agent-tui.log. If the file cannot
// be opened, diagnostics are discarded rather than corrupting the screen.
func setupLogging(profileDir string) *os.File {
	discard := func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		discard()
		return nil
	}
	f, err := os.OpenFile(filepath.Join(profileDir, "agent-tui.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		discard()
		return nil
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}
