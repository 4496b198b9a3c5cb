package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"tubeseo/internal/llm"
	"tubeseo/pkg/config"
)

var (
	authInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	authSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	authErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var loginBaseURL string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect credentials and link a Google account",
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which services are configured",
	RunE:  runAuthStatus,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Open the Google consent page of a running server",
	Long: `Open the browser at the server's /api/auth/google route. The server must be
running; the tokens end up as cookies in that browser.`,
	RunE: runAuthLogin,
}

func init() {
	authLoginCmd.Flags().StringVar(&loginBaseURL, "base-url", "", "Server URL (default derived from GOOGLE_REDIRECT_URI)")
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLoginCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println(authInfoStyle.Render("\nService Configuration Status:\n"))

	switch {
	case cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "":
		fmt.Println(authSuccessStyle.Render("✓ Google OAuth: client configured"))
		fmt.Println(authInfoStyle.Render("  Redirect URI: " + cfg.GoogleRedirectURI))
	case cfg.GoogleClientID != "":
		fmt.Println(authErrorStyle.Render("✗ Google OAuth: missing GOOGLE_CLIENT_SECRET"))
	default:
		fmt.Println(authErrorStyle.Render("✗ Google OAuth: missing GOOGLE_CLIENT_ID"))
	}

	printKeyStatus("OpenAI", "OPENAI_API_KEY", cfg.OpenAIAPIKey, cfg.LLM.Provider == llm.ProviderOpenAI)
	printKeyStatus("Groq", "GROQ_API_KEY", cfg.GroqAPIKey, cfg.LLM.Provider == llm.ProviderGroq)

	if !llm.Configured(cfg.LLMAPIKey()) {
		fmt.Println(authInfoStyle.Render("○ Metadata: built-in fallback (no key for " + cfg.LLM.Provider + ")"))
	}

	if cfg.GCPProject != "" {
		fmt.Println(authSuccessStyle.Render("✓ Secret Manager: project " + cfg.GCPProject))
	} else {
		fmt.Println(authInfoStyle.Render("○ Secret Manager: not configured (optional)"))
	}

	fmt.Println()
	return nil
}

func printKeyStatus(name, envKey, value string, selected bool) {
	suffix := ""
	if selected {
		suffix = " (selected)"
	}
	switch {
	case llm.Configured(value):
		fmt.Println(authSuccessStyle.Render("✓ " + name + ": API key configured" + suffix))
	case value != "":
		fmt.Println(authErrorStyle.Render("✗ " + name + ": placeholder " + envKey + suffix))
	default:
		fmt.Println(authInfoStyle.Render("○ " + name + ": not configured" + suffix))
	}
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	base := loginBaseURL
	if base == "" {
		cfg, err := config.LoadFrom(cmd.Context(), configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		base = baseURLFromRedirect(cfg.GoogleRedirectURI)
	}

	loginURL := strings.TrimSuffix(base, "/") + "/api/auth/google"
	fmt.Println(authInfoStyle.Render("Opening browser for Google authentication..."))
	fmt.Println(authInfoStyle.Render("If browser doesn't open, visit:\n" + loginURL))

	return browser.OpenURL(loginURL)
}

// baseURLFromRedirect strips the callback path from the redirect URI.
func baseURLFromRedirect(redirect string) string {
	if i := strings.Index(redirect, "/api/auth/callback"); i >= 0 {
		return redirect[:i]
	}
	return redirect
}
