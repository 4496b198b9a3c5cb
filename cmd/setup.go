package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tubeseo/internal/llm"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

const envFilePath = ".env"

// envOrder is the key order written to .env.
var envOrder = []string{
	"GOOGLE_CLOUD_PROJECT",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"GOOGLE_REDIRECT_URI",
	"OPENAI_API_KEY",
	"GROQ_API_KEY",
	"ENVIRONMENT",
	"PORT",
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for tubeseo",
	Long:  `Configure Google OAuth, the metadata LLM and optionally a Google Cloud project, then write .env.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("📺 tubeseo Setup"))

	if _, err := os.Stat(envFilePath); err == nil {
		var overwrite bool
		if err := huh.NewConfirm().
			Title("Found existing .env file").
			Description("Overwrite?").
			Value(&overwrite).
			Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(infoStyle.Render("Kept existing .env"))
			return nil
		}
	}

	env := map[string]string{"PORT": "3000"}

	steps := []struct {
		name string
		fn   func(map[string]string) error
	}{
		{"Configuring Google Cloud", configureGCP},
		{"Configuring Google OAuth", configureOAuth},
		{"Configuring metadata generation", configureLLM},
	}

	for _, step := range steps {
		if err := step.fn(env); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if err := writeEnvFile(envFilePath, env); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("✓ Created .env file"))
	printNextSteps(env)
	return nil
}

func configureGCP(env map[string]string) error {
	var setupGCP bool
	if err := huh.NewConfirm().
		Title("Setup Google Cloud project?").
		Description("Enables the YouTube Data API and, optionally, Secret Manager for keys").
		Value(&setupGCP).
		Run(); err != nil {
		return err
	}

	if !setupGCP {
		return nil
	}

	if !commandExists("gcloud") {
		fmt.Println(warnStyle.Render("gcloud CLI not found - install from https://cloud.google.com/sdk/docs/install"))
		return nil
	}

	project, err := getOrCreateGCPProject()
	if err != nil {
		fmt.Println(warnStyle.Render(fmt.Sprintf("GCP setup skipped: %v", err)))
		return nil
	}

	env["GOOGLE_CLOUD_PROJECT"] = project

	if err := enableGCPAPIs(project); err != nil {
		fmt.Println(warnStyle.Render(fmt.Sprintf("API enablement failed: %v", err)))
	}

	return nil
}

func getOrCreateGCPProject() (string, error) {
	existing := getActiveProject()

	var choice string
	options := []huh.Option[string]{
		huh.NewOption("Create new project", "new"),
	}

	if existing != "" {
		options = append([]huh.Option[string]{
			huh.NewOption(fmt.Sprintf("Use current: %s", existing), existing),
		}, options...)
	}

	options = append(options, huh.NewOption("Enter project ID manually", "manual"))

	if err := huh.NewSelect[string]().
		Title("Google Cloud Project").
		Options(options...).
		Value(&choice).
		Run(); err != nil {
		return "", err
	}

	switch choice {
	case "new":
		return createGCPProject()
	case "manual":
		var projectID string
		if err := huh.NewInput().
			Title("Project ID").
			Value(&projectID).
			Validate(required("Project ID")).
			Run(); err != nil {
			return "", err
		}
		return strings.TrimSpace(projectID), nil
	default:
		return choice, nil
	}
}

func getActiveProject() string {
	out, err := exec.Command("gcloud", "config", "get-value", "project").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func createGCPProject() (string, error) {
	var projectID string
	if err := huh.NewInput().
		Title("New Project ID").
		Description("Must be globally unique, 6-30 chars, lowercase letters, digits, hyphens").
		Placeholder("tubeseo-12345").
		Value(&projectID).
		Validate(validateProjectID).
		Run(); err != nil {
		return "", err
	}

	err := runWithSpinner("Creating project", func() error {
		return runSetupCmd("gcloud", "projects", "create", projectID)
	})
	if err != nil {
		return "", err
	}

	_ = runSetupCmd("gcloud", "config", "set", "project", projectID)

	return projectID, nil
}

func validateProjectID(s string) error {
	if len(s) < 6 || len(s) > 30 {
		return fmt.Errorf("must be 6-30 characters")
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return fmt.Errorf("invalid character %q", r)
		}
	}
	return nil
}

func enableGCPAPIs(project string) error {
	apis := []string{
		"youtube.googleapis.com",
		"secretmanager.googleapis.com",
		"storage.googleapis.com",
	}

	return runWithSpinner("Enabling APIs", func() error {
		args := append([]string{"services", "enable"}, apis...)
		args = append(args, "--project", project)
		return runSetupCmd("gcloud", args...)
	})
}

func configureOAuth(env map[string]string) error {
	redirect := "http://localhost:" + env["PORT"] + "/api/auth/callback"

	fmt.Println(infoStyle.Render(fmt.Sprintf(`
To create OAuth credentials:
1. Go to https://console.cloud.google.com/apis/credentials
2. Click "Create Credentials" → "OAuth client ID"
3. Choose "Web application" as application type
4. Add %s as an authorized redirect URI
5. Copy the Client ID and Client Secret
`, redirect)))

	var clientID, clientSecret string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Google Client ID").
				Value(&clientID).
				Validate(required("Google Client ID")),
			huh.NewInput().
				Title("Google Client Secret").
				Description("Leave empty to read it from Secret Manager").
				EchoMode(huh.EchoModePassword).
				Value(&clientSecret),
			huh.NewInput().
				Title("Redirect URI").
				Value(&redirect),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	env["GOOGLE_CLIENT_ID"] = strings.TrimSpace(clientID)
	env["GOOGLE_CLIENT_SECRET"] = strings.TrimSpace(clientSecret)
	env["GOOGLE_REDIRECT_URI"] = strings.TrimSpace(redirect)
	return nil
}

func configureLLM(env map[string]string) error {
	provider := llm.ProviderOpenAI
	if err := huh.NewSelect[string]().
		Title("Metadata provider").
		Description("Without a key the built-in per-category metadata is used").
		Options(
			huh.NewOption("OpenAI ("+llm.DefaultOpenAIModel+")", llm.ProviderOpenAI),
			huh.NewOption("Groq ("+llm.DefaultGroqModel+")", llm.ProviderGroq),
			huh.NewOption("None (built-in metadata)", ""),
		).
		Value(&provider).
		Run(); err != nil {
		return err
	}

	var envKey, keysURL string
	switch provider {
	case llm.ProviderOpenAI:
		envKey, keysURL = "OPENAI_API_KEY", "https://platform.openai.com/api-keys"
	case llm.ProviderGroq:
		envKey, keysURL = "GROQ_API_KEY", "https://console.groq.com/keys"
	default:
		return nil
	}

	var key string
	if err := huh.NewInput().
		Title(envKey).
		Description(keysURL).
		EchoMode(huh.EchoModePassword).
		Value(&key).
		Run(); err != nil {
		return err
	}

	if key = strings.TrimSpace(key); key != "" {
		env[envKey] = key
	}
	return nil
}

// renderEnv formats env in envOrder, skipping empty values.
func renderEnv(env map[string]string) string {
	var b strings.Builder
	for _, key := range envOrder {
		if val, ok := env[key]; ok && val != "" {
			_, _ = fmt.Fprintf(&b, "%s=%s\n", key, val)
		}
	}
	return b.String()
}

func writeEnvFile(path string, env map[string]string) error {
	return os.WriteFile(path, []byte(renderEnv(env)), 0600)
}

func printNextSteps(env map[string]string) {
	fmt.Println()
	fmt.Println(titleStyle.Render("Next steps:"))
	fmt.Println("  1. Run: tubeseo serve")
	fmt.Printf("  2. Open: http://localhost:%s\n", env["PORT"])
	fmt.Println("  3. Connect your YouTube account and upload a video")
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func runSetupCmd(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %s", err, stderr.String())
	}
	return nil
}

func runWithSpinner(title string, fn func() error) error {
	var err error
	_ = spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run()
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("✓ " + title))
	return nil
}
