package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tubeseo/internal/app"
	"tubeseo/internal/catalog"
	"tubeseo/internal/metadata"
	"tubeseo/pkg/config"
)

var (
	genFile     string
	genURL      string
	genCategory string
	genLanguage string
	genJSON     bool
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	hashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate SEO metadata for a video",
	Long: `Generate a title, description, tags, hashtags and a thumbnail prompt for a
video. Without an LLM API key the built-in per-category metadata is used.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genFile, "file", "f", "", "Video file (only the name is used)")
	generateCmd.Flags().StringVarP(&genURL, "url", "u", "", "Video URL")
	generateCmd.Flags().StringVar(&genCategory, "category", "", "Video category")
	generateCmd.Flags().StringVar(&genLanguage, "language", "", "Metadata language code")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print raw JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validateGenerateFlags(); err != nil {
		return err
	}

	ctx := cmd.Context()

	cfg, err := config.LoadFrom(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a, err := app.Build(ctx, cfg)
	if err != nil {
		return err
	}

	interactive := !genJSON && isTerminal(os.Stdin)
	if err := promptOptions(interactive); err != nil {
		return err
	}

	req := metadata.Request{
		Category: catalog.ParseCategory(genCategory),
		Language: catalog.ParseLanguage(genLanguage),
		URL:      genURL,
	}
	if genFile != "" {
		req.FileName = filepath.Base(genFile)
	}

	var meta *metadata.VideoMetadata
	generate := func() { meta, err = a.Generator.Generate(ctx, req) }
	if interactive {
		_ = spinner.New().Title("Generating SEO metadata").Action(generate).Run()
	} else {
		generate()
	}
	if err != nil {
		return err
	}

	if genJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	printMetadata(meta, req, a.Generator.UsesFallback())
	return nil
}

// validateGenerateFlags rejects unknown category or language values instead of
// silently falling back to the defaults the web form uses.
func validateGenerateFlags() error {
	if genFile == "" && genURL == "" {
		return errors.New("please provide --file or --url")
	}
	if genCategory != "" && !catalog.Category(strings.ToLower(genCategory)).Valid() {
		return fmt.Errorf("unknown category %q", genCategory)
	}
	if genLanguage != "" && !catalog.Language(strings.ToLower(genLanguage)).Valid() {
		return fmt.Errorf("unknown language %q", genLanguage)
	}
	return nil
}

func promptOptions(interactive bool) error {
	if !interactive {
		return nil
	}

	var fields []huh.Field
	if genCategory == "" {
		opts := make([]huh.Option[string], 0, len(catalog.Categories()))
		for _, c := range catalog.Categories() {
			opts = append(opts, huh.NewOption(c.Label(), string(c)))
		}
		fields = append(fields, huh.NewSelect[string]().Title("Category").Options(opts...).Value(&genCategory))
	}
	if genLanguage == "" {
		opts := make([]huh.Option[string], 0, len(catalog.Languages()))
		for _, l := range catalog.Languages() {
			opts = append(opts, huh.NewOption(l.DisplayName(), string(l)))
		}
		fields = append(fields, huh.NewSelect[string]().Title("Language").Options(opts...).Value(&genLanguage))
	}
	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func printMetadata(meta *metadata.VideoMetadata, req metadata.Request, fallback bool) {
	source := "LLM"
	if fallback {
		source = "built-in fallback"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Title:"), meta.Title)
	fmt.Fprintln(&b, dimStyle.Render(fmt.Sprintf("%d characters", len([]rune(meta.Title)))))
	fmt.Fprintf(&b, "\n%s\n%s\n", labelStyle.Render("Description:"), meta.Description)

	tags := make([]string, len(meta.Tags))
	for i, t := range meta.Tags {
		tags[i] = tagStyle.Render(t)
	}
	fmt.Fprintf(&b, "\n%s %s\n", labelStyle.Render("Tags:"), strings.Join(tags, ", "))

	hashtags := make([]string, len(meta.Hashtags))
	for i, h := range meta.Hashtags {
		hashtags[i] = hashStyle.Render(h)
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Hashtags:"), strings.Join(hashtags, " "))
	fmt.Fprintf(&b, "\n%s %s", labelStyle.Render("Thumbnail:"), meta.ThumbnailPrompt)

	fmt.Println(boxStyle.Render(b.String()))
	fmt.Println(dimStyle.Render(fmt.Sprintf("%s • %s • %s", req.Category.Label(), req.Language.DisplayName(), source)))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
