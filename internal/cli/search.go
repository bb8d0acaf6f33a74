package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"knighty/internal/domain"
	"knighty/internal/logic"
	"knighty/internal/ui/views"
)

var (
	searchCategory string
	searchFeatured bool
	searchLimit    int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the cheat sheet catalog",
	Long: `Matches the query against titles, descriptions and tags, then narrows the
result by category and the featured flag. Without a query every entry matches.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "only entries in this category")
	searchCmd.Flags().BoolVarP(&searchFeatured, "featured", "f", false, "only featured entries")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 for all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := loadApp(nil)
	if err != nil {
		return err
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	category, ok := domain.ParseCategory(searchCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", searchCategory)
	}

	results := logic.Apply(a.store.GetAllSheets(), logic.QueryState{
		SearchText:       query,
		SelectedCategory: category,
		FeaturedOnly:     searchFeatured,
	})
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		return outputSearchJSON(out, results)
	}

	lang := a.cfg.Language()
	if len(results) == 0 {
		fmt.Fprintln(out, a.bundle.NoResults(lang, query))
		return nil
	}
	if isTerminal(out) {
		outputSearchStyled(out, a, results, query)
	} else {
		outputSearchPlain(out, results)
	}
	fmt.Fprintln(out, a.bundle.Count(lang, len(results), query))
	return nil
}

func outputSearchJSON(out io.Writer, results []domain.Cheatsheet) error {
	if results == nil {
		results = []domain.Cheatsheet{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// outputSearchPlain writes one tab separated line per entry for scripts
func outputSearchPlain(out io.Writer, results []domain.Cheatsheet) {
	for _, s := range results {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", s.ID, s.Title, s.Category, strings.Join(s.Tags, ","))
	}
}

// outputSearchStyled renders the rows the way the browser lists them
func outputSearchStyled(out io.Writer, a *app, results []domain.Cheatsheet, query string) {
	rows := views.NewSheetRenderer(views.NewStyles(), a.bundle)
	lang := a.cfg.Language()
	width := terminalWidth(out)
	for _, s := range results {
		fmt.Fprintln(out, rows.RenderRow(s, lang, false, query, width))
	}
	fmt.Fprintln(out, lipgloss.NewStyle().Faint(true).Render(strings.Repeat("─", max(min(width, 40), 10))))
}
