package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"knighty/internal/ui"
)

var showOpen bool

var showCmd = &cobra.Command{
	Use:   "show <id|file>",
	Short: "Show one cheat sheet",
	Long: `Resolves a cheat sheet by id or document file name and prints its details.
Unknown references exit with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showOpen, "open", "o", false, "also open the document in the browser")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp(nil)
	if err != nil {
		return err
	}

	sheet, err := a.store.Resolve(args[0])
	if err != nil {
		return err
	}

	lang := a.cfg.Language()
	ops := ui.NewSheetOps(a.cfg.DocsDir, a.cfg.BaseURL)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n", sheet.Icon, sheet.Title)
	fmt.Fprintf(out, "  %s\n", sheet.Description)
	fmt.Fprintf(out, "  %s: %s\n", a.bundle.T(lang, "stats.categories"), a.bundle.Category(lang, sheet.Category))
	if len(sheet.Tags) > 0 {
		fmt.Fprintf(out, "  Tags: %s\n", strings.Join(sheet.Tags, ", "))
	}
	if sheet.Featured {
		fmt.Fprintf(out, "  ★ %s\n", a.bundle.T(lang, "search.featuredOnly"))
	}
	fmt.Fprintf(out, "  Link: %s\n", sheet.DeepLink())
	fmt.Fprintf(out, "  Document: %s\n", ops.Target(sheet))

	if showOpen {
		target, err := ops.OpenInBrowser(sheet)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Opened %s\n", target)
	}
	return nil
}
