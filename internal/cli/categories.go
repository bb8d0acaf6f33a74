package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"knighty/internal/domain"
	"knighty/internal/i18n"
	"knighty/internal/logic"
)

var categoriesLang string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories with their entry counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesLang, "lang", "", "label language (en or ar, default from config)")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(nil)
	if err != nil {
		return err
	}

	lang := a.cfg.Language()
	if categoriesLang != "" {
		lang, err = i18n.Parse(categoriesLang)
		if err != nil {
			return err
		}
	}

	all := a.store.GetAllSheets()
	out := cmd.OutOrStdout()
	for _, c := range domain.Categories() {
		fmt.Fprintf(out, "%-14s %3d\n", a.bundle.Category(lang, c), len(logic.ByCategory(all, c)))
	}
	return nil
}
