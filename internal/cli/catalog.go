package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regbook/regbook/internal/catalog"
)

var catalogPath string

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to catalog overlay YAML")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Clause catalog operations",
	Long:  "Commands for inspecting and validating the clause library and\npolicy templates, including any overlay file.",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and clauses",
	RunE:  runCatalogList,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check catalog consistency",
	Long:  "Reports dangling clause references, duplicate IDs and templates\nwithout sections. Exits 0 if clean, 1 if problems were found.",
	RunE:  runCatalogValidate,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, hash, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	fmt.Printf("catalog %s\n\n", hash)
	fmt.Println("Templates:")
	for _, tmpl := range cat.Templates() {
		fmt.Printf("  %-18s %-40s %d sections\n", tmpl.Code, tmpl.Name, len(tmpl.Sections))
	}
	fmt.Println("\nClauses:")
	for _, c := range cat.Clauses() {
		mark := " "
		if c.IsMandatory {
			mark = "M"
		}
		fmt.Printf("  %s %-26s %-16s %s\n", mark, c.ID, c.Category, c.Title)
	}
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, _, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	problems := cat.Validate()
	if len(problems) == 0 {
		fmt.Printf("OK: %d clauses, %d templates\n", len(cat.Clauses()), len(cat.Templates()))
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "PROBLEM: %s\n", p)
	}
	os.Exit(1)
	return nil
}
