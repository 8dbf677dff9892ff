package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regbook/regbook/internal/forms"
)

func init() {
	rootCmd.AddCommand(formsCmd)
	formsCmd.AddCommand(formsListCmd)
	formsCmd.AddCommand(formsShowCmd)
}

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Approved-persons form schemas",
}

var formsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported FCA forms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range forms.All() {
			fmt.Printf("%-15s %s (%d steps)\n", f.Kind, f.Name, len(f.Steps))
		}
	},
}

var formsShowCmd = &cobra.Command{
	Use:   "show <kind>",
	Short: "Show the steps and fields of a form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, ok := forms.ByKind(forms.FormKind(args[0]))
		if !ok {
			return fmt.Errorf("unknown form %q", args[0])
		}
		fmt.Printf("%s (%s)\n", form.Name, form.Kind)
		for i, step := range form.Steps {
			fmt.Printf("\nstep %d: %s\n", i, step.Title)
			for _, field := range step.Fields {
				req := " "
				if field.Required {
					req = "*"
				}
				cond := ""
				if field.DependsOn != "" {
					cond = fmt.Sprintf("  (when %s=%s)", field.DependsOn, field.DependsVal)
				}
				fmt.Printf("  %s %-24s %-8s %s%s\n", req, field.Key, field.Kind, field.Label, cond)
			}
		}
		return nil
	},
}
