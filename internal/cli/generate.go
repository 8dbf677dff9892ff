package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/regbook/regbook/internal/catalog"
	"github.com/regbook/regbook/internal/document"
	"github.com/regbook/regbook/internal/model"
	"github.com/regbook/regbook/internal/tier"
)

var (
	genCatalog  string
	genFirmName string
	genFRN      string
	genSize     string
	genLevel    string
	genPerms    []string
	genOutput   string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	for _, c := range []*cobra.Command{generateCmd, estimateCmd} {
		c.Flags().StringVar(&genCatalog, "catalog", "", "Path to catalog overlay YAML")
		c.Flags().StringVar(&genFirmName, "firm", "", "Firm name")
		c.Flags().StringVar(&genFRN, "frn", "", "Firm reference number")
		c.Flags().StringVar(&genSize, "size", "small", "Firm size: small, medium or large")
		c.Flags().StringVar(&genLevel, "level", "", "Detail level: essential, standard or comprehensive (default by firm size)")
		c.Flags().StringSliceVar(&genPerms, "permission", nil, "Firm permission (repeatable): deposits, client-money, payments, e-money, insurance, credit, retail")
	}
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write document JSON to file instead of stdout")
	generateCmd.MarkFlagRequired("firm")
	estimateCmd.MarkFlagRequired("firm")
}

var generateCmd = &cobra.Command{
	Use:   "generate <template-code>",
	Short: "Generate a firm-specific policy document",
	Long:  "Selects and tiers clauses for the named template, filtered to the\nfirm's permissions, and emits the document as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	doc, err := assembleFromFlags(args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if genOutput != "" {
		if err := os.WriteFile(genOutput, append(out, '\n'), 0644); err != nil {
			return fmt.Errorf("write %s: %w", genOutput, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d sections, ~%d pages)\n", genOutput, len(doc.Sections), doc.PageEstimate)
		return nil
	}
	fmt.Println(string(out))
	return nil
}

func assembleFromFlags(code string) (*document.Document, error) {
	cat, hash, err := catalog.Load(genCatalog)
	if err != nil {
		return nil, err
	}

	perms, err := parsePermissions(genPerms)
	if err != nil {
		return nil, err
	}

	req := document.Request{
		Firm: model.FirmProfile{
			Name:        genFirmName,
			FRN:         genFRN,
			Size:        model.FirmSize(genSize),
			Permissions: perms,
		},
		Code:  code,
		Level: model.DetailLevel(genLevel),
	}
	return document.Assemble(cat, hash, req)
}

func parsePermissions(names []string) (model.PermissionSet, error) {
	var p model.PermissionSet
	for _, name := range names {
		switch strings.ToLower(name) {
		case "deposits":
			p.AcceptsDeposits = true
		case "client-money":
			p.HoldsClientMoney = true
		case "payments":
			p.PaymentServices = true
		case "e-money":
			p.EMoneyIssuance = true
		case "insurance":
			p.InsuranceMediation = true
		case "credit":
			p.CreditBroking = true
		case "retail":
			p.RetailClients = true
		default:
			return p, fmt.Errorf("unknown permission %q", name)
		}
	}
	return p, nil
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <template-code>",
	Short: "Estimate the length of a generated document",
	Long:  "Runs clause selection without emitting the document and reports\nsection, clause and page counts per detail level.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if genLevel != "" {
		doc, err := assembleFromFlags(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%-15s %3d sections %3d clauses  ~%d pages\n",
			doc.DetailLevel, len(doc.Sections), len(doc.ClauseIDs()), doc.PageEstimate)
		return nil
	}

	// No level requested: show all three, recommendation marked.
	recommended := tier.RecommendedDetailLevel(model.FirmSize(genSize))
	for _, level := range []model.DetailLevel{model.LevelEssential, model.LevelStandard, model.LevelComprehensive} {
		genLevel = string(level)
		doc, err := assembleFromFlags(args[0])
		if err != nil {
			return err
		}
		mark := " "
		if level == recommended {
			mark = "*"
		}
		fmt.Printf("%s %-15s %3d sections %3d clauses  ~%d pages\n",
			mark, level, len(doc.Sections), len(doc.ClauseIDs()), doc.PageEstimate)
	}
	fmt.Println("\n* recommended for firm size " + genSize)
	return nil
}
