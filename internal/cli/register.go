package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/regbook/regbook/internal/config"
	"github.com/regbook/regbook/internal/model"
	"github.com/regbook/regbook/internal/register"
)

var (
	regDB           string
	regKind         string
	regDirection    string
	regDescription  string
	regCounterparty string
	regEmployee     string
	regValue        int64
	regConflict     bool
	regOccurred     string
	regStatus       string
	regApprover     string
)

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.AddCommand(registerAddCmd)
	registerCmd.AddCommand(registerListCmd)
	registerCmd.AddCommand(registerStatusCmd)
	registerCmd.AddCommand(registerExportCmd)
	registerCmd.AddCommand(registerSummaryCmd)

	registerCmd.PersistentFlags().StringVar(&regDB, "db", "", "Path to register SQLite database (overrides config)")

	registerAddCmd.Flags().StringVar(&regKind, "kind", "gift", "Entry kind: gift or hospitality")
	registerAddCmd.Flags().StringVar(&regDirection, "direction", "received", "Direction: given or received")
	registerAddCmd.Flags().StringVar(&regDescription, "description", "", "What was given or received")
	registerAddCmd.Flags().StringVar(&regCounterparty, "counterparty", "", "The other party")
	registerAddCmd.Flags().StringVar(&regEmployee, "employee", "", "Employee involved")
	registerAddCmd.Flags().Int64Var(&regValue, "value", 0, "Value in pence")
	registerAddCmd.Flags().BoolVar(&regConflict, "conflict", false, "Flag a potential conflict of interest")
	registerAddCmd.Flags().StringVar(&regOccurred, "date", "", "Date it occurred (YYYY-MM-DD, default today)")
	registerAddCmd.MarkFlagRequired("description")
	registerAddCmd.MarkFlagRequired("employee")

	registerListCmd.Flags().StringVar(&regKind, "kind", "", "Filter by kind")
	registerListCmd.Flags().StringVar(&regStatus, "status", "", "Filter by status")
	registerListCmd.Flags().StringVar(&regEmployee, "employee", "", "Filter by employee")

	registerStatusCmd.Flags().StringVar(&regApprover, "approver", "", "Who made the decision")
	registerStatusCmd.MarkFlagRequired("approver")

	registerExportCmd.Flags().StringVar(&regKind, "kind", "", "Filter by kind")
	registerExportCmd.Flags().StringVar(&regStatus, "status", "", "Filter by status")
	registerExportCmd.Flags().StringVar(&regEmployee, "employee", "", "Filter by employee")
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Gifts & hospitality register operations",
}

var registerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a gift or hospitality entry",
	RunE:  runRegisterAdd,
}

var registerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List register entries",
	RunE:  runRegisterList,
}

var registerStatusCmd = &cobra.Command{
	Use:   "status <entry-id> <pending|approved|declined>",
	Short: "Set the approval status of an entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegisterStatus,
}

var registerExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the register as CSV to stdout",
	RunE:  runRegisterExport,
}

var registerSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals by kind, status and employee",
	RunE:  runRegisterSummary,
}

func openStore() (*register.Store, error) {
	path := regDB
	if path == "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		path = cfg.RegisterDB
	}
	return register.Open(path)
}

func runRegisterAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	occurred := time.Now().UTC()
	if regOccurred != "" {
		occurred, err = time.Parse("2006-01-02", regOccurred)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", regOccurred, err)
		}
	}

	entry, err := store.Add(context.Background(), model.RegisterEntry{
		Kind:         model.EntryKind(regKind),
		Direction:    model.EntryDirection(regDirection),
		Description:  regDescription,
		Counterparty: regCounterparty,
		Employee:     regEmployee,
		ValuePence:   regValue,
		ConflictFlag: regConflict,
		OccurredAt:   occurred,
	})
	if err != nil {
		return err
	}
	fmt.Printf("recorded %s (%s, %s)\n", entry.ID, entry.Kind, entry.Status)
	return nil
}

func runRegisterList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), register.Filter{
		Kind:     model.EntryKind(regKind),
		Status:   model.EntryStatus(regStatus),
		Employee: regEmployee,
	})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no entries")
		return nil
	}
	for _, e := range entries {
		conflict := ""
		if e.ConflictFlag {
			conflict = " CONFLICT"
		}
		fmt.Printf("%s  %-11s %-8s %-9s £%8.2f  %-14s %s%s\n",
			e.ID, e.Kind, e.Direction, e.Status,
			float64(e.ValuePence)/100, e.Employee, e.Description, conflict)
	}
	return nil
}

func runRegisterStatus(cmd *cobra.Command, args []string) error {
	status := model.EntryStatus(args[1])
	if !model.ValidEntryStatus(status) {
		return fmt.Errorf("invalid status %q", args[1])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetStatus(context.Background(), args[0], status, regApprover); err != nil {
		return err
	}
	fmt.Printf("%s -> %s (by %s)\n", args[0], status, regApprover)
	return nil
}

func runRegisterExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ExportCSV(context.Background(), os.Stdout, register.Filter{
		Kind:     model.EntryKind(regKind),
		Status:   model.EntryStatus(regStatus),
		Employee: regEmployee,
	})
}

func runRegisterSummary(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sum, err := store.Summarize(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("entries: %d  pending: %d  conflicts: %d  total: £%.2f\n",
		sum.TotalEntries, sum.PendingCount, sum.ConflictCount, float64(sum.TotalValuePence)/100)
	if len(sum.ValueByEmployee) > 0 {
		fmt.Println("\nby employee:")
		for emp, pence := range sum.ValueByEmployee {
			fmt.Printf("  %-20s £%.2f\n", emp, float64(pence)/100)
		}
	}
	return nil
}
