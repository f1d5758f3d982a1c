package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sherlock/internal/adapter/store"
	"sherlock/internal/port"
)

func newReportsCmd(a *app) *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "reports [ID]",
		Short: "List or show saved line-count reports",
		Long: `Reports saved with 'line-count --save' are kept in a local database
(~/.sherlock/reports.db unless store.path is configured).

Examples:
  sherlock reports           # List saved reports, newest first
  sherlock reports 3         # Print report 3
  sherlock reports --clear   # Delete every saved report`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openReportStore(a)
			if err != nil {
				return err
			}
			defer st.Close()

			if clearAll {
				return st.Clear()
			}
			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid report id %q: %w", args[0], err)
				}
				report, err := st.GetReport(id)
				if err != nil {
					return err
				}
				printEntries(cmd.OutOrStdout(), report.Entries)
				return nil
			}
			return listReports(cmd, st)
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete every saved report")

	return cmd
}

func openReportStore(a *app) (port.ReportStore, error) {
	st, err := store.NewBoltStore(a.cfg.ReportsDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open report store: %w", err)
	}
	return st, nil
}

func listReports(cmd *cobra.Command, st port.ReportStore) error {
	reports, err := st.ListReports()
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved reports.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tROOT\tEXT\tMODE\tENTRIES\tTOTAL")
	for _, r := range reports {
		mode := "files"
		if r.Grouped {
			mode = "grouped"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Root, r.Extension, mode, len(r.Entries), r.Total())
	}
	return w.Flush()
}
