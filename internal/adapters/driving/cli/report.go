package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a sales report for a date range",
	Long: `Aggregates revenue, sale count, and a per-product breakdown over
an inclusive date range. Without flags, reports on today.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "start date (YYYY-MM-DD, inclusive)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "end date (YYYY-MM-DD, inclusive)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	start, end, err := reportRange(reportFrom, reportTo, time.Now())
	if err != nil {
		return err
	}

	report, err := salesService.Report(cmdContext(cmd), start, end)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	cmd.Printf("Sales %s to %s\n", time.Unix(start, 0).Format("2006-01-02"), time.Unix(end, 0).Format("2006-01-02"))
	cmd.Printf("  Revenue: %.2f\n", report.TotalRevenue)
	cmd.Printf("  Sales:   %d\n", report.Count)
	if len(report.Products) > 0 {
		cmd.Println()
		for _, p := range report.Products {
			cmd.Printf("  %4dx %-24s  %.2f\n", p.Quantity, p.ProductName, p.Revenue)
		}
	}
	return nil
}

// reportRange turns the from/to date strings into an inclusive Unix
// second range covering whole local days. Empty strings mean today.
func reportRange(from, to string, now time.Time) (int64, int64, error) {
	dayStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	start := dayStart(now)
	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, now.Location())
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --from date %q", from)
		}
		start = t
	}

	endDay := dayStart(now)
	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, now.Location())
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --to date %q", to)
		}
		endDay = t
	}
	end := endDay.AddDate(0, 0, 1).Add(-time.Second)

	if end.Before(start) {
		return 0, 0, fmt.Errorf("--to is before --from")
	}
	return start.Unix(), end.Unix(), nil
}
