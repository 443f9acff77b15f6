package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past submissions",
	Long: `Lists this client's own record of submitted withdrawal requests,
newest first. The history is kept locally and survives restarts.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output the history as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, err := workflow()
	if err != nil {
		return err
	}

	records, err := svc.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, records)
	}

	if len(records) == 0 {
		cmd.Println("لا توجد طلبات سابقة")
		return nil
	}

	for _, record := range records {
		verdict := "✗"
		if record.Eligible {
			verdict = "✓"
		}
		line := fmt.Sprintf("%s  %s  %s  %s",
			record.SubmittedAt.Format("2006-01-02 15:04"),
			verdict, record.CourseCode, record.CourseName)
		if record.RequestID != "" {
			line += fmt.Sprintf("  (طلب %s)", record.RequestID)
		}
		cmd.Println(line)
	}
	return nil
}
