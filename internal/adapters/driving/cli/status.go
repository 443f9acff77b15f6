package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status [request-id]",
	Short: "Look up a submitted request",
	Long: `Fetches the stored state of a previously submitted withdrawal
request from the validation service.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output the status as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	svc, err := workflow()
	if err != nil {
		return err
	}

	status, err := svc.RequestStatus(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("status lookup failed: %w", err)
	}

	if statusJSON {
		return outputJSON(cmd, status)
	}

	cmd.Printf("رقم الطلب: %s\n", status.ID)
	cmd.Printf("المقرر: %s  %s\n", status.CourseCode, status.CourseName)
	cmd.Printf("الفصل: %s - هـ%s\n", status.Semester, status.Year)
	cmd.Printf("الحالة: %s\n", status.Status)
	if status.CreatedAt != "" {
		cmd.Printf("تاريخ التقديم: %s\n", status.CreatedAt)
	}
	return nil
}
