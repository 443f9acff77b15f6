package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

var (
	submitTranscript string
	submitSupporting string
	submitCourse     string
	submitSemester   string
	submitYear       string
	submitReasonType string
	submitReason     string
	submitAck        bool
	submitJSON       bool
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a withdrawal request",
	Long: `Submits a course withdrawal request for eligibility validation.

The transcript is parsed first; the selected course must be among the
courses registered this semester. The request is evaluated against the
service's eligibility rules and the full outcome is printed, including
every rule checked.

The declaration must be accepted with --ack before submitting.`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitTranscript, "transcript", "t", "", "academic transcript file (PDF)")
	submitCmd.Flags().StringVarP(&submitCourse, "course", "c", "", "course code to withdraw from")
	submitCmd.Flags().StringVar(&submitSupporting, "supporting", "", "supporting document file (PDF)")
	submitCmd.Flags().StringVar(&submitSemester, "semester", "", "semester number")
	submitCmd.Flags().StringVar(&submitYear, "year", "", "academic year (hijri)")
	submitCmd.Flags().StringVar(&submitReasonType, "reason-type", "", "withdrawal reason category")
	submitCmd.Flags().StringVar(&submitReason, "reason", "", "withdrawal reason")
	submitCmd.Flags().BoolVar(&submitAck, "ack", false, "accept the declaration")
	submitCmd.Flags().BoolVar(&submitJSON, "json", false, "output the outcome as JSON")
	_ = submitCmd.MarkFlagRequired("transcript")
	_ = submitCmd.MarkFlagRequired("course")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	svc, err := workflow()
	if err != nil {
		return err
	}

	transcript, err := domain.AttachmentFromFile(submitTranscript)
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}

	record, err := svc.ParseTranscript(cmd.Context(), transcript)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	course, ok := record.CourseByCode(submitCourse)
	if !ok {
		return fmt.Errorf("course %s is not registered this semester", submitCourse)
	}

	form := domain.WithdrawalForm{
		Transcript:     transcript,
		SelectedCourse: course,
		Acknowledged:   submitAck,
		StudentName:    record.Student.Name,
		StudentID:      record.Student.ID.String(),
		Degree:         record.Student.Degree,
		Major:          record.Student.Department,
		Semester:       submitSemester,
		Year:           submitYear,
		ReasonType:     submitReasonType,
		Reason:         submitReason,
	}
	if record.CurrentSemester != nil && form.Semester == "" {
		form.Semester = fmt.Sprintf("%d", *record.CurrentSemester)
	}
	if record.CurrentYear != nil && form.Year == "" {
		form.Year = fmt.Sprintf("%d", *record.CurrentYear)
	}
	if submitSupporting != "" {
		supporting, err := domain.AttachmentFromFile(submitSupporting)
		if err != nil {
			return fmt.Errorf("reading supporting document: %w", err)
		}
		form.SupportingDoc = &supporting
	}

	outcome, err := svc.Submit(cmd.Context(), form)
	if err != nil {
		cmd.PrintErrln(domain.UserMessage(err))
		return fmt.Errorf("submission failed: %w", err)
	}

	if submitJSON {
		return outputJSON(cmd, outcome)
	}
	outputOutcome(cmd, outcome)
	return nil
}

func outputOutcome(cmd *cobra.Command, outcome *domain.ValidationOutcome) {
	if outcome.Eligible {
		cmd.Println(render(outputStyles.Eligible, "✓ "+domain.MsgEligible))
	} else {
		cmd.Println(render(outputStyles.NotEligible, "✗ "+domain.MsgNotEligible))
	}
	if outcome.RequestID != "" {
		cmd.Printf("رقم الطلب: #%s\n", outcome.RequestID)
	}

	if len(outcome.RulesChecked) > 0 {
		cmd.Println()
		cmd.Println(render(outputStyles.Subtitle, "القواعد المفحوصة"))
		for _, rule := range outcome.RulesChecked {
			cmd.Printf("  %s %s\n", rule.Status.Glyph(), rule.Rule)
			if rule.Detail != "" {
				cmd.Printf("    %s\n", rule.Detail)
			}
		}
	}

	if len(outcome.Errors) > 0 {
		cmd.Println()
		cmd.Println(render(outputStyles.Subtitle, "أسباب الرفض"))
		for _, msg := range outcome.Errors {
			cmd.Printf("  • %s\n", msg)
		}
	}
	if len(outcome.Warnings) > 0 {
		cmd.Println()
		cmd.Println(render(outputStyles.Subtitle, "تنبيهات"))
		for _, msg := range outcome.Warnings {
			cmd.Printf("  • %s\n", msg)
		}
	}
}
