package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [transcript]",
	Short: "Parse an academic transcript",
	Long: `Uploads the academic transcript to the parsing endpoint and prints
the extracted student record: name, academic number, college, degree,
GPA and the courses registered this semester.

Only PDF transcripts are accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	svc, err := workflow()
	if err != nil {
		return err
	}

	att, err := domain.AttachmentFromFile(args[0])
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}

	record, err := svc.ParseTranscript(cmd.Context(), att)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if parseJSON {
		return outputJSON(cmd, record)
	}
	outputRecord(cmd, record)
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecord(cmd *cobra.Command, record *domain.ParsedStudentRecord) {
	s := record.Student
	cmd.Println(render(outputStyles.Title, "السجل الأكاديمي"))
	cmd.Printf("  الاسم: %s\n", orNotAvailable(s.Name))
	cmd.Printf("  الرقم الأكاديمي: %s\n", orNotAvailable(s.ID.String()))
	cmd.Printf("  الكلية: %s\n", orNotAvailable(s.College))
	cmd.Printf("  التخصص: %s\n", orNotAvailable(s.Department))
	cmd.Printf("  الدرجة: %s\n", orNotAvailable(s.Degree))
	cmd.Printf("  المعدل التراكمي: %s\n", orNotAvailable(s.GPA.String()))

	if record.HasSemesterInfo() {
		cmd.Printf("  الفصل الدراسي: الفصل %d - هـ%d\n",
			*record.CurrentSemester, *record.CurrentYear)
	}

	cmd.Println()
	cmd.Println(render(outputStyles.Subtitle, "المقررات المسجلة"))
	if len(record.Courses) == 0 {
		cmd.Println("  لا توجد مقررات مسجلة")
		return
	}
	for _, course := range record.Courses {
		cmd.Printf("  %s  %s\n", course.Code, course.Name)
	}
}
