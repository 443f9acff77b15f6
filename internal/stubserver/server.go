// Package stubserver provides a local stand-in for the university
// validation service. It implements the same HTTP contract so the
// client can be exercised end to end without the real backend.
package stubserver

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// storedRequest is one accepted withdrawal request.
type storedRequest struct {
	ID         int
	CourseCode string
	CourseName string
	Semester   string
	Year       string
	Status     string
	Eligible   bool
	CreatedAt  time.Time
}

// Server serves the stub validation API.
type Server struct {
	echo *echo.Echo

	mu       sync.Mutex
	nextID   int
	requests map[int]storedRequest
	seen     map[string]int
}

// New creates a stub server with empty state.
func New() *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		nextID:   1,
		requests: make(map[int]storedRequest),
		seen:     make(map[string]int),
	}

	e.POST("/parse-transcript", s.handleParseTranscript)
	e.POST("/validate", s.handleValidate)
	e.GET("/request/:id", s.handleRequestStatus)

	return s
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}

// allowedName reports whether the uploaded filename carries an accepted
// extension.
func allowedName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range domain.AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

func (s *Server) handleParseTranscript(c echo.Context) error {
	header, err := c.FormFile("transcript")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "لم يتم رفع السجل الأكاديمي")
	}
	if header.Filename == "" {
		return errorJSON(c, http.StatusBadRequest, "لم يتم اختيار ملف")
	}
	if !allowedName(header.Filename) {
		return errorJSON(c, http.StatusBadRequest, domain.MsgOnlyPDF)
	}

	return c.JSON(http.StatusOK, sampleRecord())
}

func (s *Server) handleValidate(c echo.Context) error {
	header, err := c.FormFile("transcript")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "لم يتم رفع السجل الأكاديمي")
	}
	if header.Filename == "" {
		return errorJSON(c, http.StatusBadRequest, "لم يتم اختيار ملف")
	}
	if !allowedName(header.Filename) {
		return errorJSON(c, http.StatusBadRequest, domain.MsgOnlyPDF)
	}

	supporting, err := c.FormFile("supporting_doc")
	if err != nil || supporting.Filename == "" {
		return errorJSON(c, http.StatusBadRequest, "يرجى رفع المستند الداعم لسبب الاعتذار")
	}
	if !allowedName(supporting.Filename) {
		return errorJSON(c, http.StatusBadRequest, "يرجى رفع المستند الداعم بصيغة PDF فقط")
	}

	courseCode := strings.TrimSpace(c.FormValue("course_code"))
	courseName := strings.TrimSpace(c.FormValue("course_name"))
	semester := strings.TrimSpace(c.FormValue("semester"))
	year := strings.TrimSpace(c.FormValue("year"))

	student := sampleRecord().Student
	if v := c.FormValue("student_name"); v != "" {
		student.Name = v
	}
	if v := c.FormValue("student_id"); v != "" {
		student.ID = domain.FlexString(v)
	}
	degree := student.Degree
	if v := c.FormValue("degree"); v != "" {
		degree = v
	}

	s.mu.Lock()
	key := strings.Join([]string{student.ID.String(), courseCode, semester, year}, "|")
	if existingID, ok := s.seen[key]; ok {
		s.mu.Unlock()
		return c.JSON(http.StatusConflict, echo.Map{
			"error": fmt.Sprintf(
				"تم تقديم طلب اعتذار لنفس المقرر (%s) في نفس الفصل مسبقاً. رقم الطلب: %d",
				courseCode, existingID),
			"duplicate":  true,
			"request_id": existingID,
		})
	}

	outcome := evaluate(evaluation{
		Degree:           degree,
		Semester:         semester,
		CourseCode:       courseCode,
		WithdrawalCount:  sampleWithdrawalCount,
		RemainingCredits: sampleRemainingCredits,
	})
	outcome.TranscriptData.StudentName = student.Name
	outcome.TranscriptData.StudentID = student.ID
	outcome.TranscriptData.Major = c.FormValue("major")
	outcome.TranscriptData.Department = student.Department
	outcome.TranscriptData.Degree = degree
	outcome.TranscriptData.GPA = student.GPA

	id := s.nextID
	s.nextID++
	s.seen[key] = id
	s.requests[id] = storedRequest{
		ID:         id,
		CourseCode: courseCode,
		CourseName: courseName,
		Semester:   semester,
		Year:       year,
		Status:     "pending",
		Eligible:   outcome.Eligible,
		CreatedAt:  time.Now().UTC(),
	}
	s.mu.Unlock()

	outcome.RequestID = domain.FlexString(strconv.Itoa(id))
	return c.JSON(http.StatusOK, outcome)
}

func (s *Server) handleRequestStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusNotFound, "الطلب غير موجود")
	}

	s.mu.Lock()
	req, ok := s.requests[id]
	s.mu.Unlock()
	if !ok {
		return errorJSON(c, http.StatusNotFound, "الطلب غير موجود")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":          req.ID,
		"course_code": req.CourseCode,
		"course_name": req.CourseName,
		"semester":    req.Semester,
		"year":        req.Year,
		"status":      req.Status,
		"eligible":    req.Eligible,
		"created_at":  req.CreatedAt.Format(time.RFC3339),
	})
}
