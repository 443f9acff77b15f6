// Package httpapi implements the validation gateway against the remote
// withdrawal service over HTTP. Both operations post multipart form
// content and classify the response into success, domain error,
// conflict, or transport error.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driven"
	"github.com/uot-apps/withdrawal-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	parsePath    = "/parse-transcript"
	validatePath = "/validate"
	requestPath  = "/request/"
)

// Ensure Client implements the gateway port.
var _ driven.ValidationGateway = (*Client)(nil)

// Client talks to the remote transcript-parsing and validation
// endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithRateLimit overrides the client-side request limiter.
func WithRateLimit(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		// One request per second is plenty for an interactive client.
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the JSON shape of non-2xx responses.
type errorBody struct {
	Error     string          `json:"error"`
	Duplicate bool            `json:"duplicate"`
	RequestID json.RawMessage `json:"request_id"`
}

// ParseTranscript posts the transcript to the parsing endpoint.
func (c *Client) ParseTranscript(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error) {
	body, contentType, err := multipartBody(map[string]string{}, map[string]domain.Attachment{
		domain.SlotTranscript.String(): transcript,
	})
	if err != nil {
		return nil, fmt.Errorf("building parse request: %w", err)
	}

	var record domain.ParsedStudentRecord
	if err := c.post(ctx, parsePath, contentType, body, domain.MsgParseFailed, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// SubmitValidation posts the full form snapshot to the validation
// endpoint.
func (c *Client) SubmitValidation(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error) {
	files := map[string]domain.Attachment{
		domain.SlotTranscript.String(): form.Transcript,
	}
	if form.SupportingDoc != nil {
		files[domain.SlotSupporting.String()] = *form.SupportingDoc
	}

	body, contentType, err := multipartBody(form.Fields(), files)
	if err != nil {
		return nil, fmt.Errorf("building validation request: %w", err)
	}

	var outcome domain.ValidationOutcome
	if err := c.post(ctx, validatePath, contentType, body, domain.MsgProcessFailed, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// RequestStatus fetches the stored state of a submitted request.
func (c *Client) RequestStatus(ctx context.Context, id string) (*domain.RequestStatus, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+requestPath+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("building status request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Warn("status request failed: %v", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyError(resp, domain.MsgProcessFailed)
	}

	var status domain.RequestStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decoding status response: %w", err)
	}
	return &status, nil
}

// post sends a multipart POST and decodes a 2xx JSON body into out.
// Non-2xx responses are classified into conflict or domain errors;
// network failures become transport errors.
func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader, fallback string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	correlationID := uuid.NewString()
	req.Header.Set("X-Request-ID", correlationID)
	logger.Debug("POST %s (correlation %s)", path, correlationID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Warn("POST %s transport failure (correlation %s): %v", path, correlationID, err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyError(resp, fallback)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// classifyError turns a non-2xx response into a conflict or domain
// error. A missing or unreadable error body falls back to the generic
// message for the operation.
func classifyError(resp *http.Response, fallback string) error {
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		body = errorBody{}
	}

	message := body.Error
	if message == "" {
		message = fallback
	}

	if resp.StatusCode == http.StatusConflict && body.Duplicate {
		return &ConflictError{
			Message:   message,
			RequestID: strings.Trim(string(body.RequestID), `"`),
		}
	}

	return &DomainError{StatusCode: resp.StatusCode, Message: message}
}

// multipartBody assembles the multipart form content for a request.
// File parts carry the attachment's declared MIME type.
func multipartBody(fields map[string]string, files map[string]domain.Attachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	for field, att := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, field, att.Name))
		if att.DeclaredType != "" {
			header.Set("Content-Type", att.DeclaredType)
		}

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating part %s: %w", field, err)
		}

		f, err := os.Open(att.Path)
		if err != nil {
			return nil, "", fmt.Errorf("opening attachment: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("copying attachment: %w", err)
		}
		f.Close()
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalising multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
