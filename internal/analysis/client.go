// Package analysis is the HTTP client for the remote extraction and
// clause-analysis service. Transport details live here; callers only
// see the two semantic operations and their typed failures.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/redline/internal/core/logging"
	"github.com/colonyops/redline/internal/core/review"
)

// UploadError reports a failed document extraction call. Any
// non-success result is wrapped in one; callers treat it uniformly.
type UploadError struct {
	Status string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return "upload document: " + e.Err.Error()
	}
	return "upload document: service returned " + e.Status
}

func (e *UploadError) Unwrap() error { return e.Err }

// AnalysisError reports a failed clause-analysis call.
type AnalysisError struct {
	Status string
	Err    error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return "analyze document: " + e.Err.Error()
	}
	return "analyze document: service returned " + e.Status
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// Client talks to the analysis service. It performs no retries and
// carries no timeout of its own; cancellation comes from the caller's
// context.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     logging.Component("analysis").Hook(logging.ContextHook{}),
	}
}

type uploadResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// UploadDocument sends the raw document and credential to the service
// and returns the extracted text. The service accepts a multipart form
// with the file and the api_key field.
func (c *Client) UploadDocument(ctx context.Context, filename string, content []byte, credential string) (string, error) {
	ctx = logging.WithRequestID(ctx, uuid.NewString())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	if _, err := fw.Write(content); err != nil {
		return "", &UploadError{Err: err}
	}
	if err := mw.WriteField("api_key", credential); err != nil {
		return "", &UploadError{Err: err}
	}
	if err := mw.Close(); err != nil {
		return "", &UploadError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-ID", logging.GetRequestID(ctx))

	c.log.Debug().Ctx(ctx).Str("filename", filename).Int("bytes", len(content)).Msg("uploading document")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close after read

	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		c.log.Warn().Ctx(ctx).Str("status", resp.Status).Msg("upload rejected")
		return "", &UploadError{Status: resp.Status}
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", &UploadError{Err: fmt.Errorf("decode response: %w", err)}
	}

	c.log.Info().Ctx(ctx).Str("filename", ur.Filename).Int("chars", len(ur.Text)).Msg("document extracted")
	return ur.Text, nil
}

type analyzeRequest struct {
	Text   string `json:"text"`
	APIKey string `json:"api_key"`
}

type analyzeResponse struct {
	Status   string           `json:"status"`
	Findings []review.Finding `json:"findings"`
}

// AnalyzeDocument submits the reviewed text for clause analysis and
// returns the flagged findings.
func (c *Client) AnalyzeDocument(ctx context.Context, text, credential string) ([]review.Finding, error) {
	ctx = logging.WithRequestID(ctx, uuid.NewString())

	body, err := json.Marshal(analyzeRequest{Text: text, APIKey: credential})
	if err != nil {
		return nil, &AnalysisError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, &AnalysisError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", logging.GetRequestID(ctx))

	c.log.Debug().Ctx(ctx).Int("chars", len(text)).Msg("requesting clause analysis")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &AnalysisError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close after read

	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		c.log.Warn().Ctx(ctx).Str("status", resp.Status).Msg("analysis rejected")
		return nil, &AnalysisError{Status: resp.Status}
	}

	var ar analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, &AnalysisError{Err: fmt.Errorf("decode response: %w", err)}
	}

	c.log.Info().Ctx(ctx).Int("findings", len(ar.Findings)).Msg("analysis returned")
	return ar.Findings, nil
}

// drain consumes a response body so the connection can be reused.
func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 4096))
}
