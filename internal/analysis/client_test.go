package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/upload", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "secret-key", r.FormValue("api_key"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "contract.pdf", header.Filename)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":   "success",
			"filename": "contract.pdf",
			"text":     "제1조 목적\n제3조 (계약의 해지)",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	text, err := c.UploadDocument(context.Background(), "contract.pdf", []byte("%PDF-1.4"), "secret-key")
	require.NoError(t, err)
	assert.Equal(t, "제1조 목적\n제3조 (계약의 해지)", text)
}

func TestUploadDocumentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "extraction failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.UploadDocument(context.Background(), "contract.pdf", []byte("%PDF-1.4"), "secret-key")

	var ue *UploadError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Status, "500")
}

func TestUploadDocumentTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listens here
	_, err := c.UploadDocument(context.Background(), "contract.pdf", nil, "secret-key")

	var ue *UploadError
	require.ErrorAs(t, err, &ue)
	require.Error(t, ue.Unwrap())
}

func TestAnalyzeDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "secret-key", req.APIKey)
		assert.NotEmpty(t, req.Text)

		_, _ = w.Write([]byte(`{
			"status": "success",
			"findings": [
				{"id": 1, "title": "제3조 (계약의 해지)", "score": 0.9, "reason": "해고 예고 없음", "description": "desc", "fix": "fix"},
				{"id": 2, "title": "제5조 (손해배상)", "score": 0.6, "reason": "위약 예정", "description": "desc", "fix": "fix"}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	findings, err := c.AnalyzeDocument(context.Background(), "제3조 (계약의 해지) ...", "secret-key")
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, 1, findings[0].ID)
	assert.InDelta(t, 0.9, findings[0].Score, 1e-9)
	assert.Equal(t, "제5조 (손해배상)", findings[1].Title)
}

func TestAnalyzeDocumentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.AnalyzeDocument(context.Background(), "text", "wrong")

	var ae *AnalysisError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Status, "401")
}
