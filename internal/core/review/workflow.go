package review

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/redline/internal/core/logging"
)

// State identifies the workflow step. The machine only moves forward:
// a review session is one-shot and never returns to an earlier step.
type State int

const (
	StateUpload State = iota
	StateReview
	StateResult
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case StateUpload:
		return "Upload"
	case StateReview:
		return "Review"
	case StateResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Workflow condition taxonomy. ErrMissingCredential is a local
// precondition failure and never reaches the network; ErrUploadFailed
// and ErrAnalysisFailed wrap external-call failures. Guard rejections
// (ErrBusy, ErrWrongState) are not user-facing conditions.
var (
	ErrMissingCredential = fmt.Errorf("missing credential")
	ErrUploadFailed      = fmt.Errorf("upload failed")
	ErrAnalysisFailed    = fmt.Errorf("analysis failed")
	ErrBusy              = fmt.Errorf("another call is in flight")
	ErrWrongState        = fmt.Errorf("not available in this state")
)

// Workflow owns the document, the finding set, and the ingest -> review
// -> result state machine. All mutation goes through the transition
// methods below, so the machine is auditable and testable without a
// rendering surface.
//
// External calls are split into Begin/Complete pairs: Begin validates
// preconditions and raises the loading flag, the caller performs the
// call, and Complete applies the outcome. The loading flag is the only
// concurrency guard in the system; while it is set every second Begin
// is rejected with ErrBusy rather than queued.
type Workflow struct {
	state      State
	loading    bool
	credential string
	doc        Document
	findings   []Finding
	log        zerolog.Logger
}

// NewWorkflow creates a workflow in the Upload state.
func NewWorkflow(credential string) *Workflow {
	return &Workflow{
		credential: credential,
		log:        logging.Component("workflow"),
	}
}

// State returns the current workflow step.
func (w *Workflow) State() State { return w.state }

// Loading reports whether an external call is in flight.
func (w *Workflow) Loading() bool { return w.loading }

// Document returns the document under review.
func (w *Workflow) Document() Document { return w.doc }

// Findings returns the current finding set.
func (w *Workflow) Findings() []Finding { return w.findings }

// Credential returns the configured credential.
func (w *Workflow) Credential() string { return w.credential }

// SetCredential replaces the credential. Only meaningful before the
// first upload begins.
func (w *Workflow) SetCredential(credential string) {
	w.credential = credential
}

// HasCredential reports whether a non-empty credential is set.
func (w *Workflow) HasCredential() bool {
	return strings.TrimSpace(w.credential) != ""
}

// BeginUpload validates the ingest preconditions and raises the
// loading flag. ErrMissingCredential is reported without any network
// attempt.
func (w *Workflow) BeginUpload() error {
	if w.state != StateUpload {
		return ErrWrongState
	}
	if w.loading {
		return ErrBusy
	}
	if !w.HasCredential() {
		return ErrMissingCredential
	}
	w.loading = true
	return nil
}

// CompleteUpload applies the outcome of the extraction call. On
// failure the state stays Upload and the loading flag clears; no
// partial transition occurs.
func (w *Workflow) CompleteUpload(text string, err error) error {
	w.loading = false
	if err != nil {
		w.log.Error().Err(err).Msg("document extraction failed")
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	w.doc = NewDocument(text)
	w.findings = nil
	w.state = StateReview
	w.log.Info().Int("lines", len(w.doc.Lines)).Msg("document extracted")
	return nil
}

// EditText mutates the raw text in place during Review. No side
// effects, no validation; the line split is recomputed.
func (w *Workflow) EditText(text string) {
	if w.state != StateReview {
		return
	}
	w.doc.SetText(text)
}

// BeginAnalysis validates the analysis preconditions and raises the
// loading flag.
func (w *Workflow) BeginAnalysis() error {
	if w.state != StateReview {
		return ErrWrongState
	}
	if w.loading {
		return ErrBusy
	}
	w.loading = true
	return nil
}

// CompleteAnalysis applies the outcome of the analysis call. On
// success the finding set is replaced wholesale and the state becomes
// Result; on failure the state stays Review.
func (w *Workflow) CompleteAnalysis(findings []Finding, err error) error {
	w.loading = false
	if err != nil {
		w.log.Error().Err(err).Msg("clause analysis failed")
		return fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	w.findings = findings
	w.state = StateResult
	w.log.Info().
		Int("findings", len(findings)).
		Int("toxic", ToxicCount(findings)).
		Msg("analysis complete")
	return nil
}

// Annotated correlates the current document lines against the current
// finding set. Derived, recomputed on every call.
func (w *Workflow) Annotated() []AnnotatedLine {
	return Correlate(w.doc.Lines, w.findings)
}
