package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fbkclanna/autocommit/internal/ui"
)

// Phase names a pipeline step.
type Phase string

const (
	PhaseTool      Phase = "tool"
	PhaseBootstrap Phase = "bootstrap"
	PhaseGate      Phase = "gate"
	PhaseExecute   Phase = "execute"
	PhaseCommit    Phase = "commit"
	PhasePublish   Phase = "publish"
)

// Status is the outcome of a phase.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusWarning Status = "warning"
)

// PhaseResult records how one phase ended.
type PhaseResult struct {
	Phase  Phase  `json:"phase"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

func ok(p Phase, detail string) PhaseResult {
	return PhaseResult{Phase: p, Status: StatusOK, Detail: detail}
}

func skipped(p Phase, detail string) PhaseResult {
	return PhaseResult{Phase: p, Status: StatusSkipped, Detail: detail}
}

func warning(p Phase, detail string, err error) PhaseResult {
	return PhaseResult{Phase: p, Status: StatusWarning, Detail: detail, Err: err}
}

// Report aggregates the phases of one run.
type Report struct {
	RunID         string        `json:"run_id"`
	Started       time.Time     `json:"started"`
	Finished      time.Time     `json:"finished"`
	Counter       int           `json:"counter,omitempty"`
	Artifact      string        `json:"artifact,omitempty"`
	ChildExitCode *int          `json:"child_exit_code,omitempty"`
	Commit        string        `json:"commit,omitempty"`
	Pushed        bool          `json:"pushed"`
	Phases        []PhaseResult `json:"phases"`
}

func (r *Report) add(res PhaseResult) {
	if res.Err != nil {
		res.Error = res.Err.Error()
	}
	r.Phases = append(r.Phases, res)
}

// Result returns the result of phase p, if it ran.
func (r *Report) Result(p Phase) (PhaseResult, bool) {
	for _, res := range r.Phases {
		if res.Phase == p {
			return res, true
		}
	}
	return PhaseResult{}, false
}

// Committed reports whether the run produced a commit.
func (r *Report) Committed() bool { return r.Commit != "" }

// Warnings returns the phases that ended with a warning.
func (r *Report) Warnings() []PhaseResult {
	var out []PhaseResult
	for _, res := range r.Phases {
		if res.Status == StatusWarning {
			out = append(out, res)
		}
	}
	return out
}

// WriteTable renders the phases as an aligned table.
func (r *Report) WriteTable(w io.Writer, color bool) error {
	tbl := ui.NewTable(w, "PHASE", "STATUS", "DETAIL")
	for _, res := range r.Phases {
		detail := res.Detail
		if res.Error != "" {
			detail += " (" + res.Error + ")"
		}
		tbl.Row(res.Phase, ui.StatusCell(string(res.Status), color), detail)
	}
	return tbl.Flush()
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
