package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fbkclanna/autocommit/internal/counter"
	"github.com/fbkclanna/autocommit/internal/git"
	"github.com/fbkclanna/autocommit/internal/logging"
	"github.com/fbkclanna/autocommit/internal/project"
	"github.com/google/uuid"
)

// Runner executes the auto-commit pipeline for one project.
type Runner struct {
	project *project.Context
	git     *git.Client
	log     *log.Logger
	now     func() time.Time
	newID   func() string
	noPush  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for every phase message.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithClock replaces time.Now for commit timestamps and the report.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithRunID replaces the run ID generator.
func WithRunID(newID func() string) Option {
	return func(r *Runner) { r.newID = newID }
}

// WithoutPush disables the publish phase regardless of configuration.
func WithoutPush() Option {
	return func(r *Runner) { r.noPush = true }
}

// New returns a Runner for the given project.
func New(pc *project.Context, opts ...Option) *Runner {
	r := &Runner{
		project: pc,
		git:     git.New(pc.Root, git.WithTool(pc.Tool)),
		log:     logging.Discard(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run executes the phases in order and returns the report. It never fails:
// every problem is recorded as a skipped or warning phase.
func (r *Runner) Run(ctx context.Context) *Report {
	rep := &Report{RunID: r.newID(), Started: r.now()}
	defer func() { rep.Finished = r.now() }()

	if !r.record(rep, r.checkTool()) {
		return rep
	}

	boot, bootstrapped := r.bootstrap(ctx)
	r.record(rep, boot)

	gateRes, run := r.gate(ctx, bootstrapped)
	r.record(rep, gateRes)
	if !run {
		return rep
	}

	next := r.nextCounter()
	rep.Counter = next
	rep.Artifact = r.project.ArtifactRel(next)

	execRes, exitCode, cont := r.execute(ctx, rep.Artifact)
	rep.ChildExitCode = exitCode
	r.record(rep, execRes)
	if !cont {
		rep.Counter, rep.Artifact = 0, ""
		return rep
	}

	commitRes, sha := r.commit(ctx, next, rep.Artifact, rep.RunID)
	r.record(rep, commitRes)
	if sha == "" {
		rep.Counter, rep.Artifact = 0, ""
		return rep
	}
	rep.Commit = sha

	pub := r.publish(ctx)
	rep.Pushed = pub.Status == StatusOK
	r.record(rep, pub)
	return rep
}

// record logs and stores a phase result and reports whether it was ok.
func (r *Runner) record(rep *Report, res PhaseResult) bool {
	rep.add(res)
	logger := r.log.With("phase", res.Phase)
	switch res.Status {
	case StatusWarning:
		logger.Warn(res.Detail, "err", res.Err)
	case StatusSkipped:
		logger.Info("skipping: " + res.Detail)
	default:
		logger.Info(res.Detail)
	}
	return res.Status == StatusOK
}

func (r *Runner) gate(ctx context.Context, bootstrapped bool) (PhaseResult, bool) {
	d, err := Gate(ctx, r.git, r.project.WatchSet(), bootstrapped)
	switch {
	case err != nil:
		return warning(PhaseGate, d.Reason+"; running anyway", err), true
	case !d.Run:
		return skipped(PhaseGate, d.Reason), false
	}
	for _, c := range d.Changes {
		r.log.Debug("changed", "code", c.Code, "path", c.Path)
	}
	return ok(PhaseGate, d.Reason), true
}

func (r *Runner) checkTool() PhaseResult {
	if !r.git.Available() {
		return skipped(PhaseTool, r.git.Tool+" not found on PATH; auto-commit disabled")
	}
	return ok(PhaseTool, r.git.Tool+" available")
}

// nextCounter returns the value for this run; an unreadable file counts as 0.
func (r *Runner) nextCounter() int {
	current, next, err := counter.Next(r.project.CounterPath())
	if err != nil {
		r.log.Warn("counter file unreadable, starting from 0", "err", err)
		return 1
	}
	r.log.Debug("counter", "current", current, "next", next)
	return next
}
