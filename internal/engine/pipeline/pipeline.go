// Package pipeline sequences the compile and run phases of a build.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
)

// Pipeline runs the requested phases strictly one after another.
type Pipeline struct {
	discoverer    ports.Discoverer
	fingerprinter ports.Fingerprinter
	invoker       ports.Invoker
	reporter      ports.Reporter
	telemetry     ports.Telemetry
	logger        ports.Logger
	now           func() time.Time
}

// New creates a new Pipeline.
func New(
	discoverer ports.Discoverer,
	fingerprinter ports.Fingerprinter,
	invoker ports.Invoker,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		discoverer:    discoverer,
		fingerprinter: fingerprinter,
		invoker:       invoker,
		reporter:      reporter,
		telemetry:     telemetry,
		logger:        logger,
		now:           time.Now,
	}
}

// Request describes one build invocation.
type Request struct {
	Config domain.Config
	Phases []domain.Phase
	// Store receives a record after each invocation. It may be nil.
	Store ports.BuildRecordStore
}

// Run executes the phases of req in order. It stops at the first phase whose
// process exits with status 1, and at any discovery or spawn error.
func (p *Pipeline) Run(ctx context.Context, req Request) error {
	if len(req.Phases) == 0 {
		return domain.ErrNoPhasesSpecified
	}

	state, err := p.newRunState(req)
	if err != nil {
		return err
	}

	for _, phase := range req.Phases {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := state.runPhase(ctx, phase); err != nil {
			return err
		}
	}

	return nil
}

type runState struct {
	p     *Pipeline
	cfg   domain.Config
	store ports.BuildRecordStore
}

func (p *Pipeline) newRunState(req Request) (*runState, error) {
	cfg := req.Config

	// The compiler and the binary both run from the root, so sources are passed absolute.
	root, err := cfg.Discovery.AbsoluteRoot()
	if err != nil {
		return nil, err
	}
	cfg.Discovery.Root = root

	return &runState{p: p, cfg: cfg, store: req.Store}, nil
}

func (s *runState) runPhase(ctx context.Context, phase domain.Phase) error {
	ctx, vertex := s.p.telemetry.Record(ctx, phase.String())

	var err error
	switch phase {
	case domain.PhaseCompile:
		err = s.compile(ctx, vertex)
	case domain.PhaseRun:
		err = s.run(ctx, vertex)
	default:
		err = phase.Failure()
	}

	vertex.Complete(err)
	return err
}

func (s *runState) compile(ctx context.Context, vertex ports.Vertex) error {
	sources, err := s.p.discoverer.Discover(ctx, s.cfg.Discovery)
	if err != nil {
		return err
	}

	if sources.Len() == 0 {
		s.p.logger.Warn(fmt.Sprintf("No %s files found under %s", s.cfg.Discovery.Extension, s.cfg.Discovery.Root))
	}
	vertex.Log(domain.SeverityInfo, fmt.Sprintf("%d source file(s)", sources.Len()))

	fingerprint, err := s.p.fingerprinter.Fingerprint(sources)
	if err != nil {
		// The fingerprint only annotates the build record.
		s.p.logger.Warn(err.Error())
	}

	inv := s.cfg.Invocation.CompileInvocation(s.cfg.Discovery.Root, sources)
	result, err := s.invoke(ctx, vertex, domain.PhaseCompile, inv)
	if err != nil {
		return err
	}

	record := domain.NewBuildRecord(domain.PhaseCompile, result, s.p.now())
	record.SourceCount = sources.Len()
	record.Fingerprint = fingerprint
	s.record(record)

	return failureFor(domain.PhaseCompile, result)
}

func (s *runState) run(ctx context.Context, vertex ports.Vertex) error {
	inv := s.cfg.Invocation.RunInvocation(s.cfg.Discovery.Root)
	result, err := s.invoke(ctx, vertex, domain.PhaseRun, inv)
	if err != nil {
		return err
	}

	s.record(domain.NewBuildRecord(domain.PhaseRun, result, s.p.now()))

	return failureFor(domain.PhaseRun, result)
}

// invoke spawns the process, mirrors its streams to the vertex, and reports the outcome.
func (s *runState) invoke(
	ctx context.Context,
	vertex ports.Vertex,
	phase domain.Phase,
	inv domain.Invocation,
) (*domain.ProcessResult, error) {
	result, err := s.p.invoker.Invoke(ctx, inv, vertex.Stdout(), vertex.Stderr())
	if err != nil {
		return nil, err
	}

	s.p.reporter.Report(phase, result)
	if !result.Succeeded() && !result.IsFailure() {
		vertex.Log(domain.SeverityWarn, fmt.Sprintf("exited with status %d", result.ExitCode))
	}

	return result, nil
}

func (s *runState) record(record domain.BuildRecord) {
	if s.store == nil {
		return
	}
	if err := s.store.Put(record); err != nil {
		s.p.logger.Warn(err.Error())
	}
}

// failureFor raises the phase failure only for exit status 1.
func failureFor(phase domain.Phase, result *domain.ProcessResult) error {
	if result.IsFailure() {
		return phase.Failure()
	}
	return nil
}
