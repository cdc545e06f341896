// Package app implements the application layer for cbuild.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/cbuild/internal/engine/pipeline"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	pipeline      *pipeline.Pipeline
	discoverer    ports.Discoverer
	fingerprinter ports.Fingerprinter
	openStore     ports.BuildRecordStoreFactory
	telemetry     ports.Telemetry
	logger        ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pl *pipeline.Pipeline,
	discoverer ports.Discoverer,
	fingerprinter ports.Fingerprinter,
	openStore ports.BuildRecordStoreFactory,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		pipeline:      pl,
		discoverer:    discoverer,
		fingerprinter: fingerprinter,
		openStore:     openStore,
		telemetry:     telemetry,
		logger:        log,
	}
}

// RunOptions configuration for the Run and Status methods.
type RunOptions struct {
	// ConfigPath is the configuration file to read.
	ConfigPath string
	// ConfigRequired makes a missing configuration file an error.
	ConfigRequired bool
	// Overrides take precedence over the configuration file.
	Overrides Overrides
	// JSONLogs switches diagnostics to JSON.
	JSONLogs bool
}

// Overrides holds settings given on the command line. Empty values are unset.
type Overrides struct {
	Root      string
	Extension string
	Compiler  string
	Binary    string
}

// Run executes the phases named by tokens. Tokens are treated as a set:
// compile always precedes run and unknown tokens are ignored with a warning.
func (a *App) Run(ctx context.Context, tokens []string, opts RunOptions) error {
	phases, unknown := domain.PhasesFromTokens(tokens)
	for _, token := range unknown {
		a.logger.Warn(fmt.Sprintf("Ignoring unknown command %q", token))
	}
	if len(phases) == 0 {
		return domain.ErrNoPhasesSpecified
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	store := a.store(cfg)

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn(err.Error())
		}
	}()

	return a.pipeline.Run(ctx, pipeline.Request{
		Config: cfg,
		Phases: phases,
		Store:  store,
	})
}

// loadConfig resolves the effective configuration: defaults, then file, then flags.
func (a *App) loadConfig(opts RunOptions) (domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path, opts.ConfigRequired)
	if err != nil {
		return domain.Config{}, err
	}

	opts.Overrides.apply(&cfg)
	if opts.JSONLogs {
		cfg.JSONLogs = true
	}
	a.configureLogger(cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (o Overrides) apply(cfg *domain.Config) {
	if o.Root != "" {
		cfg.Discovery.Root = o.Root
	}
	if o.Extension != "" {
		cfg.Discovery.Extension = o.Extension
	}
	if o.Compiler != "" {
		cfg.Invocation.Compiler = o.Compiler
	}
	if o.Binary != "" {
		cfg.Invocation.Binary = o.Binary
	}
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func (a *App) configureLogger(cfg domain.Config) {
	if !cfg.JSONLogs {
		return
	}
	if sw, ok := a.logger.(jsonSwitcher); ok {
		sw.SetJSON(true)
	}
}

// store opens the build record store. Records are informational, so a store
// that cannot be opened only disables recording.
func (a *App) store(cfg domain.Config) ports.BuildRecordStore {
	store, err := a.openStore(cfg.ResolveStatePath())
	if err != nil {
		a.logger.Warn(err.Error())
		return nil
	}
	return store
}
