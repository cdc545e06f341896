package domain

import (
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
)

const (
	// DefaultRoot is the build root used when none is configured.
	DefaultRoot = "."
	// DefaultExtension is the source file extension scanned for by default.
	DefaultExtension = ".c"
	// DefaultCompiler is the compiler executable used by default.
	DefaultCompiler = "gcc"
	// DefaultConfigFile is the optional configuration file looked up in the working directory.
	DefaultConfigFile = "cbuild.yaml"
	// DefaultStatePath is the build record file, relative to the build root.
	DefaultStatePath = ".cbuild/state.json"
)

// DefaultFlags are the compiler flags placed before the source list.
var DefaultFlags = []string{"-g"}

// DefaultBinary returns the conventional name of the binary produced by the compiler.
func DefaultBinary() string {
	if runtime.GOOS == "windows" {
		return "a.exe"
	}
	return "a.out"
}

// DiscoveryConfig configures the source file walk.
type DiscoveryConfig struct {
	Root      string
	Extension string
	Ignore    []string
	// Quiet suppresses the per-directory scan log.
	Quiet bool
}

// AbsoluteRoot returns the build root as an absolute path with symlinks resolved,
// so that discovery, fingerprints and invocations agree on source paths.
// A root that does not exist is returned unresolved for discovery to report.
func (c DiscoveryConfig) AbsoluteRoot() (string, error) {
	root := c.Root
	if root == "" {
		root = DefaultRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidConfig.Error()), "root", root)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// InvocationConfig configures the compiler and the produced binary.
type InvocationConfig struct {
	Compiler string
	Flags    []string
	Binary   string
}

// Config is the effective configuration of one cbuild invocation.
type Config struct {
	Discovery  DiscoveryConfig
	Invocation InvocationConfig
	StatePath  string
	JSONLogs   bool
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	flags := make([]string, len(DefaultFlags))
	copy(flags, DefaultFlags)

	return Config{
		Discovery: DiscoveryConfig{
			Root:      DefaultRoot,
			Extension: DefaultExtension,
		},
		Invocation: InvocationConfig{
			Compiler: DefaultCompiler,
			Flags:    flags,
			Binary:   DefaultBinary(),
		},
		StatePath: DefaultStatePath,
	}
}

// CompileInvocation builds the compiler call for the given sources:
// <compiler> <flags...> <file1> <file2> ...
func (c InvocationConfig) CompileInvocation(root string, sources SourceFileSet) Invocation {
	args := make([]string, 0, len(c.Flags)+sources.Len())
	args = append(args, c.Flags...)
	args = append(args, sources...)

	return Invocation{
		Executable: c.Compiler,
		Args:       args,
		Dir:        root,
	}
}

// RunInvocation builds the call of the produced binary, which takes no arguments.
func (c InvocationConfig) RunInvocation(root string) Invocation {
	binary := c.Binary
	if !filepath.IsAbs(binary) {
		binary = filepath.Join(root, binary)
		if abs, err := filepath.Abs(binary); err == nil {
			binary = abs
		}
	}

	return Invocation{
		Executable: binary,
		Dir:        root,
	}
}

// ResolveStatePath returns the build record file location for the configured root.
func (c Config) ResolveStatePath() string {
	if filepath.IsAbs(c.StatePath) {
		return c.StatePath
	}
	return filepath.Join(c.Discovery.Root, c.StatePath)
}

// Validate checks that the settings needed to build and run are present.
func (c Config) Validate() error {
	switch {
	case c.Discovery.Root == "":
		return zerr.With(ErrInvalidConfig, "field", "root")
	case c.Discovery.Extension == "":
		return zerr.With(ErrInvalidConfig, "field", "extension")
	case c.Invocation.Compiler == "":
		return zerr.With(ErrInvalidConfig, "field", "compiler")
	case c.Invocation.Binary == "":
		return zerr.With(ErrInvalidConfig, "field", "binary")
	case c.StatePath == "":
		return zerr.With(ErrInvalidConfig, "field", "state")
	}
	return nil
}
