package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/cbuild/internal/adapters/report"
	"go.trai.ch/cbuild/internal/core/domain"
)

func TestReporter_Report(t *testing.T) {
	tests := []struct {
		name       string
		phase      domain.Phase
		result     domain.ProcessResult
		goldenName string
	}{
		{
			name:       "compile success silent",
			phase:      domain.PhaseCompile,
			result:     domain.ProcessResult{ExitCode: 0},
			goldenName: "compile_success",
		},
		{
			name:  "compile success with warnings",
			phase: domain.PhaseCompile,
			result: domain.ProcessResult{
				ExitCode: 0,
				Stderr:   "main.c:3:5: warning: unused variable 'x'\n",
			},
			goldenName: "compile_success_warnings",
		},
		{
			name:  "compile failure",
			phase: domain.PhaseCompile,
			result: domain.ProcessResult{
				ExitCode: 1,
				Stderr:   "main.c:4:1: error: expected ';' before '}' token\n",
			},
			goldenName: "compile_failure",
		},
		{
			name:  "run success with output",
			phase: domain.PhaseRun,
			result: domain.ProcessResult{
				ExitCode: 0,
				Stdout:   "Hello, world!\n",
			},
			goldenName: "run_success",
		},
		{
			name:  "run non-zero exit",
			phase: domain.PhaseRun,
			result: domain.ProcessResult{
				ExitCode: 3,
				Stdout:   "partial\n",
				Stderr:   "something odd\n",
			},
			goldenName: "run_failure_both_streams",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			var buf bytes.Buffer
			r := report.NewReporter(&buf)
			r.Report(tt.phase, &tt.result)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestReporter_Report_StatusFollowsExitCode(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := report.NewReporter(&buf)

	r.Report(domain.PhaseCompile, &domain.ProcessResult{ExitCode: 0, Stderr: "warning\n"})
	assert.Contains(t, buf.String(), "Compilation Successful")
	assert.Contains(t, buf.String(), "Errors and warnings: \nwarning\n \n")

	buf.Reset()
	r.Report(domain.PhaseRun, &domain.ProcessResult{ExitCode: 42})
	assert.Equal(t, "\nRun Failure\n\n", buf.String())
}

func TestReporter_Report_NilResult(t *testing.T) {
	var buf bytes.Buffer
	report.NewReporter(&buf).Report(domain.PhaseRun, nil)
	assert.Empty(t, buf.String())
}

func TestReporter_Report_Colored(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	report.NewReporter(&buf).Report(domain.PhaseCompile, &domain.ProcessResult{ExitCode: 1})

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Failure")
}
