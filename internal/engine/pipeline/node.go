package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cbuild/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/report"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.DiscovererNodeID,
			fs.FingerprinterNodeID,
			shell.NodeID,
			report.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			discoverer, err := graft.Dep[ports.Discoverer](ctx)
			if err != nil {
				return nil, err
			}

			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(discoverer, fingerprinter, invoker, reporter, tel, log), nil
		},
	})
}
