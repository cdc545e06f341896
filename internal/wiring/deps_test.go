package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/app"
	_ "go.trai.ch/cbuild/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of the
	// type used in Dep[T]. Several nodes provide interfaces from the shared ports
	// package (ports.Invoker, ports.Logger, ...), which it reports as a missing "ports" node.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

// TestComponentsResolve builds the full graph the way main does.
func TestComponentsResolve(t *testing.T) {
	c, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, c.App)
	require.NotNil(t, c.Logger)
}
