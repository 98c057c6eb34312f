package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/memory"
	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/sqlite"
)

// setupCLI wires the commands over a fresh in-memory engine. Because
// the engine is installed by the test rather than opened by initApp,
// it survives across command executions within the test.
func setupCLI(t *testing.T) {
	t.Helper()

	eng, err := sqlite.NewSnapshotEngine("kasir-test", memory.NewSnapshotStore())
	require.NoError(t, err)
	require.NoError(t, sqlite.InitSchema(context.Background(), eng))

	installServices(eng)
	t.Cleanup(func() {
		engine = nil
		catalogService = nil
		salesService = nil
		settingsService = nil
		require.NoError(t, eng.Close())
	})
}

// runCommand executes one CLI invocation and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
