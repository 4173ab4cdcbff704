package orchestrator_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	orchestrator "github.com/ubuntu/wsl-orchestrator"
	"github.com/ubuntu/wsl-orchestrator/mock"
)

// testDistro describes a distro to be installed in the mock back-end.
type testDistro struct {
	name    string
	version int // Defaults to 2
	running bool
}

// newTestContext creates a context using a fresh mock back-end, with the
// given distros installed in order. The first one is the default distro.
func newTestContext(t *testing.T, distros ...testDistro) (context.Context, *mock.Backend) {
	t.Helper()

	b := mock.New()
	ctx := orchestrator.WithMock(context.Background(), b)

	for _, d := range distros {
		version := d.version
		if version == 0 {
			version = 2
		}

		_, err := b.Install(d.name, version, filepath.Join(t.TempDir(), d.name))
		require.NoError(t, err, "Setup: could not install distro %q in the mock", d.name)

		if d.running {
			err := b.Launch(ctx, d.name)
			require.NoError(t, err, "Setup: could not start distro %q in the mock", d.name)
		}
	}

	return ctx, b
}

// requireInventory reads the inventory and asserts it matches the expected records.
func requireInventory(t *testing.T, ctx context.Context, want ...orchestrator.DistributionRecord) {
	t.Helper()

	inv, err := orchestrator.ReadInventory(ctx)
	require.NoError(t, err, "ReadInventory should not fail")
	require.Equal(t, want, inv.Records(), "Unexpected distros in the inventory")
}
