package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
	orchestrator "github.com/ubuntu/wsl-orchestrator"
	"github.com/ubuntu/wsl-orchestrator/internal/cli"
	"github.com/ubuntu/wsl-orchestrator/mock"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestList(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args      []string
		noDistros bool
		listError bool

		wantContains []string
		wantErr      bool
	}{
		"Table":              {args: []string{"list"}, wantContains: []string{"NAME", "Ubuntu", "Running", "Debian", "Stopped", "*"}},
		"Alias":              {args: []string{"ls"}, wantContains: []string{"Ubuntu", "Debian"}},
		"YAML":               {args: []string{"list", "--output", "yaml"}, wantContains: []string{"name: Ubuntu", "state: Running", "default: true"}},
		"No distros":         {args: []string{"list"}, noDistros: true, wantContains: []string{"No WSL distributions are installed"}},
		"No distros in YAML": {args: []string{"list", "-o", "yaml"}, noDistros: true, wantContains: []string{"[]"}},

		"Error when listing fails":         {args: []string{"list"}, listError: true, wantErr: true},
		"Error when the output is unknown": {args: []string{"list", "--output", "json"}, wantErr: true},
		"Error when given arguments":       {args: []string{"list", "Ubuntu"}, wantErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, b := newTestContext(t)
			if !tc.noDistros {
				install(t, ctx, b, "Ubuntu", true)
				install(t, ctx, b, "Debian", false)
			}
			b.ListError = tc.listError

			out, err := run(t, ctx, tc.args...)
			if tc.wantErr {
				require.Error(t, err, "Command should fail")
				return
			}
			require.NoError(t, err, "Command should not fail")

			for _, want := range tc.wantContains {
				require.Contains(t, out, want, "Output should contain %q", want)
			}
		})
	}
}

func TestListYAMLIsParsable(t *testing.T) {
	t.Parallel()

	ctx, b := newTestContext(t)
	install(t, ctx, b, "Ubuntu", true)
	install(t, ctx, b, "Debian", false)

	out, err := run(t, ctx, "list", "--output", "yaml")
	require.NoError(t, err, "Command should not fail")

	var got []map[string]any
	err = yaml.Unmarshal([]byte(out), &got)
	require.NoError(t, err, "Output should be valid YAML")
	require.Len(t, got, 2, "Output should list both distros")
	require.Equal(t, "Debian", got[1]["name"], "Distros should be listed in order")
	require.Equal(t, false, got[1]["default"], "Debian should not be the default distro")
}

func TestActions(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args           []string
		injectFailures func(*mock.Backend)

		wantRunning map[string]bool
		wantDefault string
		wantOutput  string
		wantErr     bool
	}{
		"Start a distro":           {args: []string{"start", "Debian"}, wantRunning: map[string]bool{"Ubuntu": true, "Debian": true}, wantOutput: "Started Debian"},
		"Open a terminal":          {args: []string{"terminal", "Debian"}, wantRunning: map[string]bool{"Ubuntu": true, "Debian": true}, wantOutput: "Opened a terminal into Debian"},
		"Stop a distro":            {args: []string{"stop", "Ubuntu", "--yes"}, wantRunning: map[string]bool{}, wantOutput: "Stopped Ubuntu"},
		"Shut WSL down":            {args: []string{"shutdown", "-y"}, wantRunning: map[string]bool{}, wantOutput: "WSL was shut down"},
		"Set the default distro":   {args: []string{"default", "Debian"}, wantDefault: "Debian", wantOutput: "Debian is now the default distro"},
		"Print a shortcut command": {args: []string{"shortcut", "Debian"}, wantOutput: "wsl.exe -d Debian"},

		"Error when starting fails":         {args: []string{"start", "Debian"}, injectFailures: func(b *mock.Backend) { b.LaunchError = true }, wantErr: true},
		"Error when stopping fails":         {args: []string{"stop", "Ubuntu", "--yes"}, injectFailures: func(b *mock.Backend) { b.TerminateError = true }, wantErr: true},
		"Error when shutting down fails":    {args: []string{"shutdown", "--yes"}, injectFailures: func(b *mock.Backend) { b.ShutdownError = true }, wantErr: true},
		"Error when setting default fails":  {args: []string{"default", "Debian"}, injectFailures: func(b *mock.Backend) { b.SetAsDefaultError = true }, wantErr: true},
		"Error when the distro is unknown":  {args: []string{"start", "Alpine"}, wantErr: true},
		"Error when missing the distro":     {args: []string{"stop", "--yes"}, wantErr: true},
		"Error when given too many distros": {args: []string{"default", "Ubuntu", "Debian"}, wantErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, b := newTestContext(t)
			install(t, ctx, b, "Ubuntu", true)
			install(t, ctx, b, "Debian", false)
			if tc.injectFailures != nil {
				tc.injectFailures(b)
			}

			out, err := run(t, ctx, tc.args...)
			if tc.wantErr {
				require.Error(t, err, "Command should fail")
				return
			}
			require.NoError(t, err, "Command should not fail")
			require.Contains(t, out, tc.wantOutput, "Unexpected output")

			inv, err := orchestrator.ReadInventory(ctx)
			require.NoError(t, err, "ReadInventory should not fail")

			if tc.wantRunning != nil {
				for _, r := range inv.Records() {
					require.Equal(t, tc.wantRunning[r.Name], r.State == orchestrator.Running, "Unexpected state for %q", r.Name)
				}
			}

			if tc.wantDefault != "" {
				def, ok := inv.Default()
				require.True(t, ok, "There should be a default distro")
				require.Equal(t, tc.wantDefault, def.Name, "Unexpected default distro")
			}
		})
	}
}

func TestRename(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args        []string
		exportError bool

		wantNames    []string
		wantRejected bool
		wantFailed   bool
	}{
		"Rename a stopped distro":  {args: []string{"rename", "Debian", "Debian-12", "--yes"}, wantNames: []string{"Ubuntu", "Debian-12"}},
		"Rename to the same name":  {args: []string{"rename", "Debian", "Debian", "--yes"}, wantNames: []string{"Ubuntu", "Debian"}},
		"Rename with another case": {args: []string{"rename", "debian", "Debian-12", "--yes"}, wantNames: []string{"Ubuntu", "Debian-12"}},

		"Error when the name is taken":     {args: []string{"rename", "Debian", "ubuntu", "--yes"}, wantRejected: true},
		"Error when the name is invalid":   {args: []string{"rename", "Debian", "Debian 12", "--yes"}, wantRejected: true},
		"Error when the distro is unknown": {args: []string{"rename", "Alpine", "Alpine-3", "--yes"}, wantRejected: true},
		"Error when the distro is running": {args: []string{"rename", "Ubuntu", "Ubuntu-24.04", "--yes"}, wantFailed: true},
		"Error when the export fails":      {args: []string{"rename", "Debian", "Debian-12", "--yes"}, exportError: true, wantFailed: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, b := newTestContext(t)
			install(t, ctx, b, "Ubuntu", true)
			install(t, ctx, b, "Debian", false)
			b.ExportError = tc.exportError

			storageRoot := t.TempDir()
			out, err := run(t, ctx, append(tc.args, "--storage-root", storageRoot)...)

			switch {
			case tc.wantRejected:
				require.ErrorIs(t, err, orchestrator.ErrRenameRejected, "Rename should be rejected")
				return
			case tc.wantFailed:
				require.ErrorIs(t, err, orchestrator.ErrRenameExecutionFailed, "Rename should fail")
				return
			}
			require.NoError(t, err, "Rename should not fail")

			inv, err := orchestrator.ReadInventory(ctx)
			require.NoError(t, err, "ReadInventory should not fail")

			var got []string
			for _, r := range inv.Records() {
				got = append(got, r.Name)
			}
			require.Equal(t, tc.wantNames, got, "Unexpected distros after the rename")
			require.Contains(t, out, tc.wantNames[1], "Output should mention the renamed distro")
		})
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	ctx, b := newTestContext(t)
	basePath := filepath.Join(t.TempDir(), "Ubuntu")
	guid, err := b.Install("Ubuntu", 2, basePath)
	require.NoError(t, err, "Setup: could not install distro in the mock")

	out, err := run(t, ctx, "info", "ubuntu")
	require.NoError(t, err, "Command should not fail")

	var got map[string]string
	err = yaml.Unmarshal([]byte(out), &got)
	require.NoError(t, err, "Output should be valid YAML")
	require.Equal(t, map[string]string{"name": "Ubuntu", "guid": guid.String(), "basePath": basePath}, got, "Unexpected location")

	_, err = run(t, ctx, "info", "Alpine")
	require.ErrorIs(t, err, orchestrator.ErrNotRegistered, "Unknown distros should not be found")
}

func TestBadSettingsFile(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("output: json\n"), 0600)
	require.NoError(t, err, "Setup: could not write settings file")

	cmd := cli.New()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"list", "--config", path})

	err = cmd.ExecuteContext(ctx)
	require.Error(t, err, "An invalid settings file should make every command fail")
}

// newTestContext creates a context using a fresh mock back-end with no distros.
func newTestContext(t *testing.T) (context.Context, *mock.Backend) {
	t.Helper()

	b := mock.New()
	return orchestrator.WithMock(context.Background(), b), b
}

// install adds a distro to the mock, started if running is true.
func install(t *testing.T, ctx context.Context, b *mock.Backend, name string, running bool) {
	t.Helper()

	_, err := b.Install(name, 2, filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Setup: could not install distro %q in the mock", name)

	if running {
		err := b.Launch(ctx, name)
		require.NoError(t, err, "Setup: could not start distro %q in the mock", name)
	}
}

// run executes the command line with a settings file that does not wait
// before refreshing, and returns what was printed on stdout.
func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()

	config := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(config, []byte("refresh_delay: 0s\nstorage_root: "+t.TempDir()+"\n"), 0600)
	require.NoError(t, err, "Setup: could not write settings file")

	var out bytes.Buffer
	cmd := cli.New()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", config}, args...))

	err = cmd.ExecuteContext(ctx)
	return out.String(), err
}
