package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/uirename/internal/cli/commands"
	"github.com/leapstack-labs/uirename/internal/cli/output"
	"github.com/leapstack-labs/uirename/internal/renamer"
	"github.com/leapstack-labs/uirename/internal/table"
	"github.com/leapstack-labs/uirename/internal/testutil"
)

type runResult struct {
	out    string
	errOut string
	err    error
}

func execute(t *testing.T, ctx context.Context, stdin string, args ...string) runResult {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return runResult{out: out.String(), errOut: errOut.String(), err: err}
}

func TestRootCmd_RenamesScriptAndMeta(t *testing.T) {
	dir := testutil.WriteFiles(t, "UIGame.cs", "UIGame.cs.meta")

	res := execute(t, context.Background(), "", "--dir", dir, "--no-pause", "--output", "text")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, commands.Title)
	assert.Contains(t, res.out, "Working directory: "+dir)
	assert.Contains(t, res.out, "✓ UIGame.cs -> CrystalUIGame.cs\n")
	assert.Contains(t, res.out, "✓ UIGame.cs.meta -> CrystalUIGame.cs.meta\n")
	assert.Contains(t, res.out, "⊘ UIPause.cs (already renamed or not found)")
	assert.Contains(t, res.out, "✓ Renamed: 1")
	assert.Contains(t, res.out, "⊘ Skipped: 9")
	assert.Contains(t, res.out, "✗ Errors:  0")
	assert.Contains(t, res.out, "SUCCESS!")
	assert.Contains(t, res.out, "Next steps:")
	assert.NotContains(t, res.errOut, commands.PausePrompt)

	assert.FileExists(t, filepath.Join(dir, "CrystalUIGame.cs"))
	assert.FileExists(t, filepath.Join(dir, "CrystalUIGame.cs.meta"))
	assert.NoFileExists(t, filepath.Join(dir, "UIGame.cs"))
}

func TestRootCmd_OutcomesPrintedInTableOrder(t *testing.T) {
	dir := testutil.WriteFiles(t, "UIStore.cs", "UIComplete.cs")

	res := execute(t, context.Background(), "", "--dir", dir, "--no-pause", "-o", "text")
	require.NoError(t, res.err)

	var last int
	for _, e := range table.Default() {
		idx := strings.Index(res.out, " "+e.Old+" ")
		require.GreaterOrEqual(t, idx, 0, "%s should be reported", e.Old)
		assert.Greater(t, idx, last, "%s should come after the previous entry", e.Old)
		last = idx
	}
}

func TestRootCmd_SecondRunSkipsAll(t *testing.T) {
	var files []string
	for _, e := range table.Default() {
		files = append(files, e.Old, e.OldMeta())
	}
	dir := testutil.WriteFiles(t, files...)

	first := execute(t, context.Background(), "", "--dir", dir, "--no-pause", "-o", "text")
	require.NoError(t, first.err)
	assert.Contains(t, first.out, "✓ Renamed: 10")

	second := execute(t, context.Background(), "", "--dir", dir, "--no-pause", "-o", "text")
	require.NoError(t, second.err)
	assert.Contains(t, second.out, "✓ Renamed: 0")
	assert.Contains(t, second.out, "⊘ Skipped: 10")
	assert.Contains(t, second.out, "✗ Errors:  0")
	assert.Contains(t, second.out, "No files were renamed. They may already be renamed.")
}

func TestRootCmd_DirectoryNotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	res := execute(t, context.Background(), "\n", "--dir", dir, "-o", "text")
	require.Error(t, res.err)

	assert.ErrorIs(t, res.err, renamer.ErrDirectoryNotFound)
	assert.True(t, commands.IsReported(res.err))
	assert.Contains(t, res.errOut, "ERROR: Directory not found: "+dir)
	assert.Contains(t, res.errOut, commands.PausePrompt, "pauses before exiting")
	assert.NotContains(t, res.out, "SUMMARY")
	assert.NotContains(t, res.out, "Working directory")
}

func TestRootCmd_JSONDirectoryNotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	res := execute(t, context.Background(), "", "--dir", dir, "-o", "json")
	require.Error(t, res.err)
	assert.True(t, commands.IsReported(res.err))
	assert.NotContains(t, res.errOut, commands.PausePrompt)

	var got output.ErrorOutput
	require.NoError(t, json.Unmarshal([]byte(res.out), &got))
	assert.Equal(t, dir, got.Dir)
	assert.Contains(t, got.Error, "directory not found")
}

func TestExecute_ExitStatus(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	err := Execute(context.Background(), []string{"--dir", missing, "--no-pause", "-o", "json"})
	assert.ErrorIs(t, err, renamer.ErrDirectoryNotFound)

	dir := testutil.WriteFiles(t)
	err = Execute(context.Background(), []string{"--dir", dir, "--no-pause", "-o", "json"})
	assert.NoError(t, err)
}

func TestRootCmd_PausesAfterRun(t *testing.T) {
	dir := testutil.WriteFiles(t)

	res := execute(t, context.Background(), "\n", "--dir", dir, "-o", "text")
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, commands.PausePrompt)
}

func TestRootCmd_JSON(t *testing.T) {
	dir := testutil.WriteFiles(t, "UIGame.cs", "UIGame.cs.meta", "UIPause.cs", "CrystalUIPause.cs")

	// JSON mode never pauses, even without --no-pause.
	res := execute(t, context.Background(), "", "--dir", dir, "--output", "json")
	require.NoError(t, res.err)
	assert.NotContains(t, res.errOut, commands.PausePrompt)

	var got output.RenameOutput
	require.NoError(t, json.Unmarshal([]byte(res.out), &got))

	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, dir, got.Dir)
	assert.Equal(t, output.RenameSummary{Total: 10, Succeeded: 1, Skipped: 8, Errored: 1}, got.Summary)
	require.Len(t, got.Entries, 10)

	byOld := make(map[string]output.RenameEntry)
	for _, e := range got.Entries {
		byOld[e.Old] = e
	}
	assert.Equal(t, "renamed", byOld["UIGame.cs"].Outcome)
	assert.True(t, byOld["UIGame.cs"].MetaRenamed)
	assert.Equal(t, "errored", byOld["UIPause.cs"].Outcome)
	assert.Contains(t, byOld["UIPause.cs"].Error, "file already exists")
	assert.Equal(t, "skipped", byOld["UIStore.cs"].Outcome)
}

func TestRootCmd_Markdown(t *testing.T) {
	dir := testutil.WriteFiles(t, "UIMainMenu.cs")

	res := execute(t, context.Background(), "", "--dir", dir, "--no-pause", "-o", "markdown")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "# "+commands.Title)
	assert.Contains(t, res.out, "**Working directory:** "+dir)
	assert.Contains(t, res.out, "- ✓ UIMainMenu.cs -> CrystalUIMainMenu.cs")
	assert.Contains(t, res.out, "## Summary")
	assert.Contains(t, res.out, "✓ Renamed")
	assert.Contains(t, res.out, "## Next steps")
}

func TestRootCmd_MemFs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/Assets/Game/Scripts/UI"
	require.NoError(t, fsys.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "UIDailySpin.cs"), []byte("x"), 0o644))

	res := execute(t, WithFs(context.Background(), fsys), "", "--dir", dir, "--no-pause", "-o", "text")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "✓ UIDailySpin.cs -> CrystalUIDailySpin.cs")

	ok, err := afero.Exists(fsys, filepath.Join(dir, "CrystalUIDailySpin.cs"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRootCmd_ReadOnlyReportsErrorsAndExitsZero(t *testing.T) {
	base := afero.NewMemMapFs()
	dir := "/ui"
	require.NoError(t, base.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(base, filepath.Join(dir, "UIGame.cs"), []byte("x"), 0o644))

	res := execute(t, WithFs(context.Background(), afero.NewReadOnlyFs(base)), "", "--dir", dir, "--no-pause", "-o", "text")
	require.NoError(t, res.err, "per-entry errors never fail the run")
	assert.Contains(t, res.out, "✗ ERROR renaming UIGame.cs:")
	assert.Contains(t, res.out, "✗ Errors:  1")
	assert.Contains(t, res.out, "No files were renamed.")
}

func TestRootCmd_InvalidOutputFlag(t *testing.T) {
	res := execute(t, context.Background(), "", "--no-pause", "--output", "xml")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid output format")
}

func TestRootCmd_EnvDir(t *testing.T) {
	dir := testutil.WriteFiles(t, "UIProfilePage.cs")
	t.Setenv("UIRENAME_DIR", dir)
	t.Setenv("UIRENAME_NO_PAUSE", "true")

	res := execute(t, context.Background(), "", "-o", "text")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "✓ UIProfilePage.cs -> CrystalUIProfilePage.cs")
	assert.NotContains(t, res.errOut, commands.PausePrompt)
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"version", "table", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"dir", "verbose", "output", "no-pause"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCmd_Table(t *testing.T) {
	res := execute(t, context.Background(), "", "table", "-o", "json")
	require.NoError(t, res.err)

	var got output.TableOutput
	require.NoError(t, json.Unmarshal([]byte(res.out), &got))
	require.Len(t, got.Entries, 10)
	assert.Equal(t, table.DefaultDir, got.Dir)
	assert.Equal(t, "UIComplete.cs.meta", got.Entries[0].OldMeta)
	assert.Equal(t, "CrystalUIComplete.cs.meta", got.Entries[0].NewMeta)
}

func TestRootCmd_Completion(t *testing.T) {
	res := execute(t, context.Background(), "", "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "uirename")
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	newLogger(buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(buf, true).Debug("shown", "k", "v")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}
