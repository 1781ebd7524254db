package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/uirename/internal/cli/output"
	"github.com/leapstack-labs/uirename/internal/renamer"
	renametable "github.com/leapstack-labs/uirename/internal/table"
)

// Title is the banner shown at the start of a run.
const Title = "Unity UI Files Rename"

// RunRename renames the embedded table inside the configured directory and
// reports every entry as it is processed. A missing directory is reported,
// followed by the pause, and returned as a *ReportedError.
func RunRename(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	return runRename(cmd, cmdCtx, renametable.Default())
}

func runRename(cmd *cobra.Command, cmdCtx *CommandContext, tbl renametable.Table) error {
	r := cmdCtx.Renderer
	cfg := cmdCtx.Cfg
	mode := r.EffectiveMode()

	pause := func() {
		if cfg.NoPause || mode == output.ModeJSON {
			return
		}
		if err := WaitForEnter(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			cmdCtx.Logger.Debug("pause aborted", "error", err)
		}
	}

	if mode != output.ModeJSON {
		r.Header(1, Title)
		r.Println("")
	}

	// The directory check runs first so the working directory line is only
	// printed for a directory that exists.
	if err := renamer.CheckDirectory(cmdCtx.Fs, cfg.Dir); err != nil {
		reportDirectoryError(r, mode, cfg.Dir, err)
		pause()
		return &ReportedError{Err: err}
	}

	if mode == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Working directory", cfg.Dir))
		r.Println("")
		r.Println(output.FormatHeader(2, "Entries"))
		r.Println("")
	} else if mode == output.ModeText {
		r.Println("Working directory: " + r.Styles().Path.Render(cfg.Dir))
		r.Println("")
	}

	var observer renamer.Observer
	if mode != output.ModeJSON {
		observer = func(er renamer.EntryResult) { printEntry(r, mode, er) }
	}
	rn := renamer.New(cmdCtx.Fs,
		renamer.WithLogger(cmdCtx.Logger),
		renamer.WithObserver(observer))

	res, err := rn.Run(cfg.Dir, tbl)
	if err != nil {
		// The directory vanished between the check and the run.
		reportDirectoryError(r, mode, cfg.Dir, err)
		pause()
		return &ReportedError{Err: err}
	}

	switch mode {
	case output.ModeJSON:
		return r.JSON(buildRenameOutput(res))
	case output.ModeMarkdown:
		printSummaryMarkdown(r, res)
	default:
		printSummaryText(r, res)
	}
	pause()
	return nil
}

func reportDirectoryError(r *output.Renderer, mode output.Mode, dir string, err error) {
	if mode == output.ModeJSON {
		_ = r.JSON(output.ErrorOutput{Error: err.Error(), Dir: dir})
		return
	}
	msg := "Directory not found: " + dir
	if !errors.Is(err, renamer.ErrDirectoryNotFound) {
		msg = err.Error()
	}
	r.Error(msg)
}

// entryLines returns the status lines for one entry, in print order.
func entryLines(er renamer.EntryResult) []statusLine {
	e := er.Entry
	switch er.Outcome {
	case renamer.OutcomeSkipped:
		return []statusLine{{output.StatusSkipped, fmt.Sprintf("%s (%s)", e.Old, renamer.SkipReason)}}
	case renamer.OutcomeErrored:
		return []statusLine{{output.StatusFailed, fmt.Sprintf("ERROR renaming %s: %v", e.Old, er.Err)}}
	}

	lines := []statusLine{{output.StatusRenamed, e.Old + " -> " + e.New}}
	if er.MetaRenamed {
		lines = append(lines, statusLine{output.StatusRenamed, e.OldMeta() + " -> " + e.NewMeta()})
	}
	if er.MetaErr != nil {
		lines = append(lines, statusLine{output.StatusWarn, fmt.Sprintf("%s not renamed: %v", e.OldMeta(), er.MetaErr)})
	}
	return lines
}

type statusLine struct {
	status output.Status
	text   string
}

func printEntry(r *output.Renderer, mode output.Mode, er renamer.EntryResult) {
	for _, l := range entryLines(er) {
		if mode == output.ModeMarkdown {
			r.Println("- " + markerFor(l.status) + " " + l.text)
			continue
		}
		r.StatusLine(l.status, l.text)
	}
}

func markerFor(s output.Status) string {
	switch s {
	case output.StatusRenamed:
		return output.MarkRenamed
	case output.StatusSkipped:
		return output.MarkSkipped
	case output.StatusFailed:
		return output.MarkFailed
	default:
		return output.MarkWarn
	}
}

func printSummaryText(r *output.Renderer, res *renamer.Result) {
	styles := r.Styles()
	rule := styles.Muted.Render(strings.Repeat("=", output.BannerWidth))

	r.Println("")
	r.Println(rule)
	r.Println(styles.Bold.Render("SUMMARY:"))
	r.Printf("  %s Renamed: %d\n", styles.Marker(output.StatusRenamed), res.Succeeded)
	r.Printf("  %s Skipped: %d\n", styles.Marker(output.StatusSkipped), res.Skipped)
	r.Printf("  %s Errors:  %d\n", styles.Marker(output.StatusFailed), res.Errored)
	r.Println(rule)
	r.Println("")

	if res.Succeeded == 0 {
		r.Muted(noneRenamedMessage)
		r.Println("")
		return
	}
	if res.Errored == 0 {
		r.Success("SUCCESS! All files renamed successfully!")
	} else {
		r.Println(styles.Warning.Render(partialMessage(res)))
	}
	r.Println("")
	r.Println("Next steps:")
	for i, step := range nextSteps {
		r.Printf("%d. %s\n", i+1, step)
	}
	r.Println("")
}

func printSummaryMarkdown(r *output.Renderer, res *renamer.Result) {
	r.Println("")
	r.Println(output.FormatHeader(2, "Summary"))
	r.Println("")

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Outcome", "Count"})
	t.AppendRows([]table.Row{
		{output.MarkRenamed + " Renamed", strconv.Itoa(res.Succeeded)},
		{output.MarkSkipped + " Skipped", strconv.Itoa(res.Skipped)},
		{output.MarkFailed + " Errors", strconv.Itoa(res.Errored)},
	})
	r.Println(t.RenderMarkdown())
	r.Println("")

	if res.Succeeded == 0 {
		r.Println(noneRenamedMessage)
		return
	}
	if res.Errored > 0 {
		r.Println(partialMessage(res))
		r.Println("")
	}
	r.Println(output.FormatHeader(2, "Next steps"))
	r.Println("")
	for i, step := range nextSteps {
		r.Printf("%d. %s\n", i+1, step)
	}
}

const noneRenamedMessage = "No files were renamed. They may already be renamed."

var nextSteps = []string{
	"Open Unity",
	"Wait for compile (1-2 minutes)",
	"Check Console - should be 0 errors!",
}

func partialMessage(res *renamer.Result) string {
	return fmt.Sprintf("Renamed %d of %d files; %d failed (see errors above).",
		res.Succeeded, res.Total(), res.Errored)
}

func buildRenameOutput(res *renamer.Result) output.RenameOutput {
	entries := make([]output.RenameEntry, 0, len(res.Entries))
	for _, er := range res.Entries {
		entry := output.RenameEntry{
			Old:         er.Entry.Old,
			New:         er.Entry.New,
			Outcome:     string(er.Outcome),
			MetaRenamed: er.MetaRenamed,
		}
		if er.Err != nil {
			entry.Error = er.Err.Error()
		}
		if er.MetaErr != nil {
			entry.MetaError = er.MetaErr.Error()
		}
		entries = append(entries, entry)
	}
	return output.RenameOutput{
		RunID:   res.RunID,
		Dir:     res.Dir,
		Entries: entries,
		Summary: output.RenameSummary{
			Total:     res.Total(),
			Succeeded: res.Succeeded,
			Skipped:   res.Skipped,
			Errored:   res.Errored,
		},
	}
}
