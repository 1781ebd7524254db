package commands

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/uirename/internal/cli/output"
	renametable "github.com/leapstack-labs/uirename/internal/table"
)

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the embedded rename table",
		Long: `List every old -> new script name the rename run will process, in
processing order. Each script's .meta companion is renamed alongside it.

Output adapts to environment:
  - Terminal: boxed table
  - Piped/Scripted: Markdown table
  - JSON: Machine-readable format`,
		Example: `  # Show the table
  uirename table

  # As JSON
  uirename table --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			return renderTable(cmdCtx.Renderer, cmdCtx.Cfg.Dir, renametable.Default())
		},
	}
}

func renderTable(r *output.Renderer, dir string, tbl renametable.Table) error {
	mode := r.EffectiveMode()
	if mode == output.ModeJSON {
		entries := make([]output.TableEntry, 0, tbl.Len())
		for _, e := range tbl {
			entries = append(entries, output.TableEntry{
				Old:     e.Old,
				New:     e.New,
				OldMeta: e.OldMeta(),
				NewMeta: e.NewMeta(),
			})
		}
		return r.JSON(output.TableOutput{Dir: dir, Entries: entries})
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Old", "New"})
	for i, e := range tbl {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), e.Old, e.New})
	}

	if mode == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Rename table"))
		r.Println("")
		r.Println(output.FormatKeyValue("Directory", dir))
		r.Println("")
		r.Println(t.RenderMarkdown())
		return nil
	}

	t.SetStyle(table.StyleLight)
	r.Header(2, "Rename table")
	r.Muted("Directory: " + dir)
	r.Println(t.Render())
	r.Muted(strconv.Itoa(tbl.Len()) + " entries, .meta companions included")
	return nil
}
