package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/launchdash/internal/control"
	"github.com/vietddude/launchdash/internal/core/domain"
	"github.com/vietddude/launchdash/internal/dataset"
	"github.com/vietddude/launchdash/internal/engine"
	"github.com/vietddude/launchdash/internal/render"
)

var summarySite string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the launch success proportions for all sites or one site",
	Run:   runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summarySite, "site", domain.AllCategory, "launch site to summarize")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.Logging)

	store, err := control.LoadStore(context.Background(), cfg.Dataset, cfg.Database)
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	writeSummary(os.Stdout, store, summarySite, cfg.Slider.Step)
}

// writeSummary prints the proportion table and the payload bounds.
func writeSummary(w io.Writer, store *dataset.Store, site string, step float64) {
	result := engine.ComputeProportions(store.Records(), site)

	_, _ = fmt.Fprintln(w, render.PieTitle(site))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	label := "LAUNCH SITE"
	if result.Kind == domain.AggregateByOutcome {
		label = "CLASS"
	}
	t.AppendHeader(table.Row{label, "COUNT", "SHARE"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	total := result.Total()
	for _, e := range result.Entries {
		t.AppendRow(table.Row{e.Label, e.Value, share(e.Value, total)})
	}
	t.AppendFooter(table.Row{"TOTAL", total, ""})
	t.Render()

	lo, hi := store.PayloadBounds()
	slider := store.SliderBounds(step)
	_, _ = fmt.Fprintf(w, "Payload mass: %.0f - %.0f kg (slider %.0f - %.0f, step %.0f)\n",
		lo, hi, slider.Min, slider.Max, slider.Step)
}

func share(v, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(v)/float64(total))
}
