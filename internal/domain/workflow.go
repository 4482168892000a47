package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"jibfiles.dev/pkg/jibfiles/internal/adapter"
	"jibfiles.dev/pkg/jibfiles/internal/controller"
	m "jibfiles.dev/pkg/jibfiles/internal/model"
	"jibfiles.dev/pkg/jibfiles/pkg/jibjson"
)

// FilesArgs configures a single file-report invocation.
type FilesArgs struct {
	Descriptor m.Path    // project descriptor to load
	Module     string    // target module, empty for the root
	Out        io.Writer // stream the sentinel-wrapped payload is written to
}

// SummaryArgs configures the per-module summary view.
type SummaryArgs struct {
	Descriptor m.Path
}

// Workflow ties descriptor loading, aggregation and reporting together for
// the CLI commands.
type Workflow interface {
	Files(ctx context.Context, args FilesArgs) error
	Summary(ctx context.Context, args SummaryArgs) error
}

type workflow struct {
	loader     adapter.ProjectLoader
	aggregator *Aggregator
	ui         controller.UI
}

// NewWorkflow constructs the production workflow.
func NewWorkflow(loader adapter.ProjectLoader, aggregator *Aggregator, ui controller.UI) Workflow {
	return &workflow{
		loader:     loader,
		aggregator: aggregator,
		ui:         ui,
	}
}

// Files computes the report for one module and writes it wrapped in the
// sentinel markers. Nothing is written when any step fails: consumers parse
// the stream textually and must never see a partial payload.
func (w *workflow) Files(ctx context.Context, args FilesArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	project, err := w.loader.Load(args.Descriptor)
	if err != nil {
		return err
	}

	report, err := w.aggregator.ComputeReport(project, args.Module)
	if err != nil {
		return err
	}

	payload, err := jibjson.Marshal(jibjson.FilesOutput{
		Build:  pathStrings(report.Build),
		Inputs: pathStrings(report.Inputs),
		Ignore: pathStrings(report.Ignore),
	})
	if err != nil {
		return err
	}

	slog.Info("reporting build files",
		"descriptor", args.Descriptor,
		"module", args.Module,
		"inputs", len(report.Inputs),
	)

	_, err = fmt.Fprintln(args.Out, payload)

	return err
}

// Summary computes a report for every module concurrently and renders the
// list sizes. Each aggregation is still one synchronous invocation; the
// fan-out is only across independent modules.
func (w *workflow) Summary(ctx context.Context, args SummaryArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	project, err := w.loader.Load(args.Descriptor)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(project.Modules)+1)
	names = append(names, project.Root.Name)

	for _, mod := range project.Modules {
		names = append(names, mod.Name)
	}

	rows := make([]controller.ModuleSummary, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := w.aggregator.ComputeReport(project, name)
			if err != nil {
				return err
			}

			rows[i] = controller.ModuleSummary{
				Module: name,
				Build:  len(report.Build),
				Inputs: len(report.Inputs),
				Ignore: len(report.Ignore),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplaySummary(ctx, rows)
}

func pathStrings(paths []m.Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, string(p))
	}

	return out
}
