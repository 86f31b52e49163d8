// Package report writes the JSON summary of a run.
//
//	w := report.NewWriter(afero.NewOsFs(), opts.ReportPath)
//	path, err := w.Emit(ctx, report.New(opts, viewed))
package report
