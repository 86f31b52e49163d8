// Package fetch implements the selection loop that turns a search result
// into a set of distinct downloaded artworks.
//
// # Slots and attempts
//
// A run has Options.Count slots. Each slot makes up to RetryBudget attempts;
// an attempt picks a candidate with the Policy, fetches its record and checks
// it with Evaluate. The first accepted record is downloaded through the Sink
// and the slot is done. A slot that runs out of attempts is abandoned
// without error.
//
//	f := fetch.NewFetcher(source, sink, opts, func(e fetch.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	viewed, err := f.Run(ctx)
//
// Any error from the Source or Sink ends the run. The artworks accepted up to
// that point are returned with the error.
//
// # Fakes
//
// Package fetchfakes holds generated fakes of Source and Sink for tests.
// Regenerate them with go generate ./internal/fetch/...
package fetch
