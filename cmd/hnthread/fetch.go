package main

import (
	"github.com/fwojciec/hnthread"
)

// FetchCmd fetches one thread and prints it as JSON.
type FetchCmd struct {
	Ref string
}

// Run executes the fetch command. Nothing is written to stdout unless the
// whole thread was fetched and encoded.
func (c *FetchCmd) Run(deps *Dependencies) error {
	result, err := hnthread.FetchThread(deps.Ctx, deps.Fetcher, c.Ref, deps.Normalizer)
	if err != nil {
		return err
	}

	out, err := hnthread.FormatResult(result)
	if err != nil {
		return err
	}

	_, err = deps.Stdout.Write(out)
	return err
}
