package main

import (
	"fmt"

	"github.com/fwojciec/apiref"
	"golang.org/x/sync/errgroup"
)

// resolved is the outcome of resolving one command-line reference.
type resolved struct {
	ref      *apiref.Reference
	res      apiref.Resolution
	messages []string
}

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	refs := make([]*apiref.Reference, len(c.Refs))
	for i, s := range c.Refs {
		ref, err := apiref.ParseReference(s)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", apiref.ErrorMessage(err))
			return err
		}
		refs[i] = ref
	}

	results := make([]resolved, len(refs))
	var g errgroup.Group
	g.SetLimit(max(deps.Config.Concurrency, 1))
	for i, ref := range refs {
		g.Go(func() error {
			r := resolved{ref: ref}
			res, err := deps.Resolver.GetItem(ref, func(message string) {
				r.messages = append(r.messages, message)
			})
			if err != nil {
				return err
			}
			r.res = res
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apiref.ErrorMessage(err))
		return err
	}

	unresolved := 0
	for _, r := range results {
		for _, msg := range r.messages {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", msg)
		}
		if !r.res.Found() {
			unresolved++
		}
		fmt.Fprintln(deps.Stdout, apiref.FormatResolution(*r.ref, r.res))
	}

	if c.Strict && unresolved > 0 {
		return apiref.Errorf(apiref.ENOTFOUND, "%d of %d references unresolved", unresolved, len(results))
	}
	return nil
}
