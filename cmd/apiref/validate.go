package main

import (
	"fmt"

	"github.com/fwojciec/apiref"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	for _, path := range c.Paths {
		pkg, err := deps.Manifests.LoadPackageIntoCache(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", apiref.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "ok %s (%d exports, %s)\n", pkg.Name, len(pkg.Exports), pkg.ContentHash)
	}
	return nil
}
