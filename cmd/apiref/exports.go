package main

import (
	"fmt"

	"github.com/fwojciec/apiref"
)

// Run executes the exports command.
func (c *ExportsCmd) Run(deps *Dependencies) error {
	ref, err := apiref.ParsePackage(c.Package)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apiref.ErrorMessage(err))
		return err
	}

	pkg, err := deps.Packages.GetPackage(ref, func(message string) {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", message)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apiref.ErrorMessage(err))
		return err
	}
	if pkg == nil {
		return apiref.Errorf(apiref.ENOTFOUND, "package %q not found", ref.CacheKey())
	}

	for _, name := range pkg.ExportNames() {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", name, pkg.Exports[name].Kind)
	}
	return nil
}
