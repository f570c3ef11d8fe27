package main

import (
	"fmt"

	"github.com/fwojciec/apiref"
)

// Run executes the members command.
func (c *MembersCmd) Run(deps *Dependencies) error {
	ref, err := apiref.ParseReference(c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apiref.ErrorMessage(err))
		return err
	}
	if ref.MemberName != "" {
		return apiref.Errorf(apiref.EINVALID, "reference %q names a member; expected a class or interface", c.Ref)
	}

	res, err := deps.Resolver.GetItem(ref, func(message string) {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", message)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apiref.ErrorMessage(err))
		return err
	}
	if !res.Found() {
		return apiref.Errorf(apiref.ENOTFOUND, "%s: %s", ref, res.Reason)
	}
	if !res.Item.Kind.IsClassLike() {
		return apiref.Errorf(apiref.EINVALID, "%s is a %s, not a class or interface", ref, res.Item.Kind)
	}

	for _, name := range res.Item.MemberNames() {
		member, _ := res.Item.Member(name)
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", name, member.Kind)
	}
	return nil
}
