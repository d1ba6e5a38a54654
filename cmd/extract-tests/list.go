package main

import (
	"fmt"
)

// Run executes the list-profiles command.
func (c *ListProfilesCmd) Run(deps *Dependencies) error {
	for _, name := range deps.Registry.Names() {
		profile, err := deps.Registry.Resolve(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == deps.Registry.Default() {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s\t%s\n", marker, name, profile.Dir)
	}
	return nil
}
