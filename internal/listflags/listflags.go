// Package listflags holds flags shared by commands that operate on a filtered list.
package listflags

import (
	"github.com/amonks/tasklist/task"
	"github.com/spf13/cobra"
)

// FilterValue is a pflag.Value accepting task filter names.
type FilterValue task.Filter

// NewFilterValue points a FilterValue at target and resets it to FilterAll.
func NewFilterValue(target *task.Filter) *FilterValue {
	*target = task.FilterAll
	return (*FilterValue)(target)
}

func (f *FilterValue) String() string {
	return string(*f)
}

// Set parses value with task.ParseFilter. Rejected values leave f unchanged.
func (f *FilterValue) Set(value string) error {
	parsed, err := task.ParseFilter(value)
	if err != nil {
		return err
	}
	*f = FilterValue(parsed)
	return nil
}

func (f *FilterValue) Type() string {
	return "filter"
}

// AddFilterFlag adds a shared --filter/-f flag to list commands.
func AddFilterFlag(cmd *cobra.Command, target *task.Filter) {
	cmd.Flags().VarP(NewFilterValue(target), "filter", "f", "Filter (all, active, completed)")
}
