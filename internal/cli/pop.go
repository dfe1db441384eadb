package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/nonempty"
)

// popData is the JSON payload for the pop command.
type popData struct {
	Name      string   `json:"name"`
	Removed   string   `json:"removed"`
	Remaining []string `json:"remaining"`
}

// NewPopCommand creates the pop command.
func NewPopCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pop <file> <name>",
		Short: "Remove the last element of a sequence",
		Long: `Pop the last element of a named sequence. A single-element sequence
cannot be popped: the call is rejected and nothing is removed.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPop(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runPop(opts *RootOptions, path, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	seq, err := resolveSequence(formatter, path, name)
	if err != nil {
		return err
	}

	removed, err := seq.Pop()
	if errors.Is(err, nonempty.ErrEmpty) {
		msg := fmt.Sprintf("cannot pop %q: it holds a single element (%q); nothing removed", name, seq.First())
		_ = formatter.Error(ErrCodeEmptySeq, msg, nil)
		return NewExitError(ExitFailure, msg)
	}
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.JSON(popData{
			Name:      name,
			Removed:   removed,
			Remaining: seq.Slice(),
		})
	}

	fmt.Fprintf(formatter.Writer, "removed: %s\n", removed)
	fmt.Fprintf(formatter.Writer, "remaining: %v\n", seq.Slice())
	return nil
}
