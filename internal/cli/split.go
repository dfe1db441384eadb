package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/nonempty"
)

// splitData is the JSON payload for the split command.
type splitData struct {
	Name string   `json:"name"`
	At   int      `json:"at"`
	Head []string `json:"head"`
	Tail []string `json:"tail"`
}

// NewSplitCommand creates the split command.
func NewSplitCommand(rootOpts *RootOptions) *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "split <file> <name>",
		Short: "Split a sequence at an index into head and tail",
		Long: `Split a named sequence at --at. The head keeps indices [0, at) and must
stay non-empty, so --at 0 is rejected; the tail is a plain list and may
be empty.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(rootOpts, args[0], args[1], at, cmd)
		},
	}

	cmd.Flags().IntVar(&at, "at", 1, "split index; head keeps [0, at)")

	return cmd
}

func runSplit(opts *RootOptions, path, name string, at int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	seq, err := resolveSequence(formatter, path, name)
	if err != nil {
		return err
	}

	if at < 0 || at > seq.Len() {
		msg := fmt.Sprintf("--at %d out of range for %q (len %d)", at, name, seq.Len())
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	tail, err := seq.SplitOff(at)
	if errors.Is(err, nonempty.ErrEmpty) {
		msg := fmt.Sprintf("cannot split %q at 0: head would be empty", name)
		_ = formatter.Error(ErrCodeEmptySeq, msg, nil)
		return NewExitError(ExitFailure, msg)
	}
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.JSON(splitData{
			Name: name,
			At:   at,
			Head: seq.Slice(),
			Tail: tail,
		})
	}

	fmt.Fprintf(formatter.Writer, "head: %v\n", seq.Slice())
	fmt.Fprintf(formatter.Writer, "tail: %v\n", tail)
	return nil
}
