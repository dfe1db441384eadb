package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showData is the JSON payload for the show command.
type showData struct {
	Name     string   `json:"name"`
	Len      int      `json:"len"`
	First    string   `json:"first"`
	Last     string   `json:"last"`
	Elements []string `json:"elements"`
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file> <name>",
		Short: "Print a named sequence with its first/last/len",
		Long: `Show a named sequence from a document.

Because the sequence is guaranteed non-empty once loaded, first, last
and len are always present in the output.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runShow(opts *RootOptions, path, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	seq, err := resolveSequence(formatter, path, name)
	if err != nil {
		return err
	}

	if formatter.Format == "json" {
		return formatter.JSON(showData{
			Name:     name,
			Len:      seq.Len(),
			First:    seq.First(),
			Last:     seq.Last(),
			Elements: seq.Slice(),
		})
	}

	fmt.Fprintf(formatter.Writer, "name: %s\n", name)
	fmt.Fprintf(formatter.Writer, "len: %d\n", seq.Len())
	fmt.Fprintf(formatter.Writer, "first: %s\n", seq.First())
	fmt.Fprintf(formatter.Writer, "last: %s\n", seq.Last())
	fmt.Fprintln(formatter.Writer, "elements:")
	for i, v := range seq.All() {
		fmt.Fprintf(formatter.Writer, "  %d. %s\n", i+1, v)
	}
	return nil
}
