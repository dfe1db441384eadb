package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/nonempty"
)

// dedupData is the JSON payload for the dedup command.
type dedupData struct {
	Name      string   `json:"name"`
	Removed   int      `json:"removed"`
	Elements  []string `json:"elements"`
	Canonical bool     `json:"canonical"`
}

// NewDedupCommand creates the dedup command.
func NewDedupCommand(rootOpts *RootOptions) *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "dedup <file> <name>",
		Short: "Collapse adjacent duplicate elements",
		Long: `Collapse adjacent duplicate elements of a named sequence. With
--canonical, elements are NFC-normalized before comparison, so visually
identical strings with different Unicode encodings count as duplicates.

Deduplication can never empty a sequence: the first element of every run
survives, so the command always succeeds on a valid document.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDedup(rootOpts, args[0], args[1], canonical, cmd)
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "NFC-normalize elements before comparing")

	return cmd
}

func runDedup(opts *RootOptions, path, name string, canonical bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	seq, err := resolveSequence(formatter, path, name)
	if err != nil {
		return err
	}

	before := seq.Len()
	if canonical {
		nonempty.DedupByKey(&seq, norm.NFC.String)
	} else {
		nonempty.Dedup(&seq)
	}
	removed := before - seq.Len()

	if formatter.Format == "json" {
		return formatter.JSON(dedupData{
			Name:      name,
			Removed:   removed,
			Elements:  seq.Slice(),
			Canonical: canonical,
		})
	}

	fmt.Fprintf(formatter.Writer, "removed %d duplicate(s)\n", removed)
	fmt.Fprintf(formatter.Writer, "elements: %v\n", seq.Slice())
	return nil
}
