package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/nonempty"
	"github.com/roach88/nonempty/internal/store"
)

// getData is the JSON payload for store get.
type getData struct {
	Name     string   `json:"name"`
	Revision string   `json:"revision"`
	Elements []string `json:"elements"`
}

// NewStoreCommand creates the store command group.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Persist sequences to a local database",
		Long: `Persist named sequences to a local SQLite database. Every put writes an
immutable revision; get reads the latest one. Empty sequences are
rejected on the way in and reported as corruption on the way out, so the
database never holds a zero-element revision.`,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "nonempty.db", "path to the SQLite database")

	cmd.AddCommand(newStorePutCommand(rootOpts, &dbPath))
	cmd.AddCommand(newStoreGetCommand(rootOpts, &dbPath))
	cmd.AddCommand(newStoreRevsCommand(rootOpts, &dbPath))

	return cmd
}

func newStorePutCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "put <file> <name>",
		Short:         "Save a named sequence from a document as a new revision",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			seq, err := resolveSequence(formatter, args[0], args[1])
			if err != nil {
				return err
			}

			st, err := openStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			rev, err := st.SaveSeq(cmd.Context(), args[1], seq)
			if err != nil {
				_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
				return NewExitError(ExitCommandError, err.Error())
			}

			if formatter.Format == "json" {
				return formatter.JSON(map[string]string{"name": args[1], "revision": rev})
			}
			fmt.Fprintf(formatter.Writer, "saved %s revision %s\n", args[1], rev)
			return nil
		},
	}
}

func newStoreGetCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "get <name>",
		Short:         "Print the latest revision of a stored sequence",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			st, err := openStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			seq, rev, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return storeError(formatter, args[0], err)
			}

			if formatter.Format == "json" {
				return formatter.JSON(getData{
					Name:     args[0],
					Revision: rev,
					Elements: seq.Slice(),
				})
			}
			fmt.Fprintf(formatter.Writer, "revision: %s\n", rev)
			fmt.Fprintf(formatter.Writer, "elements: %v\n", seq.Slice())
			return nil
		},
	}
}

func newStoreRevsCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "revs <name>",
		Short:         "List the revision history of a stored sequence",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			st, err := openStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			revs, err := st.Revisions(cmd.Context(), args[0])
			if err != nil {
				return storeError(formatter, args[0], err)
			}

			if formatter.Format == "json" {
				return formatter.JSON(revs)
			}
			for _, r := range revs {
				fmt.Fprintf(formatter.Writer, "%s  len=%d\n", r.ID, r.Len)
			}
			return nil
		},
	}
}

// openStore opens the database, reporting failures through the
// formatter.
func openStore(formatter *OutputFormatter, path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return nil, NewExitError(ExitCommandError, err.Error())
	}
	return st, nil
}

// storeError maps store failures onto CLI error codes and exit codes.
func storeError(formatter *OutputFormatter, name string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		msg := fmt.Sprintf("no stored sequence named %q", name)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	case errors.Is(err, nonempty.ErrEmpty):
		_ = formatter.Error(ErrCodeEmptySeq, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	default:
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
}
