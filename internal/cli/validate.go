package cli

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/cobra"
)

// listSchema is the CUE constraint every list in a document must
// satisfy: a list with at least one element of any type. This is the
// same one-or-more contract the library enforces at runtime, expressed
// as a schema.
const listSchema = `[_, ...]`

// ValidationError describes one schema violation in a document.
type ValidationError struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that every list in a document holds at least one element",
		Long: `Validate a sequence document against the one-or-more schema.

Every named list is checked against the CUE constraint [_, ...], which
admits any list with at least one element. Empty lists are reported with
their names and source lines.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	doc, err := LoadDocument(path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, loadErr.Error())
		}
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	formatter.VerboseLog("Loaded %d sequence(s) from %s", len(doc.Names), path)

	validationErrors := validateDocument(doc, formatter)
	if len(validationErrors) > 0 {
		return outputValidationErrors(formatter, validationErrors)
	}

	return outputValidateSuccess(formatter, len(doc.Names))
}

// validateDocument checks every list in the document against the
// one-or-more CUE schema.
func validateDocument(doc *Document, formatter *OutputFormatter) []ValidationError {
	cctx := cuecontext.New()
	schema := cctx.CompileString(listSchema)
	if err := schema.Err(); err != nil {
		// The schema is a compile-time constant; failing to compile it
		// is a bug, not a document problem.
		panic(fmt.Sprintf("cli: compiling list schema: %v", err))
	}

	var allErrors []ValidationError
	for _, name := range doc.Names {
		formatter.VerboseLog("Validating sequence: %s", name)

		value := cctx.Encode(doc.Lists[name])
		if err := value.Err(); err != nil {
			allErrors = append(allErrors, ValidationError{
				Name:    name,
				Code:    ErrCodeGeneric,
				Message: fmt.Sprintf("encoding: %v", err),
				Line:    doc.Lines[name],
			})
			continue
		}

		if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
			allErrors = append(allErrors, ValidationError{
				Name:    name,
				Code:    ErrCodeEmptySeq,
				Message: fmt.Sprintf("sequence %q must hold at least one element", name),
				Line:    doc.Lines[name],
			})
		}
	}

	return allErrors
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, count int) error {
	if formatter.Format == "json" {
		return formatter.JSON(ValidationResult{Valid: true})
	}

	fmt.Fprintf(formatter.Writer, "✓ %d sequence(s) valid\n", count)
	return nil
}

// outputValidationErrors outputs validation failures and maps them to
// exit code 1.
func outputValidationErrors(formatter *OutputFormatter, errs []ValidationError) error {
	if formatter.Format == "json" {
		_ = formatter.Error(errs[0].Code, errs[0].Message, ValidationResult{
			Valid:  false,
			Errors: errs,
		})
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", err.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
