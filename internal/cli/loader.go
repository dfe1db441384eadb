package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/nonempty"
)

// Document is a parsed sequence document: a mapping from names to lists
// of scalar elements. Name order from the source file is preserved.
//
// Documents are accepted in YAML or JSON form; JSON is parsed through
// the same decoder since YAML is a superset of it.
type Document struct {
	Names []string            // declaration order
	Lists map[string][]string // name -> elements, in order
	Lines map[string]int      // name -> source line, for diagnostics
}

// LoadError represents an error that occurred during document loading.
type LoadError struct {
	Code    string
	Message string
	Line    int // source line if available, 0 otherwise
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadDocument reads and parses a sequence document from path.
//
// The document root must be a mapping and every value must be a list of
// scalars. Emptiness of the lists is NOT checked here - that is the
// validate command's job - so callers can load a broken document to
// report on it.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("document not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("parsing %s: %v", path, err)}
	}
	if len(root.Content) == 0 {
		return nil, &LoadError{Code: ErrCodeBadFormat, Message: "document is empty"}
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, &LoadError{
			Code:    ErrCodeBadFormat,
			Message: "document root must be a mapping of names to lists",
			Line:    mapping.Line,
		}
	}

	doc := &Document{
		Lists: make(map[string][]string),
		Lines: make(map[string]int),
	}

	// Mapping nodes store alternating key/value children.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			return nil, &LoadError{
				Code:    ErrCodeBadFormat,
				Message: "sequence names must be scalars",
				Line:    key.Line,
			}
		}
		name := key.Value
		if _, dup := doc.Lists[name]; dup {
			return nil, &LoadError{
				Code:    ErrCodeBadFormat,
				Message: fmt.Sprintf("duplicate sequence name %q", name),
				Line:    key.Line,
			}
		}

		if value.Kind != yaml.SequenceNode {
			return nil, &LoadError{
				Code:    ErrCodeBadFormat,
				Message: fmt.Sprintf("value of %q must be a list", name),
				Line:    value.Line,
			}
		}

		elements := make([]string, 0, len(value.Content))
		for _, el := range value.Content {
			if el.Kind != yaml.ScalarNode {
				return nil, &LoadError{
					Code:    ErrCodeBadFormat,
					Message: fmt.Sprintf("elements of %q must be scalars", name),
					Line:    el.Line,
				}
			}
			elements = append(elements, el.Value)
		}

		doc.Names = append(doc.Names, name)
		doc.Lists[name] = elements
		doc.Lines[name] = key.Line
	}

	if len(doc.Names) == 0 {
		return nil, &LoadError{Code: ErrCodeBadFormat, Message: "document defines no sequences"}
	}

	return doc, nil
}

// lookup returns the named list, or a not-found LoadError naming the
// available sequences.
func (d *Document) lookup(name string) ([]string, error) {
	list, ok := d.Lists[name]
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("no sequence named %q in document (have %v)", name, d.Names),
		}
	}
	return list, nil
}

// resolveSequence loads a document, looks up a name, and wraps the list
// into a guaranteed-non-empty sequence. Errors are reported through the
// formatter and returned as ExitErrors, so commands can return the
// result directly from RunE.
func resolveSequence(formatter *OutputFormatter, path, name string) (nonempty.Seq[string], error) {
	doc, err := LoadDocument(path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return nonempty.Seq[string]{}, NewExitError(ExitCommandError, loadErr.Error())
		}
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return nonempty.Seq[string]{}, NewExitError(ExitCommandError, err.Error())
	}

	list, err := doc.lookup(name)
	if err != nil {
		loadErr := err.(*LoadError)
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return nonempty.Seq[string]{}, NewExitError(ExitCommandError, loadErr.Error())
	}

	seq, err := nonempty.TryFromSlice(list)
	if err != nil {
		msg := fmt.Sprintf("sequence %q is empty; run validate for details", name)
		_ = formatter.Error(ErrCodeEmptySeq, msg, nil)
		return nonempty.Seq[string]{}, NewExitError(ExitFailure, msg)
	}

	return seq, nil
}
