package starlark

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.starlark.net/starlark"
)

// ErrUnsupportedValue is returned when a script exports a value that has no
// plain Go representation.
var ErrUnsupportedValue = errors.New("unsupported script value")

// Evaluator implements the confroot.Evaluator interface by executing a
// Starlark script and collecting its exported globals.
//
// Execution is hermetic: each call runs on a fresh thread with no load
// support and no predeclared names beyond the Starlark universe, so a
// configuration script cannot reach the filesystem, the network, or other
// modules.
type Evaluator struct{}

// NewEvaluator creates a new Starlark evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Eval executes src as a Starlark script and returns its global bindings as
// plain Go values. Names starting with an underscore and callable bindings
// (helper functions) are not exported. The filename is used in diagnostics
// only; Eval never touches the filesystem.
func (e *Evaluator) Eval(filename string, src []byte) (map[string]any, error) {
	thread := &starlark.Thread{ //nolint:exhaustruct // no Load: scripts stay hermetic
		Name: "confroot:" + filename,
		Print: func(_ *starlark.Thread, msg string) {
			slog.Debug("config script print", slog.String("file", filename), slog.String("msg", msg))
		},
	}

	globals, err := starlark.ExecFile(thread, filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("executing %q: %w", filename, err)
	}

	values := make(map[string]any, len(globals))

	for name, value := range globals {
		if strings.HasPrefix(name, "_") {
			continue
		}

		if _, isCallable := value.(starlark.Callable); isCallable {
			continue
		}

		converted, err := goValue(value)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}

		values[name] = converted
	}

	return values, nil
}

// goValue converts a Starlark value to its plain Go representation.
func goValue(value starlark.Value) (any, error) {
	switch value := value.(type) {
	case starlark.NoneType:
		return nil, nil //nolint:nilnil // None maps to an untyped nil value
	case starlark.Bool:
		return bool(value), nil
	case starlark.Int:
		n, ok := value.Int64()
		if !ok {
			return nil, fmt.Errorf("%w: integer %s overflows int64", ErrUnsupportedValue, value)
		}

		return n, nil
	case starlark.Float:
		return float64(value), nil
	case starlark.String:
		return string(value), nil
	case starlark.Tuple:
		return goSequence(value)
	case *starlark.List:
		return goSequence(value)
	case *starlark.Dict:
		return goMapping(value)
	default:
		return nil, fmt.Errorf("%w: cannot represent %s", ErrUnsupportedValue, value.Type())
	}
}

func goSequence(sequence starlark.Indexable) ([]any, error) {
	out := make([]any, sequence.Len())

	for i := range out {
		element, err := goValue(sequence.Index(i))
		if err != nil {
			return nil, err
		}

		out[i] = element
	}

	return out, nil
}

func goMapping(dict *starlark.Dict) (map[string]any, error) {
	out := make(map[string]any, dict.Len())

	for _, item := range dict.Items() {
		key, ok := starlark.AsString(item[0])
		if !ok {
			return nil, fmt.Errorf("%w: dict key %s is not a string", ErrUnsupportedValue, item[0])
		}

		value, err := goValue(item[1])
		if err != nil {
			return nil, err
		}

		out[key] = value
	}

	return out, nil
}
