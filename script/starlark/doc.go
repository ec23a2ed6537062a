// Package starlark provides the script evaluator used for script-format
// configuration files.
//
// Scripts are written in Starlark (go.starlark.net), a deterministic Python
// dialect designed for configuration. A script's exported globals form the
// configuration document:
//
//	_base = 10  # underscore names stay private
//
//	def _double(n):  # functions are helpers, never exported
//	    return n * 2
//
//	port = _double(_base) + 8060
//	hosts = ["a.example.com", "b.example.com"]
//	limits = {"rps": 25, "burst": 50}
//
// evaluates to {"port": 8080, "hosts": [...], "limits": {...}}.
//
// # Trust Boundary
//
// Unlike loading a module in a dynamic language, evaluation here is
// hermetic. Each Eval call runs on a fresh thread with load() disabled and
// nothing predeclared beyond the Starlark universe: no filesystem access, no
// network, no imports, and guaranteed termination properties of the dialect.
// print() output is routed to slog at debug level.
//
// # Value Mapping
//
//	None          -> nil
//	bool          -> bool
//	int           -> int64 (larger values are rejected)
//	float         -> float64
//	string        -> string
//	list, tuple   -> []any
//	dict          -> map[string]any (string keys required)
//
// Anything else exported by a script is rejected with ErrUnsupportedValue.
package starlark
