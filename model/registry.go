/*
File    : parselatex/model/registry.go

Registry is the plugin-dispatch surface spec §5/§9 describe: "Model.fn is a
process-wide registry of downstream plugin operations; the parser does not
touch it, but exposes new nodes such that plugin dispatch
(modelInstance.operationName(...)) can be mounted on each node via a
prototype-like mechanism." Go has no prototype chain, so the mount point is
a plain method, Model.Call(name, args...), that looks the name up in a
registry and invokes it with the receiver and its Node.

Grounded on the teacher's Evaluator.Builtins map[string]*std.Builtin
(eval/evaluator.go), a name-keyed dispatch table populated once at startup
and consulted on every call — here keyed by plugin operation name instead
of identifier name, and left empty by default per spec §9: the parser
never registers anything into it itself.
*/
package model

import (
	"fmt"

	"github.com/artcompiler/parselatex/ast"
)

// PluginFunc is one registered operation: given the Model it was called on
// and that Model's current Node, plus whatever other Models were passed as
// arguments, it returns a new Model or an error.
type PluginFunc func(self *Model, node *ast.Node, args ...*Model) (*Model, error)

// Registry is a name -> PluginFunc dispatch table. It is safe to share
// across Models (spec §5: "Model.fn is a process-wide registry"); nothing
// in this package mutates a Registry concurrently with a Call.
type Registry struct {
	fns map[string]PluginFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]PluginFunc)}
}

// DefaultRegistry is the process-wide registry every Model uses unless
// overridden via Model.UseRegistry. It starts empty: this module owns only
// the AST shape, never plugin behavior (spec §9).
var DefaultRegistry = NewRegistry()

// Register mounts fn under name, replacing any prior registration.
func (r *Registry) Register(name string, fn PluginFunc) {
	r.fns[name] = fn
}

// Call looks up name and invokes it with self and args, or returns an
// error if no such operation was ever registered.
func (r *Registry) Call(name string, self *Model, args ...*Model) (*Model, error) {
	fn, ok := r.fns[name]
	if !ok {
		return nil, fmt.Errorf("model: no plugin operation registered for %q", name)
	}
	return fn(self, self.Node, args...)
}

// Call dispatches name through m's registry (DefaultRegistry unless
// UseRegistry was called), the mount point spec §5 describes as
// "modelInstance.operationName(...)".
func (m *Model) Call(name string, args ...*Model) (*Model, error) {
	return m.reg.Call(name, m, args...)
}
