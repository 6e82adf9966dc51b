/*
File    : parselatex/model/model.go

Model is the facade spec §6 describes: "Model.create(options, node_or_string,
location?) -> Model ... parses if given a string, deep-copies if given a
node". It owns an intern pool (ast.Pool) and the environment stack (spec §5
"the Model facade exposes pushEnv(e)/popEnv()"), and carries a per-instance
SessionID so independent concurrent invocations sharing no state can still
be told apart in logs (§B of SPEC_FULL.md).

Grounded on the teacher's Evaluator (eval/evaluator.go): a facade struct
bundling parser-adjacent state (there, Scp/Builtins/Writer; here, pool/envs/
opts) behind a small set of methods, constructed once per session. The
intern pool itself (ast/intern.go) lives in package ast, not here, since ast.Node
is what it stores and ast.Pool already carries the NUM-format-aware
structural key (spec §4.6); Model just owns one instance per session.
*/
package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/environment"
	"github.com/artcompiler/parselatex/parser"
)

// Model wraps a parsed (or supplied) AST with the session-scoped resources
// spec §5/§6 describe: an intern pool, an environment stack the scanner
// consults, and the parse Options a Create call should honor.
type Model struct {
	SessionID uuid.UUID

	Node *ast.Node
	Opts parser.Options

	pool *ast.Pool
	envs *environment.Stack
	reg  *Registry
}

// New returns an empty Model (no Node yet) with a fresh intern pool and a
// single-root environment stack, ready for Create/FromLaTeX or direct
// Node assignment.
func New(opts parser.Options) *Model {
	return &Model{
		SessionID: uuid.New(),
		Opts:      opts,
		pool:      ast.NewPool(),
		envs:      environment.NewStack(),
		reg:       DefaultRegistry,
	}
}

// Create builds a Model from input, which must be a string (parsed via
// parser.Parse against the Model's current environment) or an *ast.Node
// (deep-copied, not reparsed) — spec §6's "parses if given a string,
// deep-copies if given a node". Anything else is a programmer error
// reported as a plain Go error rather than a *diag.Error, since it never
// reaches the scanner.
func Create(opts parser.Options, input any) (*Model, error) {
	return CreateInEnv(opts, input, nil)
}

// CreateInEnv is Create with an explicit starting environment (e.g. a
// chemistry-mode environment pre-populated with the periodic table),
// pushed before a string input is parsed. A nil env leaves the Model's
// default empty root environment in place.
func CreateInEnv(opts parser.Options, input any, env *environment.Environment) (*Model, error) {
	m := New(opts)
	if env != nil {
		m.PushEnv(env)
	}
	if err := m.set(input); err != nil {
		return nil, err
	}
	return m, nil
}

// CreateAll adapts spec §6's "recurses through arrays" clause: Go has no
// single dynamically-typed Create return that is sometimes one Model and
// sometimes a slice, so array input gets its own entry point, applying
// Create element-wise and stopping at the first error.
func CreateAll(opts parser.Options, inputs []any) ([]*Model, error) {
	out := make([]*Model, len(inputs))
	for i, in := range inputs {
		m, err := Create(opts, in)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}

// FromLaTeX is spec §6's "convenience alias" for Create with a string.
func FromLaTeX(opts parser.Options, src string) (*Model, error) {
	return Create(opts, src)
}

func (m *Model) set(input any) error {
	switch v := input.(type) {
	case string:
		node, err := parser.Parse(m.Opts, v, m.envs.Current())
		if err != nil {
			return err
		}
		m.Node = node
	case *ast.Node:
		m.Node = v.Clone()
	default:
		return fmt.Errorf("model: Create expects a string or *ast.Node, got %T", input)
	}
	return nil
}

// PushEnv installs e as the environment the scanner consults for the
// remainder of the current scope (spec §5 "pushEnv(e)/popEnv()").
func (m *Model) PushEnv(e *environment.Environment) {
	m.envs.Push(e)
}

// PopEnv restores the previous environment.
func (m *Model) PopEnv() {
	m.envs.Pop()
}

// WithEnv runs fn with e pushed as the current environment, guaranteed to
// pop it again on any exit path (mirrors environment.Stack.WithPushed).
func (m *Model) WithEnv(e *environment.Environment, fn func()) {
	m.envs.WithPushed(e, fn)
}

// Intern hands m.Node (or any other node, e.g. a plugin's freshly built
// result) to the Model's intern pool, returning its dense id.
func (m *Model) Intern(n *ast.Node) int {
	return m.pool.Intern(n)
}

// NodeByID reconstructs a fresh copy of the subtree interned under id.
func (m *Model) NodeByID(id int) *ast.Node {
	return m.pool.Node(id)
}

// PoolSize reports how many distinct subtrees the Model's intern pool
// currently holds.
func (m *Model) PoolSize() int {
	return m.pool.Len()
}

// UseRegistry overrides the Model's plugin dispatch table; by default every
// Model shares DefaultRegistry (spec §5 "Model.fn is a process-wide
// registry").
func (m *Model) UseRegistry(r *Registry) {
	m.reg = r
}
