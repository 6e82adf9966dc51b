/*
File    : parselatex/printer/raw.go

Raw dumps a *ast.Node with github.com/davecgh/go-spew, for
"parselatex inspect --raw" (SPEC_FULL.md §A.3): a field-by-field view of
the actual struct, useful for confirming intern-pool sharing (two fields
pointing at the same *ast.Node) in a way the summarized Print output above
does not show.
*/
package printer

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/artcompiler/parselatex/ast"
)

// Raw returns go-spew's configured dump of n: pointer addresses shown (so
// shared subtrees are visible as identical addresses) but unexported
// fields skipped, since ast.Node has none.
func Raw(n *ast.Node) string {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: false,
		DisableCapacities:       true,
	}
	return cfg.Sdump(n)
}
