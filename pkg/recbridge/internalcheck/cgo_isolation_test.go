package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Only the bindings and export packages may import "C". Everything else,
// the public API included, stays pure Go so it compiles and tests without
// the native side.
var cgoAllowed = map[string]bool{
	"github.com/recbridge/recbridge-go/internal/bindings": true,
	"github.com/recbridge/recbridge-go/internal/export":   true,
}

func TestCGOIsolation(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/recbridge/recbridge-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if cgoAllowed[pkg.PkgPath] {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: import \"C\" outside the bindings packages", pos))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
