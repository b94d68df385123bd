package gopkg

import (
	"fmt"
	"go/types"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/typedesc"
)

// Source resolves type descriptors from a set of loaded Go packages.
type Source struct {
	pkgs  []*packages.Package
	sizes types.Sizes
}

// Load type-checks the packages matching patterns (same syntax as the go
// command) and wraps them as a metadata source.
func Load(patterns ...string) (*Source, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedDeps | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			return nil, fmt.Errorf("load %s: %s", pkg.PkgPath, perr.Msg)
		}
	}
	return NewSource(pkgs), nil
}

// NewSource wraps already-loaded packages.
func NewSource(pkgs []*packages.Package) *Source {
	sizes := types.SizesFor("gc", runtime.GOARCH)
	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}
	return &Source{pkgs: pkgs, sizes: sizes}
}

// Resolve looks name up among the loaded packages' named types. The name is
// either bare ("Header") or package-qualified ("net/http.Header").
func (s *Source) Resolve(name string) (*typedesc.TypeDescriptor, error) {
	Logger().Debug("resolving type", zap.String("name", name))

	pkgPath, bare := splitQualified(name)
	for _, pkg := range s.pkgs {
		if pkg.Types == nil {
			continue
		}
		if pkgPath != "" && pkg.PkgPath != pkgPath {
			continue
		}
		obj := pkg.Types.Scope().Lookup(bare)
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		desc, err := s.convert(tn.Type(), nil)
		if err != nil {
			return nil, err
		}
		if err := desc.Validate(); err != nil {
			return nil, err
		}
		return desc, nil
	}
	return nil, errors.NotFound(errors.PhaseResolve, name)
}

// splitQualified separates "pkg/path.Name" into its package path and bare
// name. A name without a dot after the last slash is unqualified.
func splitQualified(name string) (pkgPath, bare string) {
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return "", name
	}
	dot += slash + 1
	return name[:dot], name[dot+1:]
}
