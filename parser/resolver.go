package parser

import (
	"github.com/dave/dst/decorator/resolver"
	"github.com/dave/dst/decorator/resolver/gopackages"
	"github.com/dave/dst/decorator/resolver/guess"
)

// fallbackResolver resolves package names with primary, and guesses the name from the
// import path when primary fails. Generated code may import a module that has not been
// added to the application's go.mod yet, which gopackages cannot resolve.
type fallbackResolver struct {
	primary  resolver.RestorerResolver
	fallback resolver.RestorerResolver
}

func (r fallbackResolver) ResolvePackage(path string) (string, error) {
	name, err := r.primary.ResolvePackage(path)
	if err == nil && name != "" {
		return name, nil
	}
	return r.fallback.ResolvePackage(path)
}

// defaultRestorerResolver resolves package names for the package in dir.
func defaultRestorerResolver(dir string) resolver.RestorerResolver {
	return fallbackResolver{
		primary:  gopackages.New(dir),
		fallback: guess.New(),
	}
}
