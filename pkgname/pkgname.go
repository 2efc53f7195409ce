// Package pkgname resolves the forms of an npm package name that pkgclip copies.
package pkgname

import (
	"fmt"
	"strings"

	packageurl "github.com/package-url/packageurl-go"

	"github.com/jswork/pkgclip/core"
)

// DefaultInstallPrefix is the command placed before the package name.
const DefaultInstallPrefix = "npm i"

// Resolve returns fullName in the requested mode.
// ModeShort drops everything up to and including the first "/".
func Resolve(fullName string, mode core.Mode) (string, error) {
	if fullName == "" {
		return "", fmt.Errorf("%w: empty package name", core.ErrInvalidManifest)
	}

	switch mode {
	case core.ModeFull:
		return fullName, nil
	case core.ModeShort:
		_, short, found := strings.Cut(fullName, "/")
		if !found {
			return fullName, nil
		}
		return short, nil
	default:
		return "", fmt.Errorf("%w %q", core.ErrUnknownMode, mode)
	}
}

// Scope returns the part of fullName before the first "/", or "" when unscoped.
func Scope(fullName string) string {
	scope, _, found := strings.Cut(fullName, "/")
	if !found {
		return ""
	}
	return scope
}

// InstallCommand joins prefix and fullName. A blank prefix uses DefaultInstallPrefix.
func InstallCommand(prefix, fullName string) (string, error) {
	name, err := Resolve(fullName, core.ModeFull)
	if err != nil {
		return "", err
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultInstallPrefix
	}
	return prefix + " " + name, nil
}

// PURL renders the npm Package URL for fullName at version.
// The scope, including its "@", becomes the namespace.
func PURL(fullName, version string) (string, error) {
	short, err := Resolve(fullName, core.ModeShort)
	if err != nil {
		return "", err
	}
	p := packageurl.NewPackageURL(
		packageurl.TypeNPM,
		Scope(fullName),
		short,
		version,
		nil,
		"",
	)
	return p.ToString(), nil
}
