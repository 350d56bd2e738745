package core

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
)

// versionScheme is the first scheme both stamps parse under.
type versionScheme string

const (
	schemePEP440 versionScheme = "pep440"
	schemeDebian versionScheme = "debian"
	schemeText   versionScheme = "text"
)

// compareStamps orders two version stamps. Release-style stamps compare
// numerically so that 3.5 and 3.5.0 are the same version; distro package
// stamps such as 3.36.0-1 fall back to Debian ordering; anything else
// (including "Unknown") compares as text.
func compareStamps(a string, b string) (int, versionScheme) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if v1, err := pep440.Parse(a); err == nil {
		if v2, err := pep440.Parse(b); err == nil {
			return v1.Compare(v2), schemePEP440
		}
	}
	if v1, err := debversion.NewVersion(a); err == nil {
		if v2, err := debversion.NewVersion(b); err == nil {
			return v1.Compare(v2), schemeDebian
		}
	}
	return strings.Compare(a, b), schemeText
}

// StampChanged reports whether a recorded stamp differs from the running
// one. Stamps are compared as written, as Compare does.
func StampChanged(recorded string, running string) bool {
	return recorded != running
}

// describeStamp says how the running stamp relates to the recorded one, for
// warning text.
func describeStamp(recorded string, running string) string {
	cmp, scheme := compareStamps(recorded, running)
	switch {
	case scheme == schemeText:
		return "different"
	case cmp < 0:
		return "newer"
	case cmp > 0:
		return "older"
	default:
		return "equivalent"
	}
}
