// Package provider cross-references cipher suites against TLS provider
// implementations. A profile describes one provider: the standard suite
// names it implements plus the OpenSSL aliases it is known not to carry.
// Cross-referencing a suite yields exactly one of three outcomes.
package provider

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/cipherlist/cipherlist/internal/model"
)

// Outcome classifies a suite against one provider profile.
type Outcome int

const (
	// Mapped means the provider implements the suite under a standard name.
	Mapped Outcome = iota
	// KnownUnsupported means the profile documents the suite as absent.
	KnownUnsupported
	// Unexpected means the suite matches neither list. This is always a
	// data defect in the profile or the catalog, never a runtime condition.
	Unexpected
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Mapped:
		return "mapped"
	case KnownUnsupported:
		return "unsupported"
	case Unexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Profile is one provider's suite inventory. Profiles are immutable after
// construction and safe for concurrent use.
type Profile struct {
	name        string
	names       map[string]bool
	unsupported map[string]bool
}

// NewProfile builds a profile from a provider's standard names and its
// documented unsupported OpenSSL aliases. Providers disagree on whether
// pre-TLS suite names carry an SSL_ or TLS_ prefix, so each name is
// registered under both prefixes.
func NewProfile(name string, standardNames, unsupportedAliases []string) *Profile {
	p := &Profile{
		name:        name,
		names:       make(map[string]bool, 2*len(standardNames)),
		unsupported: make(map[string]bool, len(unsupportedAliases)),
	}
	for _, n := range standardNames {
		p.names[n] = true
		if twin, ok := prefixTwin(n); ok {
			p.names[twin] = true
		}
	}
	for _, a := range unsupportedAliases {
		p.unsupported[a] = true
	}
	return p
}

// prefixTwin swaps a leading SSL_ prefix for TLS_ or vice versa. SSLv2-era
// SSL_CK_ identifiers have no TLS twin.
func prefixTwin(name string) (string, bool) {
	switch {
	case strings.HasPrefix(name, "SSL_CK_"):
		return "", false
	case strings.HasPrefix(name, "SSL_"):
		return "TLS_" + name[len("SSL_"):], true
	case strings.HasPrefix(name, "TLS_"):
		return "SSL_" + name[len("TLS_"):], true
	default:
		return "", false
	}
}

// Name returns the provider name.
func (p *Profile) Name() string {
	return p.name
}

// Implements reports whether the profile lists the standard name, under
// either prefix.
func (p *Profile) Implements(standardName string) bool {
	return p.names[standardName]
}

// Unsupported reports whether the profile documents the OpenSSL alias as
// not implemented.
func (p *Profile) Unsupported(alias string) bool {
	return p.unsupported[alias]
}

// Map cross-references one suite against the profile. For Mapped it also
// returns the standard name the suite resolves to; for the other outcomes
// the name is empty.
func (p *Profile) Map(r *model.CipherRecord) (Outcome, string) {
	for _, name := range r.StandardNames {
		if p.names[name] {
			return Mapped, name
		}
	}
	if p.unsupported[r.Alias] {
		return KnownUnsupported, ""
	}
	return Unexpected, ""
}

// profileFile is the on-disk YAML shape of a provider profile.
type profileFile struct {
	Name               string   `yaml:"name"`
	StandardNames      []string `yaml:"standardNames"`
	UnsupportedAliases []string `yaml:"unsupportedAliases"`
}

// Load reads a provider profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("provider: read profile: %w", err)
	}
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("provider: parse profile %s: %w", path, err)
	}
	if pf.Name == "" {
		return nil, fmt.Errorf("provider: profile %s has no name", path)
	}
	return NewProfile(pf.Name, pf.StandardNames, pf.UnsupportedAliases), nil
}

// Builtin returns the compiled-in profiles.
func Builtin() []*Profile {
	return []*Profile{Oracle(), IBM()}
}

// ByName returns the builtin profile with the given name, matched without
// regard to case.
func ByName(name string) (*Profile, bool) {
	for _, p := range Builtin() {
		if strings.EqualFold(p.name, name) {
			return p, true
		}
	}
	return nil, false
}

// OutsideReferenceBuild reports whether an alias belongs to a suite family
// that stock OpenSSL builds leave out: FORTEZZA and GOST need special
// engines, and the 56-bit export and DH-cert suites were dropped upstream.
func OutsideReferenceBuild(alias string) bool {
	if strings.Contains(alias, "FZA") || strings.Contains(alias, "GOST") {
		return true
	}
	if strings.Contains(alias, "EXP1024") {
		return true
	}
	if alias == "DHE-DSS-RC4-SHA" || alias == "RC2-MD5" {
		return true
	}
	for _, prefix := range []string{"DH-DSS", "DH-RSA", "EXP-DH-DSS", "EXP-DH-RSA"} {
		if strings.HasPrefix(alias, prefix) {
			return true
		}
	}
	return false
}
