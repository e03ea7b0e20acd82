// Package resolver ties the cipher catalog, the expression evaluator and
// the provider profiles together behind one query surface. It is what the
// CLI and the TUI talk to.
package resolver

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cipherlist/cipherlist/internal/catalog"
	"github.com/cipherlist/cipherlist/internal/model"
	"github.com/cipherlist/cipherlist/internal/parser"
	"github.com/cipherlist/cipherlist/internal/provider"
	"github.com/cipherlist/cipherlist/internal/registry"
)

// Resolver answers cipher-list queries against a fixed catalog and a set
// of provider profiles. Safe for concurrent use.
type Resolver struct {
	cat      *catalog.Catalog
	eval     *parser.Evaluator
	profiles []*provider.Profile
	log      *zap.Logger
}

// New builds a resolver. A nil logger disables logging.
func New(cat *catalog.Catalog, profiles []*provider.Profile, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		cat:      cat,
		eval:     parser.New(cat),
		profiles: profiles,
		log:      log,
	}
}

// Default returns a resolver over the built-in catalog and the built-in
// provider profiles.
func Default(log *zap.Logger) *Resolver {
	return New(catalog.Default(), provider.Builtin(), log)
}

// Catalog returns the resolver's catalog.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.cat
}

// Profiles returns the resolver's provider profiles.
func (r *Resolver) Profiles() []*provider.Profile {
	return r.profiles
}

// Resolve evaluates an expression into an ordered suite list.
func (r *Resolver) Resolve(expr string) []*model.CipherRecord {
	out := r.eval.Evaluate(expr)
	r.log.Debug("resolved expression",
		zap.String("expression", expr),
		zap.Int("suites", len(out)))
	return out
}

// Aliases evaluates an expression and returns the OpenSSL aliases of the
// result, in order.
func (r *Resolver) Aliases(expr string) []string {
	records := r.Resolve(expr)
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Alias
	}
	return out
}

// Mapping is one provider's view of a suite.
type Mapping struct {
	Provider     string
	Outcome      provider.Outcome
	StandardName string
}

// Entry is one resolved suite with its cross-reference results.
type Entry struct {
	Record   *model.CipherRecord
	Mappings []Mapping
}

// CrossReference evaluates an expression and maps every resolved suite
// against each profile. Unexpected outcomes are logged at warn level
// since they indicate a defect in the catalog or a profile.
func (r *Resolver) CrossReference(expr string) []Entry {
	records := r.Resolve(expr)
	entries := make([]Entry, len(records))
	for i, rec := range records {
		mappings := make([]Mapping, len(r.profiles))
		for j, p := range r.profiles {
			outcome, name := p.Map(rec)
			mappings[j] = Mapping{Provider: p.Name(), Outcome: outcome, StandardName: name}
			if outcome == provider.Unexpected {
				r.log.Warn("suite matches neither provider list",
					zap.String("suite", rec.Alias),
					zap.String("provider", p.Name()))
			}
		}
		entries[i] = Entry{Record: rec, Mappings: mappings}
	}
	return entries
}

// Problem is one finding from Verify.
type Problem struct {
	Check  string
	Detail string
}

func (p Problem) String() string {
	return p.Check + ": " + p.Detail
}

// Verify runs the data-consistency checks over the catalog and the
// profiles and returns every problem found. An empty result means the
// embedded data is self-consistent.
func (r *Resolver) Verify() []Problem {
	var problems []Problem

	// Every catalog standard name must be a registered IANA name or a
	// documented legacy exception.
	for _, rec := range r.cat.All() {
		for _, name := range rec.StandardNames {
			if !registry.Conformant(name) {
				problems = append(problems, Problem{
					Check:  "registry",
					Detail: fmt.Sprintf("%s: name %s not registered", rec.Alias, name),
				})
			}
		}
	}

	// Every suite a stock reference build emits must be either mapped or
	// documented as unsupported by each profile.
	for _, rec := range r.Resolve("ALL:eNULL") {
		if provider.OutsideReferenceBuild(rec.Alias) {
			continue
		}
		for _, p := range r.profiles {
			outcome, _ := p.Map(rec)
			if outcome == provider.Unexpected {
				problems = append(problems, Problem{
					Check:  "totality",
					Detail: fmt.Sprintf("%s: unexpected for provider %s", rec.Alias, p.Name()),
				})
			}
		}
	}

	// A suite must never be both mapped and documented unsupported.
	for _, rec := range r.cat.All() {
		for _, p := range r.profiles {
			outcome, _ := p.Map(rec)
			if outcome == provider.Mapped && p.Unsupported(rec.Alias) {
				problems = append(problems, Problem{
					Check:  "consistency",
					Detail: fmt.Sprintf("%s: both mapped and unsupported for provider %s", rec.Alias, p.Name()),
				})
			}
		}
	}

	// Evaluation must be a pure function: the same expression twice gives
	// the same list.
	for _, expr := range []string{"DEFAULT", "ALL", "HIGH:MEDIUM:LOW", "ALL:@STRENGTH"} {
		first := r.Aliases(expr)
		second := r.Aliases(expr)
		if len(first) != len(second) {
			problems = append(problems, Problem{
				Check:  "determinism",
				Detail: fmt.Sprintf("%s: %d vs %d suites across runs", expr, len(first), len(second)),
			})
			continue
		}
		for i := range first {
			if first[i] != second[i] {
				problems = append(problems, Problem{
					Check:  "determinism",
					Detail: fmt.Sprintf("%s: order differs at position %d", expr, i),
				})
				break
			}
		}
	}

	// A resolved list must never contain duplicates.
	for _, expr := range []string{"ALL:eNULL", "DEFAULT", "COMPLEMENTOFDEFAULT:DEFAULT"} {
		seen := make(map[string]bool)
		for _, alias := range r.Aliases(expr) {
			if seen[alias] {
				problems = append(problems, Problem{
					Check:  "uniqueness",
					Detail: fmt.Sprintf("%s: duplicate suite %s", expr, alias),
				})
			}
			seen[alias] = true
		}
	}

	r.log.Info("verification finished", zap.Int("problems", len(problems)))
	return problems
}

// Reference lists cipher aliases the way an external reference build
// resolves them.
type Reference interface {
	Ciphers(ctx context.Context, expr string) ([]string, error)
}

// VerifyAvailability compares the catalog against a reference build. The
// catalog, minus the suites no stock build ships, must resolve ALL:eNULL
// to exactly what the reference emits.
func (r *Resolver) VerifyAvailability(ctx context.Context, ref Reference) ([]Problem, error) {
	reference, err := ref.Ciphers(ctx, "ALL:eNULL")
	if err != nil {
		return nil, err
	}

	aliases := r.Aliases("ALL:eNULL")
	local := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		if !provider.OutsideReferenceBuild(alias) {
			local[alias] = true
		}
	}
	remote := make(map[string]bool, len(reference))
	for _, alias := range reference {
		remote[alias] = true
	}

	var problems []Problem
	for _, alias := range aliases {
		if local[alias] && !remote[alias] {
			problems = append(problems, Problem{
				Check:  "availability",
				Detail: fmt.Sprintf("%s: not offered by the reference build", alias),
			})
		}
	}
	for _, alias := range reference {
		if !local[alias] {
			problems = append(problems, Problem{
				Check:  "availability",
				Detail: fmt.Sprintf("%s: offered by the reference build but not in the catalog", alias),
			})
		}
	}
	return problems, nil
}
