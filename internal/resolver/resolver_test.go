package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/cipherlist/cipherlist/internal/catalog"
	"github.com/cipherlist/cipherlist/internal/provider"
)

func newTestResolver() *Resolver {
	return New(catalog.Default(), provider.Builtin(), nil)
}

func TestResolveAndAliases(t *testing.T) {
	r := newTestResolver()

	records := r.Resolve("RC4-SHA:AES128-SHA")
	if len(records) != 2 {
		t.Fatalf("Resolve returned %d records, want 2", len(records))
	}

	aliases := r.Aliases("RC4-SHA:AES128-SHA")
	if aliases[0] != "RC4-SHA" || aliases[1] != "AES128-SHA" {
		t.Errorf("Aliases = %v", aliases)
	}
}

func TestCrossReferenceShape(t *testing.T) {
	r := newTestResolver()

	entries := r.CrossReference("AES128-SHA")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Record.Alias != "AES128-SHA" {
		t.Errorf("entry for %s", e.Record.Alias)
	}
	if len(e.Mappings) != 2 {
		t.Fatalf("got %d mappings, want one per builtin provider", len(e.Mappings))
	}
	for _, m := range e.Mappings {
		if m.Outcome != provider.Mapped {
			t.Errorf("%s: outcome %s, want mapped", m.Provider, m.Outcome)
		}
		if m.StandardName != "TLS_RSA_WITH_AES_128_CBC_SHA" {
			t.Errorf("%s: name %q", m.Provider, m.StandardName)
		}
	}
}

func TestCrossReferenceUnsupported(t *testing.T) {
	r := newTestResolver()

	entries := r.CrossReference("SEED-SHA")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	for _, m := range entries[0].Mappings {
		switch m.Provider {
		case "Oracle":
			if m.Outcome != provider.Mapped {
				t.Errorf("Oracle: %s, want mapped", m.Outcome)
			}
		case "IBM":
			if m.Outcome != provider.KnownUnsupported {
				t.Errorf("IBM: %s, want unsupported", m.Outcome)
			}
		}
	}
}

func TestVerifyCleanData(t *testing.T) {
	// The embedded catalog, registry snapshot and builtin profiles must be
	// mutually consistent.
	problems := newTestResolver().Verify()
	for _, p := range problems {
		t.Errorf("unexpected problem: %s", p)
	}
}

func TestVerifyFlagsBadProfile(t *testing.T) {
	// A profile that knows nothing makes every reference-build suite an
	// unexpected outcome.
	empty := provider.NewProfile("Empty", nil, nil)
	r := New(catalog.Default(), []*provider.Profile{empty}, nil)

	problems := r.Verify()
	if len(problems) == 0 {
		t.Fatal("Verify found no problems with an empty profile")
	}
	found := false
	for _, p := range problems {
		if p.Check == "totality" {
			found = true
		}
	}
	if !found {
		t.Error("expected a totality problem")
	}
}

type fakeReference struct {
	aliases []string
	err     error
}

func (f *fakeReference) Ciphers(ctx context.Context, expr string) ([]string, error) {
	return f.aliases, f.err
}

func TestVerifyAvailabilityMatchingBuild(t *testing.T) {
	r := newTestResolver()

	// A reference build that offers exactly what the catalog resolves.
	var aliases []string
	for _, alias := range r.Aliases("ALL:eNULL") {
		if !provider.OutsideReferenceBuild(alias) {
			aliases = append(aliases, alias)
		}
	}

	problems, err := r.VerifyAvailability(context.Background(), &fakeReference{aliases: aliases})
	if err != nil {
		t.Fatalf("VerifyAvailability: %v", err)
	}
	for _, p := range problems {
		t.Errorf("unexpected problem: %s", p)
	}
}

func TestVerifyAvailabilityDivergentBuild(t *testing.T) {
	r := newTestResolver()

	var aliases []string
	for _, alias := range r.Aliases("ALL:eNULL") {
		if !provider.OutsideReferenceBuild(alias) && alias != "RC4-SHA" {
			aliases = append(aliases, alias)
		}
	}
	aliases = append(aliases, "FANCY-NEW-SUITE")

	problems, err := r.VerifyAvailability(context.Background(), &fakeReference{aliases: aliases})
	if err != nil {
		t.Fatalf("VerifyAvailability: %v", err)
	}
	if len(problems) != 2 {
		t.Fatalf("got %d problems, want 2: %v", len(problems), problems)
	}
	for _, p := range problems {
		if p.Check != "availability" {
			t.Errorf("check = %q, want availability", p.Check)
		}
	}
}

func TestVerifyAvailabilityToolError(t *testing.T) {
	r := newTestResolver()

	wantErr := errors.New("no such binary")
	if _, err := r.VerifyAvailability(context.Background(), &fakeReference{err: wantErr}); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestDefaultResolver(t *testing.T) {
	r := Default(nil)
	if got := len(r.Profiles()); got != 2 {
		t.Errorf("Default resolver has %d profiles, want 2", got)
	}
	if r.Catalog().Len() == 0 {
		t.Error("Default resolver has an empty catalog")
	}
}
