package parser

import (
	"reflect"
	"testing"

	"github.com/cipherlist/cipherlist/internal/catalog"
	"github.com/cipherlist/cipherlist/internal/model"
)

func evalAliases(t *testing.T, expr string) []string {
	t.Helper()
	records := New(catalog.Default()).Evaluate(expr)
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Alias
	}
	return out
}

func TestParseOperators(t *testing.T) {
	got := Parse("RC4-SHA:+HIGH:-MEDIUM:!aNULL:@STRENGTH")
	want := []Directive{
		{Op: Add, Selector: "RC4-SHA"},
		{Op: MoveAppend, Selector: "HIGH"},
		{Op: RemoveSoft, Selector: "MEDIUM"},
		{Op: RemoveHard, Selector: "aNULL"},
		{Op: SortByStrength},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseSeparators(t *testing.T) {
	// Colon, comma and whitespace all separate directives.
	for _, expr := range []string{"RC4-SHA:AES128-SHA", "RC4-SHA,AES128-SHA", "RC4-SHA AES128-SHA", "RC4-SHA\tAES128-SHA\n"} {
		got := Parse(expr)
		if len(got) != 2 {
			t.Errorf("Parse(%q) = %d directives, want 2", expr, len(got))
		}
	}
}

func TestParseEmptyTokens(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") = %+v, want empty", got)
	}
	if got := Parse(":::,,  "); len(got) != 0 {
		t.Errorf("Parse of separators only = %+v, want empty", got)
	}
	// A bare operator with no selector is dropped.
	if got := Parse("!:RC4-SHA"); len(got) != 1 || got[0].Selector != "RC4-SHA" {
		t.Errorf("Parse(\"!:RC4-SHA\") = %+v", got)
	}
}

func TestEvaluateAliasOrder(t *testing.T) {
	got := evalAliases(t, "AES256-SHA:RC4-SHA:AES128-SHA")
	want := []string{"AES256-SHA", "RC4-SHA", "AES128-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateDeduplicates(t *testing.T) {
	got := evalAliases(t, "RC4-SHA:RC4-SHA:MEDIUM")
	seen := make(map[string]bool)
	for _, alias := range got {
		if seen[alias] {
			t.Errorf("duplicate %s in %v", alias, got)
		}
		seen[alias] = true
	}
	if got[0] != "RC4-SHA" {
		t.Errorf("first mention wins: got %v", got)
	}
}

func TestEvaluateKeywordUsesCatalogOrder(t *testing.T) {
	// Keyword expansion appends matches in catalog declaration order.
	got := evalAliases(t, "RSA+3DES")
	want := []string{"DES-CBC3-MD5", "DES-CBC3-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateCompoundKeyword(t *testing.T) {
	// '+' inside a selector is an AND over predicates.
	got := evalAliases(t, "kECDHE+aRSA+AESGCM")
	want := []string{"ECDHE-RSA-AES128-GCM-SHA256", "ECDHE-RSA-AES256-GCM-SHA384"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateRemoveSoftAllowsReAdd(t *testing.T) {
	got := evalAliases(t, "RC4-SHA:AES128-SHA:-RC4-SHA:RC4-SHA")
	want := []string{"AES128-SHA", "RC4-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateRemoveHardIsPermanent(t *testing.T) {
	got := evalAliases(t, "RC4-SHA:!RC4-SHA:RC4-SHA")
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}

	// The exclusion also blocks keyword expansion later on.
	got = evalAliases(t, "!RC4:MEDIUM")
	for _, alias := range got {
		if r, _ := catalog.Default().Lookup(alias); r.Enc == model.EncRC4 {
			t.Errorf("RC4 suite %s present after !RC4", alias)
		}
	}
}

func TestEvaluateMoveAppendOnlyReorders(t *testing.T) {
	got := evalAliases(t, "RC4-SHA:AES128-SHA:+RC4-SHA")
	want := []string{"AES128-SHA", "RC4-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Moving a suite that is not in the list does not add it.
	if got := evalAliases(t, "+RC4-SHA"); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestEvaluateUnknownTokensIgnored(t *testing.T) {
	got := evalAliases(t, "RC4-SHA:NOT-A-CIPHER:AES128-SHA")
	want := []string{"RC4-SHA", "AES128-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := evalAliases(t, "BOGUS"); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestEvaluateEmptyExpression(t *testing.T) {
	if got := evalAliases(t, ""); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestEvaluateStrengthSort(t *testing.T) {
	got := evalAliases(t, "NULL-SHA:RC4-SHA:AES128-SHA:@STRENGTH")
	want := []string{"AES128-SHA", "RC4-SHA", "NULL-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateStrengthSortStable(t *testing.T) {
	// Ties are broken by catalog declaration order regardless of the order
	// suites were added in.
	got := evalAliases(t, "AES256-SHA:AES128-SHA:@STRENGTH")
	want := []string{"AES128-SHA", "AES256-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateDefault(t *testing.T) {
	cat := catalog.Default()
	got := evalAliases(t, "DEFAULT")
	if len(got) == 0 {
		t.Fatal("DEFAULT resolved to nothing")
	}

	for _, alias := range got {
		r, _ := cat.Lookup(alias)
		if r.Enc == model.EncNull {
			t.Errorf("DEFAULT contains eNULL suite %s", alias)
		}
		if r.Au == model.AuNone {
			t.Errorf("DEFAULT contains anonymous suite %s", alias)
		}
		if r.Protocols.Contains(model.SSLv2) && !r.Protocols.Contains(model.SSLv3) {
			t.Errorf("DEFAULT contains SSLv2-only suite %s", alias)
		}
	}

	// Suites defined for SSLv2 but merged into the SSLv3 tables stay.
	found := false
	for _, alias := range got {
		if alias == "RC4-MD5" {
			found = true
		}
	}
	if !found {
		t.Error("DEFAULT should keep RC4-MD5")
	}
}

func TestEvaluateComplementOfDefault(t *testing.T) {
	cat := catalog.Default()
	got := evalAliases(t, "COMPLEMENTOFDEFAULT")
	if len(got) == 0 {
		t.Fatal("COMPLEMENTOFDEFAULT resolved to nothing")
	}
	for _, alias := range got {
		r, _ := cat.Lookup(alias)
		anon := r.Au == model.AuNone && r.Enc != model.EncNull
		sslv2 := r.Protocols.Contains(model.SSLv2) && !r.Protocols.Contains(model.SSLv3)
		if !anon && !sslv2 {
			t.Errorf("%s should not be in COMPLEMENTOFDEFAULT", alias)
		}
	}
}

func TestEvaluateComplementOfAll(t *testing.T) {
	cat := catalog.Default()
	got := evalAliases(t, "COMPLEMENTOFALL")
	if len(got) == 0 {
		t.Fatal("COMPLEMENTOFALL resolved to nothing")
	}
	for _, alias := range got {
		r, _ := cat.Lookup(alias)
		if r.Enc != model.EncNull {
			t.Errorf("%s is not an eNULL suite", alias)
		}
	}
}

func TestEvaluateAllPlusComplementCoversCatalog(t *testing.T) {
	got := evalAliases(t, "ALL:COMPLEMENTOFALL")
	if len(got) != catalog.Default().Len() {
		t.Errorf("ALL:COMPLEMENTOFALL has %d suites, catalog has %d", len(got), catalog.Default().Len())
	}
}

func TestEvaluateProtocolKeywords(t *testing.T) {
	cat := catalog.Default()

	for _, alias := range evalAliases(t, "SSLv2") {
		r, _ := cat.Lookup(alias)
		if r.Protocols.Contains(model.SSLv3) {
			t.Errorf("SSLv2 matched non-SSLv2-only suite %s", alias)
		}
	}

	// TLSv1.2 matches only suites defined for TLSv1.2, not every suite
	// negotiable under it.
	for _, alias := range evalAliases(t, "TLSv1.2") {
		r, _ := cat.Lookup(alias)
		if r.Protocols.Contains(model.TLSv11) {
			t.Errorf("TLSv1.2 matched pre-1.2 suite %s", alias)
		}
	}

	if got := evalAliases(t, "TLSv1.2"); len(got) == 0 {
		t.Error("TLSv1.2 matched nothing")
	}
}

func TestEvaluateExportKeywords(t *testing.T) {
	cat := catalog.Default()
	for _, alias := range evalAliases(t, "EXPORT") {
		r, _ := cat.Lookup(alias)
		if !r.Export {
			t.Errorf("EXPORT matched non-export suite %s", alias)
		}
	}
	for _, alias := range evalAliases(t, "EXPORT56") {
		r, _ := cat.Lookup(alias)
		if r.Strength != model.StrengthExport56 {
			t.Errorf("EXPORT56 matched %s with strength %s", alias, r.Strength)
		}
	}
}

func TestEvaluateIsPure(t *testing.T) {
	e := New(catalog.Default())
	first := e.Evaluate("HIGH:!aNULL:@STRENGTH")
	second := e.Evaluate("HIGH:!aNULL:@STRENGTH")
	if !reflect.DeepEqual(first, second) {
		t.Error("same expression gave different results")
	}
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{Add, "add"},
		{MoveAppend, "move"},
		{RemoveSoft, "remove"},
		{RemoveHard, "kill"},
		{SortByStrength, "sort"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operator(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
