package catalog

import (
	"testing"

	"github.com/cipherlist/cipherlist/internal/model"
)

func TestDefaultCatalogAliasesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Default().All() {
		if seen[r.Alias] {
			t.Errorf("duplicate alias %q", r.Alias)
		}
		seen[r.Alias] = true
	}
}

func TestDefaultCatalogLookup(t *testing.T) {
	tests := []struct {
		alias string
		kx    model.KeyExchange
		enc   model.Encryption
	}{
		{"RC4-MD5", model.KxRSA, model.EncRC4},
		{"ECDHE-RSA-AES128-GCM-SHA256", model.KxECDHE, model.EncAES128GCM},
		{"SRP-DSS-AES-256-CBC-SHA", model.KxSRP, model.EncAES256},
		{"GOST94-GOST89-GOST89", model.KxGOST, model.EncGOST89},
	}
	for _, tt := range tests {
		r, ok := Default().Lookup(tt.alias)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.alias)
			continue
		}
		if r.Kx != tt.kx {
			t.Errorf("%s: Kx = %s, want %s", tt.alias, r.Kx, tt.kx)
		}
		if r.Enc != tt.enc {
			t.Errorf("%s: Enc = %s, want %s", tt.alias, r.Enc, tt.enc)
		}
	}

	if _, ok := Default().Lookup("NOT-A-SUITE"); ok {
		t.Error("Lookup should fail for unknown alias")
	}
}

func TestDefaultCatalogIndex(t *testing.T) {
	c := Default()
	for i, r := range c.All() {
		if got := c.Index(r); got != i {
			t.Errorf("Index(%s) = %d, want %d", r.Alias, got, i)
		}
	}
	if got := c.Index(&model.CipherRecord{Alias: "foreign"}); got != -1 {
		t.Errorf("Index of foreign record = %d, want -1", got)
	}
}

func TestMergedRecordsCarryBothNames(t *testing.T) {
	// Suites that exist in both the SSLv2 and SSLv3 tables are merged into
	// one record with the registry name first and the SSL_CK name second.
	r, ok := Default().Lookup("RC4-MD5")
	if !ok {
		t.Fatal("RC4-MD5 not in catalog")
	}
	if len(r.StandardNames) != 2 {
		t.Fatalf("RC4-MD5 has %d standard names, want 2", len(r.StandardNames))
	}
	if r.StandardNames[0] != "TLS_RSA_WITH_RC4_128_MD5" {
		t.Errorf("canonical name = %q", r.StandardNames[0])
	}
	if r.StandardNames[1] != "SSL_CK_RC4_128_WITH_MD5" {
		t.Errorf("SSLv2 name = %q", r.StandardNames[1])
	}
	if !r.Protocols.Contains(model.SSLv2) || !r.Protocols.Contains(model.SSLv3) {
		t.Error("merged record should span SSLv2 and SSLv3")
	}
}

func TestNewRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []*model.CipherRecord
	}{
		{
			"empty alias",
			[]*model.CipherRecord{{Alias: ""}},
		},
		{
			"duplicate alias",
			[]*model.CipherRecord{{Alias: "RC4-SHA"}, {Alias: "RC4-SHA"}},
		},
		{
			"malformed standard name",
			[]*model.CipherRecord{{Alias: "X", StandardNames: []string{"NOT_A_NAME"}}},
		},
		{
			"standard name with bad characters",
			[]*model.CipherRecord{{Alias: "X", StandardNames: []string{"TLS_RSA WITH_RC4"}}},
		},
	}
	for _, tt := range tests {
		if _, err := New(tt.records); err == nil {
			t.Errorf("%s: New should fail", tt.name)
		}
	}
}

func TestNewAcceptsValidRecords(t *testing.T) {
	c, err := New([]*model.CipherRecord{
		{Alias: "A", StandardNames: []string{"TLS_A_WITH_B"}},
		{Alias: "B"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestGOSTSuitesHaveNoStandardNames(t *testing.T) {
	for _, alias := range []string{
		"GOST94-GOST89-GOST89",
		"GOST2001-GOST89-GOST89",
		"GOST94-NULL-GOST94",
		"GOST2001-NULL-GOST94",
	} {
		r, ok := Default().Lookup(alias)
		if !ok {
			t.Errorf("%s not in catalog", alias)
			continue
		}
		if len(r.StandardNames) != 0 {
			t.Errorf("%s has standard names %v, want none", alias, r.StandardNames)
		}
	}
}
