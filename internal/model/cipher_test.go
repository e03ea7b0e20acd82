package model

import "testing"

func TestProtocolString(t *testing.T) {
	tests := []struct {
		proto Protocol
		want  string
	}{
		{SSLv2, "SSLv2"},
		{SSLv3, "SSLv3"},
		{TLSv1, "TLSv1"},
		{TLSv11, "TLSv1.1"},
		{TLSv12, "TLSv1.2"},
		{Protocol(99), "Unknown(99)"},
	}
	for _, tt := range tests {
		if got := tt.proto.String(); got != tt.want {
			t.Errorf("Protocol(%d).String() = %q, want %q", tt.proto, got, tt.want)
		}
	}
}

func TestProtocolSet(t *testing.T) {
	s := Protocols(TLSv1, TLSv11, TLSv12)

	if s.Contains(SSLv3) {
		t.Error("set should not contain SSLv3")
	}
	for _, p := range []Protocol{TLSv1, TLSv11, TLSv12} {
		if !s.Contains(p) {
			t.Errorf("set should contain %s", p)
		}
	}
	if got, want := s.String(), "TLSv1,TLSv1.1,TLSv1.2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestProtocolSetEmpty(t *testing.T) {
	var s ProtocolSet
	if s.Contains(SSLv2) {
		t.Error("empty set should contain nothing")
	}
	if s.String() != "" {
		t.Errorf("empty set String() = %q, want empty", s.String())
	}
}

func TestCipherRecordName(t *testing.T) {
	withNames := &CipherRecord{
		Alias:         "RC4-MD5",
		StandardNames: []string{"TLS_RSA_WITH_RC4_128_MD5", "SSL_CK_RC4_128_WITH_MD5"},
	}
	if got := withNames.Name(); got != "TLS_RSA_WITH_RC4_128_MD5" {
		t.Errorf("Name() = %q, want canonical standard name", got)
	}

	noNames := &CipherRecord{Alias: "GOST94-GOST89-GOST89"}
	if got := noNames.Name(); got != "GOST94-GOST89-GOST89" {
		t.Errorf("Name() = %q, want alias fallback", got)
	}
}

func TestCipherRecordString(t *testing.T) {
	r := &CipherRecord{
		Alias: "AES128-GCM-SHA256",
		Kx:    KxRSA,
		Au:    AuRSA,
		Enc:   EncAES128GCM,
		Mac:   DigestAEAD,
	}
	want := "AES128-GCM-SHA256 Kx=RSA Au=RSA Enc=AESGCM(128) Mac=AEAD"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStrengthOrdering(t *testing.T) {
	// The strength sort relies on the numeric ordering of the classes.
	order := []Strength{StrengthNone, StrengthExport40, StrengthExport56, StrengthLow, StrengthMedium, StrengthHigh}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%s should be weaker than %s", order[i-1], order[i])
		}
	}
}
