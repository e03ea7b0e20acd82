package registry

import "testing"

func TestRegistered(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"TLS_RSA_WITH_AES_128_CBC_SHA", true},
		{"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384", true},
		{"TLS_DH_anon_WITH_SEED_CBC_SHA", true},
		{"TLS_SRP_SHA_DSS_WITH_AES_256_CBC_SHA", true},
		{"TLS_DHE_DSS_WITH_RC4_128_SHA", false},
		{"SSL_CK_RC4_128_WITH_MD5", false},
		{"SSL_FORTEZZA_DMS_WITH_NULL_SHA", false},
		{"TLS_MADE_UP_SUITE", false},
	}
	for _, tt := range tests {
		if got := Registered(tt.name); got != tt.want {
			t.Errorf("Registered(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLegacyException(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"SSL_FORTEZZA_DMS_WITH_FORTEZZA_CBC_SHA", true},
		{"SSL_RSA_EXPORT1024_WITH_RC4_56_SHA", true},
		{"SSL_DHE_DSS_EXPORT1024_WITH_DES_CBC_SHA", true},
		{"TLS_DHE_DSS_WITH_RC4_128_SHA", true},
		{"SSL_CK_DES_64_CBC_WITH_MD5", true},
		{"TLS_RSA_WITH_AES_128_CBC_SHA", false},
		{"TLS_MADE_UP_SUITE", false},
	}
	for _, tt := range tests {
		if got := LegacyException(tt.name); got != tt.want {
			t.Errorf("LegacyException(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConformant(t *testing.T) {
	for _, name := range []string{
		"TLS_RSA_WITH_AES_128_CBC_SHA",
		"SSL_CK_RC4_128_WITH_MD5",
		"SSL_FORTEZZA_DMS_WITH_RC4_128_SHA",
	} {
		if !Conformant(name) {
			t.Errorf("Conformant(%q) = false, want true", name)
		}
	}
	if Conformant("TLS_MADE_UP_SUITE") {
		t.Error("Conformant should reject unknown names")
	}
}

func TestNoDuplicateRegisteredNames(t *testing.T) {
	seen := make(map[string]bool, len(registeredNames))
	for _, name := range registeredNames {
		if seen[name] {
			t.Errorf("duplicate registry entry %q", name)
		}
		seen[name] = true
	}
}
