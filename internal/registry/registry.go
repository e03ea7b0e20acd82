// Package registry carries a snapshot of the IANA TLS cipher-suite name
// registry, used to check that catalog standard names are real registered
// names or documented legacy exceptions.
package registry

import "strings"

// Registered reports whether name appears in the registry snapshot.
func Registered(name string) bool {
	return registered[name]
}

// LegacyException reports whether name is a documented non-registry name:
// FORTEZZA and 56-bit export suites never made it into the registry, the
// DHE-DSS RC4 suite was an experimental extension, and SSL_CK names are
// SSLv2-era identifiers that predate the registry entirely.
func LegacyException(name string) bool {
	if strings.Contains(name, "FORTEZZA") {
		return true
	}
	if strings.Contains(name, "EXPORT1024") {
		return true
	}
	if name == "TLS_DHE_DSS_WITH_RC4_128_SHA" {
		return true
	}
	return strings.HasPrefix(name, "SSL_CK")
}

// Conformant reports whether name is acceptable as a catalog standard
// name: registered, or a documented legacy exception.
func Conformant(name string) bool {
	return Registered(name) || LegacyException(name)
}

var registered = make(map[string]bool, len(registeredNames))

func init() {
	for _, name := range registeredNames {
		registered[name] = true
	}
}

// registeredNames is the TLS Cipher Suite Registry snapshot from
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml
var registeredNames = []string{
	"TLS_NULL_WITH_NULL_NULL",
	"TLS_RSA_WITH_NULL_MD5",
	"TLS_RSA_WITH_NULL_SHA",
	"TLS_RSA_EXPORT_WITH_RC4_40_MD5",
	"TLS_RSA_WITH_RC4_128_MD5",
	"TLS_RSA_WITH_RC4_128_SHA",
	"TLS_RSA_EXPORT_WITH_RC2_CBC_40_MD5",
	"TLS_RSA_WITH_IDEA_CBC_SHA",
	"TLS_RSA_EXPORT_WITH_DES40_CBC_SHA",
	"TLS_RSA_WITH_DES_CBC_SHA",
	"TLS_RSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_DH_DSS_EXPORT_WITH_DES40_CBC_SHA",
	"TLS_DH_DSS_WITH_DES_CBC_SHA",
	"TLS_DH_DSS_WITH_3DES_EDE_CBC_SHA",
	"TLS_DH_RSA_EXPORT_WITH_DES40_CBC_SHA",
	"TLS_DH_RSA_WITH_DES_CBC_SHA",
	"TLS_DH_RSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_DHE_DSS_EXPORT_WITH_DES40_CBC_SHA",
	"TLS_DHE_DSS_WITH_DES_CBC_SHA",
	"TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA",
	"TLS_DHE_RSA_EXPORT_WITH_DES40_CBC_SHA",
	"TLS_DHE_RSA_WITH_DES_CBC_SHA",
	"TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_DH_anon_EXPORT_WITH_RC4_40_MD5",
	"TLS_DH_anon_WITH_RC4_128_MD5",
	"TLS_DH_anon_EXPORT_WITH_DES40_CBC_SHA",
	"TLS_DH_anon_WITH_DES_CBC_SHA",
	"TLS_DH_anon_WITH_3DES_EDE_CBC_SHA",
	"TLS_KRB5_WITH_DES_CBC_SHA",
	"TLS_KRB5_WITH_3DES_EDE_CBC_SHA",
	"TLS_KRB5_WITH_RC4_128_SHA",
	"TLS_KRB5_WITH_IDEA_CBC_SHA",
	"TLS_KRB5_WITH_DES_CBC_MD5",
	"TLS_KRB5_WITH_3DES_EDE_CBC_MD5",
	"TLS_KRB5_WITH_RC4_128_MD5",
	"TLS_KRB5_WITH_IDEA_CBC_MD5",
	"TLS_KRB5_EXPORT_WITH_DES_CBC_40_SHA",
	"TLS_KRB5_EXPORT_WITH_RC2_CBC_40_SHA",
	"TLS_KRB5_EXPORT_WITH_RC4_40_SHA",
	"TLS_KRB5_EXPORT_WITH_DES_CBC_40_MD5",
	"TLS_KRB5_EXPORT_WITH_RC2_CBC_40_MD5",
	"TLS_KRB5_EXPORT_WITH_RC4_40_MD5",
	"TLS_PSK_WITH_NULL_SHA",
	"TLS_DHE_PSK_WITH_NULL_SHA",
	"TLS_RSA_PSK_WITH_NULL_SHA",
	"TLS_RSA_WITH_AES_128_CBC_SHA",
	"TLS_DH_DSS_WITH_AES_128_CBC_SHA",
	"TLS_DH_RSA_WITH_AES_128_CBC_SHA",
	"TLS_DHE_DSS_WITH_AES_128_CBC_SHA",
	"TLS_DHE_RSA_WITH_AES_128_CBC_SHA",
	"TLS_DH_anon_WITH_AES_128_CBC_SHA",
	"TLS_RSA_WITH_AES_256_CBC_SHA",
	"TLS_DH_DSS_WITH_AES_256_CBC_SHA",
	"TLS_DH_RSA_WITH_AES_256_CBC_SHA",
	"TLS_DHE_DSS_WITH_AES_256_CBC_SHA",
	"TLS_DHE_RSA_WITH_AES_256_CBC_SHA",
	"TLS_DH_anon_WITH_AES_256_CBC_SHA",
	"TLS_RSA_WITH_NULL_SHA256",
	"TLS_RSA_WITH_AES_128_CBC_SHA256",
	"TLS_RSA_WITH_AES_256_CBC_SHA256",
	"TLS_DH_DSS_WITH_AES_128_CBC_SHA256",
	"TLS_DH_RSA_WITH_AES_128_CBC_SHA256",
	"TLS_DHE_DSS_WITH_AES_128_CBC_SHA256",
	"TLS_RSA_WITH_CAMELLIA_128_CBC_SHA",
	"TLS_DH_DSS_WITH_CAMELLIA_128_CBC_SHA",
	"TLS_DH_RSA_WITH_CAMELLIA_128_CBC_SHA",
	"TLS_DHE_DSS_WITH_CAMELLIA_128_CBC_SHA",
	"TLS_DHE_RSA_WITH_CAMELLIA_128_CBC_SHA",
	"TLS_DH_anon_WITH_CAMELLIA_128_CBC_SHA",
	"TLS_DHE_RSA_WITH_AES_128_CBC_SHA256",
	"TLS_DH_DSS_WITH_AES_256_CBC_SHA256",
	"TLS_DH_RSA_WITH_AES_256_CBC_SHA256",
	"TLS_DHE_DSS_WITH_AES_256_CBC_SHA256",
	"TLS_DHE_RSA_WITH_AES_256_CBC_SHA256",
	"TLS_DH_anon_WITH_AES_128_CBC_SHA256",
	"TLS_DH_anon_WITH_AES_256_CBC_SHA256",
	"TLS_RSA_WITH_CAMELLIA_256_CBC_SHA",
	"TLS_DH_DSS_WITH_CAMELLIA_256_CBC_SHA",
	"TLS_DH_RSA_WITH_CAMELLIA_256_CBC_SHA",
	"TLS_DHE_DSS_WITH_CAMELLIA_256_CBC_SHA",
	"TLS_DHE_RSA_WITH_CAMELLIA_256_CBC_SHA",
	"TLS_DH_anon_WITH_CAMELLIA_256_CBC_SHA",
	"TLS_PSK_WITH_RC4_128_SHA",
	"TLS_PSK_WITH_3DES_EDE_CBC_SHA",
	"TLS_PSK_WITH_AES_128_CBC_SHA",
	"TLS_PSK_WITH_AES_256_CBC_SHA",
	"TLS_DHE_PSK_WITH_RC4_128_SHA",
	"TLS_DHE_PSK_WITH_3DES_EDE_CBC_SHA",
	"TLS_DHE_PSK_WITH_AES_128_CBC_SHA",
	"TLS_DHE_PSK_WITH_AES_256_CBC_SHA",
	"TLS_RSA_PSK_WITH_RC4_128_SHA",
	"TLS_RSA_PSK_WITH_3DES_EDE_CBC_SHA",
	"TLS_RSA_PSK_WITH_AES_128_CBC_SHA",
	"TLS_RSA_PSK_WITH_AES_256_CBC_SHA",
	"TLS_RSA_WITH_SEED_CBC_SHA",
	"TLS_DH_DSS_WITH_SEED_CBC_SHA",
	"TLS_DH_RSA_WITH_SEED_CBC_SHA",
	"TLS_DHE_DSS_WITH_SEED_CBC_SHA",
	"TLS_DHE_RSA_WITH_SEED_CBC_SHA",
	"TLS_DH_anon_WITH_SEED_CBC_SHA",
	"TLS_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_DHE_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_DHE_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_DH_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_DH_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_DHE_DSS_WITH_AES_128_GCM_SHA256",
	"TLS_DHE_DSS_WITH_AES_256_GCM_SHA384",
	"TLS_DH_DSS_WITH_AES_128_GCM_SHA256",
	"TLS_DH_DSS_WITH_AES_256_GCM_SHA384",
	"TLS_DH_anon_WITH_AES_128_GCM_SHA256",
	"TLS_DH_anon_WITH_AES_256_GCM_SHA384",
	"TLS_PSK_WITH_AES_128_GCM_SHA256",
	"TLS_PSK_WITH_AES_256_GCM_SHA384",
	"TLS_DHE_PSK_WITH_AES_128_GCM_SHA256",
	"TLS_DHE_PSK_WITH_AES_256_GCM_SHA384",
	"TLS_RSA_PSK_WITH_AES_128_GCM_SHA256",
	"TLS_RSA_PSK_WITH_AES_256_GCM_SHA384",
	"TLS_PSK_WITH_AES_128_CBC_SHA256",
	"TLS_PSK_WITH_AES_256_CBC_SHA384",
	"TLS_PSK_WITH_NULL_SHA256",
	"TLS_PSK_WITH_NULL_SHA384",
	"TLS_DHE_PSK_WITH_AES_128_CBC_SHA256",
	"TLS_DHE_PSK_WITH_AES_256_CBC_SHA384",
	"TLS_DHE_PSK_WITH_NULL_SHA256",
	"TLS_DHE_PSK_WITH_NULL_SHA384",
	"TLS_RSA_PSK_WITH_AES_128_CBC_SHA256",
	"TLS_RSA_PSK_WITH_AES_256_CBC_SHA384",
	"TLS_RSA_PSK_WITH_NULL_SHA256",
	"TLS_RSA_PSK_WITH_NULL_SHA384",
	"TLS_RSA_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_DH_DSS_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_DH_RSA_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_DHE_DSS_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_DHE_RSA_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_DH_anon_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_RSA_WITH_CAMELLIA_256_CBC_SHA256",
	"TLS_DH_DSS_WITH_CAMELLIA_256_CBC_SHA256",
	"TLS_DH_RSA_WITH_CAMELLIA_256_CBC_SHA256",
	"TLS_DHE_DSS_WITH_CAMELLIA_256_CBC_SHA256",
	"TLS_DHE_RSA_WITH_CAMELLIA_256_CBC_SHA256",
	"TLS_DH_anon_WITH_CAMELLIA_256_CBC_SHA256",
	"TLS_EMPTY_RENEGOTIATION_INFO_SCSV",
	"TLS_ECDH_ECDSA_WITH_NULL_SHA",
	"TLS_ECDH_ECDSA_WITH_RC4_128_SHA",
	"TLS_ECDH_ECDSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA",
	"TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA",
	"TLS_ECDHE_ECDSA_WITH_NULL_SHA",
	"TLS_ECDHE_ECDSA_WITH_RC4_128_SHA",
	"TLS_ECDHE_ECDSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA",
	"TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA",
	"TLS_ECDH_RSA_WITH_NULL_SHA",
	"TLS_ECDH_RSA_WITH_RC4_128_SHA",
	"TLS_ECDH_RSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_ECDH_RSA_WITH_AES_128_CBC_SHA",
	"TLS_ECDH_RSA_WITH_AES_256_CBC_SHA",
	"TLS_ECDHE_RSA_WITH_NULL_SHA",
	"TLS_ECDHE_RSA_WITH_RC4_128_SHA",
	"TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA",
	"TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA",
	"TLS_ECDH_anon_WITH_NULL_SHA",
	"TLS_ECDH_anon_WITH_RC4_128_SHA",
	"TLS_ECDH_anon_WITH_3DES_EDE_CBC_SHA",
	"TLS_ECDH_anon_WITH_AES_128_CBC_SHA",
	"TLS_ECDH_anon_WITH_AES_256_CBC_SHA",
	"TLS_SRP_SHA_WITH_3DES_EDE_CBC_SHA",
	"TLS_SRP_SHA_RSA_WITH_3DES_EDE_CBC_SHA",
	"TLS_SRP_SHA_DSS_WITH_3DES_EDE_CBC_SHA",
	"TLS_SRP_SHA_WITH_AES_128_CBC_SHA",
	"TLS_SRP_SHA_RSA_WITH_AES_128_CBC_SHA",
	"TLS_SRP_SHA_DSS_WITH_AES_128_CBC_SHA",
	"TLS_SRP_SHA_WITH_AES_256_CBC_SHA",
	"TLS_SRP_SHA_RSA_WITH_AES_256_CBC_SHA",
	"TLS_SRP_SHA_DSS_WITH_AES_256_CBC_SHA",
	"TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384",
	"TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA256",
	"TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA384",
	"TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA256",
	"TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA384",
	"TLS_ECDH_RSA_WITH_AES_128_CBC_SHA256",
	"TLS_ECDH_RSA_WITH_AES_256_CBC_SHA384",
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDH_ECDSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDH_ECDSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDH_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDH_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDHE_PSK_WITH_RC4_128_SHA",
	"TLS_ECDHE_PSK_WITH_3DES_EDE_CBC_SHA",
	"TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA",
	"TLS_ECDHE_PSK_WITH_AES_256_CBC_SHA",
	"TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA256",
	"TLS_ECDHE_PSK_WITH_AES_256_CBC_SHA384",
	"TLS_ECDHE_PSK_WITH_NULL_SHA",
	"TLS_ECDHE_PSK_WITH_NULL_SHA256",
	"TLS_ECDHE_PSK_WITH_NULL_SHA384",
	"TLS_RSA_WITH_ARIA_128_CBC_SHA256",
	"TLS_RSA_WITH_ARIA_256_CBC_SHA384",
	"TLS_DH_DSS_WITH_ARIA_128_CBC_SHA256",
	"TLS_DH_DSS_WITH_ARIA_256_CBC_SHA384",
	"TLS_DH_RSA_WITH_ARIA_128_CBC_SHA256",
	"TLS_DH_RSA_WITH_ARIA_256_CBC_SHA384",
	"TLS_DHE_DSS_WITH_ARIA_128_CBC_SHA256",
	"TLS_DHE_DSS_WITH_ARIA_256_CBC_SHA384",
	"TLS_DHE_RSA_WITH_ARIA_128_CBC_SHA256",
	"TLS_DHE_RSA_WITH_ARIA_256_CBC_SHA384",
	"TLS_DH_anon_WITH_ARIA_128_CBC_SHA256",
	"TLS_DH_anon_WITH_ARIA_256_CBC_SHA384",
	"TLS_ECDHE_ECDSA_WITH_ARIA_128_CBC_SHA256",
	"TLS_ECDHE_ECDSA_WITH_ARIA_256_CBC_SHA384",
	"TLS_ECDH_ECDSA_WITH_ARIA_128_CBC_SHA256",
	"TLS_ECDH_ECDSA_WITH_ARIA_256_CBC_SHA384",
	"TLS_ECDHE_RSA_WITH_ARIA_128_CBC_SHA256",
	"TLS_ECDHE_RSA_WITH_ARIA_256_CBC_SHA384",
	"TLS_ECDH_RSA_WITH_ARIA_128_CBC_SHA256",
	"TLS_ECDH_RSA_WITH_ARIA_256_CBC_SHA384",
	"TLS_RSA_WITH_ARIA_128_GCM_SHA256",
	"TLS_RSA_WITH_ARIA_256_GCM_SHA384",
	"TLS_DHE_RSA_WITH_ARIA_128_GCM_SHA256",
	"TLS_DHE_RSA_WITH_ARIA_256_GCM_SHA384",
	"TLS_DH_RSA_WITH_ARIA_128_GCM_SHA256",
	"TLS_DH_RSA_WITH_ARIA_256_GCM_SHA384",
	"TLS_DHE_DSS_WITH_ARIA_128_GCM_SHA256",
	"TLS_DHE_DSS_WITH_ARIA_256_GCM_SHA384",
	"TLS_DH_DSS_WITH_ARIA_128_GCM_SHA256",
	"TLS_DH_DSS_WITH_ARIA_256_GCM_SHA384",
	"TLS_DH_anon_WITH_ARIA_128_GCM_SHA256",
	"TLS_DH_anon_WITH_ARIA_256_GCM_SHA384",
	"TLS_ECDHE_ECDSA_WITH_ARIA_128_GCM_SHA256",
	"TLS_ECDHE_ECDSA_WITH_ARIA_256_GCM_SHA384",
	"TLS_ECDH_ECDSA_WITH_ARIA_128_GCM_SHA256",
	"TLS_ECDH_ECDSA_WITH_ARIA_256_GCM_SHA384",
	"TLS_ECDHE_RSA_WITH_ARIA_128_GCM_SHA256",
	"TLS_ECDHE_RSA_WITH_ARIA_256_GCM_SHA384",
	"TLS_ECDH_RSA_WITH_ARIA_128_GCM_SHA256",
	"TLS_ECDH_RSA_WITH_ARIA_256_GCM_SHA384",
	"TLS_PSK_WITH_ARIA_128_CBC_SHA256",
	"TLS_PSK_WITH_ARIA_256_CBC_SHA384",
	"TLS_DHE_PSK_WITH_ARIA_128_CBC_SHA256",
	"TLS_DHE_PSK_WITH_ARIA_256_CBC_SHA384",
	"TLS_RSA_PSK_WITH_ARIA_128_CBC_SHA256",
	"TLS_RSA_PSK_WITH_ARIA_256_CBC_SHA384",
	"TLS_PSK_WITH_ARIA_128_GCM_SHA256",
	"TLS_PSK_WITH_ARIA_256_GCM_SHA384",
	"TLS_DHE_PSK_WITH_ARIA_128_GCM_SHA256",
	"TLS_DHE_PSK_WITH_ARIA_256_GCM_SHA384",
	"TLS_RSA_PSK_WITH_ARIA_128_GCM_SHA256",
	"TLS_RSA_PSK_WITH_ARIA_256_GCM_SHA384",
	"TLS_ECDHE_PSK_WITH_ARIA_128_CBC_SHA256",
	"TLS_ECDHE_PSK_WITH_ARIA_256_CBC_SHA384",
	"TLS_ECDHE_ECDSA_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_ECDHE_ECDSA_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_ECDH_ECDSA_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_ECDH_ECDSA_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_ECDHE_RSA_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_ECDHE_RSA_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_ECDH_RSA_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_ECDH_RSA_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_RSA_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_RSA_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_DHE_RSA_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_DHE_RSA_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_DH_RSA_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_DH_RSA_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_DHE_DSS_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_DHE_DSS_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_DH_DSS_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_DH_DSS_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_DH_anon_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_DH_anon_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_ECDHE_ECDSA_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_ECDHE_ECDSA_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_ECDH_ECDSA_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_ECDH_ECDSA_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_ECDHE_RSA_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_ECDHE_RSA_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_ECDH_RSA_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_ECDH_RSA_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_PSK_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_PSK_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_DHE_PSK_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_DHE_PSK_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_RSA_PSK_WITH_CAMELLIA_128_GCM_SHA256",
	"TLS_RSA_PSK_WITH_CAMELLIA_256_GCM_SHA384",
	"TLS_PSK_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_PSK_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_DHE_PSK_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_DHE_PSK_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_RSA_PSK_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_RSA_PSK_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_ECDHE_PSK_WITH_CAMELLIA_128_CBC_SHA256",
	"TLS_ECDHE_PSK_WITH_CAMELLIA_256_CBC_SHA384",
	"TLS_RSA_WITH_AES_128_CCM",
	"TLS_RSA_WITH_AES_256_CCM",
	"TLS_DHE_RSA_WITH_AES_128_CCM",
	"TLS_DHE_RSA_WITH_AES_256_CCM",
	"TLS_RSA_WITH_AES_128_CCM_8",
	"TLS_RSA_WITH_AES_256_CCM_8",
	"TLS_DHE_RSA_WITH_AES_128_CCM_8",
	"TLS_DHE_RSA_WITH_AES_256_CCM_8",
	"TLS_PSK_WITH_AES_128_CCM",
	"TLS_PSK_WITH_AES_256_CCM",
	"TLS_DHE_PSK_WITH_AES_128_CCM",
	"TLS_DHE_PSK_WITH_AES_256_CCM",
	"TLS_PSK_WITH_AES_128_CCM_8",
	"TLS_PSK_WITH_AES_256_CCM_8",
	"TLS_PSK_DHE_WITH_AES_128_CCM_8",
	"TLS_PSK_DHE_WITH_AES_256_CCM_8",
	"TLS_ECDHE_ECDSA_WITH_AES_128_CCM",
	"TLS_ECDHE_ECDSA_WITH_AES_256_CCM",
	"TLS_ECDHE_ECDSA_WITH_AES_128_CCM_8",
	"TLS_ECDHE_ECDSA_WITH_AES_256_CCM_8",
}
