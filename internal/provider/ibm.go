package provider

import "sync"

var ibmOnce = sync.OnceValue(func() *Profile {
	return NewProfile("IBM", ibmStandardNames, ibmUnsupportedAliases)
})

// IBM returns the profile for the IBM JSSE provider.
func IBM() *Profile {
	return ibmOnce()
}

// ibmStandardNames is the cipher-suite inventory from the IBM JSSE2
// documentation. IBM publishes every suite under both an SSL_ and a TLS_
// name; only the SSL_ spelling is listed here since profile construction
// registers the twin automatically.
var ibmStandardNames = []string{
	"SSL_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384",
	"SSL_ECDHE_RSA_WITH_AES_256_CBC_SHA384",
	"SSL_RSA_WITH_AES_256_CBC_SHA256",
	"SSL_ECDH_ECDSA_WITH_AES_256_CBC_SHA384",
	"SSL_ECDH_RSA_WITH_AES_256_CBC_SHA384",
	"SSL_DHE_RSA_WITH_AES_256_CBC_SHA256",
	"SSL_DHE_DSS_WITH_AES_256_CBC_SHA256",
	"SSL_ECDHE_ECDSA_WITH_AES_256_CBC_SHA",
	"SSL_ECDHE_RSA_WITH_AES_256_CBC_SHA",
	"SSL_RSA_WITH_AES_256_CBC_SHA",
	"SSL_ECDH_ECDSA_WITH_AES_256_CBC_SHA",
	"SSL_ECDH_RSA_WITH_AES_256_CBC_SHA",
	"SSL_DHE_RSA_WITH_AES_256_CBC_SHA",
	"SSL_DHE_DSS_WITH_AES_256_CBC_SHA",
	"SSL_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256",
	"SSL_ECDHE_RSA_WITH_AES_128_CBC_SHA256",
	"SSL_RSA_WITH_AES_128_CBC_SHA256",
	"SSL_ECDH_ECDSA_WITH_AES_128_CBC_SHA256",
	"SSL_ECDH_RSA_WITH_AES_128_CBC_SHA256",
	"SSL_DHE_RSA_WITH_AES_128_CBC_SHA256",
	"SSL_DHE_DSS_WITH_AES_128_CBC_SHA256",
	"SSL_ECDHE_ECDSA_WITH_AES_128_CBC_SHA",
	"SSL_ECDHE_RSA_WITH_AES_128_CBC_SHA",
	"SSL_RSA_WITH_AES_128_CBC_SHA",
	"SSL_ECDH_ECDSA_WITH_AES_128_CBC_SHA",
	"SSL_ECDH_RSA_WITH_AES_128_CBC_SHA",
	"SSL_DHE_RSA_WITH_AES_128_CBC_SHA",
	"SSL_DHE_DSS_WITH_AES_128_CBC_SHA",
	"SSL_ECDHE_ECDSA_WITH_RC4_128_SHA",
	"SSL_ECDHE_RSA_WITH_RC4_128_SHA",
	"SSL_RSA_WITH_RC4_128_SHA",
	"SSL_ECDH_ECDSA_WITH_RC4_128_SHA",
	"SSL_ECDH_RSA_WITH_RC4_128_SHA",
	"SSL_ECDHE_ECDSA_WITH_3DES_EDE_CBC_SHA",
	"SSL_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA",
	"SSL_RSA_WITH_3DES_EDE_CBC_SHA",
	"SSL_ECDH_ECDSA_WITH_3DES_EDE_CBC_SHA",
	"SSL_ECDH_RSA_WITH_3DES_EDE_CBC_SHA",
	"SSL_DHE_RSA_WITH_3DES_EDE_CBC_SHA",
	"SSL_DHE_DSS_WITH_3DES_EDE_CBC_SHA",
	"SSL_RSA_WITH_RC4_128_MD5",
	"TLS_EMPTY_RENEGOTIATION_INFO_SCSV",
	"SSL_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
	"SSL_ECDHE_RSA_WITH_AES_256_GCM_SHA384",
	"SSL_RSA_WITH_AES_256_GCM_SHA384",
	"SSL_ECDH_ECDSA_WITH_AES_256_GCM_SHA384",
	"SSL_ECDH_RSA_WITH_AES_256_GCM_SHA384",
	"SSL_DHE_DSS_WITH_AES_256_GCM_SHA384",
	"SSL_DHE_RSA_WITH_AES_256_GCM_SHA384",
	"SSL_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
	"SSL_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	"SSL_RSA_WITH_AES_128_GCM_SHA256",
	"SSL_ECDH_ECDSA_WITH_AES_128_GCM_SHA256",
	"SSL_ECDH_RSA_WITH_AES_128_GCM_SHA256",
	"SSL_DHE_RSA_WITH_AES_128_GCM_SHA256",
	"SSL_DHE_DSS_WITH_AES_128_GCM_SHA256",
	"SSL_DH_anon_WITH_AES_256_CBC_SHA256",
	"SSL_ECDH_anon_WITH_AES_256_CBC_SHA",
	"SSL_DH_anon_WITH_AES_256_CBC_SHA",
	"SSL_DH_anon_WITH_AES_256_GCM_SHA384",
	"SSL_DH_anon_WITH_AES_128_GCM_SHA256",
	"SSL_DH_anon_WITH_AES_128_CBC_SHA256",
	"SSL_ECDH_anon_WITH_AES_128_CBC_SHA",
	"SSL_DH_anon_WITH_AES_128_CBC_SHA",
	"SSL_ECDH_anon_WITH_RC4_128_SHA",
	"SSL_DH_anon_WITH_RC4_128_MD5",
	"SSL_ECDH_anon_WITH_3DES_EDE_CBC_SHA",
	"SSL_DH_anon_WITH_3DES_EDE_CBC_SHA",
	"SSL_RSA_WITH_NULL_SHA256",
	"SSL_ECDHE_ECDSA_WITH_NULL_SHA",
	"SSL_ECDHE_RSA_WITH_NULL_SHA",
	"SSL_RSA_WITH_NULL_SHA",
	"SSL_ECDH_ECDSA_WITH_NULL_SHA",
	"SSL_ECDH_RSA_WITH_NULL_SHA",
	"SSL_ECDH_anon_WITH_NULL_SHA",
	"SSL_RSA_WITH_NULL_MD5",
	"SSL_RSA_WITH_DES_CBC_SHA",
	"SSL_DHE_RSA_WITH_DES_CBC_SHA",
	"SSL_DHE_DSS_WITH_DES_CBC_SHA",
	"SSL_DH_anon_WITH_DES_CBC_SHA",
	"SSL_RSA_FIPS_WITH_3DES_EDE_CBC_SHA",
	"SSL_RSA_FIPS_WITH_DES_EDE_CBC_SHA",
	"SSL_DHE_DSS_WITH_RC4_128_SHA",
	"SSL_RSA_EXPORT_WITH_RC4_40_MD5",
	"SSL_DH_anon_EXPORT_WITH_RC4_40_MD5",
	"SSL_RSA_EXPORT_WITH_DES40_CBC_SHA",
	"SSL_DHE_RSA_EXPORT_WITH_DES40_CBC_SHA",
	"SSL_DHE_DSS_EXPORT_WITH_DES40_CBC_SHA",
	"SSL_DH_anon_EXPORT_WITH_DES40_CBC_SHA",
	"SSL_KRB5_WITH_RC4_128_SHA",
	"SSL_KRB5_WITH_RC4_128_MD5",
	"SSL_KRB5_WITH_3DES_EDE_CBC_SHA",
	"SSL_KRB5_WITH_3DES_EDE_CBC_MD5",
	"SSL_KRB5_WITH_DES_CBC_SHA",
	"SSL_KRB5_WITH_DES_CBC_MD5",
	"SSL_KRB5_EXPORT_WITH_RC4_40_SHA",
	"SSL_KRB5_EXPORT_WITH_RC4_40_MD5",
	"SSL_KRB5_EXPORT_WITH_DES_CBC_40_SHA",
	"SSL_KRB5_EXPORT_WITH_DES_CBC_40_MD5",
	"SSL_RSA_EXPORT_WITH_RC2_CBC_40_MD5",
}

// ibmUnsupportedAliases are the OpenSSL suites IBM's provider does not
// implement.
var ibmUnsupportedAliases = []string{
	"ADH-CAMELLIA128-SHA",
	"ADH-CAMELLIA256-SHA",
	"ADH-SEED-SHA",
	"CAMELLIA128-SHA",
	"CAMELLIA256-SHA",
	"DES-CBC-MD5",
	"DES-CBC3-MD5",
	"DHE-DSS-CAMELLIA128-SHA",
	"DHE-DSS-CAMELLIA256-SHA",
	"DHE-DSS-SEED-SHA",
	"DHE-RSA-CAMELLIA128-SHA",
	"DHE-RSA-CAMELLIA256-SHA",
	"DHE-RSA-SEED-SHA",
	"IDEA-CBC-MD5",
	"IDEA-CBC-SHA",
	"PSK-3DES-EDE-CBC-SHA",
	"PSK-AES128-CBC-SHA",
	"PSK-AES256-CBC-SHA",
	"PSK-RC4-SHA",
	"RC2-CBC-MD5",
	"SEED-SHA",
	"SRP-AES-128-CBC-SHA",
	"SRP-AES-256-CBC-SHA",
	"SRP-3DES-EDE-CBC-SHA",
	"SRP-DSS-3DES-EDE-CBC-SHA",
	"SRP-DSS-AES-128-CBC-SHA",
	"SRP-DSS-AES-256-CBC-SHA",
	"SRP-RSA-3DES-EDE-CBC-SHA",
	"SRP-RSA-AES-128-CBC-SHA",
	"SRP-RSA-AES-256-CBC-SHA",
}
