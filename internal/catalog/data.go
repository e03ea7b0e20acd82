package catalog

import "github.com/cipherlist/cipherlist/internal/model"

// Shared protocol sets. A suite's set covers every version it can be
// negotiated under; the lowest member is the version it was defined for.
var (
	protoSSLv2 = model.Protocols(model.SSLv2)
	protoSSLv3 = model.Protocols(model.SSLv3, model.TLSv1, model.TLSv11, model.TLSv12)
	protoTLSv1 = model.Protocols(model.TLSv1, model.TLSv11, model.TLSv12)
	protoTLS12 = model.Protocols(model.TLSv12)

	// SSLv2-era suites whose alias survived into the SSLv3 tables carry
	// both protocol families under one record.
	protoSSLv2v3 = protoSSLv2 | protoSSLv3
)

func suite(alias string, kx model.KeyExchange, au model.Authentication,
	enc model.Encryption, mac model.Digest, protocols model.ProtocolSet,
	export bool, strength model.Strength, standardNames ...string) *model.CipherRecord {
	return &model.CipherRecord{
		Alias:         alias,
		Kx:            kx,
		Au:            au,
		Enc:           enc,
		Mac:           mac,
		Protocols:     protocols,
		Export:        export,
		Strength:      strength,
		StandardNames: standardNames,
	}
}

// records is the full suite table in declaration order: SSLv2, SSLv3,
// TLSv1 (AES, Camellia, SEED, export-1024), TLSv1.2, elliptic-curve
// families, PSK, SRP, GOST. Where a suite is known by both an SSLv2 and
// an SSLv3/TLS standard name, the canonical registry name comes first.
var records = []*model.CipherRecord{
	// SSLv2-only suites. These have no TLS registry names.
	suite("RC2-CBC-MD5", model.KxRSA, model.AuRSA, model.EncRC2, model.DigestMD5,
		protoSSLv2, false, model.StrengthMedium, "SSL_CK_RC2_128_CBC_WITH_MD5"),
	suite("IDEA-CBC-MD5", model.KxRSA, model.AuRSA, model.EncIDEA, model.DigestMD5,
		protoSSLv2, false, model.StrengthMedium, "SSL_CK_IDEA_128_CBC_WITH_MD5"),
	suite("DES-CBC-MD5", model.KxRSA, model.AuRSA, model.EncDES, model.DigestMD5,
		protoSSLv2, false, model.StrengthLow, "SSL_CK_DES_64_CBC_WITH_MD5"),
	suite("DES-CBC3-MD5", model.KxRSA, model.AuRSA, model.Enc3DES, model.DigestMD5,
		protoSSLv2, false, model.StrengthHigh, "SSL_CK_DES_192_EDE3_CBC_WITH_MD5"),

	// SSLv3 RSA suites.
	suite("NULL-MD5", model.KxRSA, model.AuRSA, model.EncNull, model.DigestMD5,
		protoSSLv3, false, model.StrengthNone, "TLS_RSA_WITH_NULL_MD5"),
	suite("NULL-SHA", model.KxRSA, model.AuRSA, model.EncNull, model.DigestSHA1,
		protoSSLv3, false, model.StrengthNone, "TLS_RSA_WITH_NULL_SHA"),
	suite("EXP-RC4-MD5", model.KxRSA, model.AuRSA, model.EncRC4, model.DigestMD5,
		protoSSLv2v3, true, model.StrengthExport40,
		"TLS_RSA_EXPORT_WITH_RC4_40_MD5", "SSL_CK_RC4_128_EXPORT40_WITH_MD5"),
	suite("RC4-MD5", model.KxRSA, model.AuRSA, model.EncRC4, model.DigestMD5,
		protoSSLv2v3, false, model.StrengthMedium,
		"TLS_RSA_WITH_RC4_128_MD5", "SSL_CK_RC4_128_WITH_MD5"),
	suite("RC4-SHA", model.KxRSA, model.AuRSA, model.EncRC4, model.DigestSHA1,
		protoSSLv3, false, model.StrengthMedium, "TLS_RSA_WITH_RC4_128_SHA"),
	suite("EXP-RC2-CBC-MD5", model.KxRSA, model.AuRSA, model.EncRC2, model.DigestMD5,
		protoSSLv2v3, true, model.StrengthExport40,
		"TLS_RSA_EXPORT_WITH_RC2_CBC_40_MD5", "SSL_CK_RC2_128_CBC_EXPORT40_WITH_MD5"),
	suite("IDEA-CBC-SHA", model.KxRSA, model.AuRSA, model.EncIDEA, model.DigestSHA1,
		protoSSLv3, false, model.StrengthMedium, "TLS_RSA_WITH_IDEA_CBC_SHA"),
	suite("EXP-DES-CBC-SHA", model.KxRSA, model.AuRSA, model.EncDES, model.DigestSHA1,
		protoSSLv3, true, model.StrengthExport40, "TLS_RSA_EXPORT_WITH_DES40_CBC_SHA"),
	suite("DES-CBC-SHA", model.KxRSA, model.AuRSA, model.EncDES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthLow, "TLS_RSA_WITH_DES_CBC_SHA"),
	suite("DES-CBC3-SHA", model.KxRSA, model.AuRSA, model.Enc3DES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthHigh, "TLS_RSA_WITH_3DES_EDE_CBC_SHA"),

	// SSLv3 fixed Diffie-Hellman suites.
	suite("EXP-DH-DSS-DES-CBC-SHA", model.KxDHd, model.AuDH, model.EncDES, model.DigestSHA1,
		protoSSLv3, true, model.StrengthExport40, "TLS_DH_DSS_EXPORT_WITH_DES40_CBC_SHA"),
	suite("DH-DSS-DES-CBC-SHA", model.KxDHd, model.AuDH, model.EncDES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthLow, "TLS_DH_DSS_WITH_DES_CBC_SHA"),
	suite("DH-DSS-DES-CBC3-SHA", model.KxDHd, model.AuDH, model.Enc3DES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthHigh, "TLS_DH_DSS_WITH_3DES_EDE_CBC_SHA"),
	suite("EXP-DH-RSA-DES-CBC-SHA", model.KxDHr, model.AuDH, model.EncDES, model.DigestSHA1,
		protoSSLv3, true, model.StrengthExport40, "TLS_DH_RSA_EXPORT_WITH_DES40_CBC_SHA"),
	suite("DH-RSA-DES-CBC-SHA", model.KxDHr, model.AuDH, model.EncDES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthLow, "TLS_DH_RSA_WITH_DES_CBC_SHA"),
	suite("DH-RSA-DES-CBC3-SHA", model.KxDHr, model.AuDH, model.Enc3DES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthHigh, "TLS_DH_RSA_WITH_3DES_EDE_CBC_SHA"),

	// SSLv3 ephemeral Diffie-Hellman suites.
	suite("EXP-EDH-DSS-DES-CBC-SHA", model.KxDHE, model.AuDSS, model.EncDES, model.DigestSHA1,
		protoSSLv3, true, model.StrengthExport40, "TLS_DHE_DSS_EXPORT_WITH_DES40_CBC_SHA"),
	suite("EDH-DSS-DES-CBC-SHA", model.KxDHE, model.AuDSS, model.EncDES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthLow, "TLS_DHE_DSS_WITH_DES_CBC_SHA"),
	suite("EDH-DSS-DES-CBC3-SHA", model.KxDHE, model.AuDSS, model.Enc3DES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA"),
	suite("EXP-EDH-RSA-DES-CBC-SHA", model.KxDHE, model.AuRSA, model.EncDES, model.DigestSHA1,
		protoSSLv3, true, model.StrengthExport40, "TLS_DHE_RSA_EXPORT_WITH_DES40_CBC_SHA"),
	suite("EDH-RSA-DES-CBC-SHA", model.KxDHE, model.AuRSA, model.EncDES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthLow, "TLS_DHE_RSA_WITH_DES_CBC_SHA"),
	suite("EDH-RSA-DES-CBC3-SHA", model.KxDHE, model.AuRSA, model.Enc3DES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA"),

	// SSLv3 anonymous Diffie-Hellman suites.
	suite("EXP-ADH-RC4-MD5", model.KxDHE, model.AuNone, model.EncRC4, model.DigestMD5,
		protoSSLv3, true, model.StrengthExport40, "TLS_DH_anon_EXPORT_WITH_RC4_40_MD5"),
	suite("ADH-RC4-MD5", model.KxDHE, model.AuNone, model.EncRC4, model.DigestMD5,
		protoSSLv3, false, model.StrengthMedium, "TLS_DH_anon_WITH_RC4_128_MD5"),
	suite("EXP-ADH-DES-CBC-SHA", model.KxDHE, model.AuNone, model.EncDES, model.DigestSHA1,
		protoSSLv3, true, model.StrengthExport40, "TLS_DH_anon_EXPORT_WITH_DES40_CBC_SHA"),
	suite("ADH-DES-CBC-SHA", model.KxDHE, model.AuNone, model.EncDES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthLow, "TLS_DH_anon_WITH_DES_CBC_SHA"),
	suite("ADH-DES-CBC3-SHA", model.KxDHE, model.AuNone, model.Enc3DES, model.DigestSHA1,
		protoSSLv3, false, model.StrengthHigh, "TLS_DH_anon_WITH_3DES_EDE_CBC_SHA"),

	// SSLv3 FORTEZZA suites. Never registered with IANA.
	suite("FZA-NULL-SHA", model.KxFZA, model.AuFZA, model.EncNull, model.DigestSHA1,
		protoSSLv3, false, model.StrengthNone, "SSL_FORTEZZA_DMS_WITH_NULL_SHA"),
	suite("FZA-FZA-CBC-SHA", model.KxFZA, model.AuFZA, model.EncFZA, model.DigestSHA1,
		protoSSLv3, false, model.StrengthMedium, "SSL_FORTEZZA_DMS_WITH_FORTEZZA_CBC_SHA"),
	suite("FZA-RC4-SHA", model.KxFZA, model.AuFZA, model.EncRC4, model.DigestSHA1,
		protoSSLv3, false, model.StrengthMedium, "SSL_FORTEZZA_DMS_WITH_RC4_128_SHA"),

	// TLSv1 AES suites (RFC 3268).
	suite("AES128-SHA", model.KxRSA, model.AuRSA, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_RSA_WITH_AES_128_CBC_SHA"),
	suite("DH-DSS-AES128-SHA", model.KxDHd, model.AuDH, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_DSS_WITH_AES_128_CBC_SHA"),
	suite("DH-RSA-AES128-SHA", model.KxDHr, model.AuDH, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_RSA_WITH_AES_128_CBC_SHA"),
	suite("DHE-DSS-AES128-SHA", model.KxDHE, model.AuDSS, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_AES_128_CBC_SHA"),
	suite("DHE-RSA-AES128-SHA", model.KxDHE, model.AuRSA, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_AES_128_CBC_SHA"),
	suite("ADH-AES128-SHA", model.KxDHE, model.AuNone, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_anon_WITH_AES_128_CBC_SHA"),
	suite("AES256-SHA", model.KxRSA, model.AuRSA, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_RSA_WITH_AES_256_CBC_SHA"),
	suite("DH-DSS-AES256-SHA", model.KxDHd, model.AuDH, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_DSS_WITH_AES_256_CBC_SHA"),
	suite("DH-RSA-AES256-SHA", model.KxDHr, model.AuDH, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_RSA_WITH_AES_256_CBC_SHA"),
	suite("DHE-DSS-AES256-SHA", model.KxDHE, model.AuDSS, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_AES_256_CBC_SHA"),
	suite("DHE-RSA-AES256-SHA", model.KxDHE, model.AuRSA, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_AES_256_CBC_SHA"),
	suite("ADH-AES256-SHA", model.KxDHE, model.AuNone, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_anon_WITH_AES_256_CBC_SHA"),

	// TLSv1 Camellia suites (RFC 4132).
	suite("CAMELLIA128-SHA", model.KxRSA, model.AuRSA, model.EncCamellia128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_RSA_WITH_CAMELLIA_128_CBC_SHA"),
	suite("DH-DSS-CAMELLIA128-SHA", model.KxDHd, model.AuDH, model.EncCamellia128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_DSS_WITH_CAMELLIA_128_CBC_SHA"),
	suite("DH-RSA-CAMELLIA128-SHA", model.KxDHr, model.AuDH, model.EncCamellia128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_RSA_WITH_CAMELLIA_128_CBC_SHA"),
	suite("DHE-DSS-CAMELLIA128-SHA", model.KxDHE, model.AuDSS, model.EncCamellia128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_CAMELLIA_128_CBC_SHA"),
	suite("DHE-RSA-CAMELLIA128-SHA", model.KxDHE, model.AuRSA, model.EncCamellia128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_CAMELLIA_128_CBC_SHA"),
	suite("ADH-CAMELLIA128-SHA", model.KxDHE, model.AuNone, model.EncCamellia128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_anon_WITH_CAMELLIA_128_CBC_SHA"),
	suite("CAMELLIA256-SHA", model.KxRSA, model.AuRSA, model.EncCamellia256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_RSA_WITH_CAMELLIA_256_CBC_SHA"),
	suite("DH-DSS-CAMELLIA256-SHA", model.KxDHd, model.AuDH, model.EncCamellia256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_DSS_WITH_CAMELLIA_256_CBC_SHA"),
	suite("DH-RSA-CAMELLIA256-SHA", model.KxDHr, model.AuDH, model.EncCamellia256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_RSA_WITH_CAMELLIA_256_CBC_SHA"),
	suite("DHE-DSS-CAMELLIA256-SHA", model.KxDHE, model.AuDSS, model.EncCamellia256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_CAMELLIA_256_CBC_SHA"),
	suite("DHE-RSA-CAMELLIA256-SHA", model.KxDHE, model.AuRSA, model.EncCamellia256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_CAMELLIA_256_CBC_SHA"),
	suite("ADH-CAMELLIA256-SHA", model.KxDHE, model.AuNone, model.EncCamellia256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_DH_anon_WITH_CAMELLIA_256_CBC_SHA"),

	// TLSv1 SEED suites (RFC 4162).
	suite("SEED-SHA", model.KxRSA, model.AuRSA, model.EncSEED, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_RSA_WITH_SEED_CBC_SHA"),
	suite("DH-DSS-SEED-SHA", model.KxDHd, model.AuDH, model.EncSEED, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_DH_DSS_WITH_SEED_CBC_SHA"),
	suite("DH-RSA-SEED-SHA", model.KxDHr, model.AuDH, model.EncSEED, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_DH_RSA_WITH_SEED_CBC_SHA"),
	suite("DHE-DSS-SEED-SHA", model.KxDHE, model.AuDSS, model.EncSEED, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_DHE_DSS_WITH_SEED_CBC_SHA"),
	suite("DHE-RSA-SEED-SHA", model.KxDHE, model.AuRSA, model.EncSEED, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_DHE_RSA_WITH_SEED_CBC_SHA"),
	suite("ADH-SEED-SHA", model.KxDHE, model.AuNone, model.EncSEED, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_DH_anon_WITH_SEED_CBC_SHA"),

	// Experimental 56-bit export suites. Never registered with IANA; only
	// present in patched reference-tool builds.
	suite("EXP1024-DES-CBC-SHA", model.KxRSA, model.AuRSA, model.EncDES, model.DigestSHA1,
		protoTLSv1, true, model.StrengthExport56, "SSL_RSA_EXPORT1024_WITH_DES_CBC_SHA"),
	suite("EXP1024-RC4-SHA", model.KxRSA, model.AuRSA, model.EncRC4, model.DigestSHA1,
		protoTLSv1, true, model.StrengthExport56, "SSL_RSA_EXPORT1024_WITH_RC4_56_SHA"),
	suite("EXP1024-DHE-DSS-DES-CBC-SHA", model.KxDHE, model.AuDSS, model.EncDES, model.DigestSHA1,
		protoTLSv1, true, model.StrengthExport56, "SSL_DHE_DSS_EXPORT1024_WITH_DES_CBC_SHA"),
	suite("EXP1024-DHE-DSS-RC4-SHA", model.KxDHE, model.AuDSS, model.EncRC4, model.DigestSHA1,
		protoTLSv1, true, model.StrengthExport56, "SSL_DHE_DSS_EXPORT1024_WITH_RC4_56_SHA"),
	suite("DHE-DSS-RC4-SHA", model.KxDHE, model.AuDSS, model.EncRC4, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_DHE_DSS_WITH_RC4_128_SHA"),

	// TLSv1.2 SHA-2 and GCM suites (RFC 5246, RFC 5288).
	suite("NULL-SHA256", model.KxRSA, model.AuRSA, model.EncNull, model.DigestSHA256,
		protoTLS12, false, model.StrengthNone, "TLS_RSA_WITH_NULL_SHA256"),
	suite("AES128-SHA256", model.KxRSA, model.AuRSA, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_RSA_WITH_AES_128_CBC_SHA256"),
	suite("AES256-SHA256", model.KxRSA, model.AuRSA, model.EncAES256, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_RSA_WITH_AES_256_CBC_SHA256"),
	suite("AES128-GCM-SHA256", model.KxRSA, model.AuRSA, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_RSA_WITH_AES_128_GCM_SHA256"),
	suite("AES256-GCM-SHA384", model.KxRSA, model.AuRSA, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_RSA_WITH_AES_256_GCM_SHA384"),
	suite("DH-DSS-AES128-SHA256", model.KxDHd, model.AuDH, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_DSS_WITH_AES_128_CBC_SHA256"),
	suite("DH-DSS-AES256-SHA256", model.KxDHd, model.AuDH, model.EncAES256, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_DSS_WITH_AES_256_CBC_SHA256"),
	suite("DH-DSS-AES128-GCM-SHA256", model.KxDHd, model.AuDH, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_DSS_WITH_AES_128_GCM_SHA256"),
	suite("DH-DSS-AES256-GCM-SHA384", model.KxDHd, model.AuDH, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_DSS_WITH_AES_256_GCM_SHA384"),
	suite("DH-RSA-AES128-SHA256", model.KxDHr, model.AuDH, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_RSA_WITH_AES_128_CBC_SHA256"),
	suite("DH-RSA-AES256-SHA256", model.KxDHr, model.AuDH, model.EncAES256, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_RSA_WITH_AES_256_CBC_SHA256"),
	suite("DH-RSA-AES128-GCM-SHA256", model.KxDHr, model.AuDH, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_RSA_WITH_AES_128_GCM_SHA256"),
	suite("DH-RSA-AES256-GCM-SHA384", model.KxDHr, model.AuDH, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_RSA_WITH_AES_256_GCM_SHA384"),
	suite("DHE-DSS-AES128-SHA256", model.KxDHE, model.AuDSS, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_AES_128_CBC_SHA256"),
	suite("DHE-DSS-AES256-SHA256", model.KxDHE, model.AuDSS, model.EncAES256, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_AES_256_CBC_SHA256"),
	suite("DHE-DSS-AES128-GCM-SHA256", model.KxDHE, model.AuDSS, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_AES_128_GCM_SHA256"),
	suite("DHE-DSS-AES256-GCM-SHA384", model.KxDHE, model.AuDSS, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_DSS_WITH_AES_256_GCM_SHA384"),
	suite("DHE-RSA-AES128-SHA256", model.KxDHE, model.AuRSA, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_AES_128_CBC_SHA256"),
	suite("DHE-RSA-AES256-SHA256", model.KxDHE, model.AuRSA, model.EncAES256, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_AES_256_CBC_SHA256"),
	suite("DHE-RSA-AES128-GCM-SHA256", model.KxDHE, model.AuRSA, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_AES_128_GCM_SHA256"),
	suite("DHE-RSA-AES256-GCM-SHA384", model.KxDHE, model.AuRSA, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DHE_RSA_WITH_AES_256_GCM_SHA384"),
	suite("ADH-AES128-SHA256", model.KxDHE, model.AuNone, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_anon_WITH_AES_128_CBC_SHA256"),
	suite("ADH-AES256-SHA256", model.KxDHE, model.AuNone, model.EncAES256, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_anon_WITH_AES_256_CBC_SHA256"),
	suite("ADH-AES128-GCM-SHA256", model.KxDHE, model.AuNone, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_anon_WITH_AES_128_GCM_SHA256"),
	suite("ADH-AES256-GCM-SHA384", model.KxDHE, model.AuNone, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_DH_anon_WITH_AES_256_GCM_SHA384"),

	// Elliptic curve suites (RFC 4492).
	suite("ECDH-ECDSA-NULL-SHA", model.KxECDHe, model.AuECDH, model.EncNull, model.DigestSHA1,
		protoTLSv1, false, model.StrengthNone, "TLS_ECDH_ECDSA_WITH_NULL_SHA"),
	suite("ECDH-ECDSA-RC4-SHA", model.KxECDHe, model.AuECDH, model.EncRC4, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_ECDH_ECDSA_WITH_RC4_128_SHA"),
	suite("ECDH-ECDSA-DES-CBC3-SHA", model.KxECDHe, model.AuECDH, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_ECDSA_WITH_3DES_EDE_CBC_SHA"),
	suite("ECDH-ECDSA-AES128-SHA", model.KxECDHe, model.AuECDH, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA"),
	suite("ECDH-ECDSA-AES256-SHA", model.KxECDHe, model.AuECDH, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA"),
	suite("ECDHE-ECDSA-NULL-SHA", model.KxECDHE, model.AuECDSA, model.EncNull, model.DigestSHA1,
		protoTLSv1, false, model.StrengthNone, "TLS_ECDHE_ECDSA_WITH_NULL_SHA"),
	suite("ECDHE-ECDSA-RC4-SHA", model.KxECDHE, model.AuECDSA, model.EncRC4, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_ECDHE_ECDSA_WITH_RC4_128_SHA"),
	suite("ECDHE-ECDSA-DES-CBC3-SHA", model.KxECDHE, model.AuECDSA, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDHE_ECDSA_WITH_3DES_EDE_CBC_SHA"),
	suite("ECDHE-ECDSA-AES128-SHA", model.KxECDHE, model.AuECDSA, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA"),
	suite("ECDHE-ECDSA-AES256-SHA", model.KxECDHE, model.AuECDSA, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA"),
	suite("ECDH-RSA-NULL-SHA", model.KxECDHr, model.AuECDH, model.EncNull, model.DigestSHA1,
		protoTLSv1, false, model.StrengthNone, "TLS_ECDH_RSA_WITH_NULL_SHA"),
	suite("ECDH-RSA-RC4-SHA", model.KxECDHr, model.AuECDH, model.EncRC4, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_ECDH_RSA_WITH_RC4_128_SHA"),
	suite("ECDH-RSA-DES-CBC3-SHA", model.KxECDHr, model.AuECDH, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_RSA_WITH_3DES_EDE_CBC_SHA"),
	suite("ECDH-RSA-AES128-SHA", model.KxECDHr, model.AuECDH, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_RSA_WITH_AES_128_CBC_SHA"),
	suite("ECDH-RSA-AES256-SHA", model.KxECDHr, model.AuECDH, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_RSA_WITH_AES_256_CBC_SHA"),
	suite("ECDHE-RSA-NULL-SHA", model.KxECDHE, model.AuRSA, model.EncNull, model.DigestSHA1,
		protoTLSv1, false, model.StrengthNone, "TLS_ECDHE_RSA_WITH_NULL_SHA"),
	suite("ECDHE-RSA-RC4-SHA", model.KxECDHE, model.AuRSA, model.EncRC4, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_ECDHE_RSA_WITH_RC4_128_SHA"),
	suite("ECDHE-RSA-DES-CBC3-SHA", model.KxECDHE, model.AuRSA, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA"),
	suite("ECDHE-RSA-AES128-SHA", model.KxECDHE, model.AuRSA, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA"),
	suite("ECDHE-RSA-AES256-SHA", model.KxECDHE, model.AuRSA, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA"),
	suite("AECDH-NULL-SHA", model.KxECDHE, model.AuNone, model.EncNull, model.DigestSHA1,
		protoTLSv1, false, model.StrengthNone, "TLS_ECDH_anon_WITH_NULL_SHA"),
	suite("AECDH-RC4-SHA", model.KxECDHE, model.AuNone, model.EncRC4, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_ECDH_anon_WITH_RC4_128_SHA"),
	suite("AECDH-DES-CBC3-SHA", model.KxECDHE, model.AuNone, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_anon_WITH_3DES_EDE_CBC_SHA"),
	suite("AECDH-AES128-SHA", model.KxECDHE, model.AuNone, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_anon_WITH_AES_128_CBC_SHA"),
	suite("AECDH-AES256-SHA", model.KxECDHE, model.AuNone, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_ECDH_anon_WITH_AES_256_CBC_SHA"),

	// Elliptic curve SHA-2 and GCM suites (RFC 5289).
	suite("ECDHE-ECDSA-AES128-SHA256", model.KxECDHE, model.AuECDSA, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256"),
	suite("ECDHE-ECDSA-AES256-SHA384", model.KxECDHE, model.AuECDSA, model.EncAES256, model.DigestSHA384,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384"),
	suite("ECDH-ECDSA-AES128-SHA256", model.KxECDHe, model.AuECDH, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA256"),
	suite("ECDH-ECDSA-AES256-SHA384", model.KxECDHe, model.AuECDH, model.EncAES256, model.DigestSHA384,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA384"),
	suite("ECDHE-RSA-AES128-SHA256", model.KxECDHE, model.AuRSA, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA256"),
	suite("ECDHE-RSA-AES256-SHA384", model.KxECDHE, model.AuRSA, model.EncAES256, model.DigestSHA384,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA384"),
	suite("ECDH-RSA-AES128-SHA256", model.KxECDHr, model.AuECDH, model.EncAES128, model.DigestSHA256,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_RSA_WITH_AES_128_CBC_SHA256"),
	suite("ECDH-RSA-AES256-SHA384", model.KxECDHr, model.AuECDH, model.EncAES256, model.DigestSHA384,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_RSA_WITH_AES_256_CBC_SHA384"),
	suite("ECDHE-ECDSA-AES128-GCM-SHA256", model.KxECDHE, model.AuECDSA, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256"),
	suite("ECDHE-ECDSA-AES256-GCM-SHA384", model.KxECDHE, model.AuECDSA, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384"),
	suite("ECDH-ECDSA-AES128-GCM-SHA256", model.KxECDHe, model.AuECDH, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_ECDSA_WITH_AES_128_GCM_SHA256"),
	suite("ECDH-ECDSA-AES256-GCM-SHA384", model.KxECDHe, model.AuECDH, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_ECDSA_WITH_AES_256_GCM_SHA384"),
	suite("ECDHE-RSA-AES128-GCM-SHA256", model.KxECDHE, model.AuRSA, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256"),
	suite("ECDHE-RSA-AES256-GCM-SHA384", model.KxECDHE, model.AuRSA, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384"),
	suite("ECDH-RSA-AES128-GCM-SHA256", model.KxECDHr, model.AuECDH, model.EncAES128GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_RSA_WITH_AES_128_GCM_SHA256"),
	suite("ECDH-RSA-AES256-GCM-SHA384", model.KxECDHr, model.AuECDH, model.EncAES256GCM, model.DigestAEAD,
		protoTLS12, false, model.StrengthHigh, "TLS_ECDH_RSA_WITH_AES_256_GCM_SHA384"),

	// Pre-shared key suites (RFC 4279).
	suite("PSK-RC4-SHA", model.KxPSK, model.AuPSK, model.EncRC4, model.DigestSHA1,
		protoTLSv1, false, model.StrengthMedium, "TLS_PSK_WITH_RC4_128_SHA"),
	suite("PSK-3DES-EDE-CBC-SHA", model.KxPSK, model.AuPSK, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_PSK_WITH_3DES_EDE_CBC_SHA"),
	suite("PSK-AES128-CBC-SHA", model.KxPSK, model.AuPSK, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_PSK_WITH_AES_128_CBC_SHA"),
	suite("PSK-AES256-CBC-SHA", model.KxPSK, model.AuPSK, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_PSK_WITH_AES_256_CBC_SHA"),

	// Secure Remote Password suites (RFC 5054).
	suite("SRP-3DES-EDE-CBC-SHA", model.KxSRP, model.AuSRP, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_WITH_3DES_EDE_CBC_SHA"),
	suite("SRP-RSA-3DES-EDE-CBC-SHA", model.KxSRP, model.AuRSA, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_RSA_WITH_3DES_EDE_CBC_SHA"),
	suite("SRP-DSS-3DES-EDE-CBC-SHA", model.KxSRP, model.AuDSS, model.Enc3DES, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_DSS_WITH_3DES_EDE_CBC_SHA"),
	suite("SRP-AES-128-CBC-SHA", model.KxSRP, model.AuSRP, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_WITH_AES_128_CBC_SHA"),
	suite("SRP-RSA-AES-128-CBC-SHA", model.KxSRP, model.AuRSA, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_RSA_WITH_AES_128_CBC_SHA"),
	suite("SRP-DSS-AES-128-CBC-SHA", model.KxSRP, model.AuDSS, model.EncAES128, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_DSS_WITH_AES_128_CBC_SHA"),
	suite("SRP-AES-256-CBC-SHA", model.KxSRP, model.AuSRP, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_WITH_AES_256_CBC_SHA"),
	suite("SRP-RSA-AES-256-CBC-SHA", model.KxSRP, model.AuRSA, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_RSA_WITH_AES_256_CBC_SHA"),
	suite("SRP-DSS-AES-256-CBC-SHA", model.KxSRP, model.AuDSS, model.EncAES256, model.DigestSHA1,
		protoTLSv1, false, model.StrengthHigh, "TLS_SRP_SHA_DSS_WITH_AES_256_CBC_SHA"),

	// GOST suites. No registry names; no provider implements them.
	suite("GOST94-GOST89-GOST89", model.KxGOST, model.AuGOST94, model.EncGOST89, model.DigestGOST89MAC,
		protoTLSv1, false, model.StrengthHigh),
	suite("GOST2001-GOST89-GOST89", model.KxGOST, model.AuGOST01, model.EncGOST89, model.DigestGOST89MAC,
		protoTLSv1, false, model.StrengthHigh),
	suite("GOST94-NULL-GOST94", model.KxGOST, model.AuGOST94, model.EncNull, model.DigestGOST94,
		protoTLSv1, false, model.StrengthNone),
	suite("GOST2001-NULL-GOST94", model.KxGOST, model.AuGOST01, model.EncNull, model.DigestGOST94,
		protoTLSv1, false, model.StrengthNone),
}
