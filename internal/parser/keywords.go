package parser

import "github.com/cipherlist/cipherlist/internal/model"

// predicate reports whether a selector keyword matches a cipher record.
type predicate func(*model.CipherRecord) bool

func and(ps ...predicate) predicate {
	return func(r *model.CipherRecord) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

func kx(k model.KeyExchange) predicate {
	return func(r *model.CipherRecord) bool { return r.Kx == k }
}

func kxAny(ks ...model.KeyExchange) predicate {
	return func(r *model.CipherRecord) bool {
		for _, k := range ks {
			if r.Kx == k {
				return true
			}
		}
		return false
	}
}

func au(a model.Authentication) predicate {
	return func(r *model.CipherRecord) bool { return r.Au == a }
}

func auAny(as ...model.Authentication) predicate {
	return func(r *model.CipherRecord) bool {
		for _, a := range as {
			if r.Au == a {
				return true
			}
		}
		return false
	}
}

func enc(es ...model.Encryption) predicate {
	return func(r *model.CipherRecord) bool {
		for _, e := range es {
			if r.Enc == e {
				return true
			}
		}
		return false
	}
}

func mac(d model.Digest) predicate {
	return func(r *model.CipherRecord) bool { return r.Mac == d }
}

func strength(s model.Strength) predicate {
	return func(r *model.CipherRecord) bool { return r.Strength == s }
}

// Selector keywords, matching the reference tool's cipher-list grammar.
// The set is closed; evaluation never dispatches on record name strings.
var keywords = map[string]predicate{
	// Key exchange.
	"kRSA":   kx(model.KxRSA),
	"kDHr":   kx(model.KxDHr),
	"kDHd":   kx(model.KxDHd),
	"kDH":    kxAny(model.KxDHr, model.KxDHd),
	"kEDH":   kx(model.KxDHE),
	"kDHE":   kx(model.KxDHE),
	"kECDHr": kx(model.KxECDHr),
	"kECDHe": kx(model.KxECDHe),
	"kECDH":  kxAny(model.KxECDHr, model.KxECDHe),
	"kEECDH": kx(model.KxECDHE),
	"kECDHE": kx(model.KxECDHE),
	"kPSK":   kx(model.KxPSK),
	"kSRP":   kx(model.KxSRP),
	"kGOST":  kx(model.KxGOST),
	"kFZA":   kx(model.KxFZA),

	// Authentication.
	"aRSA":   au(model.AuRSA),
	"aDSS":   au(model.AuDSS),
	"DSS":    au(model.AuDSS),
	"aDH":    au(model.AuDH),
	"aECDH":  au(model.AuECDH),
	"aECDSA": au(model.AuECDSA),
	"ECDSA":  au(model.AuECDSA),
	"aPSK":   au(model.AuPSK),
	"aSRP":   au(model.AuSRP),
	"aGOST":  auAny(model.AuGOST94, model.AuGOST01),
	"aFZA":   au(model.AuFZA),
	"aNULL":  au(model.AuNone),

	// Combined key exchange and authentication.
	"RSA":   and(kx(model.KxRSA), au(model.AuRSA)),
	"DH":    kxAny(model.KxDHr, model.KxDHd, model.KxDHE),
	"EDH":   and(kx(model.KxDHE), notPred(au(model.AuNone))),
	"DHE":   and(kx(model.KxDHE), notPred(au(model.AuNone))),
	"ADH":   and(kx(model.KxDHE), au(model.AuNone)),
	"ECDH":  kxAny(model.KxECDHr, model.KxECDHe, model.KxECDHE),
	"EECDH": and(kx(model.KxECDHE), notPred(au(model.AuNone))),
	"ECDHE": and(kx(model.KxECDHE), notPred(au(model.AuNone))),
	"AECDH": and(kx(model.KxECDHE), au(model.AuNone)),
	"PSK":   kx(model.KxPSK),
	"SRP":   kx(model.KxSRP),

	// Bulk encryption.
	"AES128":      enc(model.EncAES128, model.EncAES128GCM),
	"AES256":      enc(model.EncAES256, model.EncAES256GCM),
	"AES":         enc(model.EncAES128, model.EncAES128GCM, model.EncAES256, model.EncAES256GCM),
	"AESGCM":      enc(model.EncAES128GCM, model.EncAES256GCM),
	"CAMELLIA128": enc(model.EncCamellia128),
	"CAMELLIA256": enc(model.EncCamellia256),
	"CAMELLIA":    enc(model.EncCamellia128, model.EncCamellia256),
	"3DES":        enc(model.Enc3DES),
	"DES":         enc(model.EncDES),
	"RC4":         enc(model.EncRC4),
	"RC2":         enc(model.EncRC2),
	"IDEA":        enc(model.EncIDEA),
	"SEED":        enc(model.EncSEED),
	"eFZA":        enc(model.EncFZA),
	"FZA":         au(model.AuFZA),
	"eNULL":       enc(model.EncNull),
	"NULL":        enc(model.EncNull),

	// MAC digest.
	"MD5":       mac(model.DigestMD5),
	"SHA1":      mac(model.DigestSHA1),
	"SHA":       mac(model.DigestSHA1),
	"SHA256":    mac(model.DigestSHA256),
	"SHA384":    mac(model.DigestSHA384),
	"GOST94":    mac(model.DigestGOST94),
	"GOST89MAC": mac(model.DigestGOST89MAC),

	// Protocol version. A suite belongs to the version it was defined
	// for, so merged SSLv2/SSLv3 records do not count as SSLv2-only.
	"SSLv2": func(r *model.CipherRecord) bool {
		return r.Protocols.Contains(model.SSLv2) && !r.Protocols.Contains(model.SSLv3)
	},
	"SSLv3": func(r *model.CipherRecord) bool {
		return r.Protocols.Contains(model.SSLv3)
	},
	"TLSv1": func(r *model.CipherRecord) bool {
		return r.Protocols.Contains(model.TLSv1) && !r.Protocols.Contains(model.SSLv3)
	},
	"TLSv1.2": func(r *model.CipherRecord) bool {
		return r.Protocols.Contains(model.TLSv12) && !r.Protocols.Contains(model.TLSv11)
	},

	// Strength.
	"HIGH":     strength(model.StrengthHigh),
	"MEDIUM":   strength(model.StrengthMedium),
	"LOW":      strength(model.StrengthLow),
	"EXPORT40": strength(model.StrengthExport40),
	"EXP40":    strength(model.StrengthExport40),
	"EXPORT56": strength(model.StrengthExport56),
	"EXP56":    strength(model.StrengthExport56),
	"EXPORT":   func(r *model.CipherRecord) bool { return r.Export },
	"EXP":      func(r *model.CipherRecord) bool { return r.Export },

	// Composites. DEFAULT is handled by the evaluator since it carries
	// removal directives of its own.
	"ALL": notPred(enc(model.EncNull)),
	"COMPLEMENTOFALL": enc(model.EncNull),
	"COMPLEMENTOFDEFAULT": func(r *model.CipherRecord) bool {
		if r.Au == model.AuNone && r.Enc != model.EncNull {
			return true
		}
		return r.Protocols.Contains(model.SSLv2) && !r.Protocols.Contains(model.SSLv3)
	},
}

func notPred(p predicate) predicate {
	return func(r *model.CipherRecord) bool { return !p(r) }
}
