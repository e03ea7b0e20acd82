// Package model defines the cipher suite attribute types.
package model

import (
	"fmt"
	"strings"
)

// Protocol represents an SSL/TLS protocol version.
type Protocol uint8

// Protocol versions.
const (
	SSLv2 Protocol = iota
	SSLv3
	TLSv1
	TLSv11
	TLSv12
)

// String returns the protocol name in OpenSSL form.
func (p Protocol) String() string {
	switch p {
	case SSLv2:
		return "SSLv2"
	case SSLv3:
		return "SSLv3"
	case TLSv1:
		return "TLSv1"
	case TLSv11:
		return "TLSv1.1"
	case TLSv12:
		return "TLSv1.2"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(p))
	}
}

// ProtocolSet is a bitmask of protocol versions.
type ProtocolSet uint8

// Protocols builds a ProtocolSet from individual versions.
func Protocols(ps ...Protocol) ProtocolSet {
	var s ProtocolSet
	for _, p := range ps {
		s |= 1 << p
	}
	return s
}

// Contains reports whether the set includes the given version.
func (s ProtocolSet) Contains(p Protocol) bool {
	return s&(1<<p) != 0
}

// String returns the versions in ascending order, comma separated.
func (s ProtocolSet) String() string {
	var parts []string
	for p := SSLv2; p <= TLSv12; p++ {
		if s.Contains(p) {
			parts = append(parts, p.String())
		}
	}
	return strings.Join(parts, ",")
}

// KeyExchange represents a key exchange algorithm.
type KeyExchange uint8

// Key exchange algorithms.
const (
	KxRSA KeyExchange = iota
	// KxDHr and KxDHd are fixed Diffie-Hellman with RSA- or DSS-signed
	// certificates.
	KxDHr
	KxDHd
	// KxDHE is ephemeral Diffie-Hellman (EDH in older OpenSSL notation).
	KxDHE
	// KxECDHr and KxECDHe are fixed ECDH with RSA- or ECDSA-signed
	// certificates.
	KxECDHr
	KxECDHe
	// KxECDHE is ephemeral ECDH.
	KxECDHE
	KxPSK
	KxSRP
	KxGOST
	KxFZA
)

// String returns the key exchange name.
func (k KeyExchange) String() string {
	switch k {
	case KxRSA:
		return "RSA"
	case KxDHr:
		return "DH/RSA"
	case KxDHd:
		return "DH/DSS"
	case KxDHE:
		return "DHE"
	case KxECDHr:
		return "ECDH/RSA"
	case KxECDHe:
		return "ECDH/ECDSA"
	case KxECDHE:
		return "ECDHE"
	case KxPSK:
		return "PSK"
	case KxSRP:
		return "SRP"
	case KxGOST:
		return "GOST"
	case KxFZA:
		return "FZA"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Authentication represents a server authentication algorithm.
type Authentication uint8

// Authentication algorithms. AuNone is anonymous (no authentication).
const (
	AuRSA Authentication = iota
	AuDSS
	AuDH
	AuECDH
	AuECDSA
	AuPSK
	AuSRP
	AuGOST94
	AuGOST01
	AuFZA
	AuNone
)

// String returns the authentication algorithm name.
func (a Authentication) String() string {
	switch a {
	case AuRSA:
		return "RSA"
	case AuDSS:
		return "DSS"
	case AuDH:
		return "DH"
	case AuECDH:
		return "ECDH"
	case AuECDSA:
		return "ECDSA"
	case AuPSK:
		return "PSK"
	case AuSRP:
		return "SRP"
	case AuGOST94:
		return "GOST94"
	case AuGOST01:
		return "GOST01"
	case AuFZA:
		return "FZA"
	case AuNone:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}

// Encryption represents a bulk encryption algorithm.
type Encryption uint8

// Bulk encryption algorithms. EncNull means no encryption (eNULL suites).
const (
	EncAES128 Encryption = iota
	EncAES128GCM
	EncAES256
	EncAES256GCM
	EncCamellia128
	EncCamellia256
	Enc3DES
	EncDES
	EncRC4
	EncRC2
	EncIDEA
	EncSEED
	EncGOST89
	EncFZA
	EncNull
)

// String returns the encryption algorithm name.
func (e Encryption) String() string {
	switch e {
	case EncAES128:
		return "AES(128)"
	case EncAES128GCM:
		return "AESGCM(128)"
	case EncAES256:
		return "AES(256)"
	case EncAES256GCM:
		return "AESGCM(256)"
	case EncCamellia128:
		return "Camellia(128)"
	case EncCamellia256:
		return "Camellia(256)"
	case Enc3DES:
		return "3DES(168)"
	case EncDES:
		return "DES(56)"
	case EncRC4:
		return "RC4"
	case EncRC2:
		return "RC2"
	case EncIDEA:
		return "IDEA(128)"
	case EncSEED:
		return "SEED(128)"
	case EncGOST89:
		return "GOST89"
	case EncFZA:
		return "Fortezza"
	case EncNull:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(e))
	}
}

// Digest represents a MAC digest algorithm.
type Digest uint8

// MAC digest algorithms.
const (
	DigestMD5 Digest = iota
	DigestSHA1
	DigestSHA256
	DigestSHA384
	DigestGOST89MAC
	DigestGOST94
	DigestAEAD
)

// String returns the digest name.
func (d Digest) String() string {
	switch d {
	case DigestMD5:
		return "MD5"
	case DigestSHA1:
		return "SHA1"
	case DigestSHA256:
		return "SHA256"
	case DigestSHA384:
		return "SHA384"
	case DigestGOST89MAC:
		return "GOST89MAC"
	case DigestGOST94:
		return "GOST94"
	case DigestAEAD:
		return "AEAD"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(d))
	}
}

// Strength classifies the effective strength of a cipher suite.
type Strength uint8

// Strength classes, weakest first. StrengthNone is reserved for suites
// with no encryption at all; it is not addressable by a strength keyword.
const (
	StrengthNone Strength = iota
	StrengthExport40
	StrengthExport56
	StrengthLow
	StrengthMedium
	StrengthHigh
)

// String returns the strength class name.
func (s Strength) String() string {
	switch s {
	case StrengthNone:
		return "None"
	case StrengthExport40:
		return "Export40"
	case StrengthExport56:
		return "Export56"
	case StrengthLow:
		return "Low"
	case StrengthMedium:
		return "Medium"
	case StrengthHigh:
		return "High"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// CipherRecord describes one cipher suite: its OpenSSL alias, algorithm
// attributes, and the standard (registry-style) names it is known by.
// Records are immutable once the catalog is built.
type CipherRecord struct {
	// Alias is the unique OpenSSL short name, e.g. "ECDHE-RSA-AES128-GCM-SHA256".
	Alias string

	Kx  KeyExchange
	Au  Authentication
	Enc Encryption
	Mac Digest

	// Protocols the suite is defined for.
	Protocols ProtocolSet

	// Export marks export-grade suites.
	Export bool

	Strength Strength

	// StandardNames lists the registry-style names for this suite, canonical
	// name first. A suite may carry several (the same alias can correspond to
	// an SSLv2 and an SSLv3 suite) or none (GOST suites have no registry name).
	StandardNames []string
}

// Name returns the canonical standard name, or the alias if the suite has
// no standard name.
func (r *CipherRecord) Name() string {
	if len(r.StandardNames) > 0 {
		return r.StandardNames[0]
	}
	return r.Alias
}

// String returns a one-line summary in the style of openssl ciphers -v.
func (r *CipherRecord) String() string {
	return fmt.Sprintf("%s Kx=%s Au=%s Enc=%s Mac=%s", r.Alias, r.Kx, r.Au, r.Enc, r.Mac)
}
