// Package certparse turns the raw certificate/TBSCertificate bytes
// recovered by internal/wire into model.Certificate values. It is the
// one place this repository's core touches X.509 DER: spec.md §1
// treats "X.509/DER parsing of certificate bytes" as an external
// collaborator, so this package is a thin adapter over
// github.com/google/certificate-transparency-go/x509 — the fork CT
// tooling uses because it tolerates the malformed and precert-shaped
// certificates real logs actually carry (the teacher repo depends on
// and imports the very same fork for the same reason).
package certparse

import (
	"encoding/asn1"
	"fmt"
	"net"

	"github.com/google/certificate-transparency-go/x509"
	"github.com/google/certificate-transparency-go/x509/pkix"

	"ctstream.dev/internal/model"
)

var oidSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// generalNameDirectoryTag is the GeneralName CHOICE tag for directoryName
// (RFC 5280 §4.2.1.6), context-specific, constructed, explicitly
// tagged around a Name (itself a CHOICE and therefore not eligible for
// implicit tagging).
const generalNameDirectoryTag = 4

// Parse decodes der as a full X.509 certificate, falling back to a
// bare TBSCertificate if that fails — spec.md §4.A: "log operators
// occasionally present one or the other." The returned Certificate's
// Encoded field is the exact prefix of der that the parser consumed,
// not merely len(der), per spec.md's "use the parser's residual to
// measure" instruction.
func Parse(der []byte) (model.Certificate, error) {
	cert, consumed, err := parseLenient(der)
	if err != nil {
		return model.Certificate{}, fmt.Errorf("certparse: %w", err)
	}

	out := model.Certificate{
		IsCA:     cert.IsCA,
		Validity: model.NewCertificateValidity(cert.NotBefore, cert.NotAfter),
		Encoded:  consumed,
	}

	if len(cert.Issuer.Organization) > 0 {
		out.IssuerOrganization = cert.Issuer.Organization[0]
		out.HasIssuerOrg = true
	}
	if len(cert.Subject.Organization) > 0 {
		out.SubjectOrganization = cert.Subject.Organization[0]
		out.HasSubjectOrg = true
	}
	if cert.Subject.CommonName != "" {
		out.SubjectCommonName = cert.Subject.CommonName
		out.HasSubjectCN = true
	}

	out.SubjectAlternateNames = alternateNames(cert, out.SubjectCommonName)

	return out, nil
}

// parseLenient tries a full certificate parse, then a TBSCertificate
// parse, and returns the bytes of der actually consumed by whichever
// succeeded.
func parseLenient(der []byte) (*x509.Certificate, []byte, error) {
	if cert, err := x509.ParseCertificate(der); err == nil {
		return cert, der[:len(cert.Raw)], nil
	}

	cert, err := x509.ParseTBSCertificate(der)
	if err != nil {
		return nil, nil, fmt.Errorf("not a certificate or TBSCertificate: %w", err)
	}
	return cert, der[:len(cert.RawTBSCertificate)], nil
}

// alternateNames builds the ordered, deduplicated subjectAltName list,
// dropping any entry equal to subjectCN per spec.md §4.A.
func alternateNames(cert *x509.Certificate, subjectCN string) []model.CertificateAlternateName {
	var names []model.CertificateAlternateName

	for _, dn := range directoryNames(cert) {
		names = append(names, model.CertificateAlternateName{Kind: model.KindDirectory, Value: dn})
	}
	for _, dns := range cert.DNSNames {
		names = append(names, model.CertificateAlternateName{Kind: model.KindHostname, Value: dns})
	}
	for _, ip := range cert.IPAddresses {
		if rendered, ok := renderIP(ip); ok {
			names = append(names, model.CertificateAlternateName{Kind: model.KindIPAddress, Value: rendered})
		}
		// Any other length is silently dropped per spec.md §4.A; this
		// can only happen if the fork's own IP parsing produced
		// something neither 4 nor 16 bytes wide, which it does not in
		// practice, but we honor the rule defensively.
	}
	for _, email := range cert.EmailAddresses {
		names = append(names, model.CertificateAlternateName{Kind: model.KindEmail, Value: email})
	}
	for _, u := range cert.URIs {
		names = append(names, model.CertificateAlternateName{Kind: model.KindURI, Value: u.String()})
	}

	filtered := names[:0]
	for _, n := range names {
		if n.Value == subjectCN {
			continue
		}
		filtered = append(filtered, n)
	}
	return filtered
}

// renderIP renders a net.IP to its canonical textual form, per
// spec.md §4.A: IPv4 dotted-quad for 4-byte addresses, lower-case
// colon-hex IPv6 for 16-byte addresses. The standard library's
// net.IP.String applies RFC 5952 zero-run compression for IPv6.
func renderIP(ip net.IP) (string, bool) {
	if v4 := ip.To4(); v4 != nil && len(ip) == net.IPv4len {
		return v4.String(), true
	}
	if len(ip) == net.IPv6len {
		return ip.String(), true
	}
	return "", false
}

// directoryNames extracts GeneralName.directoryName entries from the
// subjectAltName extension. Neither the standard library's crypto/x509
// nor this CT fork surface directoryName SANs on the Certificate
// struct directly (they're rare enough that only DNS/IP/email/URI get
// first-class fields), so this walks the raw extension bytes.
func directoryNames(cert *x509.Certificate) []string {
	var raw []byte
	for _, ext := range cert.Extensions {
		if ext.Id.Equal(oidSubjectAltName) {
			raw = ext.Value
			break
		}
	}
	if raw == nil {
		return nil
	}

	var generalNames []asn1.RawValue
	if _, err := asn1.Unmarshal(raw, &generalNames); err != nil {
		return nil
	}

	var out []string
	for _, gn := range generalNames {
		if gn.Class != asn1.ClassContextSpecific || gn.Tag != generalNameDirectoryTag {
			continue
		}
		var rdn pkix.RDNSequence
		if _, err := asn1.Unmarshal(gn.Bytes, &rdn); err != nil {
			continue
		}
		var name pkix.Name
		name.FillFromRDNSequence(&rdn)
		out = append(out, name.String())
	}
	return out
}
