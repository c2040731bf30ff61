package certparse

import (
	"testing"
	"time"

	"ctstream.dev/internal/model"
)

func TestParseLeafCertificate(t *testing.T) {
	der := mustDecode(leafCertB64)
	cert, err := Parse(der)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !cert.HasSubjectOrg || cert.SubjectOrganization != "Example Org" {
		t.Errorf("SubjectOrganization = %q (has=%v), want %q", cert.SubjectOrganization, cert.HasSubjectOrg, "Example Org")
	}
	if !cert.HasSubjectCN || cert.SubjectCommonName != "leaf.example.com" {
		t.Errorf("SubjectCommonName = %q, want leaf.example.com", cert.SubjectCommonName)
	}
	if cert.IsCA {
		t.Errorf("IsCA = true, want false")
	}
	if len(cert.Encoded) != len(der) {
		t.Errorf("len(Encoded) = %d, want %d", len(cert.Encoded), len(der))
	}

	// "leaf.example.com" is also the subject CN and must be dropped
	// from the alternate-name set per the dedup rule.
	want := map[model.AlternateNameKind]string{
		model.KindHostname:  "alt.example.com",
		model.KindIPAddress: "192.0.2.10",
		model.KindEmail:     "admin@example.com",
		model.KindURI:       "https://example.com/path",
	}
	got := map[model.AlternateNameKind]string{}
	for _, n := range cert.SubjectAlternateNames {
		if n.Value == "leaf.example.com" {
			t.Errorf("alternate name %q should have been deduped against subject CN", n.Value)
		}
		got[n.Kind] = n.Value
	}
	for kind, value := range want {
		if got[kind] != value {
			t.Errorf("alt name kind %v = %q, want %q", kind, got[kind], value)
		}
	}
}

func TestParseIssuerCertificate(t *testing.T) {
	cert, err := Parse(mustDecode(issuerCertB64))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cert.IsCA {
		t.Errorf("IsCA = false, want true")
	}
	if !cert.HasSubjectOrg || cert.SubjectOrganization != "Example CA Org" {
		t.Errorf("SubjectOrganization = %q, want Example CA Org", cert.SubjectOrganization)
	}
}

func TestParseDirectoryNameAlternate(t *testing.T) {
	cert, err := Parse(mustDecode(dirNameCertB64))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var found bool
	for _, n := range cert.SubjectAlternateNames {
		if n.Kind == model.KindDirectory {
			found = true
			if n.Value == "" {
				t.Errorf("directory alternate name is empty")
			}
		}
	}
	if !found {
		t.Errorf("no directory alternate name found in %+v", cert.SubjectAlternateNames)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not a certificate")); err == nil {
		t.Fatal("Parse: want error for non-DER input")
	}
}

func TestValidityNormalization(t *testing.T) {
	a := time.Unix(1000, 0)
	b := time.Unix(500, 0)

	v := model.NewCertificateValidity(a, b)
	if v.Begin.After(v.End) {
		t.Fatalf("Begin %v after End %v", v.Begin, v.End)
	}
	if v.Begin != b || v.End != a {
		t.Fatalf("v = %+v, want Begin=%v End=%v", v, b, a)
	}

	vSame := model.NewCertificateValidity(a, a)
	if vSame.Begin != vSame.End {
		t.Fatalf("equal inputs produced Begin != End: %+v", vSame)
	}
}

func TestValidityCurrent(t *testing.T) {
	begin := time.Unix(1000, 0)
	end := time.Unix(2000, 0)
	v := model.CertificateValidity{Begin: begin, End: end}

	if v.Current(begin) {
		t.Errorf("Current(begin) = true, want false (strict interior)")
	}
	if v.Current(end) {
		t.Errorf("Current(end) = true, want false (strict interior)")
	}
	if !v.Current(time.Unix(1500, 0)) {
		t.Errorf("Current(midpoint) = false, want true")
	}
}
