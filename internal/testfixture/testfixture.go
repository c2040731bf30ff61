// Package testfixture holds DER-encoded certificates shared by this
// module's test suites, so the wire/endpoint/pipeline tests exercise
// certparse against real ASN.1 rather than placeholder byte strings.
// It is never imported by non-test code.
package testfixture

import "encoding/base64"

// LeafCertB64 is a self-signed ECDSA certificate (CN=leaf.example.com)
// with DNS, IP, email, and URI subjectAltName entries, one of which
// duplicates the common name.
const LeafCertB64 = "MIIB8jCCAZmgAwIBAgIUfsgppudUTXmC0EcPFvjRxY4X+GowCgYIKoZIzj0EAwIwMTEUMBIGA1UECgwLRXhhbXBsZSBPcmcxGTAXBgNVBAMMEGxlYWYuZXhhbXBsZS5jb20wHhcNMjYwNzMxMjM0NTA1WhcNMzYwNzI4MjM0NTA1WjAxMRQwEgYDVQQKDAtFeGFtcGxlIE9yZzEZMBcGA1UEAwwQbGVhZi5leGFtcGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABJQf3BE3+rUJhGePtKxh4K8oGqR7RLulEwlxzxtWoVtiy3cLktxWFTUaXqnPvjvDzanlSH8s2hHMQMQtYyC4Y+ajgY4wgYswXwYDVR0RBFgwVoIQbGVhZi5leGFtcGxlLmNvbYIPYWx0LmV4YW1wbGUuY29thwTAAAIKgRFhZG1pbkBleGFtcGxlLmNvbYYYaHR0cHM6Ly9leGFtcGxlLmNvbS9wYXRoMAkGA1UdEwQCMAAwHQYDVR0OBBYEFP9Q1TokgaeB/448vx0J0LsFV6OMMAoGCCqGSM49BAMCA0cAMEQCIEr7deTDAgu4Gk7/4z8aonNOAFI3B3/nf/CzKyJVt7eeAiBFc3uEypdLPsJW//cedpGojaS76b0O98uTssToVH0Asw=="

// IssuerCertB64 is a self-signed ECDSA CA certificate (CN=Example Root CA).
const IssuerCertB64 = "MIIBmTCCAUCgAwIBAgIUZjlYVxMstrcTel6eTi1tOxAmxuUwCgYIKoZIzj0EAwIwMzEXMBUGA1UECgwORXhhbXBsZSBDQSBPcmcxGDAWBgNVBAMMD0V4YW1wbGUgUm9vdCBDQTAeFw0yNjA3MzEyMzQ1MDZaFw0zNjA3MjgyMzQ1MDZaMDMxFzAVBgNVBAoMDkV4YW1wbGUgQ0EgT3JnMRgwFgYDVQQDDA9FeGFtcGxlIFJvb3QgQ0EwWTATBgcqhkjOPQIBBggqhkjOPQMBBwNCAAS5rzzGnRxlDIgSlraqfxkW/+yhDNcL0EmF4bVB6gQ2Iv/RJ1Sp0Nr7o0VXG6c1L64O9uogeUAvdFoep7Rfg7W0ozIwMDAPBgNVHRMBAf8EBTADAQH/MB0GA1UdDgQWBBS6+pgjMuslJC6JPQb5kWiOX7GzMDAKBggqhkjOPQQDAgNHADBEAiBc/M8toeWYVGnqNavcPSUTgeYM8qNfNFjSI60L+IzPLgIgU40yKqPMKhPPhzHyHWrd5wJb4Pj9eTFwYLLNcGbpMbU="

// LeafTBSCertB64 is the bare TBSCertificate SEQUENCE sliced out of
// LeafCertB64 (everything between the outer Certificate SEQUENCE
// header and its signatureAlgorithm/signatureValue), the shape a
// precert's MerkleTreeLeaf carries instead of a full certificate.
const LeafTBSCertB64 = "MIIBmaADAgECAhR+yCmm51RNeYLQRw8W+NHFjhf4ajAKBggqhkjOPQQDAjAxMRQwEgYDVQQKDAtFeGFtcGxlIE9yZzEZMBcGA1UEAwwQbGVhZi5leGFtcGxlLmNvbTAeFw0yNjA3MzEyMzQ1MDVaFw0zNjA3MjgyMzQ1MDVaMDExFDASBgNVBAoMC0V4YW1wbGUgT3JnMRkwFwYDVQQDDBBsZWFmLmV4YW1wbGUuY29tMFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAElB/cETf6tQmEZ4+0rGHgrygapHtEu6UTCXHPG1ahW2LLdwuS3FYVNRpeqc++O8PNqeVIfyzaEcxAxC1jILhj5qOBjjCBizBfBgNVHREEWDBWghBsZWFmLmV4YW1wbGUuY29tgg9hbHQuZXhhbXBsZS5jb22HBMAAAgqBEWFkbWluQGV4YW1wbGUuY29thhhodHRwczovL2V4YW1wbGUuY29tL3BhdGgwCQYDVR0TBAIwADAdBgNVHQ4EFgQU/1DVOiSBp4H/jjy/HQnQuwVXo4w="

// LeafCertDER, IssuerCertDER, and LeafTBSCertDER are the decoded forms
// of the above.
var (
	LeafCertDER    = mustDecode(LeafCertB64)
	IssuerCertDER  = mustDecode(IssuerCertB64)
	LeafTBSCertDER = mustDecode(LeafTBSCertB64)
)

func mustDecode(b64 string) []byte {
	b, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		panic(err)
	}
	return b
}
