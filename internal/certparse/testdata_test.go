package certparse

import "encoding/base64"

// dirNameCertB64 is a DER-encoded self-signed ECDSA certificate
// generated with openssl carrying a directoryName subjectAltName
// entry, for test purposes only.
const dirNameCertB64 = "MIIB1DCCAXqgAwIBAgIUcNODoG0RV7vlERRtccJpUPGDKvUwCgYIKoZIzj0EAwIwNDEUMBIGA1UECgwLRXhhbXBsZSBPcmcxHDAaBgNVBAMME2Rpcm5hbWUuZXhhbXBsZS5jb20wHhcNMjYwNzMxMjM0NTMyWhcNMzYwNzI4MjM0NTMyWjA0MRQwEgYDVQQKDAtFeGFtcGxlIE9yZzEcMBoGA1UEAwwTZGlybmFtZS5leGFtcGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABGsikBbZXv6woeiJZPIUoqDMk/l6uB+SptxTRynxG6pN2jCh3PHIDVNQx6CHSvm/guM0rZBoAWjMc/39c7gP3pCjajBoMDwGA1UdEQQ1MDOkMTAvMRYwFAYDVQQKDA1EaXJlY3RvcnkgT3JnMRUwEwYDVQQDDAxEaXJlY3RvcnkgQ04wCQYDVR0TBAIwADAdBgNVHQ4EFgQUQVsGTdkNd01RDnnjj1jeamRUln0wCgYIKoZIzj0EAwIDSAAwRQIhAOCEkCPfmmP0pNusrwfPTrqXzYirMymQSIxo6GZzxch4AiArtR8FHzQjQI5rKcSGnSEX4+RLKWYU1ZNJznPQfRmoaQ=="

const leafCertB64 = "MIIB8jCCAZmgAwIBAgIUfsgppudUTXmC0EcPFvjRxY4X+GowCgYIKoZIzj0EAwIwMTEUMBIGA1UECgwLRXhhbXBsZSBPcmcxGTAXBgNVBAMMEGxlYWYuZXhhbXBsZS5jb20wHhcNMjYwNzMxMjM0NTA1WhcNMzYwNzI4MjM0NTA1WjAxMRQwEgYDVQQKDAtFeGFtcGxlIE9yZzEZMBcGA1UEAwwQbGVhZi5leGFtcGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABJQf3BE3+rUJhGePtKxh4K8oGqR7RLulEwlxzxtWoVtiy3cLktxWFTUaXqnPvjvDzanlSH8s2hHMQMQtYyC4Y+ajgY4wgYswXwYDVR0RBFgwVoIQbGVhZi5leGFtcGxlLmNvbYIPYWx0LmV4YW1wbGUuY29thwTAAAIKgRFhZG1pbkBleGFtcGxlLmNvbYYYaHR0cHM6Ly9leGFtcGxlLmNvbS9wYXRoMAkGA1UdEwQCMAAwHQYDVR0OBBYEFP9Q1TokgaeB/448vx0J0LsFV6OMMAoGCCqGSM49BAMCA0cAMEQCIEr7deTDAgu4Gk7/4z8aonNOAFI3B3/nf/CzKyJVt7eeAiBFc3uEypdLPsJW//cedpGojaS76b0O98uTssToVH0Asw=="

const issuerCertB64 = "MIIBmTCCAUCgAwIBAgIUZjlYVxMstrcTel6eTi1tOxAmxuUwCgYIKoZIzj0EAwIwMzEXMBUGA1UECgwORXhhbXBsZSBDQSBPcmcxGDAWBgNVBAMMD0V4YW1wbGUgUm9vdCBDQTAeFw0yNjA3MzEyMzQ1MDZaFw0zNjA3MjgyMzQ1MDZaMDMxFzAVBgNVBAoMDkV4YW1wbGUgQ0EgT3JnMRgwFgYDVQQDDA9FeGFtcGxlIFJvb3QgQ0EwWTATBgcqhkjOPQIBBggqhkjOPQMBBwNCAAS5rzzGnRxlDIgSlraqfxkW/+yhDNcL0EmF4bVB6gQ2Iv/RJ1Sp0Nr7o0VXG6c1L64O9uogeUAvdFoep7Rfg7W0ozIwMDAPBgNVHRMBAf8EBTADAQH/MB0GA1UdDgQWBBS6+pgjMuslJC6JPQb5kWiOX7GzMDAKBggqhkjOPQQDAgNHADBEAiBc/M8toeWYVGnqNavcPSUTgeYM8qNfNFjSI60L+IzPLgIgU40yKqPMKhPPhzHyHWrd5wJb4Pj9eTFwYLLNcGbpMbU="

func mustDecode(b64 string) []byte {
	b, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		panic(err)
	}
	return b
}
