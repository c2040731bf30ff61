package ctstream

import (
	"time"

	"ctstream.dev/internal/model"
)

// These types are defined in internal/model so every internal package
// (wire, certparse, endpoint, pipeline) can construct them without an
// import cycle back through this package; they're aliased here so
// callers only ever see the public ctstream.* names.
type (
	AlternateNameKind        = model.AlternateNameKind
	CertificateAlternateName = model.CertificateAlternateName
	CertificateValidity      = model.CertificateValidity
	Certificate              = model.Certificate
	Entry                    = model.Entry
)

const (
	KindDirectory = model.KindDirectory
	KindHostname  = model.KindHostname
	KindIPAddress = model.KindIPAddress
	KindEmail     = model.KindEmail
	KindURI       = model.KindURI
)

// NewCertificateValidity normalizes a pair of timestamps into a
// CertificateValidity with Begin <= End.
func NewCertificateValidity(a, b time.Time) CertificateValidity {
	return model.NewCertificateValidity(a, b)
}
