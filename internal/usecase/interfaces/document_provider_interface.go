package interfaces

import (
	"context"
	"time"
)

// AgreementSubmission carries the structured contract fields handed to the
// document/e-signature provider. The rendered contract text itself is the
// provider's concern.
type AgreementSubmission struct {
	BundleID      string
	BundleName    string
	CustomerName  string
	CustomerEmail string
	SignatureText string
	SignedAt      time.Time
	MonthlyPrice  float64
	TermMonths    int
}

// IDocumentProvider abstracts the e-signature collaborator. It returns an
// opaque reference usable to retrieve the stored document later.
type IDocumentProvider interface {
	SubmitAgreement(ctx context.Context, sub AgreementSubmission) (documentRef string, err error)
}
