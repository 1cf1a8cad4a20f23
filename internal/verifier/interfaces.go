// SPDX-License-Identifier: Apache-2.0

package verifier

import (
	"context"

	"github.com/dgckit/go-dgc-verifier/models"
)

// Verifier defines the lifecycle and scan contract of the verifier
// application.
type Verifier interface {
	// Run starts background synchronization and blocks until ctx is
	// cancelled.
	Run(ctx context.Context) error

	// Scan validates one decoded certificate under the given scan mode.
	Scan(ctx context.Context, cert models.CertificateStatement, mode models.ScanMode) (models.ValidityDecision, error)
}
