// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"context"
	"time"

	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/internal/store"
	"github.com/dgckit/go-dgc-verifier/internal/utils"
	"github.com/dgckit/go-dgc-verifier/models"
)

// Engine turns a decoded certificate statement plus the live rule catalog
// into a tri-state validity decision. Rule selection is a pure function of
// (scan mode, certificate type, home-issued); the revocation and blacklist
// checks run first and override any date-window outcome.
type Engine struct {
	catalog     *Catalog
	revocations store.RevocationRepository
	homeCountry string

	uuid *utils.UUIDGenerator
	now  func() time.Time

	dispatch map[dispatchKey]ruleFn
	logger   *logger.Logger
}

func NewEngine(catalog *Catalog, revocations store.RevocationRepository, homeCountry string, logger *logger.Logger) *Engine {
	return &Engine{
		catalog:     catalog,
		revocations: revocations,
		homeCountry: homeCountry,
		uuid:        utils.NewUUIDGenerator(),
		now:         time.Now,
		dispatch:    newDispatchTable(),
		logger:      logger,
	}
}

// Validate evaluates cert under the given scan mode. The outcome is never an
// error: any failure to evaluate (malformed fields, unreadable revocation
// store) degrades the certificate to notValid.
func (e *Engine) Validate(ctx context.Context, cert models.CertificateStatement, mode models.ScanMode) models.ValidityDecision {
	decision := models.ValidityDecision{
		ScanID:   e.uuid.Generate(),
		ScanMode: mode,
	}

	if cert.UVCI == "" {
		decision.Status, decision.Reason = models.StatusNotValid, models.ReasonMalformed
		return decision
	}

	revoked, err := e.revocations.Contains(ctx, utils.HashUVCI(cert.UVCI))
	if err != nil {
		e.logger.Err(err).
			Str("func", "Engine.Validate").
			Str("scan_id", decision.ScanID).
			Msg("revocation lookup failed, refusing certificate")
		decision.Status, decision.Reason = models.StatusNotValid, models.ReasonMalformed
		return decision
	}
	if revoked {
		decision.Status, decision.Reason = models.StatusNotValid, models.ReasonRevoked
		return decision
	}

	if e.catalog.IsBlacklisted(cert.UVCI) {
		decision.Status, decision.Reason = models.StatusNotValid, models.ReasonBlacklisted
		return decision
	}

	rule, found := e.dispatch[dispatchKey{
		mode:       mode,
		certType:   cert.Type,
		homeIssued: cert.IssuingCountry == e.homeCountry,
	}]
	if !found {
		decision.Status, decision.Reason = models.StatusNotValid, models.ReasonNotAccepted
		return decision
	}

	decision.Status, decision.Reason = rule(e, cert)

	e.logger.Debug().
		Str("func", "Engine.Validate").
		Str("scan_id", decision.ScanID).
		Str("scan_mode", string(mode)).
		Str("status", string(decision.Status)).
		Msg("certificate validated")

	return decision
}
