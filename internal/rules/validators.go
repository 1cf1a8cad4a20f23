// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"strconv"
	"strings"
	"time"

	"github.com/dgckit/go-dgc-verifier/models"
)

// boosterMinDose is the dose number from which a vaccination counts as a
// booster when the dose counter does not exceed the declared total.
const boosterMinDose = 3

// Default validity windows applied when the catalog carries no row for the
// corresponding setting.
const (
	defaultRecoveryEndDays       = 180
	defaultRapidTestEndHours     = 48
	defaultMolecularTestEndHours = 72
)

// evaluateWindow applies the shared tri-state date rule. extendedEnd is
// optional; pass the zero time when no extension window is defined.
func evaluateWindow(now, start, end, extendedEnd time.Time) (models.ValidityStatus, models.InvalidityReason) {
	switch {
	case now.Before(start):
		return models.StatusPartiallyValid, models.ReasonNotYetValid
	case !now.After(end):
		return models.StatusValid, ""
	case !extendedEnd.IsZero() && !now.After(extendedEnd):
		return models.StatusPartiallyValid, models.ReasonExtendedWindow
	default:
		return models.StatusNotValid, models.ReasonExpired
	}
}

// parseDoses extracts the digit runs of a free-text dose field such as
// "2/2". The first run is the administered dose, the last the declared
// total of the cycle.
func parseDoses(doseText string) (current, total int, ok bool) {
	var runs []int
	digits := ""
	for _, r := range doseText + " " {
		if r >= '0' && r <= '9' {
			digits += string(r)
			continue
		}
		if digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return 0, 0, false
			}
			runs = append(runs, n)
			digits = ""
		}
	}

	if len(runs) == 0 {
		return 0, 0, false
	}
	return runs[0], runs[len(runs)-1], true
}

// vaccineConfig selects the catalog rows for a vaccine rule variant. Empty
// setting names fall back to the base complete-cycle rows; boosterPolicy
// additionally requires a booster dose for full validity.
type vaccineConfig struct {
	startComplete string
	endComplete   string
	extendedEnd   string
	boosterPolicy bool
}

func vaccineRule(cfg vaccineConfig) ruleFn {
	if cfg.startComplete == "" {
		cfg.startComplete = SettingVaccineStartDayComplete
	}
	if cfg.endComplete == "" {
		cfg.endComplete = SettingVaccineEndDayComplete
	}

	return func(e *Engine, cert models.CertificateStatement) (models.ValidityStatus, models.InvalidityReason) {
		current, total, ok := parseDoses(cert.DoseText)
		if !ok || cert.VaccinationDate.IsZero() {
			return models.StatusNotValid, models.ReasonMalformed
		}

		if !e.catalog.HasProduct(cert.MedicalProduct) {
			return models.StatusNotValid, models.ReasonUnrecognizedProduct
		}

		isLastDose := current >= total

		if !isLastDose {
			if cfg.boosterPolicy {
				return models.StatusNotValid, models.ReasonNotAccepted
			}
			return e.vaccineWindow(cert,
				SettingVaccineStartDayNotComplete,
				SettingVaccineEndDayNotComplete,
				"")
		}

		status, reason := e.vaccineWindow(cert, cfg.startComplete, cfg.endComplete, cfg.extendedEnd)

		// A completed primary cycle without a booster dose only grants entry
		// together with a negative test under the booster policy.
		isBooster := current > total || current >= boosterMinDose
		if cfg.boosterPolicy && status == models.StatusValid && !isBooster {
			return models.StatusPartiallyValid, models.ReasonTestRequired
		}

		return status, reason
	}
}

// vaccineWindow resolves the product-typed day offsets and evaluates the
// window. Country-split rows fall back to the base rows when the catalog
// does not carry the split variant.
func (e *Engine) vaccineWindow(cert models.CertificateStatement, startName, endName, extendedName string) (models.ValidityStatus, models.InvalidityReason) {
	startDays, found := e.catalog.TypedIntValue(startName, cert.MedicalProduct)
	if !found {
		startDays, found = e.catalog.TypedIntValue(SettingVaccineStartDayComplete, cert.MedicalProduct)
		if !found {
			return models.StatusNotValid, models.ReasonUnrecognizedProduct
		}
	}

	endDays, found := e.catalog.TypedIntValue(endName, cert.MedicalProduct)
	if !found {
		endDays, found = e.catalog.TypedIntValue(SettingVaccineEndDayComplete, cert.MedicalProduct)
		if !found {
			return models.StatusNotValid, models.ReasonUnrecognizedProduct
		}
	}

	var extendedEnd time.Time
	if extendedName != "" {
		if extDays, ok := e.catalog.TypedIntValue(extendedName, cert.MedicalProduct); ok {
			extendedEnd = cert.VaccinationDate.AddDate(0, 0, extDays)
		}
	}

	return evaluateWindow(
		e.now(),
		cert.VaccinationDate.AddDate(0, 0, startDays),
		cert.VaccinationDate.AddDate(0, 0, endDays),
		extendedEnd,
	)
}

func recoveryRule(boosterPolicy bool) ruleFn {
	return func(e *Engine, cert models.CertificateStatement) (models.ValidityStatus, models.InvalidityReason) {
		if cert.ValidFrom.IsZero() {
			return models.StatusNotValid, models.ReasonMalformed
		}

		startDays := e.catalog.IntValue(SettingRecoveryCertStartDay, 0)
		endDays := e.catalog.IntValue(SettingRecoveryCertEndDay, defaultRecoveryEndDays)

		status, reason := evaluateWindow(
			e.now(),
			cert.ValidFrom.AddDate(0, 0, startDays),
			cert.ValidFrom.AddDate(0, 0, endDays),
			time.Time{},
		)

		if boosterPolicy && status == models.StatusValid {
			return models.StatusPartiallyValid, models.ReasonTestRequired
		}
		return status, reason
	}
}

func testRule(e *Engine, cert models.CertificateStatement) (models.ValidityStatus, models.InvalidityReason) {
	if !strings.EqualFold(cert.TestResult, models.TestResultNegative) {
		return models.StatusNotValid, models.ReasonNotAccepted
	}
	if cert.SampleCollectionAt.IsZero() {
		return models.StatusNotValid, models.ReasonMalformed
	}

	var startHours, endHours int
	switch cert.TestType {
	case models.TestTypeRapid:
		startHours = e.catalog.IntValue(SettingRapidTestStartHours, 0)
		endHours = e.catalog.IntValue(SettingRapidTestEndHours, defaultRapidTestEndHours)
	case models.TestTypeMolecular:
		startHours = e.catalog.IntValue(SettingMolecularTestStartHours, 0)
		endHours = e.catalog.IntValue(SettingMolecularTestEndHours, defaultMolecularTestEndHours)
	default:
		return models.StatusNotValid, models.ReasonMalformed
	}

	return evaluateWindow(
		e.now(),
		cert.SampleCollectionAt.Add(time.Duration(startHours)*time.Hour),
		cert.SampleCollectionAt.Add(time.Duration(endHours)*time.Hour),
		time.Time{},
	)
}

func exemptionRule(boosterPolicy bool) ruleFn {
	return func(e *Engine, cert models.CertificateStatement) (models.ValidityStatus, models.InvalidityReason) {
		if cert.ValidFrom.IsZero() || cert.ValidUntil.IsZero() {
			return models.StatusNotValid, models.ReasonMalformed
		}

		status, reason := evaluateWindow(e.now(), cert.ValidFrom, cert.ValidUntil, time.Time{})

		if boosterPolicy && status == models.StatusValid {
			return models.StatusPartiallyValid, models.ReasonTestRequired
		}
		return status, reason
	}
}
