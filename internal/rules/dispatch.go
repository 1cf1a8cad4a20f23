package rules

import (
	"github.com/dgckit/go-dgc-verifier/models"
)

// dispatchKey selects the validity rule for one scan. homeIssued only
// matters for the vaccine rows of the reinforced and booster modes; the
// other rows are registered for both values.
type dispatchKey struct {
	mode       models.ScanMode
	certType   models.CertificateType
	homeIssued bool
}

// ruleFn evaluates one certificate under an already-selected rule. The
// revocation and blacklist checks have passed by the time a rule runs.
type ruleFn func(e *Engine, cert models.CertificateStatement) (models.ValidityStatus, models.InvalidityReason)

func newDispatchTable() map[dispatchKey]ruleFn {
	table := make(map[dispatchKey]ruleFn)

	register := func(mode models.ScanMode, certType models.CertificateType, fn ruleFn) {
		table[dispatchKey{mode: mode, certType: certType, homeIssued: true}] = fn
		table[dispatchKey{mode: mode, certType: certType, homeIssued: false}] = fn
	}

	for _, mode := range []models.ScanMode{
		models.ScanModeBase,
		models.ScanModeReinforced,
		models.ScanModeBooster,
		models.ScanModeItalyEntry,
	} {
		register(mode, models.CertificateUnknown, alwaysNotValid)
	}

	register(models.ScanModeBase, models.CertificateVaccine, vaccineRule(vaccineConfig{}))
	register(models.ScanModeBase, models.CertificateRecovery, recoveryRule(false))
	register(models.ScanModeBase, models.CertificateTest, testRule)
	register(models.ScanModeBase, models.CertificateVaccineExemption, exemptionRule(false))

	table[dispatchKey{models.ScanModeReinforced, models.CertificateVaccine, true}] = vaccineRule(vaccineConfig{
		startComplete: SettingVaccineStartDayCompleteIT,
		endComplete:   SettingVaccineEndDayCompleteIT,
	})
	table[dispatchKey{models.ScanModeReinforced, models.CertificateVaccine, false}] = vaccineRule(vaccineConfig{
		startComplete: SettingVaccineStartDayCompleteNotIT,
		endComplete:   SettingVaccineEndDayCompleteNotIT,
		extendedEnd:   SettingVaccineEndDayCompleteExtendedEMA,
	})
	register(models.ScanModeReinforced, models.CertificateRecovery, recoveryRule(false))
	register(models.ScanModeReinforced, models.CertificateTest, rejectCertificate)
	register(models.ScanModeReinforced, models.CertificateVaccineExemption, exemptionRule(false))

	table[dispatchKey{models.ScanModeBooster, models.CertificateVaccine, true}] = vaccineRule(vaccineConfig{
		startComplete: SettingVaccineStartDayCompleteIT,
		endComplete:   SettingVaccineEndDayCompleteIT,
		boosterPolicy: true,
	})
	table[dispatchKey{models.ScanModeBooster, models.CertificateVaccine, false}] = vaccineRule(vaccineConfig{
		startComplete: SettingVaccineStartDayCompleteNotIT,
		endComplete:   SettingVaccineEndDayCompleteNotIT,
		extendedEnd:   SettingVaccineEndDayCompleteExtendedEMA,
		boosterPolicy: true,
	})
	register(models.ScanModeBooster, models.CertificateRecovery, recoveryRule(true))
	register(models.ScanModeBooster, models.CertificateTest, rejectCertificate)
	register(models.ScanModeBooster, models.CertificateVaccineExemption, exemptionRule(true))

	register(models.ScanModeItalyEntry, models.CertificateVaccine, vaccineRule(vaccineConfig{}))
	register(models.ScanModeItalyEntry, models.CertificateRecovery, recoveryRule(false))
	register(models.ScanModeItalyEntry, models.CertificateTest, testRule)
	register(models.ScanModeItalyEntry, models.CertificateVaccineExemption, rejectCertificate)

	return table
}

func alwaysNotValid(_ *Engine, _ models.CertificateStatement) (models.ValidityStatus, models.InvalidityReason) {
	return models.StatusNotValid, models.ReasonNotAccepted
}

// rejectCertificate covers the rows a scan mode excludes outright, e.g. test
// certificates under the reinforced policy.
func rejectCertificate(_ *Engine, _ models.CertificateStatement) (models.ValidityStatus, models.InvalidityReason) {
	return models.StatusNotValid, models.ReasonNotAccepted
}
