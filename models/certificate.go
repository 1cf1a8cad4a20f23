package models

import "time"

// CertificateType is the extended type of a decoded health certificate
// statement. It drives validator selection together with the scan mode.
type CertificateType int

const (
	// CertificateUnknown marks a statement whose type could not be
	// recognised. Certificates of this type never validate.
	CertificateUnknown CertificateType = 0

	// CertificateVaccine represents a vaccination statement.
	CertificateVaccine CertificateType = 1

	// CertificateRecovery represents a recovery statement.
	CertificateRecovery CertificateType = 2

	// CertificateTest represents a test-result statement.
	CertificateTest CertificateType = 3

	// CertificateVaccineExemption represents a vaccination exemption
	// statement.
	CertificateVaccineExemption CertificateType = 4
)

// ScanMode is the acceptance policy context under which a certificate is
// being checked.
type ScanMode string

const (
	ScanModeBase       ScanMode = "base"
	ScanModeReinforced ScanMode = "reinforced"
	ScanModeBooster    ScanMode = "booster"
	ScanModeItalyEntry ScanMode = "italyEntry"
)

// TestType discriminates the two supported test kinds; each has its own
// validity window settings.
type TestType string

const (
	TestTypeRapid     TestType = "rapid"
	TestTypeMolecular TestType = "molecular"
)

// TestResultNegative is the value of TestResult that a test statement must
// carry to be eligible for validation at all.
const TestResultNegative = "negative"

// CertificateStatement is the decoded, signature-verified statement of a
// digital health certificate. Decoding (base45/CBOR/COSE) and cryptographic
// verification happen upstream; this package consumes the statement
// read-only.
//
// Only the fields relevant to the statement's CertificateType are populated;
// the rest stay zero.
type CertificateStatement struct {
	// Type is the extended certificate type.
	Type CertificateType `json:"type"`

	// IssuingCountry is the ISO 3166-1 alpha-2 code of the issuing country.
	IssuingCountry string `json:"issuing_country"`

	// UVCI is the unique certificate identifier. It is hashed before any
	// lookup against the revocation set; the literal value is only compared
	// against the blacklist setting.
	UVCI string `json:"uvci"`

	// DoseText is the free-text dose field of a vaccination statement,
	// e.g. "2/2". Digits are extracted as "current dose / total doses".
	DoseText string `json:"dose_text,omitempty"`

	// MedicalProduct is the vaccine product code (e.g. "EU/1/20/1528").
	// Products absent from the rule catalog do not validate.
	MedicalProduct string `json:"medical_product,omitempty"`

	// VaccinationDate is the date of the vaccination event.
	VaccinationDate time.Time `json:"vaccination_date,omitempty"`

	// TestType distinguishes rapid from molecular tests.
	TestType TestType `json:"test_type,omitempty"`

	// TestResult is the reported outcome of the test.
	TestResult string `json:"test_result,omitempty"`

	// SampleCollectionAt is the moment the test sample was collected.
	SampleCollectionAt time.Time `json:"sample_collection_at,omitempty"`

	// ValidFrom and ValidUntil are the certificate-declared validity bounds
	// of recovery and exemption statements.
	ValidFrom  time.Time `json:"valid_from,omitempty"`
	ValidUntil time.Time `json:"valid_until,omitempty"`
}
