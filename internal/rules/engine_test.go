// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/internal/mock"
	"github.com/dgckit/go-dgc-verifier/internal/utils"
	"github.com/dgckit/go-dgc-verifier/models"
)

const testHomeCountry = "IT"

// testNow — фиксированный момент «сейчас» для всех тестов движка
var testNow = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func defaultSettings() []models.Setting {
	return []models.Setting{
		{Name: SettingVaccineStartDayComplete, Type: "EU/1/20/1528", Value: "0"},
		{Name: SettingVaccineEndDayComplete, Type: "EU/1/20/1528", Value: "180"},
		{Name: SettingVaccineStartDayNotComplete, Type: "EU/1/20/1528", Value: "15"},
		{Name: SettingVaccineEndDayNotComplete, Type: "EU/1/20/1528", Value: "84"},
		{Name: SettingRecoveryCertStartDay, Value: "0"},
		{Name: SettingRecoveryCertEndDay, Value: "180"},
		{Name: SettingRapidTestStartHours, Value: "0"},
		{Name: SettingRapidTestEndHours, Value: "48"},
		{Name: SettingMolecularTestStartHours, Value: "0"},
		{Name: SettingMolecularTestEndHours, Value: "72"},
		{Name: SettingBlackListUVCI, Value: "01IT_BLACKLISTED"},
	}
}

func newTestEngine(t *testing.T, settings []models.Setting) (*Engine, *mock.MockRevocationRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mock.NewMockRevocationRepository(ctrl)

	engine := NewEngine(NewCatalog(settings), mockRepo, testHomeCountry, logger.Nop())
	engine.now = func() time.Time { return testNow }

	return engine, mockRepo
}

func vaccineCert(doseText string, vaccinatedAt time.Time) models.CertificateStatement {
	return models.CertificateStatement{
		Type:            models.CertificateVaccine,
		IssuingCountry:  "IT",
		UVCI:            "01IT0123456789",
		DoseText:        doseText,
		MedicalProduct:  "EU/1/20/1528",
		VaccinationDate: vaccinatedAt,
	}
}

func expectNotRevoked(mockRepo *mock.MockRevocationRepository, uvci string) {
	mockRepo.EXPECT().
		Contains(gomock.Any(), utils.HashUVCI(uvci)).
		Return(false, nil)
}

func TestValidate_RevokedOverridesValidWindow(t *testing.T) {
	engine, mockRepo := newTestEngine(t, defaultSettings())

	cert := vaccineCert("2/2", testNow.AddDate(0, 0, -30))
	mockRepo.EXPECT().
		Contains(gomock.Any(), utils.HashUVCI(cert.UVCI)).
		Return(true, nil)

	decision := engine.Validate(context.Background(), cert, models.ScanModeBase)

	assert.Equal(t, models.StatusNotValid, decision.Status)
	assert.Equal(t, models.ReasonRevoked, decision.Reason)
}

func TestValidate_BlacklistedOverridesValidWindow(t *testing.T) {
	engine, mockRepo := newTestEngine(t, defaultSettings())

	cert := vaccineCert("2/2", testNow.AddDate(0, 0, -30))
	cert.UVCI = "01IT_BLACKLISTED"
	expectNotRevoked(mockRepo, cert.UVCI)

	decision := engine.Validate(context.Background(), cert, models.ScanModeBase)

	assert.Equal(t, models.StatusNotValid, decision.Status)
	assert.Equal(t, models.ReasonBlacklisted, decision.Reason)
}

func TestValidate_RevocationLookupError_RefusesCertificate(t *testing.T) {
	engine, mockRepo := newTestEngine(t, defaultSettings())

	cert := vaccineCert("2/2", testNow.AddDate(0, 0, -30))
	mockRepo.EXPECT().
		Contains(gomock.Any(), gomock.Any()).
		Return(false, errors.New("database is locked"))

	decision := engine.Validate(context.Background(), cert, models.ScanModeBase)

	assert.Equal(t, models.StatusNotValid, decision.Status)
	assert.Equal(t, models.ReasonMalformed, decision.Reason)
}

func TestValidate_EmptyUVCI(t *testing.T) {
	engine, _ := newTestEngine(t, defaultSettings())

	decision := engine.Validate(context.Background(), models.CertificateStatement{Type: models.CertificateVaccine}, models.ScanModeBase)

	assert.Equal(t, models.StatusNotValid, decision.Status)
	assert.Equal(t, models.ReasonMalformed, decision.Reason)
}

func TestValidate_UnknownTypeNeverValidates(t *testing.T) {
	for _, mode := range []models.ScanMode{
		models.ScanModeBase,
		models.ScanModeReinforced,
		models.ScanModeBooster,
		models.ScanModeItalyEntry,
	} {
		t.Run(string(mode), func(t *testing.T) {
			engine, mockRepo := newTestEngine(t, defaultSettings())

			cert := models.CertificateStatement{
				Type:           models.CertificateUnknown,
				IssuingCountry: "IT",
				UVCI:           "01IT0123456789",
			}
			expectNotRevoked(mockRepo, cert.UVCI)

			decision := engine.Validate(context.Background(), cert, mode)

			assert.Equal(t, models.StatusNotValid, decision.Status)
		})
	}
}

func TestValidate_DecisionCarriesScanMetadata(t *testing.T) {
	engine, mockRepo := newTestEngine(t, defaultSettings())

	cert := vaccineCert("2/2", testNow.AddDate(0, 0, -30))
	expectNotRevoked(mockRepo, cert.UVCI)

	decision := engine.Validate(context.Background(), cert, models.ScanModeBase)

	assert.NotEmpty(t, decision.ScanID)
	assert.Equal(t, models.ScanModeBase, decision.ScanMode)
}
