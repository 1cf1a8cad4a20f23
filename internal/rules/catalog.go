// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"strconv"
	"strings"

	"github.com/dgckit/go-dgc-verifier/models"
)

// Names of the catalog settings consumed by the verifier. The catalog is
// provisioned externally; unknown names simply stay absent.
const (
	SettingMaxRetry      = "MAX_RETRY"
	SettingSyncActive    = "DRL_SYNC_ACTIVE"
	SettingBlackListUVCI = "black_list_uvci"

	SettingVaccineStartDayComplete    = "vaccine_start_day_complete"
	SettingVaccineEndDayComplete      = "vaccine_end_day_complete"
	SettingVaccineStartDayNotComplete = "vaccine_start_day_not_complete"
	SettingVaccineEndDayNotComplete   = "vaccine_end_day_not_complete"

	// Country-split vaccine rows used by the reinforced and booster modes:
	// domestically issued certificates follow the _IT rows, foreign ones the
	// _NOT_IT rows plus an optional EMA extension window.
	SettingVaccineStartDayCompleteIT        = "vaccine_start_day_complete_IT"
	SettingVaccineEndDayCompleteIT          = "vaccine_end_day_complete_IT"
	SettingVaccineStartDayCompleteNotIT     = "vaccine_start_day_complete_NOT_IT"
	SettingVaccineEndDayCompleteNotIT       = "vaccine_end_day_complete_NOT_IT"
	SettingVaccineEndDayCompleteExtendedEMA = "vaccine_end_day_complete_extended_EMA"

	SettingRecoveryCertStartDay = "recovery_cert_start_day"
	SettingRecoveryCertEndDay   = "recovery_cert_end_day"

	SettingRapidTestStartHours     = "rapid_test_start_hours"
	SettingRapidTestEndHours       = "rapid_test_end_hours"
	SettingMolecularTestStartHours = "molecular_test_start_hours"
	SettingMolecularTestEndHours   = "molecular_test_end_hours"
)

// blacklistSeparator delimits literal UVCIs inside the blacklist setting.
const blacklistSeparator = ";"

// Catalog is a read-only view over the provisioned settings. Lookups are
// keyed by name, or by (name, type) for rows scoped to a subject such as a
// vaccine product code.
type Catalog struct {
	settings []models.Setting
}

func NewCatalog(settings []models.Setting) *Catalog {
	return &Catalog{settings: settings}
}

// Value returns the raw value of the first untyped match for name, or ""
// when the setting is absent.
func (c *Catalog) Value(name string) string {
	for _, s := range c.settings {
		if s.Name == name {
			return s.Value
		}
	}
	return ""
}

// TypedValue returns the value of the row matching both name and type.
func (c *Catalog) TypedValue(name, settingType string) (string, bool) {
	for _, s := range c.settings {
		if s.Name == name && s.Type == settingType {
			return s.Value, true
		}
	}
	return "", false
}

// IntValue converts the named setting to an integer, falling back to def
// when the setting is absent or not numeric.
func (c *Catalog) IntValue(name string, def int) int {
	raw := c.Value(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

// TypedIntValue converts the (name, type) row to an integer. ok is false
// when the row is absent or not numeric.
func (c *Catalog) TypedIntValue(name, settingType string) (int, bool) {
	raw, found := c.TypedValue(name, settingType)
	if !found {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// BoolValue converts the named setting to a bool, falling back to def when
// the setting is absent or unparseable.
func (c *Catalog) BoolValue(name string, def bool) bool {
	raw := c.Value(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

// HasProduct reports whether the catalog carries any window row typed by the
// given vaccine product code. A product without configured windows never
// validates.
func (c *Catalog) HasProduct(product string) bool {
	_, found := c.TypedValue(SettingVaccineEndDayComplete, product)
	return found
}

// Blacklist returns the literal UVCIs of the blacklist setting. Empty
// fragments produced by stray separators are dropped.
func (c *Catalog) Blacklist() []string {
	raw := c.Value(SettingBlackListUVCI)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, blacklistSeparator)
	blacklist := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			blacklist = append(blacklist, p)
		}
	}
	return blacklist
}

// IsBlacklisted reports whether the literal uvci appears in the blacklist
// setting.
func (c *Catalog) IsBlacklisted(uvci string) bool {
	for _, listed := range c.Blacklist() {
		if listed == uvci {
			return true
		}
	}
	return false
}
