package rules

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgckit/go-dgc-verifier/models"
)

// LoadSettings reads the provisioned settings bundle from path. The bundle
// is the JSON array of settings exactly as served by the settings endpoint,
// written to disk by the provisioning step.
func LoadSettings(path string) ([]models.Setting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings bundle: %w", err)
	}

	var settings []models.Setting
	if err = json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decode settings bundle %s: %w", path, err)
	}

	return settings, nil
}
