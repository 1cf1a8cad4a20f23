package models

// Setting is one key/value entry of the remotely provisioned rule catalog,
// exactly as served by the settings endpoint. Settings are consumed
// read-only; their refresh is an external collaborator concern.
type Setting struct {
	// Name identifies the rule, e.g. "vaccine_end_day_complete".
	Name string `json:"name"`

	// Type scopes the rule to a subject, typically a vaccine product code.
	// Empty for global settings.
	Type string `json:"type"`

	// Value is the raw string value; callers convert as needed.
	Value string `json:"value"`
}
