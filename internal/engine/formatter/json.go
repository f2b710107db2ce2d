package formatter

import (
	"encoding/json"
)

// JSONFormatter outputs a Listing as pretty-printed JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the Listing as indented JSON.
func (f *JSONFormatter) Format(listing Listing) string {
	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		// Fallback: should never happen since Listing is fully serializable.
		return `{"error": "failed to marshal listing"}`
	}
	return string(data) + "\n"
}
