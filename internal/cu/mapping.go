// Package cu handles the Church Slavonic glyph images embedded in scraped
// articles: extracting their hex codes, generating the manual annotation
// page, and substituting Unicode text once a mapping exists.
package cu

import (
	"encoding/json"
	"fmt"
	"os"
)

// Mapping is the hand-built hex-token to Unicode table, loaded once and read
// only. Tokens absent from it are preserved in bracketed form on output so
// coverage gaps stay visible.
type Mapping map[string]string

// LoadMapping reads the token table from a JSON file.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load mapping %s: %w", path, err)
	}
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse mapping %s: %w", path, err)
	}
	return m, nil
}
