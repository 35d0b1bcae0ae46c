// Package save persists the best score between runs. Everything here fails
// soft: a broken or missing save file never interrupts play.
package save

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type record struct {
	BestScore int `json:"best_score"`
}

// Path returns the per-user save location, falling back to the working
// directory when the OS offers no config dir.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "melonfall_save.json"
	}
	return filepath.Join(dir, "melonfall", "save.json")
}

// Load reads the best score at path. Any failure yields 0.
func Load(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	if rec.BestScore < 0 {
		return 0
	}
	return rec.BestScore
}

// Store writes the best score at path, creating parent directories as
// needed. Failures are swallowed.
func Store(path string, best int) {
	data, err := json.MarshalIndent(record{BestScore: best}, "", "  ")
	if err != nil {
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	_ = os.WriteFile(path, data, 0o644)
}
