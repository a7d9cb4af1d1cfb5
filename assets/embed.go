// assets/embed.go
//
// Embedded default game data. Each JSON file fully describes one daily
// game: its kind, share URL, attribute schema (if any), puzzle records,
// and guessable vocabulary. Deployments can override the data directory
// via GUESSLE_DATA_DIR; these embedded copies keep the server runnable
// with no configuration.

package assets

import "embed"

//go:embed capitale.json foodle.json creaturedle.json
var FS embed.FS

// GameFiles lists the embedded game data files in catalog order.
func GameFiles() []string {
	return []string{"capitale.json", "foodle.json", "creaturedle.json"}
}

// ReadGame returns the raw JSON for one embedded game file.
func ReadGame(name string) ([]byte, error) {
	return FS.ReadFile(name)
}
