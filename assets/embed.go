package assets

import (
	"embed"
)

//go:embed records.json
var FS embed.FS

// RecordsJSON returns the embedded default dataset. It keeps the server
// playable when no DATA_FILE is configured.
func RecordsJSON() ([]byte, error) {
	return FS.ReadFile("records.json")
}
