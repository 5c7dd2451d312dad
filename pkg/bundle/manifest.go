package bundle

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
)

// ManifestPath is the bundle-relative path of the manifest.
const ManifestPath = "proof.toml"

// Manifest is the machine-readable summary written to proof.toml.
type Manifest struct {
	Name       string         `toml:"name"`
	SystemType string         `toml:"system_type"`
	Problem    string         `toml:"problem"`
	Archetype  archetype.Kind `toml:"archetype"`
	Title      string         `toml:"title"`
	Accent     string         `toml:"accent"`
	Generator  string         `toml:"generator"`
	Files      []string       `toml:"files"`
}

// Encode writes the manifest as TOML.
func (m Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseManifest reads a proof.toml document.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	_, err := toml.Decode(string(data), &m)
	return m, err
}
