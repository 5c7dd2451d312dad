package cache

import "strings"

// keySchema is bumped whenever rendered output changes shape, so entries
// written by older builds are never served.
const keySchema = "v1"

// ArtifactKeyOpts are the rendering options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Scale    float64 `json:"scale,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// BundleKeyOpts are the options that change a bundle's files.
type BundleKeyOpts struct {
	PromptStyle string  `json:"prompt_style"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey is the key of one rendered format for an input.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string

	// BundleKey is the key of an assembled bundle for an input.
	BundleKey(inputHash string, opts BundleKeyOpts) string
}

// DefaultKeyer produces "artifact:<sha256>" and "bundle:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	opts.Format = strings.ToLower(opts.Format)
	return hashKey("artifact", keySchema, inputHash, opts)
}

func (DefaultKeyer) BundleKey(inputHash string, opts BundleKeyOpts) string {
	return hashKey("bundle", keySchema, inputHash, opts)
}

// InputHash identifies a generation input. Callers pass normalized
// (trimmed) values.
func InputHash(systemType, problem string) string {
	return Hash([]byte(systemType + "\x00" + problem))
}

// KeyType returns the prefix of a key ("artifact", "bundle"), used to label
// cache events.
func KeyType(key string) string {
	if i := strings.LastIndexByte(key, ':'); i > 0 {
		key = key[:i]
	}
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}
