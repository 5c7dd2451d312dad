package cache

// ScopedKeyer prefixes every key of an inner Keyer, giving each deployment
// or user its own namespace in a shared backend.
//
//	keyer := cache.NewScopedKeyer(nil, "proofgen:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}

func (k *ScopedKeyer) BundleKey(inputHash string, opts BundleKeyOpts) string {
	return k.prefix + k.inner.BundleKey(inputHash, opts)
}
