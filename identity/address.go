package identity

// HostNameProvider supplies the fallback host name used when
// metadata-based resolution yields nothing. forceRefresh asks the
// provider to recompute rather than serve a cached value.
type HostNameProvider func(forceRefresh bool) (string, error)

// DefaultAddressResolutionOrder is the built-in metadata-key order for
// resolving the advertised host name.
var DefaultAddressResolutionOrder = []MetadataKey{PublicHostname, LocalIPv4}

// DefaultIPResolutionOrder is the built-in metadata-key order for
// resolving the advertised IP address.
var DefaultIPResolutionOrder = []MetadataKey{LocalIPv4, PublicIPv4}

// ResolveAddress walks order and returns the first metadata value that
// is present and non-empty. When the whole order yields nothing, or dc
// lacks metadata capability, the fallback provider's value is returned
// instead. The walk is purely deterministic over already-materialized
// metadata; it performs no I/O and no retries.
func ResolveAddress(order []MetadataKey, dc *DataCenterInfo, fallback HostNameProvider) (string, error) {
	if dc != nil && dc.HasMetadata() {
		for _, key := range order {
			value, err := dc.Lookup(key)
			if err != nil {
				return "", err
			}
			if value != "" {
				return value, nil
			}
		}
	}
	if fallback == nil {
		return "", nil
	}
	return fallback(false)
}

// ParseResolutionOrder converts configured order tokens into metadata
// keys, falling back to def when no tokens are configured.
func ParseResolutionOrder(tokens []string, def []MetadataKey) []MetadataKey {
	if len(tokens) == 0 {
		return def
	}
	order := make([]MetadataKey, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		order = append(order, MetadataKey(tok))
	}
	if len(order) == 0 {
		return def
	}
	return order
}
