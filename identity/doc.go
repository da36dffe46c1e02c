// Package identity maintains this instance's advertised network
// identity (host name and IP address) and keeps it synchronized with
// authoritative data-center metadata.
//
// DataCenterInfo is a tagged variant over "where am I running": the
// Amazon variant carries a metadata mapping populated out-of-band; the
// MyOwn variant carries nothing and never participates in
// metadata-based refresh.
//
// Manager owns the identity snapshot. RefreshIfRequired re-resolves
// the advertised addresses against the current metadata and, when one
// changed, updates the snapshot atomically and notifies registered
// listeners so the replication component can re-register. Refresh
// failures are absorbed: a failed attempt leaves the snapshot intact
// and a later attempt self-corrects.
package identity
