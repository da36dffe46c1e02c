package identity

import (
	"errors"
	"sync"
)

// Common identity errors.
var (
	// ErrNoMetadata is returned when metadata is requested from a
	// data-center variant that has none.
	ErrNoMetadata = errors.New("data center variant carries no metadata")
)

// MetadataKey identifies one field of cloud host metadata.
type MetadataKey string

// Metadata keys exposed by the Amazon data-center variant.
const (
	PublicHostname   MetadataKey = "publicHostname"
	PublicIPv4       MetadataKey = "publicIpv4"
	LocalIPv4        MetadataKey = "localIpv4"
	LocalHostname    MetadataKey = "localHostname"
	InstanceIDKey    MetadataKey = "instanceId"
	AMIID            MetadataKey = "amiId"
	AvailabilityZone MetadataKey = "availabilityZone"
	InstanceType     MetadataKey = "instanceType"
	MAC              MetadataKey = "mac"
	VPCID            MetadataKey = "vpcId"
	AccountID        MetadataKey = "accountId"
)

// DataCenterName tags a DataCenterInfo variant.
type DataCenterName string

const (
	// Amazon is the cloud-hosted, metadata-bearing variant.
	Amazon DataCenterName = "Amazon"

	// MyOwn is the generic variant with no metadata capability.
	MyOwn DataCenterName = "MyOwn"
)

// DataCenterInfo is a tagged variant over the hosting environment.
// Only the Amazon variant carries metadata. The mapping is populated
// out-of-band by a metadata refresher, so access is guarded for
// concurrent readers and writers.
type DataCenterInfo struct {
	name DataCenterName

	mu       sync.RWMutex
	metadata map[MetadataKey]string
}

// NewAmazonInfo creates the metadata-bearing variant, pre-populated
// with the given mapping (which may be nil or empty).
func NewAmazonInfo(metadata map[MetadataKey]string) *DataCenterInfo {
	m := make(map[MetadataKey]string, len(metadata))
	for k, v := range metadata {
		m[k] = v
	}
	return &DataCenterInfo{name: Amazon, metadata: m}
}

// NewMyOwnInfo creates the generic variant with no metadata.
func NewMyOwnInfo() *DataCenterInfo {
	return &DataCenterInfo{name: MyOwn}
}

// Name returns the variant tag.
func (d *DataCenterInfo) Name() DataCenterName {
	return d.name
}

// HasMetadata reports whether this variant carries host metadata.
func (d *DataCenterInfo) HasMetadata() bool {
	return d.name == Amazon
}

// Lookup returns the metadata value for key. It returns ErrNoMetadata
// for variants without metadata capability; a missing key is not an
// error and yields the empty string.
func (d *DataCenterInfo) Lookup(key MetadataKey) (string, error) {
	if !d.HasMetadata() {
		return "", ErrNoMetadata
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.metadata[key], nil
}

// Metadata returns a copy of the metadata mapping, or ErrNoMetadata
// for variants without metadata capability.
func (d *DataCenterInfo) Metadata() (map[MetadataKey]string, error) {
	if !d.HasMetadata() {
		return nil, ErrNoMetadata
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[MetadataKey]string, len(d.metadata))
	for k, v := range d.metadata {
		out[k] = v
	}
	return out, nil
}

// SetMetadata stores one metadata value. It returns ErrNoMetadata for
// variants without metadata capability.
func (d *DataCenterInfo) SetMetadata(key MetadataKey, value string) error {
	if !d.HasMetadata() {
		return ErrNoMetadata
	}
	d.mu.Lock()
	d.metadata[key] = value
	d.mu.Unlock()
	return nil
}
