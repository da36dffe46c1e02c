package identity

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jvcoutinho/eureka/logger"
)

// AddressConfig supplies the configured address resolution orders.
// *config.ClientConfig satisfies it.
type AddressConfig interface {
	// DefaultAddressResolutionOrder is the configured host-name order;
	// nil or empty selects the built-in default.
	DefaultAddressResolutionOrder() []string

	// DefaultIPAddressResolutionOrder is the configured IP order; nil
	// or empty selects the built-in default.
	DefaultIPAddressResolutionOrder() []string
}

// Descriptor is the initial identity supplied at construction.
type Descriptor struct {
	// InstanceID uniquely identifies this instance in the registry.
	// Defaulted to a random UUID when empty.
	InstanceID string

	// HostName is the initially advertised host name.
	HostName string

	// IPAddr is the initially advertised IP address.
	IPAddr string
}

// Snapshot is the cached identity of this instance. It is a value:
// accessors hand out copies, so a reader can never observe a torn
// update.
type Snapshot struct {
	InstanceID  string
	HostName    string
	IPAddr      string
	LastUpdated time.Time
	Dirty       bool
}

// Listener is notified with the updated snapshot after an identity
// change has been applied.
type Listener func(Snapshot)

// Manager owns the identity snapshot and keeps it synchronized with
// the data-center metadata. It is safe for concurrent use: refresh may
// be driven by a background scheduler and triggered synchronously at
// the same time.
type Manager struct {
	cfg      AddressConfig
	dc       *DataCenterInfo
	fallback HostNameProvider
	log      *logger.Logger

	mu   sync.RWMutex
	snap Snapshot

	lmu       sync.RWMutex
	listeners map[string]Listener
}

// NewManager creates a Manager seeded with the initial descriptor.
// The snapshot starts clean; it is mutated only by RefreshIfRequired.
// A nil cfg selects the built-in address resolution orders.
func NewManager(cfg AddressConfig, dc *DataCenterInfo, initial Descriptor, fallback HostNameProvider, log *logger.Logger) *Manager {
	if initial.InstanceID == "" {
		initial.InstanceID = uuid.NewString()
	}
	if log == nil {
		log = logger.NewDefault("eureka")
	}
	return &Manager{
		cfg:      cfg,
		dc:       dc,
		fallback: fallback,
		log:      log.WithComponent("identity"),
		snap: Snapshot{
			InstanceID: initial.InstanceID,
			HostName:   initial.HostName,
			IPAddr:     initial.IPAddr,
		},
		listeners: make(map[string]Listener),
	}
}

// Identity returns the current snapshot.
func (m *Manager) Identity() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// MarkClean clears the dirty flag once the replication component has
// published the current snapshot. Nothing else changes.
func (m *Manager) MarkClean() {
	m.mu.Lock()
	m.snap.Dirty = false
	m.mu.Unlock()
}

// RegisterListener adds a change listener under id, replacing any
// previous listener with the same id.
func (m *Manager) RegisterListener(id string, fn Listener) {
	m.lmu.Lock()
	m.listeners[id] = fn
	m.lmu.Unlock()
}

// UnregisterListener removes the listener registered under id.
func (m *Manager) UnregisterListener(id string) {
	m.lmu.Lock()
	delete(m.listeners, id)
	m.lmu.Unlock()
}

// RefreshIfRequired re-resolves the advertised host name and IP
// address against the current metadata and applies them to the
// snapshot when either changed. It reports whether the snapshot
// changed.
//
// Resolution failures are absorbed and logged: refresh is retried
// periodically by an external scheduler, so a failed attempt behaves
// exactly like "nothing changed" and a later attempt self-corrects.
func (m *Manager) RefreshIfRequired() bool {
	if m.dc == nil || !m.dc.HasMetadata() {
		return false
	}

	hostOrder := DefaultAddressResolutionOrder
	ipOrder := DefaultIPResolutionOrder
	if m.cfg != nil {
		hostOrder = ParseResolutionOrder(m.cfg.DefaultAddressResolutionOrder(), hostOrder)
		ipOrder = ParseResolutionOrder(m.cfg.DefaultIPAddressResolutionOrder(), ipOrder)
	}

	hostName, err := ResolveAddress(hostOrder, m.dc, m.fallback)
	if err != nil {
		m.log.Warn("identity refresh skipped", map[string]interface{}{
			"field": "hostName", "error": err.Error(),
		})
		return false
	}
	ipAddr, err := ResolveAddress(ipOrder, m.dc, m.fallback)
	if err != nil {
		m.log.Warn("identity refresh skipped", map[string]interface{}{
			"field": "ipAddr", "error": err.Error(),
		})
		return false
	}

	m.mu.RLock()
	unchanged := hostName == m.snap.HostName && ipAddr == m.snap.IPAddr
	m.mu.RUnlock()
	if unchanged {
		return false
	}

	m.mu.Lock()
	if hostName == m.snap.HostName && ipAddr == m.snap.IPAddr {
		// A concurrent refresh applied the same result first.
		m.mu.Unlock()
		return false
	}
	m.snap.HostName = hostName
	m.snap.IPAddr = ipAddr
	m.snap.Dirty = true
	m.snap.LastUpdated = time.Now()
	updated := m.snap
	m.mu.Unlock()

	m.log.Info("instance identity updated", map[string]interface{}{
		"hostName": updated.HostName, "ipAddr": updated.IPAddr,
	})
	m.notify(updated)
	return true
}

// notify invokes listeners outside the snapshot critical section, in
// the refreshing goroutine, with the snapshot captured at update time.
func (m *Manager) notify(snap Snapshot) {
	m.lmu.RLock()
	fns := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.lmu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}
