package config

import "strings"

const (
	// DefaultNamespace prefixes every client property key.
	DefaultNamespace = "eureka."

	// DefaultZone is the availability zone assumed when none is
	// configured for a region.
	DefaultZone = "defaultZone"

	// DefaultRegion is the region assumed when neither the namespaced
	// nor the global region property is set.
	DefaultRegion = "us-east-1"

	// globalRegionKey is the namespace-independent region fallback.
	globalRegionKey = "eureka.region"

	defaultExecutorThreadPoolSize = 5
)

// ClientConfig resolves namespaced client properties from a Source.
// It holds no state beyond the source reference and the namespace:
// every getter is a pure function of the store's current contents, so
// hot reloads of the source are visible on the next call.
type ClientConfig struct {
	source    Source
	namespace string
}

// NewClientConfig creates a resolver using the default "eureka."
// namespace.
func NewClientConfig(source Source) *ClientConfig {
	return NewClientConfigWithNamespace(source, DefaultNamespace)
}

// NewClientConfigWithNamespace creates a resolver with a custom
// namespace. An empty namespace selects the default; a trailing dot is
// appended when missing.
func NewClientConfigWithNamespace(source Source, namespace string) *ClientConfig {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if !strings.HasSuffix(namespace, ".") {
		namespace += "."
	}
	return &ClientConfig{source: source, namespace: namespace}
}

// Namespace returns the configured key prefix.
func (c *ClientConfig) Namespace() string {
	return c.namespace
}

// RegistryFetchIntervalSeconds is how often the client fetches registry
// information from the eureka server.
func (c *ClientConfig) RegistryFetchIntervalSeconds() int {
	return c.source.GetInt(c.namespace+"client.refresh.interval", 30)
}

// InstanceInfoReplicationIntervalSeconds is how often the client
// replicates instance changes to the eureka server.
func (c *ClientConfig) InstanceInfoReplicationIntervalSeconds() int {
	return c.source.GetInt(c.namespace+"appinfo.replicate.interval", 30)
}

// InitialInstanceInfoReplicationIntervalSeconds is how long the client
// initially waits before replicating instance info.
func (c *ClientConfig) InitialInstanceInfoReplicationIntervalSeconds() int {
	return c.source.GetInt(c.namespace+"appinfo.initial.replicate.time", 40)
}

// EurekaServiceURLPollIntervalSeconds is how often the list of eureka
// service URLs is polled for changes. The property is expressed in
// milliseconds.
func (c *ClientConfig) EurekaServiceURLPollIntervalSeconds() int {
	return c.source.GetInt(c.namespace+"serviceUrlPollIntervalMs", 5*60*1000) / 1000
}

// ProxyHost is the proxy host for reaching the eureka server, if any.
func (c *ClientConfig) ProxyHost() string {
	return c.source.GetString(c.namespace+"eurekaServer.proxyHost", "")
}

// ProxyPort is the proxy port for reaching the eureka server, if any.
func (c *ClientConfig) ProxyPort() string {
	return c.source.GetString(c.namespace+"eurekaServer.proxyPort", "")
}

// ProxyUserName is the proxy user name, if any.
func (c *ClientConfig) ProxyUserName() string {
	return c.source.GetString(c.namespace+"eurekaServer.proxyUserName", "")
}

// ProxyPassword is the proxy password, if any.
func (c *ClientConfig) ProxyPassword() string {
	return c.source.GetString(c.namespace+"eurekaServer.proxyPassword", "")
}

// ShouldGZipContent indicates whether server content should be fetched
// compressed.
func (c *ClientConfig) ShouldGZipContent() bool {
	return c.source.GetBool(c.namespace+"eurekaServer.gzipContent", true)
}

// EurekaServerReadTimeoutSeconds is the read timeout for eureka server
// connections.
func (c *ClientConfig) EurekaServerReadTimeoutSeconds() int {
	return c.source.GetInt(c.namespace+"eurekaServer.readTimeout", 8)
}

// EurekaServerConnectTimeoutSeconds is the connect timeout for eureka
// server connections.
func (c *ClientConfig) EurekaServerConnectTimeoutSeconds() int {
	return c.source.GetInt(c.namespace+"eurekaServer.connectTimeout", 5)
}

// BackupRegistryImpl names the fallback registry implementation used
// when the eureka server is unreachable on startup.
func (c *ClientConfig) BackupRegistryImpl() string {
	return c.source.GetString(c.namespace+"backupregistry", "")
}

// EurekaServerTotalConnections caps the total connections to eureka
// servers.
func (c *ClientConfig) EurekaServerTotalConnections() int {
	return c.source.GetInt(c.namespace+"eurekaServer.maxTotalConnections", 200)
}

// EurekaServerTotalConnectionsPerHost caps connections per eureka host.
func (c *ClientConfig) EurekaServerTotalConnectionsPerHost() int {
	return c.source.GetInt(c.namespace+"eurekaServer.maxConnectionsPerHost", 50)
}

// EurekaServerURLContext is the URL context used when service URLs are
// assembled from DNS rather than configured explicitly.
func (c *ClientConfig) EurekaServerURLContext() string {
	return c.source.GetString(c.namespace+"eurekaServer.context",
		c.source.GetString(c.namespace+"context", ""))
}

// EurekaServerPort is the port used when service URLs are assembled
// from DNS.
func (c *ClientConfig) EurekaServerPort() string {
	return c.source.GetString(c.namespace+"eurekaServer.port",
		c.source.GetString(c.namespace+"port", ""))
}

// EurekaServerDNSName is the DNS name queried when service URLs are
// assembled from DNS.
func (c *ClientConfig) EurekaServerDNSName() string {
	return c.source.GetString(c.namespace+"eurekaServer.domainName",
		c.source.GetString(c.namespace+"domainName", ""))
}

// ShouldUseDNSForFetchingServiceURLs indicates whether service URLs
// should be discovered via DNS instead of configuration.
func (c *ClientConfig) ShouldUseDNSForFetchingServiceURLs() bool {
	return c.source.GetBool(c.namespace+"shouldUseDns", false)
}

// ShouldRegisterWithEureka indicates whether this instance registers
// itself with the eureka server.
func (c *ClientConfig) ShouldRegisterWithEureka() bool {
	return c.source.GetBool(c.namespace+"registration.enabled", true)
}

// ShouldPreferSameZoneEureka indicates whether the client prefers a
// eureka server in the same availability zone.
func (c *ClientConfig) ShouldPreferSameZoneEureka() bool {
	return c.source.GetBool(c.namespace+"preferSameZone", true)
}

// AllowRedirects indicates whether server redirects are followed.
func (c *ClientConfig) AllowRedirects() bool {
	return c.source.GetBool(c.namespace+"allowRedirects", false)
}

// ShouldLogDeltaDiff indicates whether the full diff between delta and
// full registry fetches is logged.
func (c *ClientConfig) ShouldLogDeltaDiff() bool {
	return c.source.GetBool(c.namespace+"printDeltaFullDiff", false)
}

// ShouldDisableDelta forces full registry fetches instead of deltas.
func (c *ClientConfig) ShouldDisableDelta() bool {
	return c.source.GetBool(c.namespace+"disableDelta", false)
}

// FetchRegistryForRemoteRegions lists remote regions whose registries
// this client also fetches, as a comma-separated string.
func (c *ClientConfig) FetchRegistryForRemoteRegions() string {
	return c.source.GetString(c.namespace+"fetchRemoteRegionsRegistry", "")
}

// Region resolves the deployment region: the namespaced region
// property, then the global eureka.region property, then "us-east-1".
func (c *ClientConfig) Region() string {
	return c.source.GetString(c.namespace+"region",
		c.source.GetString(globalRegionKey, DefaultRegion))
}

// AvailabilityZones lists the availability zones for a region. The
// value is comma-split with no trimming and no empty-token suppression
// to stay byte-for-byte compatible with historical property files.
func (c *ClientConfig) AvailabilityZones(region string) []string {
	raw := c.source.GetString(c.namespace+region+".availabilityZones", DefaultZone)
	return strings.Split(raw, ",")
}

// EurekaServerServiceURLs lists the eureka server URLs for a zone:
// the zone-specific property, falling back to serviceUrl.default when
// the zone entry is absent or empty, falling back to an empty list.
func (c *ClientConfig) EurekaServerServiceURLs(zone string) []string {
	urls := c.source.GetString(c.namespace+"serviceUrl."+zone, "")
	if urls == "" {
		key := c.namespace + "serviceUrl." + "default"
		if !c.source.Has(key) {
			return []string{}
		}
		urls = c.source.GetString(key, "")
	}
	return strings.Split(urls, ",")
}

// ShouldFilterOnlyUpInstances indicates whether only instances in UP
// state are kept after a registry fetch.
func (c *ClientConfig) ShouldFilterOnlyUpInstances() bool {
	return c.source.GetBool(c.namespace+"shouldFilterOnlyUpInstances", true)
}

// EurekaConnectionIdleTimeoutSeconds is how long idle server
// connections are kept before being reaped.
func (c *ClientConfig) EurekaConnectionIdleTimeoutSeconds() int {
	return c.source.GetInt(c.namespace+"eurekaserver.connectionIdleTimeoutInSeconds", 30)
}

// ShouldFetchRegistry indicates whether this client fetches the
// registry at all.
func (c *ClientConfig) ShouldFetchRegistry() bool {
	return c.source.GetBool(c.namespace+"shouldFetchRegistry", true)
}

// RegistryRefreshSingleVIPAddress restricts registry fetches to a
// single VIP address, when set.
func (c *ClientConfig) RegistryRefreshSingleVIPAddress() string {
	return c.source.GetString(c.namespace+"registryRefreshSingleVipAddress", "")
}

// HeartbeatExecutorThreadPoolSize sizes the heartbeat executor.
func (c *ClientConfig) HeartbeatExecutorThreadPoolSize() int {
	return c.source.GetInt(c.namespace+"client.heartbeat.threadPoolSize", defaultExecutorThreadPoolSize)
}

// HeartbeatExecutorExponentialBackOffBound bounds the heartbeat
// executor's exponential backoff multiplier.
func (c *ClientConfig) HeartbeatExecutorExponentialBackOffBound() int {
	return c.source.GetInt(c.namespace+"client.heartbeat.exponentialBackOffBound", 10)
}

// CacheRefreshExecutorThreadPoolSize sizes the cache refresh executor.
func (c *ClientConfig) CacheRefreshExecutorThreadPoolSize() int {
	return c.source.GetInt(c.namespace+"client.cacheRefresh.threadPoolSize", defaultExecutorThreadPoolSize)
}

// CacheRefreshExecutorExponentialBackOffBound bounds the cache refresh
// executor's exponential backoff multiplier.
func (c *ClientConfig) CacheRefreshExecutorExponentialBackOffBound() int {
	return c.source.GetInt(c.namespace+"client.cacheRefresh.exponentialBackOffBound", 10)
}

// DollarReplacement is the token substituted for "$" in serialized
// instance metadata.
func (c *ClientConfig) DollarReplacement() string {
	return c.source.GetString(c.namespace+"dollarReplacement", "_-")
}

// EscapeCharReplacement is the token substituted for "_" in serialized
// instance metadata.
func (c *ClientConfig) EscapeCharReplacement() string {
	return c.source.GetString(c.namespace+"escapeCharReplacement", "__")
}

// ShouldOnDemandUpdateStatusChange indicates whether local status
// changes trigger an immediate on-demand replication.
func (c *ClientConfig) ShouldOnDemandUpdateStatusChange() bool {
	return c.source.GetBool(c.namespace+"shouldOnDemandUpdateStatusChange", true)
}

// EncoderName names the wire encoder, when overridden.
func (c *ClientConfig) EncoderName() string {
	return c.source.GetString(c.namespace+"encoderName", "")
}

// DecoderName names the wire decoder, when overridden.
func (c *ClientConfig) DecoderName() string {
	return c.source.GetString(c.namespace+"decoderName", "")
}

// ClientDataAccept is the registry data variant this client accepts.
func (c *ClientConfig) ClientDataAccept() string {
	return c.source.GetString(c.namespace+"clientDataAccept", "full")
}

// ReadClusterAppName names the read cluster used for registry fetches,
// when the deployment separates read and write clusters.
func (c *ClientConfig) ReadClusterAppName() string {
	return c.source.GetString(c.namespace+"readClusterAppName", "")
}

// Experimental reads a namespaced experimental property.
func (c *ClientConfig) Experimental(name string) string {
	return c.source.GetString(c.namespace+"experimental."+name, "")
}

// DefaultAddressResolutionOrder is the configured metadata-key order
// for resolving this instance's advertised host name. Nil when unset;
// callers apply their own built-in order.
func (c *ClientConfig) DefaultAddressResolutionOrder() []string {
	raw := c.source.GetString(c.namespace+"defaultAddressResolutionOrder", "")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// DefaultIPAddressResolutionOrder is the configured metadata-key order
// for resolving this instance's advertised IP address. It mirrors
// DefaultAddressResolutionOrder but is independently configurable.
// Nil when unset.
func (c *ClientConfig) DefaultIPAddressResolutionOrder() []string {
	raw := c.source.GetString(c.namespace+"defaultIpAddressResolutionOrder", "")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
