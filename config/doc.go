// Package config provides the property store and configuration
// resolution for the eureka client library.
//
// A Source is a live key-value property store. FileSource backs it with
// a Java-style .properties (or YAML) file loaded through Viper, with an
// optional environment-specific overlay and hot reload; MapSource backs
// it with an in-memory map for tests and programmatic configuration.
//
// ClientConfig resolves namespaced property keys from a Source into
// typed client settings with documented defaults and fallback chains.
// Resolution is pure: identical (key, store state) always yields the
// same value, and a missing key is never an error.
//
// # Usage
//
//	src, err := config.NewFileSource(config.FileSourceConfig{
//	    Path:        "eureka-client.properties",
//	    Environment: "test",
//	}, log)
//	cfg := config.NewClientConfig(src)
//	urls := cfg.EurekaServerServiceURLs("us-east-1c")
package config
