// Package config loads the service configuration from environment
// variables: provider family and credentials, generation defaults, session
// backend selection, the shared secret and the rate limit. It is the only
// place that touches the environment; everything downstream receives
// explicit values.
package config
