// Package constants holds shared domain-wide constant values.
package constants

// Application environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider selectors.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// DateLayout is the yyyyMMdd form the meal API and campaigns use for dates.
const DateLayout = "20060102"
