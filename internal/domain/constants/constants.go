// Package constants holds values shared across layers.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for row change publishing
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNone   = "none"
)

// Change feed providers feeding realtime sessions
const (
	ChangeFeedMemory   = "memory"
	ChangeFeedPostgres = "postgres"
)

// Payment providers for wallet top-ups
const (
	PaymentProviderMercadoPago = "mercadopago"
	PaymentProviderMock        = "mock"
)

// Token types carried in the "type" JWT claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)
