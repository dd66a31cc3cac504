package config

const (
	// DefaultEnvFile is read when present; real environment variables always win
	DefaultEnvFile = ".env"

	// Store backends
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"

	// Environments
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"

	minJWTSecretLength = 32
)
