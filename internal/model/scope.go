package model

// Scope carries the authenticated caller's identity through a request.
// Every owner-scoped operation takes a Scope; handlers never pass raw ids.
type Scope struct {
	UserID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
