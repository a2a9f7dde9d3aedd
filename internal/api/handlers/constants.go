package handlers

const (
	// OAuth providers
	providerGoogle = "google"
	providerGitHub = "github"

	// Pagination limits
	maxActivityPageSize = 100
)
