package config

// Default paths and remote endpoints
const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./countrynews.db"

	// DefaultCountriesBaseURL is the base URL of the CountriesNow API
	DefaultCountriesBaseURL = "https://countriesnow.space/api/v0.1/"
)

// SchemaVersion is the expected version of the persisted schema.
// Opening a database written with a different version wipes it and
// recreates the schema from scratch.
const SchemaVersion = 1
