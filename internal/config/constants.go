package config

// Default paths for generated stores
const (
	// DefaultSeedDatabasePath is where the seed loader writes the lower extremity bank
	DefaultSeedDatabasePath = "./lower_extremity_injuries.db"

	// DefaultStoreExtension replaces the document extension when deriving a store path
	DefaultStoreExtension = ".db"
)
