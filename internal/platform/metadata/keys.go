package metadata

// These keys are used for the 'key' column in the 'metadata' table.
const (
	// SeedVersionKey stores the revision of the seed dataset that was last
	// loaded into the reference tables.
	SeedVersionKey = "seed_version"

	// SeededAtKey stores the RFC3339 timestamp of the last seeding run.
	SeededAtKey = "seeded_at"
)
