package schema

// Custom string types for type safety.
type (
	// CategoryID identifies one of the ten rubric categories.
	CategoryID string

	// OutputMode represents the format of the output.
	OutputMode string

	// StorageBackend represents the backend used for report storage.
	StorageBackend string
)

// All rubric categories. The order of CategoryOrder is the order categories
// appear in every report.
const (
	DocsCategory         CategoryID = "docs"
	LicenseCategory      CategoryID = "license"
	SecurityCategory     CategoryID = "security"
	CICDCategory         CategoryID = "cicd"
	TestingCategory      CategoryID = "testing"
	DependenciesCategory CategoryID = "dependencies"
	CommunityCategory    CategoryID = "community"
	HygieneCategory      CategoryID = "hygiene"
	ActivityCategory     CategoryID = "activity"
	DiscoveryCategory    CategoryID = "discovery"
)

// TotalPoints is the fixed size of the rubric. Category budgets always sum
// to this value; the catalog loader aborts startup otherwise.
const TotalPoints = 100

// CategoryOrder is the canonical ordering of categories in catalogs,
// reports and rendered documents. Never re-sorted by score.
var CategoryOrder = []CategoryID{
	DocsCategory,
	LicenseCategory,
	SecurityCategory,
	CICDCategory,
	TestingCategory,
	DependenciesCategory,
	CommunityCategory,
	HygieneCategory,
	ActivityCategory,
	DiscoveryCategory,
}

// CategoryNames maps category IDs to their display names.
var CategoryNames = map[CategoryID]string{
	DocsCategory:         "Documentation & Usability",
	LicenseCategory:      "Licensing & Legal",
	SecurityCategory:     "Security Policy",
	CICDCategory:         "CI/CD & DevSecOps",
	TestingCategory:      "Testing & Quality",
	DependenciesCategory: "Dependency Management",
	CommunityCategory:    "Community & Governance",
	HygieneCategory:      "Repository Hygiene",
	ActivityCategory:     "Activity & Maintenance",
	DiscoveryCategory:    "Discoverability",
}

// CategoryBudgets declares the point budget of each category. The catalog
// loader verifies that checkpoint weights sum to exactly these values.
var CategoryBudgets = map[CategoryID]int{
	DocsCategory:         10,
	LicenseCategory:      10,
	SecurityCategory:     10,
	CICDCategory:         15,
	TestingCategory:      10,
	DependenciesCategory: 10,
	CommunityCategory:    10,
	HygieneCategory:      10,
	ActivityCategory:     10,
	DiscoveryCategory:    5,
}

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All storage backends supported.
const (
	MemoryBackend     StorageBackend = "memory" // default
	SQLiteBackend     StorageBackend = "sqlite"
	MySQLBackend      StorageBackend = "mysql"
	PostgreSQLBackend StorageBackend = "postgresql"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidStorageBackends lists all valid storage backends.
var ValidStorageBackends = map[StorageBackend]struct{}{
	MemoryBackend:     {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
