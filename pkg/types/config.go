package types

// CanonConfig holds settings for canonicalizing extracted values.
type CanonConfig struct {
	// Cutoff is the minimum similarity for threshold-mode snapping (default 0.6).
	Cutoff float64 `json:"cutoff" yaml:"cutoff"`

	// VocabulariesFile optionally overrides the built-in vocabularies (YAML).
	VocabulariesFile string `json:"vocabularies_file,omitempty" yaml:"vocabularies_file,omitempty"`
}

// CatalogConfig names the input files produced by the extraction stage.
type CatalogConfig struct {
	// QuestionsFile holds extracted questions (JSON or YAML).
	QuestionsFile string `json:"questions_file" yaml:"questions_file"`

	// RecipesFile holds extracted dishes (JSON or YAML).
	RecipesFile string `json:"recipes_file" yaml:"recipes_file"`

	// RestaurantsFile holds extracted restaurants (JSON or YAML). Optional
	// when recipes are already joined.
	RestaurantsFile string `json:"restaurants_file,omitempty" yaml:"restaurants_file,omitempty"`

	// DistancesFile is the planet distance CSV with a "/" header cell.
	DistancesFile string `json:"distances_file,omitempty" yaml:"distances_file,omitempty"`

	// LimitsFile is the legal-limit CSV of (ingredient, limit) rows.
	LimitsFile string `json:"limits_file,omitempty" yaml:"limits_file,omitempty"`

	// DishMappingFile maps dish names to external ids (JSON or YAML).
	DishMappingFile string `json:"dish_mapping_file" yaml:"dish_mapping_file"`
}

// MatchConfig holds settings for the matching stage.
type MatchConfig struct {
	// Workers bounds the number of questions evaluated concurrently.
	// Zero uses GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`

	// OutputFile is the result CSV (row_id,result).
	OutputFile string `json:"output_file" yaml:"output_file"`

	// OutputJSONFile optionally receives the annotated questions.
	OutputJSONFile string `json:"output_json_file,omitempty" yaml:"output_json_file,omitempty"`

	// Force re-evaluates even when a stored run has the same input fingerprint.
	Force bool `json:"force" yaml:"force"`
}

// StoreConfig holds settings for the results store.
type StoreConfig struct {
	// ResultsDir contains results.db and the export files.
	ResultsDir string `json:"results_dir" yaml:"results_dir"`
}

// LoggingConfig selects the zap configuration.
type LoggingConfig struct {
	// Level overrides the default level (debug, info, warn, error).
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Development switches to the human-readable console encoder.
	Development bool `json:"development" yaml:"development"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Canon   CanonConfig   `json:"canon" yaml:"canon"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Match   MatchConfig   `json:"match" yaml:"match"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}
