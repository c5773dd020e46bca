package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/qdocs/demolint/pkg/demolint"
)

// ErrConfigNotFound is returned when the rules file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("rules file not found")

// VocabularyConfig holds the controlled vocabularies records are checked
// against.
type VocabularyConfig struct {
	Categories        []string `yaml:"categories"`
	PreviewImageTypes []string `yaml:"preview_image_types"`
}

// DirectoriesConfig points at the optional id directories used for
// cross-reference resolution. Absent entries disable that check.
type DirectoriesConfig struct {
	// Authors is a directory of per-author JSON files, relative to the
	// corpus root unless absolute.
	Authors string `yaml:"authors,omitempty"`

	// Papers and Apps are inline lists of known ids.
	Papers []string `yaml:"papers,omitempty"`
	Apps   []string `yaml:"apps,omitempty"`
}

// CorpusConfig is the parsed demolint.yaml rules file.
type CorpusConfig struct {
	Vocabulary              VocabularyConfig  `yaml:"vocabulary"`
	SEODescriptionMaxLength int               `yaml:"seo_description_max_length,omitempty"`
	Directories             DirectoriesConfig `yaml:"directories,omitempty"`
}

// Default returns the rules used when no demolint.yaml is present.
func Default() *CorpusConfig {
	return &CorpusConfig{
		Vocabulary: VocabularyConfig{
			Categories: []string{
				"Getting Started",
				"Quantum Machine Learning",
				"Quantum Chemistry",
				"Quantum Computing",
				"Optimization",
				"Devices and Performance",
				"Algorithms",
				"How-to",
			},
			PreviewImageTypes: []string{
				"thumbnail",
				"large_thumbnail",
				"hero_image",
			},
		},
		SEODescriptionMaxLength: demolint.DefaultSEODescriptionMaxLength,
	}
}

// Load reads demolint.yaml from the corpus root.
// Returns ErrConfigNotFound when the file does not exist.
func Load(sourcePath string) (*CorpusConfig, error) {
	return LoadFile(filepath.Join(sourcePath, demolint.RulesFileName))
}

// LoadFile reads a rules file from an explicit path.
func LoadFile(configPath string) (*CorpusConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg CorpusConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, demolint.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks the rules file for values the validator cannot work with.
func (c *CorpusConfig) Validate() error {
	var errs []error

	if len(c.Vocabulary.Categories) == 0 {
		errs = append(errs, fmt.Errorf("vocabulary.categories must not be empty: %w", demolint.ErrInvalidConfig))
	}
	for i, cat := range c.Vocabulary.Categories {
		if cat == "" {
			errs = append(errs, fmt.Errorf("vocabulary.categories[%d] is empty: %w", i, demolint.ErrInvalidConfig))
		}
	}
	if c.SEODescriptionMaxLength < 0 {
		errs = append(errs, fmt.Errorf("seo_description_max_length cannot be negative: %w", demolint.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Rules converts the config into the validator's Rules value. The author
// directory is loaded separately (it is a directory of files, not part of
// the rules document) and attached by the caller.
func (c *CorpusConfig) Rules() demolint.Rules {
	rules := demolint.Rules{
		Categories:              demolint.NewStringSet(c.Vocabulary.Categories...),
		SEODescriptionMaxLength: c.SEODescriptionMaxLength,
	}

	imageTypes := c.Vocabulary.PreviewImageTypes
	if len(imageTypes) == 0 {
		imageTypes = Default().Vocabulary.PreviewImageTypes
	}
	rules.PreviewImageTypes = demolint.NewStringSet(imageTypes...)

	if len(c.Directories.Papers) > 0 {
		rules.Papers = demolint.NewStringSet(c.Directories.Papers...)
	}
	if len(c.Directories.Apps) > 0 {
		rules.Apps = demolint.NewStringSet(c.Directories.Apps...)
	}

	return rules
}
