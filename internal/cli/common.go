package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/qdocs/demolint/internal/authors"
	"github.com/qdocs/demolint/internal/config"
	"github.com/qdocs/demolint/internal/files/filesystem"
	"github.com/qdocs/demolint/pkg/demolint"
)

// corpusFlags holds the flag values shared by the commands that load
// and validate a corpus.
type corpusFlags struct {
	configPath string
	authorsDir string
	envFile    string
}

// resolveRules loads the env file, the rules config, and the optional
// author directory, returning the validator rules plus the relative
// paths to exclude from the corpus scan (a nested author directory must
// not be scanned as demo records).
//
// Precedence: explicit flag, then DEMOLINT_* environment, then
// demolint.yaml at the corpus root, then built-in defaults.
func resolveRules(corpusPath string, flags corpusFlags, logger demolint.Logger) (demolint.Rules, []string, error) {
	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil {
			return demolint.Rules{}, nil, fmt.Errorf("failed to load env file %s: %v: %w",
				flags.envFile, err, demolint.ErrInvalidConfig)
		}
	} else {
		_ = godotenv.Load()
	}

	configPath := flags.configPath
	if configPath == "" {
		configPath = os.Getenv("DEMOLINT_CONFIG")
	}

	var cfg *config.CorpusConfig
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return demolint.Rules{}, nil, err
		}
	} else {
		cfg, err = config.Load(corpusPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			logger.Verbose("no %s found, using default rules", demolint.RulesFileName)
			cfg = config.Default()
		} else if err != nil {
			return demolint.Rules{}, nil, err
		}
	}

	rules := cfg.Rules()

	authorsDir := flags.authorsDir
	if authorsDir == "" {
		authorsDir = os.Getenv("DEMOLINT_AUTHORS_DIR")
	}
	if authorsDir == "" {
		authorsDir = cfg.Directories.Authors
	}

	var exclude []string
	if authorsDir != "" {
		resolved := authorsDir
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(corpusPath, authorsDir)
			exclude = append(exclude, authorsDir)
		}
		logger.Verbose("resolving authors against %s", resolved)

		directory, err := authors.LoadDirectory(filesystem.NewOSFileSystem(), resolved)
		if err != nil {
			return demolint.Rules{}, nil, fmt.Errorf("%v: %w", err, demolint.ErrInvalidConfig)
		}
		rules.Authors = directory
	}

	return rules, exclude, nil
}
