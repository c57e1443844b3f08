package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/deadcoast/sik-sort/pkg/types"
	"gopkg.in/yaml.v3"
)

// FilterConfig holds the four filter stages, applied in declaration order.
type FilterConfig struct {
	IncludePatterns   []string `yaml:"include_patterns" json:"include_patterns"`
	ExcludePatterns   []string `yaml:"exclude_patterns" json:"exclude_patterns"`
	IncludeExtensions []string `yaml:"include_extensions" json:"include_extensions"`
	ExcludeExtensions []string `yaml:"exclude_extensions" json:"exclude_extensions"`
}

// SizeThresholds are the inclusive upper bounds for small and medium files.
type SizeThresholds struct {
	SmallMax  int64 `yaml:"small_max" json:"small_max"`
	MediumMax int64 `yaml:"medium_max" json:"medium_max"`
}

type Config struct {
	DefaultPath   string         `yaml:"default_path" json:"default_path"`
	AutoCleanup   bool           `yaml:"auto_cleanup" json:"auto_cleanup"`
	Filters       FilterConfig   `yaml:"filters" json:"filters"`
	SizeSorting   bool           `yaml:"size_sorting_enabled" json:"size_sorting_enabled"`
	Thresholds    SizeThresholds `yaml:"size_thresholds" json:"size_thresholds"`
	DateSorting   bool           `yaml:"date_sorting_enabled" json:"date_sorting_enabled"`
	DateMode      string         `yaml:"date_mode" json:"date_mode"`
	DateFormat    string         `yaml:"date_format" json:"date_format"`
	DateEXIF      bool           `yaml:"date_exif" json:"date_exif"`
	DupeDetection bool           `yaml:"duplicate_detection_enabled" json:"duplicate_detection_enabled"`
	HashAlgorithm string         `yaml:"hash_algorithm" json:"hash_algorithm"`
	ArchiveMode   bool           `yaml:"archive_mode" json:"archive_mode"`
	ArchiveTyped  bool           `yaml:"archive_with_type" json:"archive_with_type"`
	LogDir        string         `yaml:"log_dir" json:"log_dir"`
	DryRun        bool           `yaml:"dry_run" json:"dry_run"`
}

const (
	DateModeModification = "modification"
	DateModeCreation     = "creation"
)

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Thresholds: SizeThresholds{
			SmallMax:  1 << 20,   // 1 MB
			MediumMax: 100 << 20, // 100 MB
		},
		DateMode:      DateModeModification,
		DateFormat:    "2006-01",
		HashAlgorithm: "md5",
		LogDir:        filepath.Join(homeDir, ".sik-sort", "logs"),
	}
}

func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Mode resolves the active sort mode from the toggles. Archive beats date
// beats size beats duplicates; plain when nothing is enabled.
func (c *Config) Mode() types.SortMode {
	switch {
	case c.ArchiveMode && c.ArchiveTyped:
		return types.ModeArchiveType
	case c.ArchiveMode:
		return types.ModeArchiveFlat
	case c.DateSorting:
		return types.ModeDate
	case c.SizeSorting:
		return types.ModeSize
	case c.DupeDetection:
		return types.ModeDuplicate
	default:
		return types.ModePlain
	}
}

// Validate checks the fatal preconditions. A validation failure means the run
// must not start; no file has been touched yet.
func (c *Config) Validate() error {
	if c.Thresholds.SmallMax <= 0 {
		return &ValidationError{Field: "size_thresholds.small_max", Message: "must be positive"}
	}
	if c.Thresholds.MediumMax <= 0 {
		return &ValidationError{Field: "size_thresholds.medium_max", Message: "must be positive"}
	}
	if c.Thresholds.SmallMax >= c.Thresholds.MediumMax {
		return &ValidationError{Field: "size_thresholds", Message: "small_max must be less than medium_max"}
	}

	switch strings.ToLower(c.HashAlgorithm) {
	case "md5", "sha256":
	default:
		return &ValidationError{Field: "hash_algorithm", Message: "must be md5 or sha256, got " + c.HashAlgorithm}
	}

	switch c.DateMode {
	case DateModeModification, DateModeCreation:
	default:
		return &ValidationError{Field: "date_mode", Message: "must be modification or creation, got " + c.DateMode}
	}

	if c.DateFormat == "" {
		return &ValidationError{Field: "date_format", Message: "cannot be empty"}
	}
	// The format becomes a folder name, so it must render without separators.
	rendered := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC).Format(c.DateFormat)
	if strings.ContainsRune(rendered, os.PathSeparator) || strings.ContainsRune(rendered, '/') {
		return &ValidationError{Field: "date_format", Message: "must not produce path separators"}
	}

	if c.LogDir == "" {
		homeDir, _ := os.UserHomeDir()
		c.LogDir = filepath.Join(homeDir, ".sik-sort", "logs")
	}

	return nil
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
