package config

import (
	"os"
)

const template = `# sik-sort configuration

# Directory sorted when no path argument is given.
default_path: ""

# Remove directories left empty after sorting.
auto_cleanup: false

# Filter stages, applied in order: include patterns, include extensions,
# exclude patterns, exclude extensions. Patterns are shell globs matched
# against the filename only. Empty stages are no-ops.
filters:
  include_patterns: []
  exclude_patterns: []
  include_extensions: []
  exclude_extensions: []

# Sort into small/medium/large before the type category.
size_sorting_enabled: false
size_thresholds:
  small_max: 1048576     # 1 MB
  medium_max: 104857600  # 100 MB

# Sort into date buckets before the type category.
date_sorting_enabled: false
date_mode: modification  # or creation
date_format: "2006-01"   # Go time layout, default YYYY-MM
date_exif: false         # prefer EXIF capture time for images

# Route byte-identical files to a duplicates folder.
duplicate_detection_enabled: false
hash_algorithm: md5  # or sha256

# Archive mode: date buckets at the top level, optionally with type folders.
archive_mode: false
archive_with_type: false

# Where per-run operation logs are written.
log_dir: ""
`

// WriteTemplate writes a commented starter configuration to path.
func WriteTemplate(path string) error {
	return os.WriteFile(path, []byte(template), 0644)
}
