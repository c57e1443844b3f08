package classify

import (
	"os"

	"github.com/deadcoast/sik-sort/internal/config"
	"github.com/deadcoast/sik-sort/pkg/types"
)

// BySize buckets a file by its byte length against the configured thresholds.
// Both bounds are inclusive: size <= small_max is small, size <= medium_max is
// medium, anything above is large. Returns the stat error (including
// not-exist when the file vanished between scan and classify) for the caller
// to treat as a per-file failure.
func BySize(path string, thresholds config.SizeThresholds) (types.SizeCategory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return SizeOf(info.Size(), thresholds), nil
}

// SizeOf applies the boundary rule to an already-known byte length.
func SizeOf(size int64, thresholds config.SizeThresholds) types.SizeCategory {
	switch {
	case size <= thresholds.SmallMax:
		return types.SizeSmall
	case size <= thresholds.MediumMax:
		return types.SizeMedium
	default:
		return types.SizeLarge
	}
}
