//go:build !linux

package classify

import (
	"os"
	"time"
)

// changeTime falls back to the modification time on platforms where the
// inode change time is not reachable through os.FileInfo.
func changeTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
