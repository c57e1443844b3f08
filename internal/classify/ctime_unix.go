//go:build linux

package classify

import (
	"os"
	"syscall"
	"time"
)

// changeTime returns the inode change time. This is the closest portable
// stand-in for a creation time: true birth time is not exposed through
// os.FileInfo, so "creation" classification is best-effort by contract.
func changeTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}
