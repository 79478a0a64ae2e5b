package persist

import (
	"fmt"
	"time"

	"vidvault/internal/fileutil"
)

const backupTimeFormat = "20060102T150405"

// backupCorrupted copies the unreadable library file aside so a human can
// attempt recovery later. The derived name carries a UTC timestamp and an
// incrementing suffix, so it never overwrites a prior backup.
func backupCorrupted(path string) (string, error) {
	base := fmt.Sprintf("%s.corrupt-%s", path, time.Now().UTC().Format(backupTimeFormat))
	candidate := base
	for i := 2; fileutil.Exists(candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	if err := fileutil.CopyFile(path, candidate); err != nil {
		return "", err
	}
	return candidate, nil
}
