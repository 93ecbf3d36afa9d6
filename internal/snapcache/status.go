package snapcache

import (
	"fmt"

	"github.com/basetelco/revcast/schema"
)

// PrintSnapshotStatus prints snapshot store status information.
func PrintSnapshotStatus(status schema.SnapshotStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Newest Write: %s\n", status.NewestWrite.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Write: %s\n", status.OldestWrite.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.SizeBytes)
}
