package reportstore

import (
	"fmt"

	"github.com/repograde/repograde/schema"
)

// PrintStoreStatus prints report store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Reports: %d\n", status.TotalReports)
	if status.TotalReports > 0 {
		fmt.Printf("Last Report ID: %s\n", status.LastReportID)
		fmt.Printf("Last Report: %s\n", status.LastReportTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Report: %s\n", status.OldestTime.Format("2006-01-02 15:04:05"))
	}
}
