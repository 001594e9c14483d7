package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"securityscan.com/securityscan/console"
	"securityscan.com/securityscan/core"
)

// Daily ops snapshot: pending approvals, who is still on site, and the
// visitor counters the dashboard shows.
func main() {
	ctx := context.Background()

	db, err := console.Connect(ctx)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	now := time.Now()

	pending, err := console.GetPendingForms(db)
	if err != nil {
		log.Fatalf("failed to load pending forms: %v", err)
	}
	fmt.Printf("Pending approvals: %d\n", len(pending))
	for _, f := range pending {
		fmt.Printf("  %s  %-20s %s %s-%s\n", f.ID, f.Name, f.Date, f.TimeFrom, f.TimeTo)
	}

	open, err := console.GetOpenScans(db)
	if err != nil {
		log.Fatalf("failed to load open scans: %v", err)
	}
	fmt.Printf("On site (entered, not exited): %d\n", len(open))
	for _, r := range open {
		fmt.Printf("  %s  %-20s entered %s\n", r.BarcodeID, r.ScannedName, r.EntryTime.Format("15:04"))
	}

	counts, err := core.RequestRegistrationCounts(db, now)
	if err != nil {
		log.Fatalf("failed to load counters: %v", err)
	}
	today, err := core.TodayVisitorCount(db, now)
	if err != nil {
		log.Fatalf("failed to load today count: %v", err)
	}
	fmt.Printf("Total requests: %d, new: %d, visitors today: %d\n",
		counts.TotalVisitors, counts.NewRequests, today)
}
