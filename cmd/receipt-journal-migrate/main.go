package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/sirupsen/logrus"
)

// receipt-journal-migrate creates or updates the printed receipt tables and can
// purge old receipts. Run it as a job instead of migrating on gateway startup
// (SKIP_MIGRATIONS=true).
func main() {
	purgeBefore := flag.String("purge-before", "", "Optional: delete receipts created before this date (YYYY-MM-DD)")
	dryRun := flag.Bool("dry-run", false, "If true, do not write; only print actions")
	flag.Parse()

	var cutoff time.Time
	if strings.TrimSpace(*purgeBefore) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*purgeBefore))
		if err != nil {
			fmt.Fprintln(os.Stderr, "--purge-before must be YYYY-MM-DD")
			os.Exit(1)
		}
		cutoff = parsed
	}

	if !config.ReceiptJournalConfigured() {
		fmt.Fprintln(os.Stderr, "DB_HOST is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.ConnectDatabaseWithRetry(ctx)
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}
	logger := config.GetLogger()

	if *dryRun {
		fmt.Println("[dry-run] would migrate printed_receipts, printed_receipt_lines")
		if !cutoff.IsZero() {
			fmt.Printf("[dry-run] would purge receipts created before %s\n", cutoff.Format("2006-01-02"))
		}
		return
	}

	if err := models.MigrateTable(db); err != nil {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Error(err.Error())
		os.Exit(1)
	}
	fmt.Println("receipt journal tables migrated")

	if !cutoff.IsZero() {
		purged, err := models.PurgeReceiptsBefore(ctx, cutoff)
		if err != nil {
			logger.WithFields(logrus.Fields{"field": "purge"}).Error(err.Error())
			os.Exit(1)
		}
		fmt.Printf("purged %d receipts created before %s\n", purged, cutoff.Format("2006-01-02"))
	}
}
