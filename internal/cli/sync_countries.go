package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/florianfabre/countrynews/internal/config"
	"github.com/florianfabre/countrynews/internal/countriesapi"
	"github.com/florianfabre/countrynews/internal/database"
	"github.com/florianfabre/countrynews/internal/database/countries"
)

// SyncCountriesCommand refreshes the country catalog once and exits.
type SyncCountriesCommand struct {
	DatabasePath string
	BaseURL      string
	Timeout      time.Duration
	Verbose      bool
}

// NewSyncCountriesCommand creates a new SyncCountriesCommand
func NewSyncCountriesCommand() *SyncCountriesCommand {
	return &SyncCountriesCommand{}
}

// ParseFlags parses command line flags
func (cmd *SyncCountriesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sync-countries", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.BaseURL, "base-url", config.DefaultCountriesBaseURL, "Base URL of the countries API")
	fs.DurationVar(&cmd.Timeout, "timeout", 2*time.Minute, "Overall timeout for the refresh")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every stored country")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sync-countries [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fetch the full country catalog and replace the local copy.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s sync-countries\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s sync-countries -db /data/countrynews.db -verbose\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the sync command
func (cmd *SyncCountriesCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	fmt.Printf("Database: %s\n", cmd.DatabasePath)
	fmt.Printf("Upstream: %s\n", cmd.BaseURL)

	repo := countries.NewRepository(db.DB)
	client := countriesapi.NewClient(cmd.BaseURL, cmd.Timeout)
	synchronizer := countriesapi.NewSynchronizer(client, repo)

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	refreshed := synchronizer.Refresh(ctx)
	if len(refreshed) == 0 {
		fmt.Println("No countries stored. The upstream may be unreachable, the local copy is unchanged.")
		return nil
	}

	fmt.Printf("Stored %d countries\n", len(refreshed))

	if cmd.Verbose {
		for _, country := range refreshed {
			fmt.Printf("  %3d  %-2s  %s\n", country.CountryID, country.ISO2, country.Name)
		}
	}

	return nil
}
