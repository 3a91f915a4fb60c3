package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tur-wheels/wheeldex/internal/domain-adapters/gateways"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces"
	"github.com/tur-wheels/wheeldex/internal/domain/services"
	"github.com/tur-wheels/wheeldex/internal/external-adapters/logging"
)

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		releaseURL  = fs.String("release-url", defaultReleaseURL, "Latest-release API endpoint to list assets from")
		suffix      = fs.String("suffix", ".whl", "Asset file-name suffix to include (case-sensitive)")
		listTimeout = fs.Duration("timeout", 30*time.Second, "Timeout for the release listing call")
		verbose     = fs.Bool("verbose", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: wheeldex list [options]

List the packages found in the latest release, without writing any output.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(*verbose)

	gateway := gateways.NewHTTPReleaseGateway(*releaseURL, *suffix, *listTimeout, logger)
	artifacts, err := gateway.ListLatestAssets(ctx)
	if err != nil {
		logger.Error("listing failed", interfaces.F("error", err))
		os.Exit(1)
	}

	groups := services.GroupByPackage(artifacts, logger)
	names := services.SortedPackageNames(groups)

	fmt.Printf("Packages in latest release (%d total):\n\n", len(names))
	for _, name := range names {
		fmt.Printf("  %-40s %d artifact(s)\n", name, len(groups[name].Artifacts))
	}
}
