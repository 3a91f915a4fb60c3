package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/tur-wheels/wheeldex/internal/domain-adapters/gateways"
	orchestrators "github.com/tur-wheels/wheeldex/internal/domain-orchestrators"
	"github.com/tur-wheels/wheeldex/internal/domain/entities"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces"
	"github.com/tur-wheels/wheeldex/internal/external-adapters/html"
	"github.com/tur-wheels/wheeldex/internal/external-adapters/logging"
	"github.com/tur-wheels/wheeldex/internal/external-adapters/yaml"
)

const defaultReleaseURL = "https://api.github.com/repos/termux-user-repository/pypi-wheel-builder/releases/latest"

func runGenerate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		outputDir       = fs.String("output", "docs", "Output directory for the generated index")
		releaseURL      = fs.String("release-url", defaultReleaseURL, "Latest-release API endpoint to list assets from")
		suffix          = fs.String("suffix", ".whl", "Asset file-name suffix to include (case-sensitive)")
		rulesFile       = fs.String("rules", "", "Optional YAML file with mirror rules")
		listTimeout     = fs.Duration("timeout", 30*time.Second, "Timeout for the release listing call")
		downloadTimeout = fs.Duration("download-timeout", 5*time.Minute, "Timeout per mirrored download")
		envFile         = fs.String("env", "", "Optional env file with WHEELDEX_OWNER / WHEELDEX_SITE")
		verbose         = fs.Bool("verbose", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: wheeldex generate [options]

Fetch the latest release, group wheel assets by package, mirror the wheels
selected by the mirror rules, and write the static simple index.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  WHEELDEX_OWNER  Publishing owner shown in the install instructions
  WHEELDEX_SITE   Site name shown in the install instructions
  GITHUB_TOKEN    Optional token for the release API

Examples:
  wheeldex generate
  wheeldex generate --output public --rules mirror-rules.yml
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(*verbose)

	loadEnvFile(*envFile, logger)
	owner, site := siteIdentity()

	rules := entities.DefaultMirrorRules()
	if *rulesFile != "" {
		parsed, err := yaml.NewRulesParser().ParseFile(*rulesFile)
		if err != nil {
			logger.Error("invalid mirror rules", interfaces.F("file", *rulesFile), interfaces.F("error", err))
			os.Exit(1)
		}
		rules = parsed
	}

	gateway := gateways.NewHTTPReleaseGateway(*releaseURL, *suffix, *listTimeout, logger)
	downloader := gateways.NewStreamDownloader(*downloadTimeout)
	mirror := gateways.NewMirror(downloader, *outputDir, rules, logger)
	renderer := html.NewRenderer(*outputDir, owner, site)

	orchestrator := orchestrators.NewIndexOrchestrator(gateway, mirror, renderer, *outputDir, logger)
	if err := orchestrator.Run(ctx); err != nil {
		if errors.Is(err, orchestrators.ErrNoArtifacts) || errors.Is(err, orchestrators.ErrNoPackages) {
			logger.Error("nothing to generate", interfaces.F("reason", err))
		} else {
			logger.Error("index generation failed", interfaces.F("error", err))
		}
		os.Exit(1)
	}
}

// loadEnvFile loads env defaults before the identity variables are read.
// A missing default .env file is not an error.
func loadEnvFile(path string, logger interfaces.Logger) {
	if path == "" {
		//nolint:errcheck,gosec // G104: Default .env file is optional
		godotenv.Load()
		return
	}
	if err := godotenv.Load(path); err != nil {
		logger.Warn("could not load env file", interfaces.F("file", path), interfaces.F("error", err))
	}
}

// siteIdentity reads the publishing owner and site name used in the
// install instructions, falling back to placeholder text.
func siteIdentity() (owner, site string) {
	owner = os.Getenv("WHEELDEX_OWNER")
	if owner == "" {
		owner = "OWNER"
	}
	site = os.Getenv("WHEELDEX_SITE")
	if site == "" {
		site = "SITE"
	}
	return owner, site
}
