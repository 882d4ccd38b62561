// cmd/tools/career-cli/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"career-pivot/internal/common/logger"
	"career-pivot/internal/common/validation"
	"career-pivot/internal/engine"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/enrichment/companies"
	"career-pivot/internal/enrichment/resources"
	"career-pivot/internal/enrichment/support"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
	"career-pivot/pkg/registry"
)

func main() {
	log := logger.NewStructured("warn", "console", "stderr")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, log))
}

func run(args []string, stdout, stderr io.Writer, log logger.Logger) int {
	if len(args) < 1 {
		help(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "analyze":
		err = analyze(args[1:], stdout, log)
	case "validate":
		err = validate(args[1:], stdout)
	case "registry":
		err = printRegistry(args[1:], stdout)
	case "help", "-h", "--help":
		help(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		help(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func analyze(args []string, stdout io.Writer, log logger.Logger) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	profilePath := fs.String("profile", "", "Path to a profile JSON file")
	seed := fs.Int64("seed", 0, "Seed for display variety; 0 keeps output deterministic")
	kbPath := fs.String("kb", "", "Knowledge base YAML/JSON file; empty uses the built-in tables")
	enrich := fs.Bool("enrich", true, "Attach companies, resources and coaching content")
	plan := fs.String("plan", "", "Trim coaching sections to a plan (starter, pro)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *profilePath == "" {
		return fmt.Errorf("-profile is required")
	}

	profile, err := readProfile(*profilePath)
	if err != nil {
		return err
	}

	kb, err := knowledge.LoadFile(*kbPath)
	if err != nil {
		return err
	}

	var src variety.Source = variety.Fixed{}
	if *seed != 0 {
		src = variety.Seeded(*seed)
	}

	config := engine.LoadConfig()
	config.EnrichmentEnabled = *enrich

	recommender := resources.NewRecommender(resources.LoadConfig(), kb)
	eng := engine.New(config, kb, engine.Providers{
		Companies: companies.NewDirectory(companies.LoadConfig(), kb),
		Resources: recommender,
		Support:   support.NewCoach(support.LoadConfig(), kb, recommender),
	}, src, log)

	analysis := eng.Run(context.Background(), profile)
	if *plan != "" {
		analysis.Support = support.Restrict(analysis.Support, models.Entitlements(*plan).Permissions)
	}
	return writeJSON(stdout, analysis)
}

// readProfile validates the file against the profile schema before decoding.
func readProfile(path string) (models.UserProfile, error) {
	var profile models.UserProfile

	raw, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read profile: %w", err)
	}
	result, err := validation.ProfileSchema.ValidateJSON(raw)
	if err != nil {
		return profile, fmt.Errorf("validate profile: %w", err)
	}
	if !result.Valid {
		return profile, fmt.Errorf("invalid profile: %s", result.Summary())
	}
	if err := json.Unmarshal(raw, &profile); err != nil {
		return profile, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

func validate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	profilePath := fs.String("profile", "", "Path to a profile JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *profilePath == "" {
		return fmt.Errorf("-profile is required")
	}

	raw, err := os.ReadFile(*profilePath)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	result, err := validation.ProfileSchema.ValidateJSON(raw)
	if err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(stdout, "%s: %s\n", e.Field, e.Message)
		}
		return fmt.Errorf("profile has %d validation error(s)", len(result.Errors))
	}
	fmt.Fprintln(stdout, "Profile is valid.")
	return nil
}

func printRegistry(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("registry", flag.ContinueOnError)
	writePath := fs.String("write", "", "Write the built-in registry to this path")
	checkPath := fs.String("validate", "", "Validate a registry file instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *checkPath != "" {
		reg, err := registry.LoadRegistry(*checkPath)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		if err := reg.Validate(); err != nil {
			return fmt.Errorf("registry validation failed: %w", err)
		}
		fmt.Fprintf(stdout, "Registry validation passed. Found %d activities.\n", len(reg.Activities))
		return nil
	}

	reg := registry.Builtin()
	if *writePath != "" {
		if err := registry.SaveRegistry(reg, *writePath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %d activities to %s\n", len(reg.Activities), *writePath)
		return nil
	}
	return writeJSON(stdout, reg)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func help(w io.Writer) {
	fmt.Fprint(w, `
Usage: career-cli <command> [flags]

Commands:
  analyze   Run a career transition analysis and print it as JSON
  validate  Check a profile file against the intake schema
  registry  Print, write or validate the activity registry
  help      Show this help message

Examples:
  career-cli analyze -profile profile.json
  career-cli analyze -profile profile.json -seed 42 -kb configs/knowledge.yaml -plan starter
  career-cli validate -profile profile.json
  career-cli registry -write configs/activity-registry.json
  career-cli registry -validate configs/activity-registry.json

Use 'career-cli <command> -h' for more information about a command.
`)
}
