package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	planrender "github.com/bnema/degreeplan-cli/internal/adapters/render/plan"
	tomlrepo "github.com/bnema/degreeplan-cli/internal/adapters/repo/toml"
	snapshotfile "github.com/bnema/degreeplan-cli/internal/adapters/snapshots/file"
	"github.com/bnema/degreeplan-cli/internal/adapters/textplan"
	"github.com/bnema/degreeplan-cli/internal/application"
	"github.com/bnema/degreeplan-cli/internal/logging"
	"github.com/bnema/degreeplan-cli/internal/ports"
)

const (
	envPrefix      = "DP"
	logLevelKey    = "log.level"
	snapshotDirKey = "snapshots.dir"
	snapshotDir    = "snapshots"
)

type app struct {
	planService    *application.PlanService
	catalogService *application.CatalogService
	planRenderer   func(application.PlanStatus, planrender.RenderOptions) (string, error)
	logger         zerolog.Logger
}

type wireOptions struct {
	logLevel  string
	logPretty bool
	logOutput io.Writer
}

func (a *app) wire(opts wireOptions) error {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	if err := tomlrepo.LoadConfig(cfg); err != nil {
		return err
	}

	rawLevel := opts.logLevel
	if rawLevel == "" {
		rawLevel = cfg.GetString(logLevelKey)
	}
	level, err := logging.ParseLevel(rawLevel)
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{Level: level, Pretty: opts.logPretty, Output: opts.logOutput})

	plans, err := tomlrepo.NewPlanRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire plan repository: %w", err)
	}
	programs, err := tomlrepo.NewProgramRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire program repository: %w", err)
	}
	snapshotRoot, err := resolveSnapshotDir(cfg)
	if err != nil {
		return fmt.Errorf("wire snapshot store: %w", err)
	}

	clock := ports.SystemClock{}
	a.planService = application.NewPlanService(plans, programs, snapshotfile.NewStore(snapshotRoot), textplan.Codec{}, clock, logger)
	a.catalogService = application.NewCatalogService(programs, clock, logger)
	a.planRenderer = planrender.Render
	a.logger = logger

	logger.Debug().
		Str("plans", plans.Path()).
		Str("program", programs.Path()).
		Str("snapshots", snapshotRoot).
		Msg("wired")
	return nil
}

func resolveSnapshotDir(cfg *viper.Viper) (string, error) {
	if dir := strings.TrimSpace(cfg.GetString(snapshotDirKey)); dir != "" {
		return dir, nil
	}

	base, err := tomlrepo.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, snapshotDir), nil
}
