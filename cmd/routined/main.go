package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/config"
	"github.com/sandeepkv93/routined/internal/engine"
	"github.com/sandeepkv93/routined/internal/rollover"
	"github.com/sandeepkv93/routined/internal/storage"
	"github.com/sandeepkv93/routined/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "routined failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	importPath := flag.String("import", "", "restore state from a backup file before starting")
	exportPath := flag.String("export", "", "write a backup file and exit")
	flag.Parse()

	configPath := strings.TrimSpace(os.Getenv("ROUTINED_CONFIG"))
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	base := update.DefaultRuntimeConfig()
	if cfg.DefaultPeriod != "" {
		base.DefaultPeriod = cfg.DefaultPeriod
	}
	rc := update.RuntimeConfigFromEnv(base)

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()

	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	ctx := context.Background()
	var program *tea.Program
	service := engine.NewService(repo, engine.WithPersistErrorHandler(func(err error) {
		if program != nil {
			program.Send(update.AppErrorMsg{Err: err})
		}
	}))
	if err := service.Load(ctx); err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	if *importPath != "" {
		raw, err := os.ReadFile(*importPath)
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		doc, err := storage.ImportBackup(raw)
		if err != nil {
			return fmt.Errorf("parse backup: %w", err)
		}
		if err := service.ImportBackup(ctx, doc); err != nil {
			return fmt.Errorf("import backup: %w", err)
		}
		fmt.Printf("imported backup from %s\n", *importPath)
	}
	if *exportPath != "" {
		payload, err := storage.ExportBackup(service.ExportBackup())
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}
		if err := os.WriteFile(*exportPath, payload, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Printf("exported backup to %s\n", *exportPath)
		return nil
	}

	if rc.CatchUpOnStart {
		if _, err := service.CatchUp(ctx); err != nil {
			return fmt.Errorf("catch up missed days: %w", err)
		}
	}

	roll := rollover.NewEngine(rc.RolloverBuffer)
	roll.Start()
	defer roll.Stop()

	model := update.NewModelWithRuntime(service, roll, rc, update.KeymapFromConfig(cfg.Keys))
	program = tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
