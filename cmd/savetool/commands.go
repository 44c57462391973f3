package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/internal/bootstrap"
	"github.com/hypez33/grow-lab-zen-sub000/internal/database"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/ledger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/offline"
)

// env is what every command works against
type env struct {
	saveID  string
	storage *bootstrap.Storage
	ui      UI
	out     io.Writer
	in      io.Reader
	now     func() time.Time
}

func (e *env) load(ctx context.Context) (*domain.State, error) {
	st, err := e.storage.Repo.Load(ctx, e.saveID)
	if err != nil {
		return nil, fmt.Errorf("failed to load save %q: %w", e.saveID, err)
	}
	return st, nil
}

type MigrateCommand struct{ env *env }

func (c *MigrateCommand) Name() string        { return "migrate" }
func (c *MigrateCommand) Description() string { return "Apply database migrations" }

func (c *MigrateCommand) Run(ctx context.Context, _ []string) error {
	if c.env.storage.DB == nil {
		c.env.ui.Warning("DB_HOST is not set, nothing to migrate")
		return nil
	}
	if err := database.Migrate(ctx, c.env.storage.DB); err != nil {
		return err
	}
	c.env.ui.Success("Database is up to date")
	return nil
}

type ExportCommand struct{ env *env }

func (c *ExportCommand) Name() string        { return "export" }
func (c *ExportCommand) Description() string { return "Export the save as a portable string [file]" }

func (c *ExportCommand) Run(ctx context.Context, args []string) error {
	st, err := c.env.load(ctx)
	if err != nil {
		return err
	}
	text, err := c.env.storage.Codec.Export(st)
	if err != nil {
		return err
	}

	if len(args) == 0 || args[0] == "-" {
		_, err = fmt.Fprintln(c.env.out, text)
		return err
	}
	if err := os.WriteFile(args[0], []byte(text+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	c.env.ui.Success("Exported save %q to %s", c.env.saveID, args[0])
	return nil
}

type ImportCommand struct{ env *env }

func (c *ImportCommand) Name() string { return "import" }
func (c *ImportCommand) Description() string {
	return "Replace the save with an exported string <file|->"
}

func (c *ImportCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: import <file|->")
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(c.env.in)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}

	st, err := c.env.storage.Codec.Import(ctx, strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	st.LastActive = c.env.now().UnixMilli()
	if err := c.env.storage.Repo.Save(ctx, c.env.saveID, st); err != nil {
		return fmt.Errorf("failed to store save %q: %w", c.env.saveID, err)
	}
	c.env.ui.Success("Imported save %q (level %d, %d coins)", c.env.saveID, st.Level, st.Coins)
	return nil
}

type ResetCommand struct{ env *env }

func (c *ResetCommand) Name() string        { return "reset" }
func (c *ResetCommand) Description() string { return "Delete the save, the next start begins a new game (--yes)" }

func (c *ResetCommand) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != confirmYes {
		c.env.ui.Warning("This deletes save %q. Re-run with %s to confirm.", c.env.saveID, confirmYes)
		return nil
	}
	if err := c.env.storage.Repo.Delete(ctx, c.env.saveID); err != nil {
		return fmt.Errorf("failed to delete save %q: %w", c.env.saveID, err)
	}
	c.env.ui.Success("Deleted save %q", c.env.saveID)
	return nil
}

// Summary is the inspect output
type Summary struct {
	SaveID        string    `json:"save_id"`
	Version       int       `json:"version"`
	Level         int       `json:"level"`
	XP            int       `json:"xp"`
	XPToNext      int       `json:"xp_to_next"`
	Coins         int       `json:"coins"`
	SlotsUnlocked int       `json:"slots_unlocked"`
	SlotsPlanted  int       `json:"slots_planted"`
	DriedGrams    int       `json:"dried_grams"`
	Workers       int       `json:"workers"`
	LastActive    time.Time `json:"last_active"`
}

func summarize(saveID string, st *domain.State) Summary {
	s := Summary{
		SaveID:     saveID,
		Version:    st.Version,
		Level:      st.Level,
		XP:         st.XP,
		XPToNext:   ledger.XPToNext(&st.Resources),
		Coins:      st.Coins,
		Workers:    len(st.Workers),
		LastActive: time.UnixMilli(st.LastActive).UTC(),
	}
	for _, slot := range st.GrowSlots {
		if slot.Unlocked {
			s.SlotsUnlocked++
		}
		if slot.Seed != nil {
			s.SlotsPlanted++
		}
	}
	for _, bud := range st.Inventory {
		if bud.State == domain.BudDried {
			s.DriedGrams += bud.Grams
		}
	}
	return s
}

type InspectCommand struct{ env *env }

func (c *InspectCommand) Name() string        { return "inspect" }
func (c *InspectCommand) Description() string { return "Print a JSON summary of the save" }

func (c *InspectCommand) Run(ctx context.Context, _ []string) error {
	st, err := c.env.load(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.env.out)
	enc.SetIndent("", "  ")
	return enc.Encode(summarize(c.env.saveID, st))
}

type OfflineCommand struct{ env *env }

func (c *OfflineCommand) Name() string { return "offline" }
func (c *OfflineCommand) Description() string {
	return "Preview the offline catch-up the next load would credit"
}

func (c *OfflineCommand) Run(ctx context.Context, _ []string) error {
	st, err := c.env.load(ctx)
	if err != nil {
		return err
	}
	c.env.ui.Header("Offline catch-up preview")
	summary := offline.CatchUp(st.Clone(), c.env.now().UnixMilli())
	if summary.ElapsedSeconds == 0 {
		c.env.ui.Info("Save %q is up to date", c.env.saveID)
	}
	enc := json.NewEncoder(c.env.out)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
