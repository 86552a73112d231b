package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/aurago/internal/aura"
	"github.com/udisondev/aurago/internal/buffs"
	"github.com/udisondev/aurago/internal/config"
)

const ConfigPath = "config/aurasim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("AURAGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("aurasim starting",
		"objects", cfg.Objects,
		"duration_s", cfg.DurationSeconds)

	reg := aura.NewRegistry()
	if err := buffs.RegisterAll(reg); err != nil {
		return fmt.Errorf("registering catalogue: %w", err)
	}
	mgr := aura.NewManager(reg)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.DurationSeconds*float64(time.Second)))
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	units := make([]*unit, cfg.Objects)
	for i := range units {
		u := newUnit(fmt.Sprintf("unit-%d", i))
		units[i] = u
		g.Go(func() error {
			return drive(ctx, mgr, u, cfg)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, u := range units {
		mgr.RemoveAll(u)
		slog.Info("final state", "unit", u.name, "hp", fmt.Sprintf("%.1f", u.HP()))
	}
	if n := mgr.ObjectCount(); n != 0 {
		return fmt.Errorf("%d objects still tracked after teardown", n)
	}
	slog.Info("aurasim done")
	return nil
}

// drive runs the scripted scenario for one unit: the canonical pair of
// overlapping stuns up front, then a rotation of casts until the context
// ends.
func drive(ctx context.Context, mgr *aura.Manager, u *unit, cfg config.Sim) error {
	short := aura.NewFields().Set(aura.FieldDuration, aura.Number(1))
	long := aura.NewFields().Set(aura.FieldDuration, aura.Number(2))
	if _, err := mgr.ApplyAura(u, buffs.AuraStun, short); err != nil {
		return err
	}
	if _, err := mgr.ApplyAura(u, buffs.AuraStun, long); err != nil {
		return err
	}

	rotation := []string{
		buffs.AuraHaste,
		buffs.AuraRegeneration,
		buffs.AuraArcaneShield,
		buffs.AuraBattleFury,
	}
	interval := time.Duration(cfg.CastIntervalSeconds * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		name := rotation[i%len(rotation)]
		id, err := mgr.ApplyAura(u, name, nil)
		if err != nil {
			return fmt.Errorf("unit %s casting %s: %w", u.name, name, err)
		}
		u.Regenerate(cfg.CastIntervalSeconds)

		// Drop something early now and then to exercise manual removal
		// racing the duration timers.
		switch rand.Intn(4) {
		case 0:
			mgr.RemoveAuraInstance(u, id)
		case 1:
			mgr.RemoveAura(u, buffs.AuraHaste)
		}

		slog.Debug("unit status",
			"unit", u.name,
			"auras", mgr.Auras(u),
			"stunned", mgr.HasEffect(u, buffs.EffectStunned))
	}
}

// unit is the demo game object; it implements every target capability in
// the buffs catalogue.
type unit struct {
	name string

	mu      sync.Mutex
	hp      float64
	stunned bool
	speed   float64
	armor   float64
	regen   float64
	shield  float64
}

func newUnit(name string) *unit {
	return &unit{name: name, hp: 100, speed: 1.0}
}

func (u *unit) SetStunned(stunned bool) {
	u.mu.Lock()
	u.stunned = stunned
	u.mu.Unlock()
}

func (u *unit) SetMoveSpeedMultiplier(mult float64) {
	u.mu.Lock()
	u.speed = mult
	u.mu.Unlock()
}

func (u *unit) SetArmorBonus(bonus float64) {
	u.mu.Lock()
	u.armor = bonus
	u.mu.Unlock()
}

func (u *unit) SetRegenRate(perSecond float64) {
	u.mu.Lock()
	u.regen = perSecond
	u.mu.Unlock()
}

func (u *unit) SetShieldPoints(points float64) {
	u.mu.Lock()
	u.shield = points
	u.mu.Unlock()
}

// Regenerate advances hp by the current regen rate over elapsed seconds.
func (u *unit) Regenerate(seconds float64) {
	u.mu.Lock()
	u.hp += u.regen * seconds
	u.mu.Unlock()
}

func (u *unit) HP() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hp
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
