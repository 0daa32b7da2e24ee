package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/padbind/padbind/bindings"
	"github.com/padbind/padbind/hostinput"
	"github.com/padbind/padbind/internal/configpaths"
	"github.com/padbind/padbind/overlay"
	"github.com/padbind/padbind/overtake"
	"github.com/padbind/padbind/pad"
	"github.com/padbind/padbind/translate"
)

// Run is the tick loop: sample the pad, filter, translate, fire.
type Run struct {
	Bindings string        `help:"Bindings file (json/yaml/toml); the built-in demo table when omitted" env:"PADBIND_BINDINGS"`
	Overlay  string        `help:"Overlay event-stream listen address (overrides the bindings file)" env:"PADBIND_OVERLAY"`
	Tick     time.Duration `help:"Tick interval (overrides the bindings file)" env:"PADBIND_TICK"`
	DryRun   bool          `help:"Log host actions instead of injecting them"`
}

// Run is called by kong when the run command executes.
func (r *Run) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.runLoop(ctx, logger)
}

func (r *Run) runLoop(ctx context.Context, logger *slog.Logger) error {
	file, err := r.loadBindings(logger)
	if err != nil {
		return err
	}

	var sink hostinput.Sink
	if r.DryRun {
		sink = &hostinput.LogSink{Logger: logger}
	} else {
		sink = hostinput.NewPlatformSink(logger)
	}

	mappings, err := file.Compile(sink, logger)
	if err != nil {
		return fmt.Errorf("compile bindings: %w", err)
	}

	translator, err := translate.New(mappings, overtake.New())
	if err != nil {
		return err
	}

	hub, err := r.startOverlay(ctx, file, logger)
	if err != nil {
		return err
	}

	defer binsdl.Load().Unload()
	defer sdl.Quit()
	sdl.Init(sdl.INIT_GAMEPAD)

	cfg := pad.DefaultConfig()
	if file.Deadzone > 0 {
		cfg.Deadzone = file.Deadzone
	}
	if file.TriggerThreshold > 0 {
		cfg.TriggerThreshold = file.TriggerThreshold
	}
	sampler, err := pad.NewSampler(cfg, logger)
	if err != nil {
		return err
	}
	defer sampler.Close()

	tick := file.Tick()
	if r.Tick > 0 {
		tick = r.Tick
	}
	logger.Info("translating", "mappings", len(mappings), "tick", tick)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.cleanup(translator, hub, logger)
			return nil
		case <-ticker.C:
			batch := translator.Translate(sampler.Sample())
			fireBatch(&batch, hub)
		}
	}
}

// fireBatch invokes every result in firing order and mirrors each
// event to the overlay.
func fireBatch(batch *translate.Batch, hub *overlay.Hub) {
	batch.Each(func(res translate.Result) {
		res.Do()
		if hub != nil {
			hub.Publish(overlay.NewEvent(res.Kind().String(), res.Button, groupValue(res)))
		}
	})
}

func groupValue(res translate.Result) *uint32 {
	if res.Group == nil {
		return nil
	}
	g := uint32(*res.Group)
	return &g
}

// cleanup fires terminating ups for every mapping still held so the
// host is not left with stuck keys.
func (r *Run) cleanup(translator *translate.Translator, hub *overlay.Hub, logger *slog.Logger) {
	actions := translator.Cleanup()
	if len(actions) == 0 {
		return
	}
	logger.Info("releasing held keys", "count", len(actions))
	for _, res := range actions {
		res.Do()
		if hub != nil {
			hub.Publish(overlay.NewEvent(res.Kind().String(), res.Button, groupValue(res)))
		}
	}
}

func (r *Run) loadBindings(logger *slog.Logger) (*bindings.File, error) {
	if r.Bindings == "" {
		logger.Info("no bindings file, using the built-in demo table")
		return bindings.Default(), nil
	}
	file, err := bindings.Load(r.Bindings)
	if err != nil {
		return nil, err
	}
	logger.Info("bindings loaded", "path", r.Bindings, "count", len(file.Bindings))
	return file, nil
}

func (r *Run) startOverlay(ctx context.Context, file *bindings.File, logger *slog.Logger) (*overlay.Hub, error) {
	addr := file.Overlay
	if r.Overlay != "" {
		addr = r.Overlay
	}
	if addr == "" {
		return nil, nil
	}

	tokenPath, err := configpaths.OverlayTokenPath()
	if err != nil {
		return nil, fmt.Errorf("resolve overlay token path: %w", err)
	}
	token, created, err := overlay.LoadOrCreateToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("overlay token: %w", err)
	}
	if created {
		logger.Info("generated overlay token", "path", tokenPath)
	}

	hub := overlay.NewHub(logger)
	srv := overlay.NewServer(addr, token, hub, logger)
	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Error("overlay server stopped", "error", err)
		}
	}()
	return hub, nil
}
