package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/duopane/internal/app/messaging"
	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/application/usecase"
	"github.com/bnema/duopane/internal/bootstrap"
	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/infrastructure/gtkhost"
	"github.com/bnema/duopane/internal/infrastructure/settings"
	"github.com/bnema/duopane/internal/logging"
	"github.com/bnema/duopane/internal/ui/coordinator"
)

// guiOptions carries what the command line decided for this run.
type guiOptions struct {
	Version string
	// Args are handed to GApplication.
	Args []string
}

// runGUI starts the window and blocks until it closes. It must be called
// from the main goroutine with the OS thread locked.
func runGUI(opts guiOptions) int {
	t0 := time.Now()

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		return 1
	}
	cfg := config.Get()

	logger, closeLog, err := bootstrap.NewLogger(cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return 1
	}
	defer func() { _ = closeLog() }()
	logger = bootstrap.FollowConfigLevel(logger)

	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))
	defer cancel()
	log := logging.FromContext(ctx)
	log.Info().Str("version", opts.Version).Msg("starting duopane")

	trace := logging.NewStartupTrace(t0, log)
	trace.Mark("config_loaded")

	paths, err := bootstrap.ResolvePaths(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve paths")
		return 1
	}

	storage, err := bootstrap.OpenStorage(ctx, paths)
	if err != nil {
		log.Error().Err(err).Msg("failed to open partition registry")
		return 1
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close database")
		}
	}()
	trace.Mark("storage_ready")

	repo := settings.NewFileRepository(paths.SettingsFile)
	store := usecase.NewSettingsStore(ctx, repo)
	loop := gtkhost.NewMainLoop()

	// The record loads while GTK starts; until it resolves the store keeps
	// defaults and defers edits.
	go func() {
		loaded := store.Load(ctx)
		loop.Post(func() {
			store.Resolve(ctx, loaded)
			trace.Mark("settings_resolved")
		})
	}()

	if cfg.Settings.WatchFile {
		bootstrap.WatchSettingsFile(ctx, repo, store, loop)
	}
	bootstrap.WatchConfig(log, config.GetManager())

	app := gtkhost.NewApp(ctx)
	var ctrl *coordinator.CompositionController

	app.OnActivate(func(actx context.Context) error {
		var err error
		ctrl, err = buildComposition(actx, app, cfg, store, storage, trace)
		return err
	})
	app.OnShutdown(func(sctx context.Context) {
		if ctrl != nil {
			ctrl.Stop()
		}
		store.Close(sctx)
		logging.FromContext(sctx).Info().Msg("shutdown complete")
	})

	setupSignalHandler(ctx, app, loop)

	return app.Run(opts.Args)
}

// buildComposition creates the window, its three surfaces and the message
// plumbing between the pages and the store.
func buildComposition(
	ctx context.Context,
	app *gtkhost.App,
	cfg *config.Config,
	store *usecase.SettingsStore,
	storage *bootstrap.Storage,
	trace *logging.StartupTrace,
) (*coordinator.CompositionController, error) {
	log := logging.FromContext(ctx)

	window := app.NewWindow(cfg.Window)

	router := messaging.NewRouter(ctx)
	onMessage := func(from port.Surface, raw []byte) {
		if err := router.Dispatch(ctx, from, raw); err != nil {
			log.Warn().Err(err).Msg("script message rejected")
		}
	}

	ctrl := coordinator.NewCompositionController(ctx, coordinator.CompositionDeps{
		Window:       window,
		Factory:      gtkhost.NewFactory(window, cfg.Content, onMessage),
		Opener:       gtkhost.Opener{},
		Store:        store,
		DividerWidth: cfg.Layout.DividerWidth,
		OnShown: func() {
			trace.Mark("window_shown")
			trace.Finish()
		},
	})

	editor := app.NewSettingsEditor(window, cfg.Content, onMessage, ctrl.AddBroadcastTarget)
	bridge := coordinator.NewBridge(store, usecase.NewDragResizeCoordinator(store, ctrl), editor)
	if err := messaging.RegisterAll(ctx, router, bridge); err != nil {
		return nil, fmt.Errorf("register message handlers: %w", err)
	}
	app.BindSettingsShortcut(editor.OpenSettingsEditor)

	if err := ctrl.Start(ctx, storage.Partitions); err != nil {
		return nil, err
	}
	trace.Mark("composition_started")
	return ctrl, nil
}

func setupSignalHandler(ctx context.Context, app *gtkhost.App, loop port.MainLoop) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
			loop.Post(app.Quit)
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
}
