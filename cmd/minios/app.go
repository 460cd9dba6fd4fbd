package main

import (
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"mini-os/internal/apps"
	"mini-os/internal/config"
	"mini-os/internal/desktop"
	"mini-os/internal/eventbus"
	"mini-os/internal/fswatch"
	"mini-os/internal/logger"
	"mini-os/internal/prompt"
	"mini-os/internal/shutdown"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(level, cfg.LogJSON)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"start_dir":  cfg.StartDir,
		"log_level":  cfg.LogLevel,
	})

	bus := eventbus.NewBus(cfg.EventBuffer)
	eventbus.SubscribeAll(bus, eventbus.NewLogHandler(log))

	// Components stop in reverse order, so the report runs after the bus drains.
	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register("event report", shutdown.Func(func() {
		log.Info("Application", "application terminated", map[string]interface{}{
			"dropped_events": bus.Dropped(),
		})
	}))
	shutdownMgr.Register("event bus", bus)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(desktop.Title)
	window.Resize(desktop.WindowSize)
	window.SetMaster()

	desk, err := desktop.New(desktop.Options{
		StartDir:  cfg.StartDir,
		Version:   AppVersion,
		Prompter:  prompt.NewDialogs(window, cfg.StartDir, log),
		Publisher: bus,
		Logger:    log,
		Quit:      fyneApp.Quit,
		NewWatcher: func(onChange func()) (apps.DirWatcher, error) {
			return fswatch.New(onChange, fswatch.WithLogger(log))
		},
	})
	if err != nil {
		bus.Shutdown()
		return fmt.Errorf("build desktop: %w", err)
	}
	desk.Install(window)

	shutdownMgr.Listen(func(os.Signal) {
		fyne.Do(desk.Exit)
	})

	window.ShowAndRun()

	shutdownMgr.Shutdown()
	return nil
}
