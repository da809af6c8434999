/*
Orbit opens a window and renders a textured, normal mapped wall lit by an
orbiting light, seen from an orbiting camera.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/orbit/engine"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/platform"
	"github.com/spaghettifunk/orbit/engine/renderer/opengl"
	"github.com/spaghettifunk/orbit/testbed"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML configuration")
	flag.Parse()

	config, err := engine.LoadApplicationConfig(*configPath)
	if err != nil {
		panic(err)
	}
	core.SetLogLevel(config.LogLevel)

	tb, err := testbed.NewTestGame(config)
	if err != nil {
		panic(err)
	}

	events := core.NewEventSystem()
	window, err := platform.New(events)
	if err != nil {
		panic(err)
	}

	engine, err := engine.New(tb.Game, events, window, opengl.New(window))
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the loop notices the quit request at the next frame boundary
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		engine.RequestQuit()
	}()

	// run engine
	runErr := engine.Run()
	if err := engine.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
	}
	if runErr != nil {
		panic(runErr)
	}
}
