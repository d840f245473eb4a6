package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/nowlow/chronometer"
	"github.com/nowlow/chronometer/config"
	"github.com/nowlow/chronometer/console"
	"github.com/nowlow/chronometer/pkg/logger"
	cmtime "github.com/nowlow/chronometer/time"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to JSON configuration")
	flag.Parse()

	cfg, e := config.Load(*configPath)
	if e != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", e)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, "[chronometer] ", cfg.Verbosity)

	clock, e := cmtime.ClockByName(cfg.Clock)
	if e != nil {
		log.Error(e, "clock selection failed")
		os.Exit(1)
	}

	chrono := chronometer.NewGuarded(clock).WithLogger(log)
	if cfg.AutoStart {
		chrono.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.V(1).Info("console ready", "clock", cfg.Clock, "config", *configPath)
	c := console.Console{
		Chronometer: chrono,
		Log:         log,
		Prompt:      cfg.Prompt,
	}
	if e := c.Run(ctx, os.Stdin, os.Stdout); e != nil {
		log.Error(e, "console failed")
		stop()
		os.Exit(1)
	}

	fmt.Println(chrono.String())
}
