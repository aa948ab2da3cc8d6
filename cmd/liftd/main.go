// cmd/liftd/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"liftcontrol/internal/config"
	"liftcontrol/internal/console"
	"liftcontrol/internal/control"
	"liftcontrol/internal/plant"
	"liftcontrol/internal/remoteio"
	"liftcontrol/internal/scan"
	"liftcontrol/internal/telemetry"
	"liftcontrol/internal/trace"
)

func main() {
	// --------------------
	// Load + validate config (optional; defaults match the reference rig)
	// --------------------

	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		if err := config.Validate(loaded); err != nil {
			log.Fatalf("config validation failed: %v", err)
		}
		config.Normalize(loaded)
		cfg = loaded
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --------------------
	// Core: plant + controller
	// --------------------

	p := plant.New(cfg.Lift.Plant.Acceleration)

	ctrl := control.New(control.Config{
		MaxLoadKg:     cfg.Lift.Controller.MaxLoadKg,
		LiftSpeed:     cfg.Lift.Controller.LiftSpeed,
		LowerSpeed:    cfg.Lift.Controller.LowerSpeed,
		StationaryEps: cfg.Lift.Controller.StationaryEps,
	})

	// --------------------
	// Command source + snapshot sinks
	// --------------------

	con := console.New(os.Stdin, os.Stdout)
	go con.Run(cancel) // 'q' or EOF shuts the loop down

	var source scan.Source = con
	sinks := []scan.Sink{console.NewPrinter(os.Stdout, cfg.Lift.Scan.StatusEveryN)}

	if cfg.Lift.RemoteIO.Enabled {
		dev, err := remoteio.New(remoteio.Config{
			Endpoint:      cfg.Lift.RemoteIO.Endpoint,
			UnitID:        cfg.Lift.RemoteIO.UnitID,
			Timeout:       time.Duration(cfg.Lift.RemoteIO.TimeoutMs) * time.Millisecond,
			InputAddress:  cfg.Lift.RemoteIO.InputAddress,
			LoadRegister:  cfg.Lift.RemoteIO.LoadRegister,
			CoilAddress:   cfg.Lift.RemoteIO.CoilAddress,
			StatusAddress: cfg.Lift.RemoteIO.StatusAddress,
		})
		if err != nil {
			log.Fatalf("remote io connect failed: %v", err)
		}
		defer dev.Close()

		// The rack owns the commands; the console keeps quit and help.
		source = dev
		sinks = append(sinks, dev)
	}

	if cfg.Lift.Trace.Enabled {
		rec, err := trace.Open(cfg.Lift.Trace.Path)
		if err != nil {
			log.Fatalf("trace open failed: %v", err)
		}
		defer rec.Close()
		log.Printf("tracing cycles, run id %s", rec.RunID())

		sinks = append(sinks, rec)
	}

	// --------------------
	// Scan loop: one snapshot per fixed tick
	// --------------------

	loop, err := scan.New(
		scan.Config{Interval: time.Duration(cfg.Lift.Scan.IntervalMs) * time.Millisecond},
		ctrl, p, source,
	)
	if err != nil {
		log.Fatalf("scan loop build failed: %v", err)
	}

	out := make(chan telemetry.Snapshot)
	go loop.Run(ctx, out)

	for {
		select {
		case <-ctx.Done():
			return

		case snap := <-out:
			if snap.Err != nil {
				log.Printf("input read failed: %v", snap.Err)
			}
			for _, s := range sinks {
				if err := s.Publish(snap); err != nil {
					log.Printf("sink error: %v", err)
				}
			}
		}
	}
}
