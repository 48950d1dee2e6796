// Command voxelterrain is a headless demo driver: it builds an Engine
// from config, walks a scripted viewer path for a fixed number of ticks,
// and logs scheduler stats each tick. It replaces the teacher's go-gl
// game loop, since the host rendering engine is out of scope (spec §1).
package main

import (
	"flag"
	"log"
	"time"

	"voxelterrain/internal/config"
	"voxelterrain/internal/engine"
	"voxelterrain/internal/meshsink"
)

// scriptedViewer walks a straight line in +X at a fixed speed, standing
// in for the host's camera/player controller (spec §6).
type scriptedViewer struct {
	x, y, z float64
	speed   float64
}

func (v *scriptedViewer) CurrentPosition() (float64, float64, float64) {
	return v.x, v.y, v.z
}

func (v *scriptedViewer) advance(dt float64) {
	v.x += v.speed * dt
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional; defaults are used if empty)")
	ticks := flag.Int("ticks", 200, "number of scheduler ticks to run")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("voxelterrain: %v", err)
		}
		cfg = loaded
	}

	viewer := &scriptedViewer{speed: cfg.World.BlockSize * float64(cfg.World.ChunkWidth) / 5}
	sink := meshsink.NewRecorder()

	eng := engine.New(cfg, viewer, sink)
	defer eng.Close()

	const dt = 1.0 / 20.0
	for i := 0; i < *ticks; i++ {
		viewer.advance(dt)
		stats := eng.Tick(dt)
		log.Printf("tick %d: gen_queue=%d mesh_queue=%d gen_dispatched=%d mesh_dispatched=%d applied=%d",
			i, stats.GenQueueLen, stats.MeshQueueLen, stats.GenDispatched, stats.MeshDispatched, sink.Applies())
		time.Sleep(time.Millisecond)
	}

	log.Printf("done: %d chunks with a live mesh, %d total applies", sink.Count(), sink.Applies())
}
