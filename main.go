package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/melonfall/common"
	"github.com/milk9111/melonfall/tuning"
)

func main() {
	tuningPath := flag.String("tuning", "", "tuning override file (watched for live edits)")
	seed := flag.Int64("seed", 0, "fixed RNG seed, 0 means time-based")
	mute := flag.Bool("mute", false, "start muted")
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec, err := tuning.Load(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *tuning.Watcher
	if *tuningPath != "" {
		w, err := tuning.NewWatcher(*tuningPath)
		if err != nil {
			log.Printf("watch %s: %v", *tuningPath, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("melonfall")

	game := NewGame(spec, watcher, *seed, *mute, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
