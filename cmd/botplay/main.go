package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/melonfall/common"
	"github.com/milk9111/melonfall/sim"
	"github.com/milk9111/melonfall/tuning"
)

//go:embed lowest.tengo
var defaultPolicy string

// decideDispatchScript runs after the policy source so the script only has
// to define decide(game).
const decideDispatchScript = `
__out := decide(__game)
`

type policy struct {
	compiled *tengo.Compiled
	cols     int
	warned   bool
}

func loadPolicy(path string, cols int) (*policy, error) {
	src := defaultPolicy
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		src = string(b)
	}

	script := tengo.NewScript([]byte(src + "\n" + decideDispatchScript))
	_ = script.Add("__game", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &policy{compiled: compiled, cols: cols}, nil
}

// decide asks the script where to drop. Script failures aim at the center
// so a broken policy still finishes the soak.
func (p *policy) decide(w *sim.World) float64 {
	heights := w.ColumnHeights(p.cols)
	hs := make([]any, len(heights))
	for i, h := range heights {
		hs[i] = h
	}

	game := map[string]any{
		"width":        w.Width,
		"score":        w.Score,
		"bodies":       len(w.Bodies),
		"pending_tier": w.Pending.Tier,
		"pending_size": w.Pending.Size,
		"heights":      hs,
	}

	if err := p.compiled.Set("__game", game); err != nil {
		return p.fallback(w, err)
	}
	if err := p.compiled.Run(); err != nil {
		return p.fallback(w, err)
	}

	x := p.compiled.Get("__out").Float()
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return w.Width / 2
	}
	return x
}

func (p *policy) fallback(w *sim.World, err error) float64 {
	if !p.warned {
		log.Printf("policy error, aiming at center from now on: %v", err)
		p.warned = true
	}
	return w.Width / 2
}

type runResult struct {
	score     int
	ticks     uint64
	merges    int
	toppedOut bool
}

func runGame(pol *policy, tun sim.Tuning, seed int64, maxTicks uint64, dropEvery int) runResult {
	w := sim.NewWorld(common.BaseWidth, common.BaseHeight, tun, rand.New(rand.NewSource(seed)))

	var res runResult
	cooldown := 0
	for w.State == sim.Playing && w.Tick() < maxTicks {
		if cooldown <= 0 && w.Pending != nil {
			w.MovePendingTo(pol.decide(w))
			w.Drop()
			cooldown = dropEvery
		}
		cooldown--
		w.Step()

		for _, ev := range w.DrainEvents() {
			if ev.Kind == sim.EventMerge {
				res.merges++
			}
		}
	}

	res.score = w.Score
	res.ticks = w.Tick()
	res.toppedOut = w.State == sim.GameOver
	return res
}

func main() {
	games := flag.Int("games", 20, "number of games to play")
	seed := flag.Int64("seed", 1, "base RNG seed, game i plays with seed+i")
	scriptPath := flag.String("script", "", "policy script path (default: built-in lowest-column policy)")
	maxTicks := flag.Uint64("ticks", 20000, "tick cap per game")
	dropEvery := flag.Int("interval", 45, "ticks between drops")
	cols := flag.Int("cols", 9, "columns reported to the policy")
	tuningPath := flag.String("tuning", "", "tuning override file")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	if *games <= 0 {
		log.Fatal("games must be positive")
	}

	spec, err := tuning.Load(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}

	pol, err := loadPolicy(*scriptPath, *cols)
	if err != nil {
		log.Fatal(err)
	}

	var (
		minScore  = math.MaxInt
		maxScore  int
		sumScore  int
		sumTicks  uint64
		sumMerges int
		toppedOut int
	)

	for i := 0; i < *games; i++ {
		res := runGame(pol, spec.Sim(), *seed+int64(i), *maxTicks, *dropEvery)
		if *verbose {
			log.Printf("game %d: score=%d merges=%d ticks=%d topped_out=%t",
				i, res.score, res.merges, res.ticks, res.toppedOut)
		}
		if res.score < minScore {
			minScore = res.score
		}
		if res.score > maxScore {
			maxScore = res.score
		}
		sumScore += res.score
		sumTicks += res.ticks
		sumMerges += res.merges
		if res.toppedOut {
			toppedOut++
		}
	}

	n := float64(*games)
	fmt.Printf("games        %d\n", *games)
	fmt.Printf("score        min=%d mean=%.1f max=%d\n", minScore, float64(sumScore)/n, maxScore)
	fmt.Printf("merges/game  %.1f\n", float64(sumMerges)/n)
	fmt.Printf("ticks/game   %.0f\n", float64(sumTicks)/n)
	fmt.Printf("topped out   %d/%d\n", toppedOut, *games)
}
