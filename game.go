package main

import (
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/melonfall/common"
	"github.com/milk9111/melonfall/save"
	"github.com/milk9111/melonfall/sfx"
	"github.com/milk9111/melonfall/sim"
	"github.com/milk9111/melonfall/tuning"
)

// dropCooldownTicks spaces drops out so the fresh piece can clear the
// spawn point before the next one releases.
const dropCooldownTicks = 18

type Game struct {
	world *sim.World
	input *Input
	mixer *sfx.Mixer

	watcher *tuning.Watcher

	best     int
	newBest  bool
	savePath string

	rings []*mergeRing

	paused bool
	quit   bool
	debug  bool

	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI

	cooldown int
}

func NewGame(spec tuning.Spec, watcher *tuning.Watcher, seed int64, muted, debug bool) *Game {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	savePath := save.Path()
	g := &Game{
		world:    sim.NewWorld(common.BaseWidth, common.BaseHeight, spec.Sim(), rng),
		input:    NewInput(),
		mixer:    sfx.NewMixer(muted),
		watcher:  watcher,
		best:     save.Load(savePath),
		savePath: savePath,
		debug:    debug,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.applyTuningReloads()
	g.input.Update()

	// Route by the state at the top of the frame, so the click that
	// dismissed an overlay can't also drop a body.
	switch {
	case g.world.State == sim.GameOver:
		g.updateGameOver()
	case g.paused:
		g.updatePaused()
	default:
		g.updatePlaying()
	}

	g.consumeEvents()
	return nil
}

func (g *Game) updateGameOver() {
	if g.gameOverUI != nil {
		g.gameOverUI.Update()
	}
	g.advanceRings()
	if g.input.ResetPressed {
		g.restart()
	}
}

func (g *Game) updatePaused() {
	g.pauseUI.Update()
	if g.input.PausePressed {
		g.paused = false
	}
}

func (g *Game) updatePlaying() {
	if g.input.PausePressed {
		g.paused = true
		return
	}
	if g.input.MutePressed {
		g.mixer.SetMuted(!g.mixer.Muted())
	}

	if g.input.CursorMoved {
		g.world.MovePendingTo(g.input.CursorX)
	}
	if g.input.MoveX != 0 {
		g.world.MovePendingBy(g.input.MoveX * g.world.Tuning().PendingStep)
	}

	if g.cooldown > 0 {
		g.cooldown--
	}
	if g.input.DropPressed && g.cooldown == 0 {
		g.world.Drop()
		g.cooldown = dropCooldownTicks
	}

	g.world.Step()
	g.advanceRings()
}

func (g *Game) advanceRings() {
	alive := g.rings[:0]
	for _, r := range g.rings {
		if !r.update() {
			alive = append(alive, r)
		}
	}
	g.rings = alive
}

// consumeEvents turns sim events into sound, effects and saving.
func (g *Game) consumeEvents() {
	for _, ev := range g.world.DrainEvents() {
		switch ev.Kind {
		case sim.EventDrop:
			g.mixer.PlayDrop()
		case sim.EventMerge:
			g.mixer.PlayMerge(ev.Tier)
			g.rings = append(g.rings, newMergeRing(ev.Pos.X, ev.Pos.Y, sim.Sizes[ev.Tier]/2, ev.Tier))
		case sim.EventGameOver:
			g.mixer.PlayGameOver()
			g.newBest = g.world.Score > g.best
			if g.newBest {
				g.best = g.world.Score
				save.Store(g.savePath, g.best)
			}
			g.gameOverUI = NewGameOverUI(g)
		}
	}
}

func (g *Game) restart() {
	g.world.Reset()
	g.gameOverUI = nil
	g.newBest = false
	g.rings = nil
	g.cooldown = 0
}

// applyTuningReloads drains the file watcher without blocking the tick.
func (g *Game) applyTuningReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case spec, ok := <-g.watcher.Specs:
			if !ok {
				g.watcher = nil
				return
			}
			g.world.SetTuning(spec.Sim())
			log.Printf("tuning reloaded")
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("tuning reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawArena(screen, float32(g.world.Tuning().SpawnY))

	for _, b := range g.world.Bodies {
		drawBody(screen, b, false)
	}
	if g.world.State == sim.Playing && g.world.Pending != nil {
		drawGuide(screen, g.world.Pending)
		drawBody(screen, g.world.Pending, true)
	}
	for _, r := range g.rings {
		r.draw(screen)
	}

	g.drawHUD(screen)

	if g.world.State == sim.GameOver && g.gameOverUI != nil {
		g.gameOverUI.Draw(screen)
	} else if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
