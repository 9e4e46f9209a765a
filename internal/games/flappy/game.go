// Package flappy implements a Flappy Bird-style game.
// The player keeps a bird airborne between gaps in scrolling pipe pairs;
// every few pairs a cake appears that is worth extra points.
package flappy

import (
	"math/rand"
	"slices"
	"strconv"

	"github.com/vovakirdan/flappy-cake/internal/config"
	"github.com/vovakirdan/flappy-cake/internal/core"
)

// PipePoints is awarded for each pipe the bird clears, so a pair is worth 1.
const PipePoints = 0.5

// HUD text positions in world units.
const (
	scoreTextX    = 5
	scoreTextY    = 45
	gameOverTextX = 5
	gameOverTextY = 90
)

// GameOverText is drawn below the score once the game has ended.
const GameOverText = "GAME OVER"

// Game implements the game logic. It owns every entity and all mutable
// state; hosts drive it only through Start, OnTick, OnSpawnTimer and OnInput.
type Game struct {
	cfg     config.FlappyConfig
	physics Physics
	rng     Rand
	cues    core.CuePlayer

	bird        Bird
	pipes       []Pipe // Oldest first
	bonus       *Bonus // At most one
	score       float64
	pairsPassed int
	state       core.GameState
	tickCount   int
}

// New creates a game with the given configuration and cue player.
// A nil cue player discards cues. The game is ready to run with the fixed
// seed of core.DefaultConfig; call Start to reseed it.
func New(cfg config.FlappyConfig, cues core.CuePlayer) *Game {
	if cues == nil {
		cues = core.SilentCues{}
	}
	g := &Game{
		cfg:     cfg,
		physics: NewPhysics(cfg.Physics),
		cues:    cues,
		pipes:   make([]Pipe, 0, 8),
	}
	g.Start(core.DefaultConfig())
	return g
}

// Start seeds the spawner and puts the game in its initial running state.
func (g *Game) Start(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.Restart()
}

// Restart returns every entity, the score and the counters to their
// start-of-game values. The random source keeps its sequence.
func (g *Game) Restart() {
	g.bird = Bird{
		X: g.cfg.Bird.X,
		Y: g.cfg.Bird.StartY,
		W: g.cfg.Bird.Width,
		H: g.cfg.Bird.Height,
	}
	g.pipes = g.pipes[:0]
	g.bonus = nil
	g.score = 0
	g.pairsPassed = 0
	g.state = core.StateRunning
	g.tickCount = 0
}

// OnTick advances the simulation by one fixed tick. It does nothing once
// the game is over.
func (g *Game) OnTick() core.Status {
	if g.state == core.StateOver {
		return g.Status()
	}
	g.tickCount++

	g.physics.StepBird(&g.bird)
	if g.bird.Y > g.cfg.Board.Height {
		g.end()
	}

	birdBox := g.bird.Box()
	for i := range g.pipes {
		p := &g.pipes[i]
		p.X = g.physics.Scroll(p.X)

		if !p.Passed && g.bird.X > p.X+p.W {
			g.score += PipePoints
			p.Passed = true
			// Both halves pass on the same tick; the pair counts once.
			if p.Variant == PipeBottom {
				g.pairsPassed++
				if g.pairsPassed%g.cfg.Bonus.Every == 0 {
					g.spawnBonus()
				}
			}
		}

		if birdBox.Intersects(p.Box()) {
			g.end()
		}
	}

	g.retirePipes()
	g.updateBonus(birdBox)

	return g.Status()
}

// OnSpawnTimer adds a new pipe pair at the right edge of the board.
// It does nothing once the game is over.
func (g *Game) OnSpawnTimer() {
	if g.state == core.StateOver {
		return
	}
	top, bottom := SpawnPair(g.rng, g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.Pipes.Width, g.cfg.Pipes.Height)
	g.pipes = append(g.pipes, top, bottom)
}

// OnInput interprets a raw event and applies the resulting intent.
// It returns the intent so hosts can log or react to it.
func (g *Game) OnInput(ev core.RawEvent) core.Intent {
	intent := TranslateInput(ev, g.state)
	switch intent {
	case core.IntentJump:
		g.Jump()
	case core.IntentRestart:
		g.Restart()
	}
	return intent
}

// Jump applies the jump impulse. On a finished game it starts a new one
// first, so the new bird begins with the impulse already applied.
func (g *Game) Jump() {
	if g.state == core.StateOver {
		g.Restart()
	}
	g.physics.Jump(&g.bird)
	g.cues.PlayCue(core.CueFlap)
}

// end moves the game to the Over state.
func (g *Game) end() {
	if g.state == core.StateOver {
		return
	}
	g.state = core.StateOver
	g.cues.PlayCue(core.CueCrash)
}

// spawnBonus places a cake at the right edge, centred in the opening of the
// most recently spawned pair. It replaces any cake still on the board.
func (g *Game) spawnBonus() {
	n := len(g.pipes)
	if n < 2 {
		return
	}
	top, bottom := g.pipes[n-2], g.pipes[n-1]
	g.bonus = &Bonus{
		X: g.cfg.Board.Width,
		Y: OpeningCenter(top, bottom) - g.cfg.Bonus.Height/2,
		W: g.cfg.Bonus.Width,
		H: g.cfg.Bonus.Height,
	}
}

// retirePipes drops pipes that are fully past the left edge, oldest first.
// The prefix to drop is measured before anything is removed.
func (g *Game) retirePipes() {
	retired := 0
	for retired < len(g.pipes) && g.pipes[retired].X < -g.pipes[retired].W {
		retired++
	}
	if retired > 0 {
		g.pipes = append(g.pipes[:0], g.pipes[retired:]...)
	}
}

// updateBonus scrolls the cake and resolves collection or expiry.
func (g *Game) updateBonus(birdBox core.Box) {
	if g.bonus == nil {
		return
	}
	g.bonus.X = g.physics.Scroll(g.bonus.X)

	if birdBox.Intersects(g.bonus.Box()) {
		g.score += g.cfg.Bonus.Points
		g.bonus = nil
		g.cues.PlayCue(core.CueEat)
		return
	}

	if g.bonus.X < -g.bonus.W {
		g.bonus = nil
	}
}

// Render emits draw calls for the current frame.
func (g *Game) Render(c core.Canvas) {
	b := g.bird
	c.DrawSprite(core.SpriteBird, b.X, b.Y, b.W, b.H)

	for _, p := range g.pipes {
		c.DrawSprite(p.Sprite(), p.X, p.Y, p.W, p.H)
	}

	if g.bonus != nil {
		c.DrawSprite(core.SpriteBonus, g.bonus.X, g.bonus.Y, g.bonus.W, g.bonus.H)
	}

	c.DrawText(FormatScore(g.score), scoreTextX, scoreTextY)
	if g.state == core.StateOver {
		c.DrawText(GameOverText, gameOverTextX, gameOverTextY)
	}
}

// FormatScore renders a score without trailing zeros ("2.5", "7").
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// Status returns a snapshot of the session.
func (g *Game) Status() core.Status {
	return core.Status{
		State:       g.state,
		Score:       g.score,
		PairsPassed: g.pairsPassed,
		Tick:        g.tickCount,
	}
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Pipes returns a copy of the live pipes, oldest first.
func (g *Game) Pipes() []Pipe {
	return slices.Clone(g.pipes)
}

// Bonus returns the live cake, if any.
func (g *Game) Bonus() (Bonus, bool) {
	if g.bonus == nil {
		return Bonus{}, false
	}
	return *g.bonus, true
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
