package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pulse-runner/audio"
	"github.com/lixenwraith/pulse-runner/core"
	"github.com/lixenwraith/pulse-runner/engine"
	"github.com/lixenwraith/pulse-runner/event"
	"github.com/lixenwraith/pulse-runner/parameter"
	"github.com/lixenwraith/pulse-runner/profile"
	"github.com/lixenwraith/pulse-runner/status"
	"github.com/lixenwraith/pulse-runner/system"
)

const (
	frameInterval = 16 * time.Millisecond
	beatFlashMs   = 120
	profileID     = "default"
)

var archetypeGlyphs = map[core.Archetype]rune{
	core.ArchetypeBeam:      '─',
	core.ArchetypeAimedShot: '◆',
	core.ArchetypePulsar:    '●',
	core.ArchetypeWall:      '█',
}

var archetypeStyles = map[core.Archetype]tcell.Style{
	core.ArchetypeBeam:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ArchetypeAimedShot: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ArchetypePulsar:    tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	core.ArchetypeWall:      tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// obstacle is the demo's visual body for one pooled handle
type obstacle struct {
	req  core.SpawnRequest
	x    float64
	y    int
	velX float64
}

type game struct {
	screen        tcell.Screen
	width, height int

	session    *engine.Session
	scheduler  *audio.Scheduler
	spawner    *system.SpawnEngine
	difficulty *system.DifficultyController
	registry   *status.Registry

	obstacles []obstacle

	playerX, playerY int
	lastBeat         int64
	beatFlashUntil   time.Time
	hits             int
}

func newGame() (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	core.RegisterCrashScreen(screen)

	g := &game{
		screen:   screen,
		registry: status.NewRegistry(),
		lastBeat: -1,
	}
	g.width, g.height = screen.Size()
	g.playerX = g.width / 2
	g.playerY = g.height / 2

	song := core.Song{
		ID:              "overworld-1",
		BPM:             128,
		TotalBeats:      256,
		DifficultyLabel: "normal",
	}

	store := profile.NewStore(saveDir())
	g.difficulty, err = system.NewDifficultyController(store, profileID, g.registry)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	pool := engine.NewPool[core.Obstacle](
		parameter.ObstaclePoolSize,
		parameter.ObstaclePoolCap,
		func() *core.Obstacle { return &core.Obstacle{} },
		func(o *core.Obstacle) { o.Reset() },
	)
	g.spawner = system.NewSpawnEngine(song, g.difficulty, pool, g.registry)

	cfg := audio.LoadConfig()
	library := audio.NewLibrary(cfg.SampleRate)
	g.scheduler = audio.NewScheduler(cfg, library)
	if err := g.scheduler.Start(); err != nil {
		// Never happens today (backend failure is silent mode), kept
		// for future backends that can fail hard
		log.Printf("audio start: %v", err)
	}

	g.session, err = engine.NewSession(song, g.scheduler, g.spawner, g.difficulty)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	return g, nil
}

func saveDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".pulse-runner"
	}
	return filepath.Join(base, "pulse-runner")
}

// materialize turns this tick's spawn decisions into moving bodies
func (g *game) materialize(decisions []core.SpawnRequest) {
	for _, req := range decisions {
		ob := obstacle{
			req: req,
			y:   1 + int(req.Origin.Offset*float64(g.height-3)),
		}
		speed := req.SpeedScale * 18.0 // Columns per second
		if req.Origin.Side == core.SideLeft {
			ob.x = 0
			ob.velX = speed
		} else {
			ob.x = float64(g.width - 1)
			ob.velX = -speed
		}
		g.obstacles = append(g.obstacles, ob)
	}
}

// step advances obstacles, reports collisions, releases finished
// handles back to the pool
func (g *game) step(dt float64) {
	alive := g.obstacles[:0]
	for _, ob := range g.obstacles {
		ob.x += ob.velX * dt

		if int(ob.x) == g.playerX && ob.y == g.playerY {
			g.hits++
			g.session.Events().Push(event.Event{
				Type: event.TypePlayerHitObstacle,
				At:   g.session.Now(),
				With: core.TagObstacle,
			})
			g.session.Release(ob.req.Handle)
			continue
		}

		if ob.x < -1 || ob.x > float64(g.width) {
			g.session.Release(ob.req.Handle)
			continue
		}
		alive = append(alive, ob)
	}
	g.obstacles = alive
}

func (g *game) draw() {
	g.screen.Clear()

	now := time.Now()
	flash := now.Before(g.beatFlashUntil)

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if flash {
		borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	for x := 0; x < g.width; x++ {
		g.screen.SetContent(x, 0, '═', nil, borderStyle)
		g.screen.SetContent(x, g.height-2, '═', nil, borderStyle)
	}

	for _, ob := range g.obstacles {
		glyph := archetypeGlyphs[ob.req.Archetype]
		g.screen.SetContent(int(ob.x), ob.y, glyph, nil, archetypeStyles[ob.req.Archetype])
	}

	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	g.screen.SetContent(g.playerX, g.playerY, '@', nil, playerStyle)

	skill := g.registry.Float("difficulty.skill").Get()
	statusLine := fmt.Sprintf(" beat %d/%d  skill %.2f  active %d  hits %d ",
		g.session.BeatIndex(), g.session.Song().TotalBeats, skill, g.spawner.Active(), g.hits)
	if g.session.Paused() {
		statusLine += "[paused] "
	}
	if g.scheduler.Silent() {
		statusLine += "[no audio] "
	} else if g.scheduler.Muted() {
		statusLine += "[muted] "
	}
	drawText(g.screen, 1, g.height-1, statusLine, tcell.StyleDefault)

	g.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyUp:
			if g.playerY > 1 {
				g.playerY--
			}
		case ev.Key() == tcell.KeyDown:
			if g.playerY < g.height-3 {
				g.playerY++
			}
		case ev.Key() == tcell.KeyLeft:
			if g.playerX > 0 {
				g.playerX--
			}
		case ev.Key() == tcell.KeyRight:
			if g.playerX < g.width-1 {
				g.playerX++
			}
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'm':
				g.scheduler.ToggleMute()
			case 'p':
				if g.session.Paused() {
					g.session.Resume()
				} else {
					g.session.Pause()
					g.scheduler.Stop()
				}
			}
		}
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
	}
	return true
}

func (g *game) run() {
	g.session.OnBeat(func(index int64) {
		g.lastBeat = index
		g.beatFlashUntil = time.Now().Add(beatFlashMs * time.Millisecond)
	})
	g.session.Start()

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	})

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			decisions := g.session.Tick()
			g.materialize(decisions)
			if !g.session.Paused() {
				g.step(dt)
			}
			g.draw()

			if g.session.Finished() {
				return
			}
		}
	}
}

func (g *game) cleanup() {
	g.scheduler.Close()
	g.screen.Fini()

	triggered, suppressed := g.scheduler.Stats()
	log.Printf("session done: beats triggered=%d suppressed=%d hits=%d dropped_events=%d",
		triggered, suppressed, g.hits, g.session.Events().Dropped())
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	game, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
