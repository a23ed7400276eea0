package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tbelaire/maze-w25/audio"
	"github.com/tbelaire/maze-w25/config"
	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/game"
	"github.com/tbelaire/maze-w25/input"
	"github.com/tbelaire/maze-w25/maze"
	"github.com/tbelaire/maze-w25/render"
)

const helpLine = "arrows/hjkl/wasd move  . wait  p hint  q quit"

// cliFlags holds the command line; a flag only overrides config when given
type cliFlags struct {
	set *flag.FlagSet

	envFile  string
	height   int
	width    int
	trolls   int
	seed     int64
	mazeFile string
	audio    bool
	debug    bool
}

func newCLIFlags(name string) *cliFlags {
	f := &cliFlags{set: flag.NewFlagSet(name, flag.ExitOnError)}
	f.set.StringVar(&f.envFile, "env", config.DefaultEnvFile, "Settings file")
	f.set.IntVar(&f.height, "height", 0, "Maze height in cells")
	f.set.IntVar(&f.width, "width", 0, "Maze width in cells")
	f.set.IntVar(&f.trolls, "trolls", 0, "Number of trolls")
	f.set.Int64Var(&f.seed, "seed", 0, "Random seed (0 = from clock)")
	f.set.StringVar(&f.mazeFile, "maze", "", "Play a layout file instead of a generated maze")
	f.set.BoolVar(&f.audio, "audio", true, "Play sound cues")
	f.set.BoolVar(&f.debug, "debug", false, "Write logs/trollmaze.log")
	return f
}

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := newCLIFlags(os.Args[0])
	flags.set.Parse(os.Args[1:])

	cfg, err := config.Load(flags.envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}
	cfg = flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(2)
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "trollmaze: %v\n", err)
		os.Exit(1)
	}
}

// apply overrides cfg with every flag given on the command line
func (f *cliFlags) apply(cfg config.Config) config.Config {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "height":
			cfg.Height = f.height
		case "width":
			cfg.Width = f.width
		case "trolls":
			cfg.Trolls = f.trolls
		case "seed":
			cfg.Seed = f.seed
		case "maze":
			cfg.MazeFile = f.mazeFile
		case "audio":
			cfg.Audio = f.audio
		case "debug":
			cfg.Debug = f.debug
		}
	})
	return cfg
}

func run(cfg config.Config, logger core.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("trollmaze: seed %d", seed)

	s, err := newGame(cfg, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return err
	}

	var player audio.Player = audio.Silent{}
	if cfg.Audio {
		sp := audio.NewSpeakerPlayer(audio.DefaultSampleRate, logger)
		if err := sp.Init(); err != nil {
			// Non-fatal, game can run without sound
			logger.Printf("audio disabled: %v", err)
		} else {
			player = sp
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	loop(screen, s, player)
	return nil
}

// newGame builds the maze, places the player and spawns the trolls
func newGame(cfg config.Config, rng *rand.Rand, logger core.Logger) (*game.Session, error) {
	var (
		m   *maze.Maze
		err error
	)
	if cfg.MazeFile != "" {
		m, err = maze.LoadFile(cfg.MazeFile)
	} else {
		m, err = maze.Generate(maze.GenerateConfig{
			Height: cfg.Height,
			Width:  cfg.Width,
			Rand:   rng,
			Logger: logger,
		})
	}
	if err != nil {
		return nil, err
	}

	start, err := m.RandomFloorTile(rng)
	if err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	s, err := game.NewSession(m, start, rng, game.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := s.SpawnTrolls(cfg.Trolls); err != nil {
		return nil, err
	}
	return s, nil
}

// loop redraws after every key until the session ends and one more key is pressed
func loop(screen tcell.Screen, s *game.Session, player audio.Player) {
	draw(screen, s)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, s)
		case *tcell.EventKey:
			if s.Over() {
				return
			}
			cmd, ok := input.Translate(ev)
			if !ok {
				continue
			}
			res := s.Tick(cmd)
			for _, c := range audio.CuesFor(res) {
				player.Play(c)
			}
			if res.Outcome == game.Quitted {
				return
			}
			draw(screen, s)
		}
	}
}

func draw(screen tcell.Screen, s *game.Session) {
	screen.Clear()
	render.Draw(screen, s)

	y := s.Maze().Height() + 1
	text := helpLine
	switch s.Outcome() {
	case game.Escaped:
		text = "You escaped! Press any key."
	case game.Captured:
		text = "A troll got you. Press any key."
	}
	for x, ch := range []rune(text) {
		screen.SetContent(x, y, ch, nil, render.StyleStatus)
	}
	screen.Show()
}
