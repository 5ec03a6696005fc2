package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game/difficulty"
	"github.com/spf13/cobra"
)

var (
	level        = difficulty.Easy
	timerEnabled bool
	seed         uint64
	tickMillis   int
)

var rootCmd = &cobra.Command{
	Use:   "vinom-maze",
	Short: "Find your way through procedurally generated mazes",
	Long: `vinom-maze generates perfect mazes and lets you solve them in the terminal,
optionally against a countdown.

Run with no arguments to play
	vinom-maze

Start on a harder maze with the timer on
	vinom-maze --difficulty hard --timer

Print a maze instead of playing it
	vinom-maze generate --seed 42
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveSeed returns the configured seed, deriving one from the clock when it is zero.
func resolveSeed() uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

type levelValue difficulty.Level

func newLevelValue(val difficulty.Level, p *difficulty.Level) *levelValue {
	*p = val
	return (*levelValue)(p)
}

func (v *levelValue) String() string {
	return difficulty.Level(*v).String()
}

func (v *levelValue) Set(value string) error {
	l, err := difficulty.ParseLevel(value)
	if err != nil {
		return err
	}
	*v = levelValue(l)
	return nil
}

func (v *levelValue) Type() string {
	return "difficulty.Level"
}

func levelNames() string {
	names := make([]string, 0, len(difficulty.Levels()))
	for _, l := range difficulty.Levels() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}

// initialLevel parses the configured level, falling back to Easy when it is unknown.
func initialLevel(name string) difficulty.Level {
	l, err := difficulty.ParseLevel(name)
	if err != nil {
		log.Printf("[APP] [WARNING] MAZE_DIFFICULTY: %v, using easy", err)
		return difficulty.Easy
	}
	return l
}

func init() {
	rootCmd.PersistentFlags().Var(newLevelValue(initialLevel(config.Envs.Difficulty), &level), "difficulty", "Difficulty level, one of: "+levelNames())
	rootCmd.PersistentFlags().BoolVar(&timerEnabled, "timer", config.Envs.Timer, "Start games with the countdown enabled")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", config.Envs.Seed, "Seed for maze generation (0 picks one from the clock)")
	rootCmd.PersistentFlags().IntVar(&tickMillis, "tick", config.Envs.TickMillis, "Countdown tick period in milliseconds")

	rootCmd.AddCommand(playCmd, generateCmd, presetsCmd, renderCmd)
}
