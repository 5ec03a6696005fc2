package cmd

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/difficulty"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	rows       int
	cols       int
	asSnapshot bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a freshly generated maze",
	Long: `Generate a maze for the selected difficulty and print it as ASCII art, or as a
YAML snapshot that the render command can load again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		preset := difficulty.Resolve(level)
		switch {
		case rows == 0 && cols == 0:
		case rows == 0 || cols == 0:
			return fmt.Errorf("--rows and --cols must be given together")
		default:
			preset = difficulty.DefaultCatalog().WithSize(level, rows, cols).Resolve(level)
		}
		if err := preset.Validate(); err != nil {
			return err
		}

		gameSeed := resolveSeed()
		m, err := maze.New(preset.Rows, preset.Cols, game.NewRand(gameSeed))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asSnapshot {
			text, err := maze.NewSnapshot(m, gameSeed).Serialize()
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		}

		fmt.Fprintf(out, "%s %s %dx%d (seed %d)\n", preset.Emoji, preset.Name, m.Rows, m.Cols, gameSeed)
		fmt.Fprint(out, m)
		fmt.Fprintf(out, "par: %d moves\n", par(m))
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <snapshot.yaml>",
	Short: "Print a maze saved with generate --yaml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		snapshot, err := maze.LoadSnapshot(data)
		if err != nil {
			return err
		}
		m, err := snapshot.Maze()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%dx%d (seed %d)\n", m.Rows, m.Cols, snapshot.Seed)
		fmt.Fprint(out, m)
		fmt.Fprintf(out, "par: %d moves\n", par(m))
		return nil
	},
}

type presetEntry struct {
	Level             string `yaml:"level"`
	difficulty.Preset `yaml:",inline"`
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the difficulty presets as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := make([]presetEntry, 0, len(difficulty.Levels()))
		for _, l := range difficulty.Levels() {
			entries = append(entries, presetEntry{Level: l.String(), Preset: difficulty.Resolve(l)})
		}

		out, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func par(m *maze.Maze) int {
	return len(maze.ShortestPath(m, m.Start(), m.Goal())) - 1
}

func init() {
	generateCmd.Flags().IntVar(&rows, "rows", 0, "Override the preset's row count")
	generateCmd.Flags().IntVar(&cols, "cols", 0, "Override the preset's column count")
	generateCmd.Flags().BoolVar(&asSnapshot, "yaml", false, "Print a YAML snapshot instead of ASCII art")
}
