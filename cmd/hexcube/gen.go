package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/generator"
	"svw.info/hexcube/internal/solver"
)

var (
	genDifficulty    string
	genSeed          int64
	genMethod        string
	genOutput        string
	genCheckUnique   bool
	genMaxBacktracks int
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a puzzle and write its cached document",
		Long: `Generate a full solution cube, carve it to the requested difficulty,
and write the cached-puzzle JSON document.

The default backtracking method searches from an empty cube and can take
minutes. The algebraic method uses the closed-form construction and is
instant; use it for offline pre-generation.

Examples:
  hexcube gen --method algebraic -o cached-puzzle.json
  hexcube gen --difficulty medium --seed 42
  hexcube gen --check-unique --method algebraic`,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "easy", "Difficulty tier: easy|medium|hard")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().StringVarP(&genMethod, "method", "m", "backtrack", "Construction method: backtrack|algebraic")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default: stdout)")
	genCmd.Flags().BoolVar(&genCheckUnique, "check-unique", false, "Diagnose whether the carved puzzle has a unique solution (slow)")
	genCmd.Flags().IntVar(&genMaxBacktracks, "max-backtracks", 0, "Abort the search after this many backtracks (0 = unbounded)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	method, err := generator.ParseMethod(genMethod)
	if err != nil {
		return err
	}
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := solver.NewBacktracking()
	s.MaxBacktracks = genMaxBacktracks
	g := generator.New(s)
	g.Method = method

	p, st, err := g.Generate(cmd.Context(), seed, domain.ParseDifficulty(genDifficulty))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	doc := domain.EncodeCachedPuzzle(p)
	fmt.Fprintf(cmd.ErrOrStderr(), "generated %s puzzle %s: %d givens, %d empty (seed=%d, nodes=%d, backtracks=%d, %v)\n",
		doc.Difficulty, doc.ID, doc.GivenCellCount, doc.EmptyCellCount, seed, st.Nodes, st.Backtracks, st.Duration.Round(time.Millisecond))

	if genCheckUnique {
		n, cst, err := s.CountSolutions(cmd.Context(), domain.GridFromCube(p.Cube), 2)
		if err != nil {
			return err
		}
		switch n {
		case 1:
			fmt.Fprintf(cmd.ErrOrStderr(), "uniqueness check: unique solution (nodes=%d, %v)\n", cst.Nodes, cst.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "uniqueness check: %d+ solutions found\n", n)
		}
	}

	out := cmd.OutOrStdout()
	if genOutput != "" {
		if dir := filepath.Dir(genOutput); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.Create(genOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if genOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "written to %s\n", genOutput)
	}
	return nil
}
