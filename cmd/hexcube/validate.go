package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/validator"
)

var validateShowAll bool

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a cached-puzzle document against all 1536 constraint groups",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().BoolVar(&validateShowAll, "all", false, "Print every failing group instead of the first ten")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var doc domain.CachedPuzzleDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("corrupt document: %w", err)
	}
	p, err := domain.DecodeCachedPuzzle(&doc)
	if err != nil {
		return err
	}

	v := validator.New()
	out := cmd.OutOrStdout()

	puzzleRes, err := v.Validate(cmd.Context(), p.Cube)
	if err != nil {
		return err
	}
	solutionRes, err := v.Validate(cmd.Context(), domain.CubeFromGrid(p.Solution))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "puzzle %s (%s): %d givens, %d empty\n", p.ID, p.Difficulty, doc.GivenCellCount, doc.EmptyCellCount)
	report(out, "givens", puzzleRes)
	report(out, "solution", solutionRes)

	if !puzzleRes.IsValid || !solutionRes.IsValid {
		return fmt.Errorf("%d constraint groups failed", len(puzzleRes.Errors)+len(solutionRes.Errors))
	}
	return nil
}

func report(out io.Writer, label string, res domain.CubeResult) {
	if res.IsValid {
		fmt.Fprintf(out, "%s: all 1536 groups valid\n", label)
		return
	}
	fmt.Fprintf(out, "%s: %d groups failed\n", label, len(res.Errors))
	shown := 0
	for _, e := range res.Errors {
		if !validateShowAll && shown >= 10 {
			fmt.Fprintf(out, "  ... and %d more (use --all)\n", len(res.Errors)-shown)
			break
		}
		fmt.Fprintf(out, "  %s: duplicates at %v\n", e.Description, e.Cells)
		shown++
	}
}
