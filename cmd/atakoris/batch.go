package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sdahmani/atakoris/inp"
	"github.com/sdahmani/atakoris/solver"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.inp...>",
	Short: "Run independent analyses over multiple files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

type batchRow struct {
	file       string
	runID      string
	title      string
	iterations *int
	errQ, errH *float64
	fatal      error
	converged  bool
}

func runBatch(cmd *cobra.Command, args []string) error {
	rows := make([]batchRow, len(args))

	g, _ := errgroup.WithContext(context.Background())
	for i, file := range args {
		i, file := i, file
		g.Go(func() error {
			rows[i] = analyzeOne(file)

			return nil
		})
	}
	// errgroup's Go functions here never return an error themselves
	// (each file's outcome is captured in its row instead), so Wait only
	// waits for them and always returns nil; analysis failures are
	// reported per-row below.
	_ = g.Wait()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Run ID", "Network", "Iterations", "ErrQ", "ErrH", "Status"})
	for _, r := range rows {
		status := "converged"
		if r.fatal != nil {
			status = fmt.Sprintf("error: %v", r.fatal)
		} else if !r.converged {
			status = "non-convergent"
		}
		table.Append([]string{r.file, r.runID, r.title, intCell(r.iterations), floatCell(r.errQ), floatCell(r.errH), status})
	}
	table.Render()

	return nil
}

func analyzeOne(file string) batchRow {
	runID := uuid.New().String()
	row := batchRow{file: file, runID: runID}

	log := logger.Named("batch").With("run_id", runID, "file", file)

	n, err := inp.ParseFile(file)
	if err != nil {
		row.fatal = err

		return row
	}
	row.title = n.Title

	s := solver.New(n, solver.WithLogger(log))
	_, err = s.Compute()
	row.iterations = s.FinalIterations()
	row.errQ, row.errH = s.FinalErrors()

	switch {
	case err == nil:
		row.converged = true
	case errors.Is(err, solver.ErrNonConvergence):
		row.converged = false
	default:
		row.fatal = err
	}

	return row
}
