package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sdahmani/atakoris/inp"
	"github.com/sdahmani/atakoris/network"
	"github.com/sdahmani/atakoris/solver"
)

var (
	runM        int
	runObjError float64
)

var runCmd = &cobra.Command{
	Use:   "run <file.inp>",
	Short: "Run one analysis and print a result table",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&runM, "m", 100, "flow-discretization parameter")
	runCmd.Flags().Float64Var(&runObjError, "objective-error", 1e-3, "convergence tolerance")
}

func runRun(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()
	log := logger.Named("run").With("run_id", runID)

	n, err := inp.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("atakoris run: %w", err)
	}

	s := solver.New(n, solver.WithM(runM), solver.WithObjectiveError(runObjError), solver.WithLogger(log))
	result, err := s.Compute()
	if err != nil && !errors.Is(err, solver.ErrNonConvergence) {
		return fmt.Errorf("atakoris run: %w", err)
	}
	if errors.Is(err, solver.ErrNonConvergence) {
		log.Warnw("analysis did not converge, printing best-effort result", "error", err)
	}

	printResult(os.Stdout, result, s, runID)

	return nil
}

// printResult renders the solved network's junction heads and link flows
// as two tables, followed by a one-line iteration/error summary.
func printResult(w *os.File, n *network.Network, s *solver.Solver, runID string) {
	fmt.Fprintf(w, "run %s: %s\n", runID, n.Title)

	heads := tablewriter.NewWriter(w)
	heads.SetHeader([]string{"Junction", "Elevation", "Demand", "Head"})
	for _, j := range n.Junctions {
		head := "-"
		if j.Head != nil {
			head = fmt.Sprintf("%.4f", *j.Head)
		}
		heads.Append([]string{j.ID, fmt.Sprintf("%.3f", j.Elevation), fmt.Sprintf("%.4f", j.Demand), head})
	}
	heads.Render()

	flows := tablewriter.NewWriter(w)
	flows.SetHeader([]string{"Link", "Start", "End", "Flow"})
	for _, p := range n.Pipes {
		flows.Append([]string{p.ID, p.Start, p.End, flowCell(p.Flow)})
	}
	for _, pu := range n.Pumps {
		flows.Append([]string{pu.ID, pu.Start, pu.End, flowCell(pu.Flow)})
	}
	for _, v := range n.Valves {
		flows.Append([]string{v.ID, v.Start, v.End, flowCell(v.Flow)})
	}
	flows.Render()

	iterations := s.FinalIterations()
	errQ, errH := s.FinalErrors()
	fmt.Fprintf(w, "iterations: %s, errQ: %s, errH: %s, elapsed: %s\n",
		intCell(iterations), floatCell(errQ), floatCell(errH), elapsedCell(s))
}

func flowCell(f *float64) string {
	if f == nil {
		return "-"
	}

	return fmt.Sprintf("%.4f", *f)
}

func floatCell(f *float64) string {
	if f == nil {
		return "-"
	}

	return fmt.Sprintf("%.3e", *f)
}

func intCell(i *int) string {
	if i == nil {
		return "-"
	}

	return fmt.Sprintf("%d", *i)
}

func elapsedCell(s *solver.Solver) string {
	d := s.TimeAnalysis()
	if d == nil {
		return "-"
	}

	return d.String()
}
