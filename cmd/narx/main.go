// Command narx is an interactive train-and-evaluate tool for NARX
// forecasting. The user imports a dataset file, optionally adjusts the lag
// order and hidden layer width, and trains a network. Every error is
// reported as a notification and the prompt returns awaiting the next
// action.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	narx "github.com/aouyang1/go-narx"
	"github.com/aouyang1/go-narx/dataset"
	"github.com/aouyang1/go-narx/models"
)

var (
	ErrNoFileSelected   = errors.New("no file selected")
	ErrInvalidParameter = errors.New("parameter must be a positive integer")
)

const defaultPlotPath = "narx_fit.html"

type session struct {
	store       *dataset.Store
	lagOrder    int
	hiddenUnits int

	forecaster *narx.Forecaster
}

func newSession() *session {
	return &session{
		store:       dataset.NewStore(),
		lagOrder:    narx.DefaultLagOrder,
		hiddenUnits: models.DefaultHiddenUnits,
	}
}

func main() {
	if err := newSession().run(os.Stdin, os.Stdout); err != nil {
		slog.Error("session ended unexpectedly", "error", err.Error())
		os.Exit(1)
	}
}

func (s *session) run(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "commands: import <path> | lag <n> | hidden <n> | train | plot [path] | quit")

	scanner := bufio.NewScanner(r)
	fmt.Fprint(w, "narx> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "quit", "exit":
			return nil
		default:
			if err := s.dispatch(w, line); err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
			}
		}
		fmt.Fprint(w, "narx> ")
	}
	return scanner.Err()
}

func (s *session) dispatch(w io.Writer, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "import":
		return s.importFile(w, args)
	case "lag":
		return s.setParam(w, &s.lagOrder, "lag order", args)
	case "hidden":
		return s.setParam(w, &s.hiddenUnits, "hidden neurons", args)
	case "train":
		return s.train(w)
	case "plot":
		return s.plot(w, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (s *session) importFile(w io.Writer, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return ErrNoFileSelected
	}

	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	s.store.Replace(d)
	fmt.Fprintf(w, "imported %d observations with %d regressors\n", d.NumRows(), d.NumRegressors())
	return nil
}

func (s *session) setParam(w io.Writer, dst *int, name string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s, %w", name, ErrInvalidParameter)
	}
	val, err := strconv.Atoi(args[0])
	if err != nil || val < 1 {
		return fmt.Errorf("%s of %q, %w", name, args[0], ErrInvalidParameter)
	}
	*dst = val
	fmt.Fprintf(w, "%s set to %d\n", name, val)
	return nil
}

func (s *session) train(w io.Writer) error {
	d, err := s.store.Current()
	if err != nil {
		return fmt.Errorf("import a file first, %w", err)
	}

	trainOpt := models.NewDefaultMLPOptions()
	trainOpt.HiddenUnits = s.hiddenUnits
	f, err := narx.New(&narx.Options{
		LagOrder:        s.lagOrder,
		TrainingOptions: trainOpt,
	})
	if err != nil {
		return err
	}

	if err := f.Fit(d); err != nil {
		return err
	}
	s.forecaster = f

	res, err := f.Results()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "train      MSE: %s\n", formatScore(res.Scores.Train.MSE))
	fmt.Fprintf(w, "validation MSE: %s\n", formatScore(res.Scores.Validation.MSE))
	fmt.Fprintf(w, "test       MSE: %s\n", formatScore(res.Scores.Test.MSE))

	return s.plot(w, nil)
}

func (s *session) plot(w io.Writer, args []string) error {
	if s.forecaster == nil {
		return narx.ErrUntrainedForecaster
	}

	path := defaultPlotPath
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}
	if err := s.forecaster.PlotFit(path); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}

func formatScore(val float64) string {
	if math.IsNaN(val) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", val)
}
