package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/HuXin0817/power-boxes/pkg/assess"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/pkg/models/model"
)

// Searches deeper than this are too slow to repeat with plain minimax.
const maxCheckDepth = 4

type Options struct {
	Size      int
	Depth     int
	Games     int
	Algorithm assess.Algorithm
	Power     model.Config
	Check     model.Config
	Seed      int64
	PProf     string
}

func parseOptions(args []string) (o Options, err error) {
	fs := flag.NewFlagSet("arena", flag.ContinueOnError)
	fs.IntVar(&o.Size, "size", 4, "dots per side of the board")
	fs.IntVar(&o.Depth, "depth", assess.DefaultDepth, "AI search depth")
	fs.IntVar(&o.Games, "games", 10, "games to play")
	algorithmConf := fs.String("algorithm", assess.AlphaBetaSearch.String(), "AI search: alphabeta or minimax")
	powerConf := fs.String("power", "off", "power tokens: on or off")
	checkConf := fs.String("check", "on", "compare minimax with alpha-beta before every AI move: on or off")
	fs.Int64Var(&o.Seed, "seed", 0, "seed of the first game, 0 picks one")
	fs.StringVar(&o.PProf, "pprof", "", "serve pprof on this address")

	if err = fs.Parse(args); err != nil {
		return o, err
	}

	var errs []error
	if o.Size < chess.MinBoardSize || o.Size > chess.MaxBoardSize {
		errs = append(errs, fmt.Errorf("size %d: %w", o.Size, chess.ErrBoardSizeOutOfRange))
	}
	if o.Depth < 0 {
		errs = append(errs, fmt.Errorf("depth %d is negative", o.Depth))
	}
	if o.Games <= 0 {
		errs = append(errs, fmt.Errorf("games %d is not positive", o.Games))
	}

	var e error
	if o.Algorithm, e = assess.ParseAlgorithm(*algorithmConf); e != nil {
		errs = append(errs, e)
	}
	if o.Power, e = model.NewConfig(*powerConf); e != nil {
		errs = append(errs, fmt.Errorf("power: %w", e))
	}
	if o.Check, e = model.NewConfig(*checkConf); e != nil {
		errs = append(errs, fmt.Errorf("check: %w", e))
	}
	if o.Check && o.Depth > maxCheckDepth {
		o.Check = model.Off
	}

	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o, errors.Join(errs...)
}
