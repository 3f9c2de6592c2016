package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/power-boxes/pkg/models/model"
	"github.com/HuXin0817/power-boxes/pkg/pprof"
	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
		}
		os.Exit(2)
	}

	logx.DisableStat()
	logx.SetLevel(logx.ErrorLevel)
	if o.PProf != "" {
		pprof.Serve(o.PProf)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sum summary
	bar := model.NewBar(os.Stderr, o.Games, "playing")
	for i := range o.Games {
		r, err := playGame(ctx, o, o.Seed+int64(i))
		if err != nil {
			bar.Close()
			fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("game %d: %v", i+1, err)))
			os.Exit(1)
		}

		sum.add(r)
		bar.Describe(fmt.Sprintf("Human %d : AI %d", sum.humanWins, sum.aiWins))
		bar.Add(1)
	}
	bar.Close()

	fmt.Println()
	sum.print(os.Stdout, o)
	if sum.mismatches > 0 {
		os.Exit(1)
	}
}
