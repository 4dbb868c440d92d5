// Command openbox constructs a randomly shuffled locked box of the given
// dimensions and runs the GF(2) unlock solver against it.
//
// Usage:
//
//	openbox [flags] <height> <width>
//
// Prints "BOX: OPENED!" on success or "BOX: LOCKED!" on failure. The exit
// code mirrors the verdict: 0 = opened, 1 = still locked, 2 = usage error.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/securebox/boxgrid"
	"github.com/katalvlaran/securebox/logger"
	"github.com/katalvlaran/securebox/unlock"
)

const (
	exitOpened = 0
	exitLocked = 1
	exitUsage  = 2
)

func main() {
	var (
		seed    = flag.Int64("seed", 0, "shuffle seed; 0 derives one from the clock")
		spins   = flag.Int("spins", -1, "exact number of shuffle toggles; -1 lets the RNG decide")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := logger.Logger()

	if flag.NArg() != 2 {
		usage()
		os.Exit(exitUsage)
	}
	y, errY := strconv.Atoi(flag.Arg(0))
	x, errX := strconv.Atoi(flag.Arg(1))
	if errY != nil || errX != nil || y < 0 || x < 0 {
		fmt.Fprintln(os.Stderr, "openbox: height and width must be non-negative integers")
		os.Exit(exitUsage)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Debug().Int64("seed", *seed).Int("height", y).Int("width", x).Msg("shuffling box")

	opts := []boxgrid.Option{boxgrid.WithRand(rng)}
	if *spins >= 0 {
		opts = append(opts, boxgrid.WithSpins(*spins))
	}

	locked, err := unlock.Open(y, x, opts...)
	if err != nil {
		log.Error().Err(err).Msg("openbox failed")
		os.Exit(exitUsage)
	}

	if locked {
		fmt.Println("BOX: LOCKED!")
		os.Exit(exitLocked)
	}
	fmt.Println("BOX: OPENED!")
	os.Exit(exitOpened)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <height> <width>\n", os.Args[0])
	flag.PrintDefaults()
}
