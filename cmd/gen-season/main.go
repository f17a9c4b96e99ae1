package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/lineup/internal/seasongen"
	"github.com/okian/lineup/pkg/logger"
)

// Default configuration constants.
const (
	defaultPlayers  = 8
	defaultEvents   = 12
	defaultBlackout = 0.1
	defaultPriority = 0.15
	defaultSeed     = 42
)

func main() {
	var (
		output   = flag.String("output", "season.yaml", "Output file for the generated season")
		pools    = flag.String("pools", "p13-stark,p13-mellan,p13-junior", "Comma-separated pool names")
		players  = flag.Int("players", defaultPlayers, "Players generated per pool")
		events   = flag.Int("events", defaultEvents, "Number of fixtures to generate")
		years    = flag.String("years", "2013", "Comma-separated format years cycled across fixtures")
		start    = flag.String("start", "2024-09-07T10:00:00+02:00", "Start of the first fixture (RFC 3339)")
		home     = flag.String("home", "Skändalshallen", "Home venue name")
		away     = flag.String("away", "Åkeshovshallen,Mälarhöjdens IP", "Comma-separated away venues")
		blackout = flag.Float64("blackout", defaultBlackout, "Fraction of (player, event) pairs blacked out")
		priority = flag.Float64("priority", defaultPriority, "Fraction of players marked priority")
		seed     = flag.Int64("seed", defaultSeed, "Random seed")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		os.Stderr.WriteString("invalid -start: " + err.Error() + "\n")
		os.Exit(1)
	}

	var yearTags []int
	for _, y := range strings.Split(*years, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			os.Stderr.WriteString("invalid -years entry: " + y + "\n")
			os.Exit(1)
		}
		yearTags = append(yearTags, n)
	}

	ctx := context.Background()
	cfg := &seasongen.Config{
		Pools:          strings.Split(*pools, ","),
		PlayersPerPool: *players,
		Events:         *events,
		Years:          yearTags,
		Start:          startTime,
		HomeVenue:      *home,
		AwayVenues:     strings.Split(*away, ","),
		BlackoutRate:   *blackout,
		PriorityRate:   *priority,
		Seed:           *seed,
	}

	if err := seasongen.Write(ctx, cfg, *output); err != nil {
		os.Stderr.WriteString("failed to write season: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Get().Info(ctx, "season written", logger.String("path", *output))
}
