package main

import (
	"context"
	"io"

	"github.com/mstanek/scout"
	"github.com/mstanek/scout/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Scanner   *scan.Scanner
	Fetcher   scout.Fetcher
	Channels  scout.ChannelReader
	Feeds     scout.FeedService
	Pitcher   scout.Pitcher
	Extractor scout.Extractor
	Converter scout.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan  ScanCmd  `cmd:"" help:"Scan a profile page for contact signals"`
	Batch BatchCmd `cmd:"" help:"Scan a file of profile URLs"`
	Pitch PitchCmd `cmd:"" help:"Generate an outreach opener for a channel"`

	Verbose bool `short:"v" help:"Log fetch and generation details to stderr"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL      string `arg:"" help:"Profile page URL"`
	FromFile string `name:"from-file" help:"Read rendered HTML from a file instead of launching a browser"`
	Pretty   bool   `short:"p" help:"Indent the JSON report"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string  `arg:"" help:"File with one profile URL per line"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent scan limit"`
	Rate        float64 `short:"r" default:"1" help:"Max requests per second per host"`
}

// PitchCmd is the "pitch" subcommand.
type PitchCmd struct {
	URL      string `arg:"" help:"Profile page URL"`
	FromFile string `name:"from-file" help:"Read rendered HTML from a file instead of launching a browser"`
	Videos   int    `default:"3" help:"Recent videos to include as outreach context"`
}
