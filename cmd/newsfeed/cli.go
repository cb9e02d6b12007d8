package main

import (
	"context"
	"io"

	"github.com/fwojciec/newsfeed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Loader    newsfeed.Loader
	Extractor newsfeed.Extractor
	Reports   newsfeed.ReportWriter

	// Runs is nil when no archive database is configured.
	Runs newsfeed.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log pipeline steps to stderr"`
	DB      string `name:"db" env:"NEWSFEED_DB" help:"SQLite file for archiving runs (archiving is off when empty)"`

	Parse   ParseCmd   `cmd:"" default:"withargs" help:"Parse a saved listing page and group news by rubric"`
	History HistoryCmd `cmd:"" help:"List archived runs"`
	Show    ShowCmd    `cmd:"" help:"Print the feed of an archived run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived run"`
	Report  ReportCmd  `cmd:"" help:"Summarize a saved JSON report"`
}

// ParseCmd is the "parse" subcommand. It runs when no command is given.
type ParseCmd struct {
	Input   string `short:"i" default:"news.html" env:"NEWSFEED_INPUT" help:"Saved HTML listing page"`
	Output  string `short:"o" default:"news_parsed.json" env:"NEWSFEED_OUTPUT" help:"JSON report path"`
	Profile string `short:"p" help:"YAML file overriding the card selectors"`
	Charset string `help:"Character set of the input when it is not UTF-8 (e.g. windows-1251)"`
	Quiet   bool   `short:"q" help:"Print the summary only, without the JSON dump"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `short:"s" help:"Only runs of this input file"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of runs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Path string `arg:"" optional:"" default:"news_parsed.json" help:"JSON report written by parse"`
	JSON bool   `help:"Also print the report contents"`
}
