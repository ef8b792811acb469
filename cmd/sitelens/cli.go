package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/sitelens"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Records     sitelens.RecordService
	PromptLogs  sitelens.PromptLogService
	Scraper     sitelens.Scraper
	RateLimiter sitelens.HostLimiter
	Summarizer  sitelens.Summarizer
	Prompter    sitelens.Prompter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB            string        `name:"db" env:"SITELENS_DB" help:"Database path (default ~/.sitelens/sitelens.db)"`
	GeminiAPIKey  string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	GeminiModel   string        `name:"gemini-model" env:"GEMINI_MODEL" default:"gemini-2.5-flash" help:"Gemini model"`
	HTTPTimeout   time.Duration `name:"http-timeout" default:"10s" help:"Timeout for static HTTP fetches"`
	RenderTimeout time.Duration `name:"render-timeout" default:"10s" help:"How long to wait for a rendered page body"`
	BrowserBin    string        `name:"browser-bin" env:"SITELENS_BROWSER_BIN" help:"Chrome binary to use for rendering"`
	Stealth       bool          `help:"Hide headless browser fingerprints when rendering"`
	Verbose       bool          `short:"v" help:"Log every fetch, render and scrape to stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape URLs and print the extracted fields as JSON"`
	List    ListCmd    `cmd:"" help:"List stored records"`
	Show    ShowCmd    `cmd:"" help:"Show a stored record"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored record and its prompt logs"`
	Prompt  PromptCmd  `cmd:"" help:"Send a custom prompt to Gemini"`
	Prompts PromptsCmd `cmd:"" help:"List logged prompts"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"URLs to scrape"`
	Save        bool     `short:"s" help:"Store successful results"`
	Analyze     bool     `short:"a" help:"Summarize successful results with Gemini"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrape limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per site (0 disables)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only records for this URL"`
	Limit int    `short:"n" help:"Maximum number of records"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Record ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// PromptCmd is the "prompt" subcommand.
type PromptCmd struct {
	Text    string `arg:"" help:"Prompt text"`
	Context string `help:"Background context for the prompt"`
	Record  string `help:"Use a stored record as background context"`
}

// PromptsCmd is the "prompts" subcommand.
type PromptsCmd struct {
	Record string `help:"Only prompts about this record"`
	Limit  int    `short:"n" help:"Maximum number of prompts"`
}
