// Copyright 2026 The Wordsort Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the wordsort server and interactive CLI.

Wordsort maintains a word list in locale-aware sorted order with exact and
closest-match search, live prefix completion, and a reservoir sampler for
seeding the list with random entries from a word file.

# Usage

Start the msgpack IPC server on stdin/stdout with defaults:

	wordsort

Run the interactive session against a custom word file and locale:

	wordsort -c -data /usr/share/dict/words -locale de

Configuration lives in a TOML file resolved from -config, then the user
config dir, then builtin defaults:

	[list]
	locale = "en"

	[sampler]
	source = "data/words.txt"
	default_count = 10

The list's sort order follows the configured locale's collation at primary
strength, so "Apple" and "apple" order together while staying distinct
entries. Frontends are expected to send NFC-normalized text; both surfaces
here normalize on input.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/bastiangx/wordsort/internal/cli"
	"github.com/bastiangx/wordsort/pkg/collation"
	"github.com/bastiangx/wordsort/pkg/config"
	"github.com/bastiangx/wordsort/pkg/sampler"
	"github.com/bastiangx/wordsort/pkg/server"
	"github.com/bastiangx/wordsort/pkg/suggest"
	"github.com/bastiangx/wordsort/pkg/wordlist"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	configPath := flag.String("config", "", "Path to a config.toml (default: user config dir)")
	dataPath := flag.String("data", "", "Word file for random sampling (overrides config)")
	locale := flag.String("locale", "", "BCP 47 locale tag for sort order (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the server")
	seedCount := flag.Int("seed", 0, "Seed the list with this many random words at startup")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(false)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	log.Debugf("Config in use: %s", cfgPath)

	if *locale != "" {
		cfg.List.Locale = *locale
	}
	if *dataPath != "" {
		cfg.Sampler.Source = *dataPath
	}

	tag := cfg.List.Tag()
	if tag == language.English && cfg.List.Locale != "en" {
		log.Debugf("Locale %q fell back to English", cfg.List.Locale)
	}

	rule := collation.New(tag)
	list := wordlist.New(rule)
	completer := suggest.NewCompleter(rule)
	smp := sampler.New(cfg.Sampler.Source)

	if *seedCount > 0 {
		words, err := smp.Sample(*seedCount)
		if err != nil {
			log.Fatalf("Seeding list from %s: %v", cfg.Sampler.Source, err)
		}
		for _, w := range words {
			if list.Contains(w) {
				continue
			}
			list.Insert(w)
			completer.Index(w)
		}
		log.Debugf("Seeded %d words from %s", list.Len(), cfg.Sampler.Source)
	}

	if *cliMode {
		handler := cli.NewInputHandler(list, completer, smp, cfg)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI session error: %v", err)
		}
		return
	}

	srv := server.NewServer(list, completer, smp, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
