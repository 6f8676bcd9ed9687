// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"github.com/absolutelightning/go-dictionary"
	"github.com/absolutelightning/go-dictionary/deque"
	"github.com/absolutelightning/go-dictionary/internal/config"
	"github.com/absolutelightning/go-dictionary/internal/log"
)

func main() {
	parser := argparse.NewParser("dictctl", "Load a word list into a dictionary and query it")
	configPath := parser.String("c", "config", &argparse.Options{Help: "YAML configuration file"})
	impl := parser.Selector("i", "impl", []string{config.Tree, config.Hash, config.MoveToFront, config.Trie},
		&argparse.Options{Help: "Dictionary implementation, overrides the configuration file"})
	words := parser.String("w", "words", &argparse.Options{Required: true, Help: "Word list, one word per line"})
	gets := parser.StringList("g", "get", &argparse.Options{Help: "Look up a word"})
	prefixes := parser.StringList("p", "prefix", &argparse.Options{Help: "List completions of a prefix (trie only)"})
	level := parser.String("l", "log-level", &argparse.Options{Help: "Log level, overrides the configuration file"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	conf := config.Default()
	if *configPath != "" {
		var err error
		if conf, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
			os.Exit(1)
		}
	}
	if *impl != "" {
		conf.Implementation = *impl
	}
	if *level != "" {
		conf.LogLevel = *level
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	lvl, _ := log.ParseLevel(conf.LogLevel)
	log.InitAndSetLevel(lvl)
	logger := log.Logger().Named("dictctl")

	d, err := conf.NewStringDictionary()
	if err != nil {
		logger.Fatal("failed to build dictionary", zap.Error(err))
	}

	f, err := os.Open(*words)
	if err != nil {
		logger.Fatal("failed to open word list", zap.String("path", *words), zap.Error(err))
	}
	n, err := load(d, f)
	f.Close()
	if err != nil {
		logger.Fatal("failed to read word list", zap.String("path", *words), zap.Error(err))
	}
	logger.Info("word list loaded",
		zap.String("implementation", conf.Implementation),
		zap.Int("lines", n),
		zap.Int("entries", d.Size()))
	// rendering walks every entry
	if log.IsDebugEnabled() {
		logger.Debug("dictionary contents", zap.String("dictionary", d.String()))
	}

	if err = query(os.Stdout, d, *gets, *prefixes); err != nil {
		logger.Fatal("query failed", zap.Error(err))
	}
}

// load stores every non-empty line of r under its line number, starting
// at 1. Returns the number of lines read.
func load(d dictionary.Dictionary[string, int], r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		d.Put(word, lineNumber)
	}
	return lineNumber, scanner.Err()
}

type completer interface {
	GetCompletions(prefix string) *deque.Deque[int]
}

func query(w io.Writer, d dictionary.Dictionary[string, int], gets, prefixes []string) error {
	for _, word := range gets {
		if line, ok := d.Get(word); ok {
			fmt.Fprintf(w, "%s: line %d\n", word, line)
		} else {
			fmt.Fprintf(w, "%s: not found\n", word)
		}
	}
	if len(prefixes) == 0 {
		return nil
	}
	c, ok := d.(completer)
	if !ok {
		return fmt.Errorf("%w: completions need the trie implementation", dictionary.ErrInvalidConfig)
	}
	for _, prefix := range prefixes {
		fmt.Fprintf(w, "%s*: %s\n", prefix, c.GetCompletions(prefix))
	}
	return nil
}
