// Package cli runs the interactive word list session on a terminal.
package cli

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordsort/internal/logger"
	"github.com/bastiangx/wordsort/internal/utils"
	"github.com/bastiangx/wordsort/pkg/config"
	"github.com/bastiangx/wordsort/pkg/sampler"
	"github.com/bastiangx/wordsort/pkg/suggest"
	"github.com/bastiangx/wordsort/pkg/wordlist"
)

// InputHandler reads lines from stdin and drives the word list. A bare word
// is treated as a live prefix and answered with suggestions; colon commands
// mutate and query the list.
type InputHandler struct {
	list      *wordlist.List
	completer *suggest.Completer
	sampler   *sampler.Sampler
	cfg       *config.Config
	out       *log.Logger
}

// NewInputHandler wires the interactive session.
func NewInputHandler(list *wordlist.List, completer *suggest.Completer, smp *sampler.Sampler, cfg *config.Config) *InputHandler {
	return &InputHandler{
		list:      list,
		completer: completer,
		sampler:   smp,
		cfg:       cfg,
		out:       logger.Interactive(),
	}
}

// Start begins the session loop. It returns when stdin closes or the user
// quits.
func (h *InputHandler) Start() error {
	h.out.Print("wordsort interactive session")
	h.out.Print("type a prefix for suggestions, or :add :rand :find :list :clear :quit")

	reader := bufio.NewReader(os.Stdin)
	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := h.handleCommand(line); quit {
				return nil
			}
			continue
		}
		h.handlePrefix(line)
	}
}

// handlePrefix answers a typed prefix with live completions, falling back to
// the closest match when nothing in the list starts with it.
func (h *InputHandler) handlePrefix(input string) {
	prefix := utils.NormalizeWord(input)
	if len(prefix) > h.cfg.Server.MaxPrefix {
		h.out.Warnf("prefix too long: %q", prefix)
		return
	}

	words := h.completer.Suggest(prefix, h.cfg.CLI.DefaultLimit)
	if len(words) == 0 {
		match, ok := h.list.ClosestMatch(prefix)
		if !ok {
			h.out.Warn("the list is empty")
			return
		}
		h.out.Printf("no completions for %q, closest match: %s", prefix, match)
		return
	}
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, w)
	}
}

// handleCommand dispatches a colon command. Returns true when the session
// should end.
func (h *InputHandler) handleCommand(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ":add":
		h.addWord(arg)
	case ":rand":
		h.addRandom(arg)
	case ":find":
		h.findWord(arg)
	case ":list":
		if h.list.Len() == 0 {
			h.out.Print("the list is empty")
			return false
		}
		h.out.Printf("%d entries: %s", h.list.Len(), strings.Join(h.list.Words(), " "))
	case ":clear":
		h.list.Clear()
		h.completer.Reset()
		h.out.Print("cleared")
	case ":quit", ":q":
		return true
	default:
		h.out.Warnf("unknown command %q", cmd)
	}
	return false
}

func (h *InputHandler) addWord(arg string) {
	word := utils.NormalizeWord(arg)
	if !utils.IsWord(word) {
		h.out.Warnf("not a word: %q", arg)
		return
	}
	if h.list.Contains(word) {
		h.out.Printf("%q is already in the list", word)
		return
	}
	h.list.Insert(word)
	h.completer.Index(word)
	h.out.Printf("added %q at position %d", word, h.list.Search(word))
}

func (h *InputHandler) addRandom(arg string) {
	count := h.cfg.Sampler.DefaultCount
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			h.out.Warnf("not a count: %q", arg)
			return
		}
		count = n
	}
	if count > h.cfg.Sampler.MaxCount {
		count = h.cfg.Sampler.MaxCount
	}

	words, err := h.sampler.Sample(count)
	if err != nil {
		h.out.Errorf("sampling failed: %v", err)
		return
	}

	added, skipped := 0, 0
	for _, w := range words {
		w = utils.NormalizeWord(w)
		if h.list.Contains(w) {
			skipped++
			continue
		}
		h.list.Insert(w)
		h.completer.Index(w)
		added++
	}
	h.out.Printf("added %d random words (%d duplicates skipped), list size %d", added, skipped, h.list.Len())
}

// findWord runs the exact search and falls back to the closest match, the
// same sequence the search button in a frontend would use.
func (h *InputHandler) findWord(arg string) {
	word := utils.NormalizeWord(arg)
	if word == "" {
		h.out.Warn("usage: :find <word>")
		return
	}
	if i := h.list.Search(word); i >= 0 {
		h.out.Printf("found %q at position %d", h.list.At(i), i)
		return
	}
	match, ok := h.list.ClosestMatch(word)
	if !ok {
		h.out.Warn("the list is empty")
		return
	}
	h.out.Printf("no exact match for %q, closest: %s", word, match)
}
