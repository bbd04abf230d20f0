package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordsort/internal/utils"
	"github.com/bastiangx/wordsort/pkg/config"
	"github.com/bastiangx/wordsort/pkg/sampler"
	"github.com/bastiangx/wordsort/pkg/suggest"
	"github.com/bastiangx/wordsort/pkg/wordlist"
)

// Server handles the IPC for word list operations.
type Server struct {
	list      *wordlist.List
	completer *suggest.Completer
	sampler   *sampler.Sampler
	cfg       *config.Config

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a word list server using stdin/stdout for IPC.
func NewServer(list *wordlist.List, completer *suggest.Completer, smp *sampler.Sampler, cfg *config.Config) *Server {
	return newServerIO(os.Stdin, os.Stdout, list, completer, smp, cfg)
}

func newServerIO(r io.Reader, w io.Writer, list *wordlist.List, completer *suggest.Completer, smp *sampler.Sampler, cfg *config.Config) *Server {
	return &Server{
		list:      list,
		completer: completer,
		sampler:   smp,
		cfg:       cfg,
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes the stream.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready", Size: s.list.Len()})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case "add":
		s.handleAdd(req)
	case "search":
		s.handleSearch(req)
	case "closest":
		s.handleClosest(req)
	case "suggest":
		s.handleSuggest(req)
	case "sample":
		s.handleSample(req)
	case "list":
		s.send(ListResponse{ID: req.ID, Words: s.list.Words(), Count: s.list.Len()})
	case "clear":
		s.list.Clear()
		s.completer.Reset()
		s.send(StatusResponse{ID: req.ID, Status: "ok", Size: 0})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Size: s.list.Len()})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

// handleAdd normalizes the word and inserts it at its sorted position.
// Entries already present are acknowledged without inserting, so repeated
// adds stay idempotent.
func (s *Server) handleAdd(req Request) {
	word := utils.NormalizeWord(req.Word)
	if word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		return
	}
	if s.list.Contains(word) {
		s.send(StatusResponse{ID: req.ID, Status: "duplicate", Size: s.list.Len()})
		return
	}
	s.list.Insert(word)
	s.completer.Index(word)
	log.Debugf("added %q, list size %d", word, s.list.Len())
	s.send(StatusResponse{ID: req.ID, Status: "ok", Size: s.list.Len()})
}

// handleSearch is the exact lookup. A miss is a normal f=false response;
// the client decides whether to follow up with a closest op.
func (s *Server) handleSearch(req Request) {
	word := utils.NormalizeWord(req.Word)
	if word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		return
	}
	i := s.list.Search(word)
	if i < 0 {
		s.send(SearchResponse{ID: req.ID, Found: false, Index: -1})
		return
	}
	s.send(SearchResponse{ID: req.ID, Found: true, Word: s.list.At(i), Index: i})
}

func (s *Server) handleClosest(req Request) {
	word := utils.NormalizeWord(req.Word)
	if word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		return
	}
	match, ok := s.list.ClosestMatch(word)
	s.send(SearchResponse{ID: req.ID, Found: ok, Word: match, Index: -1})
}

func (s *Server) handleSuggest(req Request) {
	prefix := utils.NormalizeWord(req.Word)

	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		return
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.CLI.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	words := s.completer.Suggest(prefix, limit)
	elapsed := time.Since(start)

	s.send(SuggestResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleSample draws random words from the source file and inserts the ones
// the list does not already hold.
func (s *Server) handleSample(req Request) {
	count := req.Count
	if count < 1 {
		count = s.cfg.Sampler.DefaultCount
	}
	if count > s.cfg.Sampler.MaxCount {
		count = s.cfg.Sampler.MaxCount
	}

	words, err := s.sampler.Sample(count)
	if err != nil {
		if errors.Is(err, sampler.ErrNoWords) {
			s.sendError(req.ID, "word source has no usable lines", 422)
		} else {
			s.sendError(req.ID, fmt.Sprintf("word source unavailable: %v", err), 404)
		}
		log.Errorf("Sampling %d words: %v", count, err)
		return
	}

	added := []string{}
	skipped := 0
	for _, w := range words {
		w = utils.NormalizeWord(w)
		if s.list.Contains(w) {
			skipped++
			continue
		}
		s.list.Insert(w)
		s.completer.Index(w)
		added = append(added, w)
	}
	s.send(SampleResponse{ID: req.ID, Added: added, Skipped: skipped, Size: s.list.Len()})
}

// send marshals the response and writes it to the client.
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
