/*
Package sampler draws uniform random words from a line-oriented word file.

The file is streamed once and reservoir sampled, so memory use follows the
requested sample size, not the file. Every qualifying line ends up in the
result with probability count/total.
*/
package sampler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoWords reports that a full pass over the source produced no usable
// lines, either because the source is empty or every line is blank.
var ErrNoWords = errors.New("sampler: word source has no usable lines")

// Sampler picks random words from a source file, one candidate per line.
type Sampler struct {
	path string
	rng  *rand.Rand
}

// New returns a sampler over the word file at path.
func New(path string) *Sampler {
	return NewSeeded(path, time.Now().UnixNano())
}

// NewSeeded fixes the random source so sampling is reproducible.
func NewSeeded(path string, seed int64) *Sampler {
	return &Sampler{
		path: path,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Path returns the source file the sampler reads from.
func (s *Sampler) Path() string { return s.path }

// Sample streams the source once and returns up to count random words.
// When the source holds fewer than count qualifying lines, all of them come
// back and that is not an error. A missing source and a source with no
// usable lines both are.
func (s *Sampler) Sample(count int) ([]string, error) {
	if count <= 0 {
		return nil, ErrNoWords
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open word source %s: %w", s.path, err)
	}
	defer f.Close()
	return s.sample(f, count)
}

// sample runs one reservoir pass over r.
func (s *Sampler) sample(r io.Reader, count int) ([]string, error) {
	reservoir := make([]string, 0, count)
	index := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		// Each line should be one word; trim and lowercase so entries stay
		// uniform regardless of how the file was authored.
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue // blank lines must not advance the reservoir index
		}
		if index < count {
			reservoir = append(reservoir, line)
		} else if j := s.rng.Intn(index + 1); j < count {
			reservoir[j] = line
		}
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word source: %w", err)
	}
	if len(reservoir) == 0 {
		return nil, ErrNoWords
	}
	log.Debugf("sampled %d of %d qualifying lines", len(reservoir), index)
	return reservoir, nil
}
