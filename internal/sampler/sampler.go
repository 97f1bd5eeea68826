// Package sampler draws random filenames from a directory listing that is
// read once at startup.
package sampler

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"strings"
)

// ErrEmpty is returned by New when the directory holds no usable files.
var ErrEmpty = errors.New("no files to sample from")

// MaxCount bounds every sample size regardless of the configured limit.
const MaxCount = 1000

type Sampler struct {
	files []string
	intN  func(n int) int
}

type Option func(*Sampler)

// WithIntN replaces the random source. intN must return a value in [0, n)
// and be safe for concurrent use.
func WithIntN(intN func(n int) int) Option {
	return func(s *Sampler) {
		s.intN = intN
	}
}

// New lists dir once and keeps the names of its regular entries.
// Entries whose metadata cannot be read are skipped.
func New(dir string, opts ...Option) (*Sampler, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list image directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			slog.Debug("Skipping unreadable entry", "dir", dir, "name", entry.Name(), "err", err)
			continue
		}
		if info.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, dir)
	}

	s := newSampler(files, opts...)
	slog.Info("Image set loaded", "dir", dir, "files", len(files))
	return s, nil
}

// MustFromFiles builds a sampler over a fixed list of names. It panics on
// an empty list; use New for data read from disk.
func MustFromFiles(files []string, opts ...Option) *Sampler {
	if len(files) == 0 {
		panic("sampler: empty file list")
	}
	return newSampler(files, opts...)
}

func newSampler(files []string, opts ...Option) *Sampler {
	s := &Sampler{
		files: slices.Clone(files),
		intN:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample returns n names drawn independently and uniformly, with
// replacement. n <= 0 yields an empty slice.
func (s *Sampler) Sample(n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = s.files[s.intN(len(s.files))]
	}
	return out
}

func (s *Sampler) Len() int {
	return len(s.files)
}

// Files returns a copy of the backing set in listing order.
func (s *Sampler) Files() []string {
	return slices.Clone(s.files)
}

// ParseCount turns a raw count parameter into a sample size. Missing,
// non-numeric and negative values give 0; values above limit are clamped
// to limit. A limit <= 0 or above MaxCount is treated as MaxCount.
func ParseCount(raw string, limit int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	if limit <= 0 || limit > MaxCount {
		limit = MaxCount
	}
	return min(n, limit)
}
