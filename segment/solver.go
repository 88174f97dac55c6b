package segment

import (
	"context"

	"github.com/tuannh982/segment-decoder/segment/commons"
	"github.com/tuannh982/segment-decoder/utils/math"
	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"
)

// Solver answers both questions over a batch of entries.
type Solver struct {
	decoder *Decoder
	workers int
	// log
	log *log.Entry
}

func NewSolver(workers int, strict bool) *Solver {
	if workers < 1 {
		workers = 1
	}
	return &Solver{
		decoder: NewDecoder(strict),
		workers: workers,
		log:     log.WithFields(log.Fields{"component": "solver"}),
	}
}

// CountUnique counts output signals whose length alone gives the digit
// (1, 4, 7 or 8).
func (s *Solver) CountUnique(entries []commons.Entry) int {
	count := 0
	for i := range entries {
		for _, signal := range entries[i].Outputs {
			if commons.HasUniqueLength(signal) {
				count++
			}
		}
	}
	s.log.WithFields(log.Fields{"entries": len(entries), "count": count}).Info("counted unique-length outputs")
	return count
}

// DecodeAll decodes every entry, keeping input order. The first failing
// entry aborts the batch.
func (s *Solver) DecodeAll(ctx context.Context, entries []commons.Entry) ([]int, error) {
	values := make([]int, len(entries))
	if s.workers == 1 || len(entries) <= 1 {
		if err := s.decodeRange(ctx, entries, values, 0, len(entries)); err != nil {
			return nil, err
		}
		return values, nil
	}
	chunk := math.DivCeil(len(entries), s.workers)
	eg, egCtx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(entries); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(entries) {
			hi = len(entries)
		}
		eg.Go(func() error {
			return s.decodeRange(egCtx, entries, values, lo, hi)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *Solver) decodeRange(ctx context.Context, entries []commons.Entry, values []int, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, err := s.decoder.Decode(&entries[i])
		if err != nil {
			return &EntryError{Index: i, Line: entries[i].Line, Err: err}
		}
		values[i] = value
		s.log.WithFields(log.Fields{"entry": i, "line": entries[i].Line, "signals": entries[i].String(), "value": value}).Debug("decoded entry")
	}
	return nil
}

// DecodeSum adds up the decoded value of every entry.
func (s *Solver) DecodeSum(ctx context.Context, entries []commons.Entry) (int, error) {
	values, err := s.DecodeAll(ctx, entries)
	if err != nil {
		return 0, err
	}
	sum := math.Sum(values)
	s.log.WithFields(log.Fields{"entries": len(entries), "workers": s.workers, "sum": sum}).Info("decoded sum")
	return sum, nil
}
