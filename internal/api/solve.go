package api

import (
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"cloudeng.io/logging/ctxlog"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/dynprog/knapsack"
	"github.com/katalvlaran/dynprog/lcs"
	"github.com/katalvlaran/dynprog/lps"
)

type knapsackResponse struct {
	Value   float64 `json:"value"`
	Indices []int   `json:"indices,omitempty"`
	Weight  *int    `json:"weight,omitempty"`
}

type sequenceResponse struct {
	Length      int    `json:"length"`
	Subsequence string `json:"subsequence"`
}

// readBody reads and validates a JSON request body.
func readBody(r *http.Request) (gjson.Result, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("body is not valid JSON: %w", ErrMalformed)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return gjson.Result{}, fmt.Errorf("body must be a JSON object: %w", ErrMalformed)
	}

	return doc, nil
}

// stringField extracts a required string field and enforces MaxSequence.
func (s *Server) stringField(doc gjson.Result, name string) (string, error) {
	v := doc.Get(name)
	if v.Type != gjson.String {
		return "", fmt.Errorf("%s must be a string: %w", name, ErrMalformed)
	}
	if n := utf8.RuneCountInString(v.Str); n > s.cfg.MaxSequence {
		return "", fmt.Errorf("%s has %d runes, limit %d: %w", name, n, s.cfg.MaxSequence, ErrLimitExceeded)
	}

	return v.Str, nil
}

// checkCells rejects a rows×cols DP table larger than MaxCells. The
// product is never formed, so huge dimensions cannot overflow.
func (s *Server) checkCells(rows, cols int) error {
	if rows > 0 && cols > s.cfg.MaxCells/rows {
		return fmt.Errorf("table %d×%d exceeds %d cells: %w", rows, cols, s.cfg.MaxCells, ErrLimitExceeded)
	}
	return nil
}

// invalid records a rejected solve and answers 400.
func (s *Server) invalid(w http.ResponseWriter, algorithm string, err error) {
	s.metrics.rejected(algorithm)
	writeError(w, http.StatusBadRequest, err)
}

func (s *Server) handleKnapsack(w http.ResponseWriter, r *http.Request) {
	const algo = "knapsack"
	doc, err := readBody(r)
	if err != nil {
		s.invalid(w, algo, err)
		return
	}

	capacity, err := integer(doc.Get("capacity"))
	if err != nil {
		s.invalid(w, algo, fmt.Errorf("capacity: %w", err))
		return
	}
	if capacity > s.cfg.MaxCapacity {
		s.invalid(w, algo, fmt.Errorf("capacity %d, limit %d: %w", capacity, s.cfg.MaxCapacity, ErrLimitExceeded))
		return
	}
	items, err := DecodeItems(doc.Get("items"))
	if err != nil {
		s.invalid(w, algo, err)
		return
	}

	// MaxValue keeps one row; Select keeps the full table for backtracking.
	rows := 1
	if doc.Get("select").Bool() {
		rows = len(items) + 1
	}
	if err := s.checkCells(rows, capacity+1); err != nil {
		s.invalid(w, algo, err)
		return
	}

	var resp knapsackResponse
	if rows > 1 {
		sel, err := knapsack.Select(capacity, items)
		if err != nil {
			s.invalid(w, algo, err)
			return
		}
		resp = knapsackResponse{Value: sel.Value, Indices: sel.Indices, Weight: &sel.Weight}
	} else {
		best, err := knapsack.MaxValue(capacity, items)
		if err != nil {
			s.invalid(w, algo, err)
			return
		}
		resp.Value = best
	}

	s.metrics.solved(algo, rows*(capacity+1))
	ctxlog.Logger(r.Context()).Debug("solved", "algorithm", algo, "capacity", capacity, "items", len(items), "value", resp.Value)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLCS(w http.ResponseWriter, r *http.Request) {
	const algo = "lcs"
	doc, err := readBody(r)
	if err != nil {
		s.invalid(w, algo, err)
		return
	}
	a, err := s.stringField(doc, "a")
	if err != nil {
		s.invalid(w, algo, err)
		return
	}
	b, err := s.stringField(doc, "b")
	if err != nil {
		s.invalid(w, algo, err)
		return
	}

	ra, rb := []rune(a), []rune(b)
	if err := s.checkCells(len(ra)+1, len(rb)+1); err != nil {
		s.invalid(w, algo, err)
		return
	}

	opts := lcs.DefaultOptions()
	opts.ReturnSubsequence = true
	res, err := lcs.Compute(ra, rb, &opts)
	if err != nil {
		s.invalid(w, algo, err)
		return
	}

	s.metrics.solved(algo, (len(ra)+1)*(len(rb)+1))
	ctxlog.Logger(r.Context()).Debug("solved", "algorithm", algo, "length", res.Length)
	writeJSON(w, http.StatusOK, sequenceResponse{Length: res.Length, Subsequence: string(res.Subsequence)})
}

func (s *Server) handleLPS(w http.ResponseWriter, r *http.Request) {
	const algo = "lps"
	doc, err := readBody(r)
	if err != nil {
		s.invalid(w, algo, err)
		return
	}
	str, err := s.stringField(doc, "s")
	if err != nil {
		s.invalid(w, algo, err)
		return
	}

	rs := []rune(str)
	if err := s.checkCells(len(rs), len(rs)); err != nil {
		s.invalid(w, algo, err)
		return
	}

	sub := lps.Subsequence(rs)

	s.metrics.solved(algo, len(rs)*len(rs))
	ctxlog.Logger(r.Context()).Debug("solved", "algorithm", algo, "length", len(sub))
	writeJSON(w, http.StatusOK, sequenceResponse{Length: len(sub), Subsequence: string(sub)})
}
