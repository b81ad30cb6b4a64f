package security

import (
	_ "embed"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"agenda-api/internal/models"
)

// DefaultOperatorCandidates are the operator document locations probed in
// order, covering the project-root and build-output working directories.
var DefaultOperatorCandidates = []string{
	filepath.Join("src", "data", "operator.json"),
	filepath.Join("data", "operator.json"),
	filepath.Join("..", "src", "data", "operator.json"),
	filepath.Join("..", "data", "operator.json"),
}

// The operator document bundled into the binary, used when no candidate
// file yields a usable credential pair.
//
//go:embed default_operator.json
var defaultOperator []byte

// Resolver locates the operator credential pair. The pair is re-read on
// every call so edits to the operator file take effect immediately.
type Resolver struct {
	candidates []string
	fallback   []byte
}

// ResolverOptions configure a Resolver. Zero values select the default
// candidate list and the bundled fallback document.
type ResolverOptions struct {
	Candidates []string
	Fallback   []byte
}

func NewResolver(opts ResolverOptions) *Resolver {
	r := &Resolver{
		candidates: opts.Candidates,
		fallback:   opts.Fallback,
	}
	if len(r.candidates) == 0 {
		r.candidates = DefaultOperatorCandidates
	}
	if r.fallback == nil {
		r.fallback = defaultOperator
	}
	return r
}

// GetOperator returns the configured credential pair, or nil when neither
// a candidate file nor the bundled fallback carries both fields. A nil
// result means nobody can authenticate.
func (r *Resolver) GetOperator() *models.Operator {
	if op := r.fromCandidates(); op != nil {
		return op
	}

	var op models.Operator
	if err := json.Unmarshal(r.fallback, &op); err != nil {
		log.Printf("agenda: failed to parse bundled operator document: %v", err)
		return nil
	}
	if op.Username == "" || op.Password == "" {
		return nil
	}
	return &op
}

func (r *Resolver) fromCandidates() *models.Operator {
	for _, path := range r.candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("agenda: failed to read operator file %s: %v", path, err)
			continue
		}
		if strings.TrimSpace(string(raw)) == "" {
			return nil
		}
		var op models.Operator
		if err := json.Unmarshal(raw, &op); err != nil {
			// Malformed candidate; keep scanning.
			continue
		}
		if op.Username != "" && op.Password != "" {
			return &op
		}
	}
	return nil
}
