package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/dabeerhasan15/sounds/internal/core/domain"
	"github.com/dabeerhasan15/sounds/internal/core/ports"
	"github.com/dabeerhasan15/sounds/internal/core/validate"
)

// Snapshot is the rendering contract handed to presentation layers: the
// current report (validated or canonical), the raw decoded payload for
// diagnostic display, and whether a search is in flight.
type Snapshot struct {
	QueryID string         `json:"query_id,omitempty"`
	Report  *domain.Report `json:"report"`
	Raw     any            `json:"raw"`
	Loading bool           `json:"loading"`
}

// Orchestrator runs score card searches against a report source and owns
// the single current-report slot. Searches are serialized, and concurrent
// identical searches are coalesced, so two results can never race to set
// the slot.
type Orchestrator struct {
	source ports.ReportSource

	run   sync.Mutex // serializes searches
	group singleflight.Group

	mu      sync.Mutex // guards the slot below
	current *domain.QueryResult
	loading bool
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(source ports.ReportSource) *Orchestrator {
	return &Orchestrator{source: source}
}

// Run performs one search for the given song and artist and resolves the
// current-report slot. Callers must pass non-blank input; values are
// trimmed before the request goes out.
//
// Every failure class (transport, malformed body, explicit upstream error
// flag, schema violation) collapses to the canonical error report, so Run
// has no error return: the collapse policy is the contract.
func (o *Orchestrator) Run(ctx context.Context, song, artist string) domain.QueryResult {
	song = strings.TrimSpace(song)
	artist = strings.TrimSpace(artist)

	key := strings.ToLower(song) + "\x00" + strings.ToLower(artist)
	v, _, _ := o.group.Do(key, func() (any, error) {
		o.run.Lock()
		defer o.run.Unlock()

		// Clear the slot before the request is issued so a stale
		// result never lingers while loading.
		o.mu.Lock()
		o.current = nil
		o.loading = true
		o.mu.Unlock()

		res := o.query(ctx, song, artist)

		o.mu.Lock()
		o.current = &res
		o.loading = false
		o.mu.Unlock()

		return res, nil
	})

	return v.(domain.QueryResult)
}

// Snapshot returns the current rendering state. The zero state (no report,
// not loading) is the idle screen.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{Loading: o.loading}
	if o.current != nil {
		report := o.current.Report
		snap.QueryID = o.current.QueryID
		snap.Report = &report
		snap.Raw = o.current.Raw
	}
	return snap
}

func (o *Orchestrator) query(ctx context.Context, song, artist string) domain.QueryResult {
	res := domain.QueryResult{QueryID: uuid.NewString()}

	raw, err := o.source.Fetch(ctx, song, artist)
	if err != nil {
		// Best-effort diagnostics only; the caller sees the canonical report.
		log.Printf("WARN orchestrator: query %s: %v", res.QueryID, err)
		res.Report = domain.CanonicalError()
		return res
	}

	// The raw payload is retained on every post-transport path so a
	// diagnostic view can show exactly what the service returned.
	res.Raw = raw

	if obj, isObj := raw.(map[string]any); isObj && validate.Truthy(obj["error"]) {
		res.Report = domain.CanonicalError()
		return res
	}

	if !validate.Report(raw) {
		log.Printf("DEBUG orchestrator: query %s: payload rejected by validator", res.QueryID)
		res.Report = domain.CanonicalError()
		return res
	}

	report, err := decodeReport(raw)
	if err != nil {
		log.Printf("WARN orchestrator: query %s: decode after validation: %v", res.QueryID, err)
		res.Report = domain.CanonicalError()
		return res
	}

	res.Report = report
	return res
}

// decodeReport maps a validated payload onto the typed report. Null
// expansion entries passed over by the validator are compacted away.
func decodeReport(raw any) (domain.Report, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return domain.Report{}, err
	}

	var report domain.Report
	if err := json.Unmarshal(buf, &report); err != nil {
		return domain.Report{}, err
	}

	kept := report.ExpansionCategories[:0]
	for _, entry := range report.ExpansionCategories {
		if entry != nil {
			kept = append(kept, entry)
		}
	}
	report.ExpansionCategories = kept
	report.Error = false
	report.Message = ""

	return report, nil
}
