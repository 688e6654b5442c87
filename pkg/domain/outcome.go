package domain

import "time"

// OutcomeKind is the terminal state of one DNS lookup. Every dispatched
// candidate domain ends in exactly one of them.
type OutcomeKind string

const (
	// OutcomeResolved means an A record was returned.
	OutcomeResolved OutcomeKind = "RESOLVED"
	// OutcomeNotRegistered means the resolver explicitly reported that the name does not exist.
	OutcomeNotRegistered OutcomeKind = "NOT_REGISTERED"
	// OutcomeTransientFailure covers timeouts, network errors, invalid names and protocol errors.
	// It says nothing about registration status.
	OutcomeTransientFailure OutcomeKind = "TRANSIENT_FAILURE"
)

// Transient failure reasons, reported for diagnostics only.
const (
	ReasonTimeout     = "timeout"
	ReasonNoAnswer    = "no_answer"
	ReasonInvalidName = "invalid_name"
	ReasonUnavailable = "unavailable"
	ReasonInternal    = "internal"
)

// Outcome is the classified result of resolving one candidate domain.
type Outcome struct {
	// Domain is the looked up candidate domain.
	Domain string
	// Kind is the terminal state.
	Kind OutcomeKind
	// Address is the first IPv4 address returned, set only for OutcomeResolved.
	Address string
	// Reason explains a transient failure, set only for OutcomeTransientFailure.
	Reason string
	// Err is the underlying lookup error for non-resolved outcomes.
	Err error
}

// ResultEntry is a candidate domain that resolved, with its first IPv4 address.
type ResultEntry struct {
	Domain  string `json:"domain"  yaml:"domain"`
	Address string `json:"address" yaml:"address"`
}

// Summary aggregates outcome counts of one resolution run.
type Summary struct {
	// Dispatched is the number of candidate domains looked up.
	Dispatched int `json:"dispatched" yaml:"dispatched"`
	// Resolved, NotRegistered and Transient always add up to Dispatched.
	Resolved      int `json:"resolved"      yaml:"resolved"`
	NotRegistered int `json:"notRegistered" yaml:"notRegistered"`
	Transient     int `json:"transient"     yaml:"transient"`
	// TransientReasons breaks Transient down by failure reason.
	TransientReasons map[string]int `json:"transientReasons,omitempty" yaml:"transientReasons,omitempty"`
	// Elapsed is the wall time of the run.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Report is everything a hunt hands back to its caller.
type Report struct {
	// ID identifies the run in logs.
	ID string `json:"id" yaml:"id"`
	// Seeds are the seed keywords as supplied.
	Seeds []string `json:"seeds" yaml:"seeds"`
	// Zones are the zones the candidates were expanded over.
	Zones []string `json:"zones" yaml:"zones"`
	// Strategies are the variant strategies that produced the candidates, in order.
	Strategies []string `json:"strategies" yaml:"strategies"`
	// Candidates is the number of candidate domains dispatched.
	Candidates int `json:"candidates" yaml:"candidates"`
	// Results are the resolved candidate domains in completion order.
	Results []ResultEntry `json:"results" yaml:"results"`
	// Summary holds the diagnostic outcome counts.
	Summary Summary `json:"summary" yaml:"summary"`
}
