package domain

// Candidate is a candidate keyword together with the seed and the strategy
// that produced it. Keyword is not necessarily a valid DNS label.
type Candidate struct {
	// Keyword is the generated string.
	Keyword string `json:"keyword" yaml:"keyword"`
	// Seed is the seed keyword the candidate was derived from.
	Seed string `json:"seed" yaml:"seed"`
	// Strategy names the transformation that produced Keyword.
	Strategy string `json:"strategy" yaml:"strategy"`
}

// Keywords returns the plain keyword multiset of the given candidates, in order.
func Keywords(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i := range candidates {
		out[i] = candidates[i].Keyword
	}

	return out
}

// CandidateDomain is a candidate keyword placed in one zone.
type CandidateDomain struct {
	Candidate `yaml:",inline"`

	// Domain is Keyword + "." + Zone.
	Domain string `json:"domain" yaml:"domain"`
	// Zone is the suffix Domain was built with.
	Zone string `json:"zone" yaml:"zone"`
}

// Domains returns the domain names of the given candidates, in order.
func Domains(candidates []CandidateDomain) []string {
	out := make([]string, len(candidates))
	for i := range candidates {
		out[i] = candidates[i].Domain
	}

	return out
}
