package report

import (
	"lookalike/pkg/domain"

	"github.com/go-faster/jx"
)

// EncodeReport writes r as a JSON object. The API and the CLI share this
// shape.
func EncodeReport(e *jx.Encoder, r *domain.Report) {
	e.ObjStart()

	e.FieldStart("id")
	e.Str(r.ID)

	e.FieldStart("seeds")
	encodeStrings(e, r.Seeds)

	e.FieldStart("zones")
	encodeStrings(e, r.Zones)

	e.FieldStart("strategies")
	encodeStrings(e, r.Strategies)

	e.FieldStart("candidates")
	e.Int(r.Candidates)

	e.FieldStart("results")
	e.ArrStart()
	for _, res := range r.Results {
		EncodeResult(e, res)
	}
	e.ArrEnd()

	e.FieldStart("summary")
	EncodeSummary(e, r.Summary)

	e.ObjEnd()
}

// EncodeResult writes one {"domain", "address"} pair.
func EncodeResult(e *jx.Encoder, r domain.ResultEntry) {
	e.ObjStart()
	e.FieldStart("domain")
	e.Str(r.Domain)
	e.FieldStart("address")
	e.Str(r.Address)
	e.ObjEnd()
}

// EncodeCandidate writes one tagged candidate domain.
func EncodeCandidate(e *jx.Encoder, c domain.CandidateDomain) {
	e.ObjStart()
	e.FieldStart("domain")
	e.Str(c.Domain)
	e.FieldStart("zone")
	e.Str(c.Zone)
	e.FieldStart("keyword")
	e.Str(c.Keyword)
	e.FieldStart("seed")
	e.Str(c.Seed)
	e.FieldStart("strategy")
	e.Str(c.Strategy)
	e.ObjEnd()
}

// EncodeSummary writes the outcome counts. Elapsed is in seconds.
func EncodeSummary(e *jx.Encoder, s domain.Summary) {
	e.ObjStart()
	e.FieldStart("dispatched")
	e.Int(s.Dispatched)
	e.FieldStart("resolved")
	e.Int(s.Resolved)
	e.FieldStart("notRegistered")
	e.Int(s.NotRegistered)
	e.FieldStart("transient")
	e.Int(s.Transient)

	if len(s.TransientReasons) > 0 {
		e.FieldStart("transientReasons")
		e.ObjStart()
		for _, k := range sortedKeys(s.TransientReasons) {
			e.FieldStart(k)
			e.Int(s.TransientReasons[k])
		}
		e.ObjEnd()
	}

	e.FieldStart("elapsedSeconds")
	e.Float64(s.Elapsed.Seconds())
	e.ObjEnd()
}

func encodeStrings(e *jx.Encoder, ss []string) {
	e.ArrStart()
	for _, s := range ss {
		e.Str(s)
	}
	e.ArrEnd()
}
