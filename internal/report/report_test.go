package report_test

import (
	"bytes"
	"encoding/json"
	"lookalike/internal/report"
	"lookalike/pkg/domain"
	"lookalike/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		ID:         "5f1c9f7e-7c0a-4f5b-9a53-0c4a9b0f1e2d",
		Seeds:      []string{"ozon"},
		Zones:      []string{"com", "ru"},
		Strategies: []string{"append", "homoglyph", "split", "delete"},
		Candidates: 154,
		Results: []domain.ResultEntry{
			{Domain: "ozn.com", Address: "93.184.216.34"},
			{Domain: "оzon.ru", Address: "10.0.0.7"},
		},
		Summary: domain.Summary{
			Dispatched:       154,
			Resolved:         2,
			NotRegistered:    149,
			Transient:        3,
			TransientReasons: map[string]int{domain.ReasonTimeout: 2, domain.ReasonInvalidName: 1},
			Elapsed:          1500 * time.Millisecond,
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{"text": report.FormatText, " JSON": report.FormatJSON, "yaml": report.FormatYAML} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := report.ParseFormat("csv")
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)
}

func TestReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(&buf, report.Options{}).Report(sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, []string{"ozn.com", "93.184.216.34"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"оzon.ru", "10.0.0.7"}, strings.Fields(lines[1]))
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestReport_TextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(&buf, report.Options{Color: true}).Report(sampleReport()))
	require.Contains(t, buf.String(), "\x1b[")
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(&buf, report.Options{Format: report.FormatJSON}).Report(sampleReport()))

	var got struct {
		ID         string   `json:"id"`
		Strategies []string `json:"strategies"`
		Candidates int      `json:"candidates"`
		Results    []struct {
			Domain  string `json:"domain"`
			Address string `json:"address"`
		} `json:"results"`
		Summary struct {
			Resolved         int            `json:"resolved"`
			TransientReasons map[string]int `json:"transientReasons"`
			ElapsedSeconds   float64        `json:"elapsedSeconds"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Equal(t, 154, got.Candidates)
	require.Equal(t, sampleReport().Strategies, got.Strategies)
	require.Len(t, got.Results, 2)
	require.Equal(t, "ozn.com", got.Results[0].Domain)
	require.Equal(t, "93.184.216.34", got.Results[0].Address)
	require.Equal(t, 2, got.Summary.Resolved)
	require.Equal(t, 2, got.Summary.TransientReasons["timeout"])
	require.InDelta(t, 1.5, got.Summary.ElapsedSeconds, 1e-9)
}

func TestReport_JSONEmptyResults(t *testing.T) {
	r := sampleReport()
	r.Results = nil
	r.Summary.TransientReasons = nil

	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(&buf, report.Options{Format: report.FormatJSON}).Report(r))
	require.NotContains(t, buf.String(), "transientReasons")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, []any{}, got["results"])
}

func TestReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(&buf, report.Options{Format: report.FormatYAML}).Report(sampleReport()))

	var got struct {
		Strategies []string             `yaml:"strategies"`
		Results    []domain.ResultEntry `yaml:"results"`
		Summary    struct {
			Elapsed string `yaml:"elapsed"`
		} `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, sampleReport().Strategies, got.Strategies)
	require.Equal(t, sampleReport().Results, got.Results)
	require.Equal(t, "1.5s", got.Summary.Elapsed)
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(&buf, report.Options{}).Summary(sampleReport().Summary))

	require.Equal(t,
		"looked up 154  resolved 2  not registered 149  failed 3 (invalid_name=1, timeout=2)  in 1.5s\n",
		buf.String())
}

func sampleCandidates() []domain.CandidateDomain {
	return []domain.CandidateDomain{
		{
			Candidate: domain.Candidate{Keyword: "ozn", Seed: "ozon", Strategy: "delete"},
			Domain:    "ozn.com",
			Zone:      "com",
		},
		{
			Candidate: domain.Candidate{Keyword: "o.zon", Seed: "ozon", Strategy: "split"},
			Domain:    "o.zon.com",
			Zone:      "com",
		},
	}
}

func TestCandidates_Text(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, report.NewWriter(&text, report.Options{}).Candidates(sampleCandidates()))

	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, []string{"ozn.com", "delete", "ozon"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"o.zon.com", "split", "ozon"}, strings.Fields(lines[1]))
}

func TestCandidates_JSON(t *testing.T) {
	var js bytes.Buffer
	require.NoError(t, report.NewWriter(&js, report.Options{Format: report.FormatJSON}).Candidates(sampleCandidates()))

	var got []domain.CandidateDomain
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	require.Equal(t, sampleCandidates(), got)
}

func TestCandidates_YAML(t *testing.T) {
	var ym bytes.Buffer
	require.NoError(t, report.NewWriter(&ym, report.Options{Format: report.FormatYAML}).Candidates(sampleCandidates()))

	var doc struct {
		Candidates []domain.CandidateDomain `yaml:"candidates"`
	}
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &doc))
	require.Equal(t, sampleCandidates(), doc.Candidates)
}
