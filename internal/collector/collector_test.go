package collector_test

import (
	"fmt"
	"lookalike/internal/collector"
	"lookalike/pkg/domain"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := collector.New()
	require.Empty(t, c.Entries())
	require.Zero(t, c.Len())

	c.Append(domain.ResultEntry{Domain: "ozn.com", Address: "93.184.216.34"})
	c.Append(domain.ResultEntry{Domain: "ozn.ru", Address: "10.0.0.1"})

	require.Equal(t, 2, c.Len())
	require.Equal(t, []domain.ResultEntry{
		{Domain: "ozn.com", Address: "93.184.216.34"},
		{Domain: "ozn.ru", Address: "10.0.0.1"},
	}, c.Entries())
}

func TestCollectorEntriesIsCopy(t *testing.T) {
	c := collector.New()
	c.Append(domain.ResultEntry{Domain: "ozn.com", Address: "93.184.216.34"})

	got := c.Entries()
	got[0].Domain = "changed"

	require.Equal(t, "ozn.com", c.Entries()[0].Domain)
}

func TestCollectorConcurrentAppend(t *testing.T) {
	c := collector.New()

	const writers, perWriter = 50, 200
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				c.Append(domain.ResultEntry{Domain: fmt.Sprintf("w%d-%d.com", w, i), Address: "127.0.0.1"})
			}
		}()
	}
	wg.Wait()

	entries := c.Entries()
	require.Len(t, entries, writers*perWriter)

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Domain] = struct{}{}
	}
	require.Len(t, seen, writers*perWriter)
}
