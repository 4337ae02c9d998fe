package pool

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/catalog"
)

// #region builder

// Builder merges derived keyword options with the static catalog.
type Builder struct {
	entries []catalog.Entry
	config  BuilderConfig
}

// NewBuilder creates a Builder over the given catalog entries.
func NewBuilder(entries []catalog.Entry, config BuilderConfig) *Builder {
	return &Builder{entries: entries, config: config}
}

// Build produces the option pool for one session: derived options first,
// static entries appended after, first occurrence of an id wins. Missing
// keyword maps yield zero derived options; Build never fails.
func (b *Builder) Build(keywords Keywords) []Option {
	derived := b.deriveOptions(keywords)

	options := make([]Option, 0, len(derived)+len(b.entries))
	seen := make(map[string]struct{}, len(derived)+len(b.entries))

	for _, o := range derived {
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		options = append(options, o)
	}
	for _, e := range b.entries {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		options = append(options, Option{
			ID:            e.ID,
			Topic:         e.Topic,
			Prompt:        e.Prompt,
			ArchetypeHint: e.Archetype,
			Source:        SourceStatic,
		})
	}
	return options
}

// #endregion builder

// #region derived

// deriveOptions lifts the top-N highest-weighted keywords from each
// dimension into derived options. Ordering is deterministic: weight
// descending, then keyword ascending on ties.
func (b *Builder) deriveOptions(keywords Keywords) []Option {
	dims := []struct {
		name string
		m    map[string]float64
	}{
		{"tone", keywords.Tone},
		{"hook", keywords.Hook},
		{"format", keywords.Format},
	}

	var derived []Option
	for _, d := range dims {
		for _, kw := range topKeywords(d.m, b.config.DerivedPerDimension) {
			topic := fmt.Sprintf("%s-%s", d.name, slug(kw))
			derived = append(derived, Option{
				ID:     "derived-" + topic,
				Topic:  topic,
				Prompt: fmt.Sprintf("Lean further into the %s %s that's been landing", slug(kw), d.name),
				Source: SourceDerived,
			})
		}
	}
	return derived
}

// topKeywords returns up to n keywords ordered by weight descending.
func topKeywords(m map[string]float64, n int) []string {
	if len(m) == 0 || n <= 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// slug lowercases and hyphenates a keyword for use in ids and topics.
func slug(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteByte('-')
		}
	}
	return strings.Trim(sb.String(), "-")
}

// #endregion derived
