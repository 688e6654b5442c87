// Package domain contains the entities exchanged between the variant
// generator, the resolution engine and the callers of a hunt: tagged candidate
// keywords, per-lookup outcomes, result entries and run summaries. They carry
// no infrastructure concerns so every layer can share them.
package domain
