// Package catalog implements the OID Catalog: a compile-time, segment-
// contiguous table of OIDs plus the per-segment repetition schedule,
// selectable at runtime between the "analysis" and "bulk" variants.
package catalog

import (
	"fmt"

	"github.com/olebowle/modempoller/models"
)

// SegmentDef names one entry in a catalog's ordered segment list and the
// max-repetitions value used for every GETBULK issued against it. NON_REP
// (segment 0) always carries MaxRepetitions 0 — it is sent as a GETNEXT,
// never a GETBULK.
type SegmentDef struct {
	Name           string
	MaxRepetitions uint8
}

// Entry is one OID Entry: (segment_tag, textual_name, encoded_oid). The
// encoded length is simply len(OID).
type Entry struct {
	Segment models.SegmentID
	Name    string
	OID     models.OID
}

// rawEntry is the textual, unparsed form a catalog variant is defined in.
type rawEntry struct {
	segment models.SegmentID
	name    string
}

// Catalog is an immutable, process-lifetime value produced by Load. Entries
// are stored segment-contiguous, so first_of/last_of/count are pure index
// arithmetic over segStart, with no scan required.
type Catalog struct {
	variant  string
	segments []SegmentDef
	entries  []Entry
	segStart []int // len(segments)+1; segStart[len(segments)] == len(entries)
}

// Variant names accepted by Load.
const (
	VariantAnalysis = "analysis"
	VariantBulk     = "bulk"
)

// Load parses variant's textual OIDs into their numeric encoding and
// tallies per-segment counts. It fails fatally (returns an error the
// caller must treat as a configuration-fatal abort) if any OID is
// unparseable, matching the bootstrap's read_objid failure in the source
// this is grounded on.
func Load(variant string) (*Catalog, error) {
	var segments []SegmentDef
	var raw []rawEntry

	switch variant {
	case VariantAnalysis:
		segments, raw = analysisSegments, analysisEntries
	case VariantBulk:
		segments, raw = bulkSegments, bulkEntries
	default:
		return nil, fmt.Errorf("catalog: unknown variant %q", variant)
	}

	entries := make([]Entry, len(raw))
	counts := make([]int, len(segments))
	for i, r := range raw {
		oid, err := models.ParseOID(r.name)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", variant, err)
		}
		entries[i] = Entry{Segment: r.segment, Name: r.name, OID: oid}
		counts[int(r.segment)]++
	}

	segStart := make([]int, len(segments)+1)
	for i, c := range counts {
		segStart[i+1] = segStart[i] + c
	}

	return &Catalog{variant: variant, segments: segments, entries: entries, segStart: segStart}, nil
}

// Variant returns the name this catalog was loaded with.
func (c *Catalog) Variant() string { return c.variant }

// SegmentCount returns the number of segments, i.e. the FINISH sentinel
// value: the terminal segment id equal to len(Segments()).
func (c *Catalog) SegmentCount() int { return len(c.segments) }

// Finish is the terminal sentinel segment id, one past the last real
// segment.
func (c *Catalog) Finish() models.SegmentID { return models.SegmentID(c.SegmentCount()) }

// Segments returns the ordered segment list. Segment 0 is always NON_REP.
func (c *Catalog) Segments() []SegmentDef { return c.segments }

// SegmentName returns the name of a segment, or "FINISH" for the sentinel.
func (c *Catalog) SegmentName(seg models.SegmentID) string {
	if int(seg) == len(c.segments) {
		return "FINISH"
	}
	if int(seg) < 0 || int(seg) > len(c.segments) {
		return "UNKNOWN"
	}
	return c.segments[seg].Name
}

// MaxRepetitions returns the configured max-repetitions for seg.
func (c *Catalog) MaxRepetitions(seg models.SegmentID) uint8 {
	return c.segments[seg].MaxRepetitions
}

// Count returns the number of OID entries belonging to seg.
func (c *Catalog) Count(seg models.SegmentID) int {
	return c.segStart[seg+1] - c.segStart[seg]
}

// FirstOf returns the index (into EntryAt) of the first entry of seg.
func (c *Catalog) FirstOf(seg models.SegmentID) int { return c.segStart[seg] }

// LastOf returns the index of the last entry of seg. Because entries are
// segment-contiguous, last_of(segment) = first_of(segment) + count(segment) - 1.
func (c *Catalog) LastOf(seg models.SegmentID) int { return c.segStart[seg+1] - 1 }

// EntryAt returns the OID entry at index i.
func (c *Catalog) EntryAt(i int) Entry { return c.entries[i] }

// SegmentOf returns the segment tag of the entry at index i.
func (c *Catalog) SegmentOf(i int) models.SegmentID { return c.entries[i].Segment }

// Entries returns every entry of seg, in catalog order.
func (c *Catalog) Entries(seg models.SegmentID) []Entry {
	return c.entries[c.FirstOf(seg):c.LastOf(seg)+1]
}
