package catalog

import "github.com/olebowle/modempoller/models"

// The "bulk" variant: the terser, fleet-wide catalog. OIDs, segment tags
// and order are grounded on oids_multiple in modempoller-nmsprime.c;
// MAX_REPETITIONS per segment comes from that same file's single shared
// repetitions[FINISH] schedule ({0, 9, 9, 5, 5, 3, 3, 9, 5}), read at the
// DOWNSTREAM30 (index 1) and UPSTREAM30 (index 3) slots.
// Three segments only: NON_REP, DOWNSTREAM30, UPSTREAM30.
const (
	segBulkNonRep models.SegmentID = iota
	segBulkDownstream30
	segBulkUpstream30
)

var bulkSegments = []SegmentDef{
	{Name: "NON_REP", MaxRepetitions: 0},
	{Name: "DOWNSTREAM30", MaxRepetitions: 9},
	{Name: "UPSTREAM30", MaxRepetitions: 5},
}

var bulkEntries = []rawEntry{
	{segBulkNonRep, "1.3.6.1.2.1.1.1"},                // SysDescr
	{segBulkNonRep, "1.3.6.1.2.1.10.127.1.2.2.1.3"},    // US power (2.0)
	{segBulkNonRep, "1.3.6.1.2.1.10.127.1.2.2.1.12"},   // T3 timeouts
	{segBulkNonRep, "1.3.6.1.2.1.10.127.1.2.2.1.13"},   // T4 timeouts
	{segBulkNonRep, "1.3.6.1.2.1.10.127.1.2.2.1.17"},   // pre-equalization
	{segBulkNonRep, "1.3.6.1.2.1.31.1.1.1.6.1"},        // ifHCInOctets
	{segBulkNonRep, "1.3.6.1.2.1.31.1.1.1.10.1"},       // ifHCOutOctets

	{segBulkDownstream30, "1.3.6.1.2.1.10.127.1.1.1.1.6"},     // power
	{segBulkDownstream30, "1.3.6.1.2.1.10.127.1.1.4.1.3"},     // corrected
	{segBulkDownstream30, "1.3.6.1.2.1.10.127.1.1.4.1.4"},     // uncorrectable
	{segBulkDownstream30, "1.3.6.1.2.1.10.127.1.1.4.1.5"},     // SNR (2.0)
	{segBulkDownstream30, "1.3.6.1.2.1.10.127.1.1.4.1.6"},     // microreflections
	{segBulkDownstream30, "1.3.6.1.4.1.4491.2.1.20.1.24.1.1"}, // SNR (3.0)

	{segBulkUpstream30, "1.3.6.1.2.1.10.127.1.1.2.1.2"},    // frequency
	{segBulkUpstream30, "1.3.6.1.2.1.10.127.1.1.2.1.3"},    // bandwidth
	{segBulkUpstream30, "1.3.6.1.4.1.4491.2.1.20.1.2.1.1"}, // power (3.0)
	{segBulkUpstream30, "1.3.6.1.4.1.4491.2.1.20.1.2.1.9"}, // ranging status
}
