package catalog

import "github.com/olebowle/modempoller/models"

// The "analysis" variant: the verbose, single-modem catalog, grounded
// directly on oids_single / repetitions[] in modempoller-nmsprime.c. Nine
// segments: one scalar (NON_REP) plus eight tabular segments covering
// DOCSIS 3.0 downstream/upstream (split into a base and an "A" sub-segment
// per the source), DOCSIS 3.1 downstream/upstream channels, the OFDM
// sub-carrier table (two-level index), and per-profile statistics.
const (
	segAnalysisNonRep models.SegmentID = iota
	segAnalysisDownstream30
	segAnalysisDownstream30A
	segAnalysisUpstream30
	segAnalysisUpstream30A
	segAnalysisDownstream31
	segAnalysisUpstream31
	segAnalysisDownsub31
	segAnalysisProfileStats31
)

var analysisSegments = []SegmentDef{
	{Name: "NON_REP", MaxRepetitions: 0},
	{Name: "DOWNSTREAM30", MaxRepetitions: 9},
	{Name: "DOWNSTREAM30A", MaxRepetitions: 9},
	{Name: "UPSTREAM30", MaxRepetitions: 5},
	{Name: "UPSTREAM30A", MaxRepetitions: 5},
	{Name: "DOWNSTREAM31", MaxRepetitions: 3},
	{Name: "UPSTREAM31", MaxRepetitions: 3},
	{Name: "DOWNSUB31", MaxRepetitions: 9},
	{Name: "PROFILE_STATS31", MaxRepetitions: 5},
}

var analysisEntries = []rawEntry{
	{segAnalysisNonRep, "1.3.6.1.2.1.1.1"},              // SysDescr
	{segAnalysisNonRep, "1.3.6.1.2.1.1.3"},              // Uptime
	{segAnalysisNonRep, "1.3.6.1.2.1.10.127.1.1.5"},     // DOCSIS
	{segAnalysisNonRep, "1.3.6.1.2.1.10.127.1.2.2.1.2"}, // status code
	{segAnalysisNonRep, "1.3.6.1.2.1.10.127.1.2.2.1.3"}, // US power/dBmV
	{segAnalysisNonRep, "1.3.6.1.2.1.69.1.3.5"},         // firmware
	{segAnalysisNonRep, "1.3.6.1.4.1.4491.2.1.28.1.1"},  // D3.1 capable

	{segAnalysisDownstream30, "1.3.6.1.2.1.10.127.1.1.1.1.2"}, // f/MHz
	{segAnalysisDownstream30, "1.3.6.1.2.1.10.127.1.1.1.1.4"}, // modulation
	{segAnalysisDownstream30, "1.3.6.1.2.1.10.127.1.1.1.1.6"}, // power/dBmV

	{segAnalysisDownstream30A, "1.3.6.1.2.1.10.127.1.1.4.1.5"},     // MER/dB
	{segAnalysisDownstream30A, "1.3.6.1.2.1.10.127.1.1.4.1.6"},     // microreflections/-dBc
	{segAnalysisDownstream30A, "1.3.6.1.4.1.4491.2.1.20.1.24.1.1"}, // MER/dB

	{segAnalysisUpstream30, "1.3.6.1.2.1.10.127.1.1.2.1.2"}, // f/MHz
	{segAnalysisUpstream30, "1.3.6.1.2.1.10.127.1.1.2.1.3"}, // width/MHz

	{segAnalysisUpstream30A, "1.3.6.1.4.1.4491.2.1.20.1.2.1.1"}, // power/dBmV
	{segAnalysisUpstream30A, "1.3.6.1.4.1.4491.2.1.20.1.2.1.9"}, // ranging status

	{segAnalysisDownstream31, "1.3.6.1.4.1.4491.2.1.27.1.2.5.1.3"}, // avg RxMER
	{segAnalysisDownstream31, "1.3.6.1.4.1.4491.2.1.27.1.2.5.1.4"}, // RxMER std dev
	{segAnalysisDownstream31, "1.3.6.1.4.1.4491.2.1.28.1.9.1.3"},
	{segAnalysisDownstream31, "1.3.6.1.4.1.4491.2.1.28.1.9.1.4"},
	{segAnalysisDownstream31, "1.3.6.1.4.1.4491.2.1.28.1.9.1.5"},
	{segAnalysisDownstream31, "1.3.6.1.4.1.4491.2.1.28.1.9.1.7"},

	{segAnalysisUpstream31, "1.3.6.1.4.1.4491.2.1.28.1.13.1.2"},
	{segAnalysisUpstream31, "1.3.6.1.4.1.4491.2.1.28.1.13.1.3"},
	{segAnalysisUpstream31, "1.3.6.1.4.1.4491.2.1.28.1.13.1.4"},
	{segAnalysisUpstream31, "1.3.6.1.4.1.4491.2.1.28.1.13.1.6"},
	{segAnalysisUpstream31, "1.3.6.1.4.1.4491.2.1.28.1.13.1.10"}, // RxPow

	{segAnalysisDownsub31, "1.3.6.1.4.1.4491.2.1.28.1.11.1.2"}, // OFDM center frequency
	{segAnalysisDownsub31, "1.3.6.1.4.1.4491.2.1.28.1.11.1.3"},

	{segAnalysisProfileStats31, "1.3.6.1.4.1.4491.2.1.28.1.10.1.3"}, // total codewords
	{segAnalysisProfileStats31, "1.3.6.1.4.1.4491.2.1.28.1.10.1.4"}, // correctable
	{segAnalysisProfileStats31, "1.3.6.1.4.1.4491.2.1.28.1.10.1.5"}, // uncorrectable
	{segAnalysisProfileStats31, "1.3.6.1.4.1.4491.2.1.28.1.10.1.6"}, // received bytes
	{segAnalysisProfileStats31, "1.3.6.1.4.1.4491.2.1.28.1.10.1.7"}, // received unicast bytes
}
