package fusevec

import "sync/atomic"

// StatsCollector defines an interface for collecting operational
// statistics. Implement this interface to integrate with monitoring
// systems.
//
// All methods must be safe for concurrent use.
type StatsCollector interface {
	// RecordMaterialize is called after a stream has been drained into a
	// builder. n is the number of elements written; exactHint reports
	// whether the stream predicted its length exactly.
	RecordMaterialize(n int, exactHint bool)

	// RecordAlias is called when a zero-copy view is taken.
	// n is the view length.
	RecordAlias(n int)

	// RecordScan is called after a short-circuit search. scanned is the
	// number of elements examined, found whether the search matched.
	RecordScan(scanned int, found bool)
}

// NoopStatsCollector is a no-op implementation of StatsCollector.
// Use this when statistics collection is not needed.
type NoopStatsCollector struct{}

func (NoopStatsCollector) RecordMaterialize(int, bool) {}
func (NoopStatsCollector) RecordAlias(int)             {}
func (NoopStatsCollector) RecordScan(int, bool)        {}

// BasicStatsCollector provides simple in-memory statistics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicStatsCollector struct {
	MaterializeCount atomic.Int64
	MaterializeElems atomic.Int64
	InexactHints     atomic.Int64
	AliasCount       atomic.Int64
	AliasElems       atomic.Int64
	ScanCount        atomic.Int64
	ScanElems        atomic.Int64
	ScanMisses       atomic.Int64
}

// RecordMaterialize implements StatsCollector.
func (b *BasicStatsCollector) RecordMaterialize(n int, exactHint bool) {
	b.MaterializeCount.Add(1)
	b.MaterializeElems.Add(int64(n))
	if !exactHint {
		b.InexactHints.Add(1)
	}
}

// RecordAlias implements StatsCollector.
func (b *BasicStatsCollector) RecordAlias(n int) {
	b.AliasCount.Add(1)
	b.AliasElems.Add(int64(n))
}

// RecordScan implements StatsCollector.
func (b *BasicStatsCollector) RecordScan(scanned int, found bool) {
	b.ScanCount.Add(1)
	b.ScanElems.Add(int64(scanned))
	if !found {
		b.ScanMisses.Add(1)
	}
}

// Stats returns a snapshot of current statistics.
func (b *BasicStatsCollector) Stats() BasicStats {
	return BasicStats{
		MaterializeCount: b.MaterializeCount.Load(),
		MaterializeElems: b.MaterializeElems.Load(),
		InexactHints:     b.InexactHints.Load(),
		AliasCount:       b.AliasCount.Load(),
		AliasElems:       b.AliasElems.Load(),
		ScanCount:        b.ScanCount.Load(),
		ScanElems:        b.ScanElems.Load(),
		ScanMisses:       b.ScanMisses.Load(),
	}
}

// BasicStats is a snapshot of BasicStatsCollector state.
type BasicStats struct {
	MaterializeCount int64
	MaterializeElems int64
	InexactHints     int64
	AliasCount       int64
	AliasElems       int64
	ScanCount        int64
	ScanElems        int64
	ScanMisses       int64
}

// statsBox keeps atomic.Pointer happy with a single concrete type while
// the collector itself is an interface.
type statsBox struct {
	c StatsCollector
}

var pkgStats atomic.Pointer[statsBox]

func init() {
	pkgStats.Store(&statsBox{c: NoopStatsCollector{}})
}

// SetStatsCollector replaces the package statistics collector. Passing nil
// restores the noop collector. Safe for concurrent use.
func SetStatsCollector(c StatsCollector) {
	if c == nil {
		c = NoopStatsCollector{}
	}
	pkgStats.Store(&statsBox{c: c})
}

func stats() StatsCollector {
	return pkgStats.Load().c
}
