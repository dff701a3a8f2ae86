// Package inventory defines the Inventory Adapter contract: a single
// parameterised query against a SQL backend, yielding an ordered list of
// host records. Two concrete backends (postgres, mysql) implement it.
package inventory

import "context"

// HostRecord is the stable (transport_address, community, report_name)
// tuple the adapter MUST produce regardless of backend.
type HostRecord struct {
	TransportAddress string
	Community        string
	ReportName       string
}

// Inventory issues one query and yields an ordered list of host records.
// When modemFilter is non-empty the backend restricts to that one modem
// id; otherwise it returns every cable-modem host that is not tombstoned.
type Inventory interface {
	Fetch(ctx context.Context, modemFilter string) ([]HostRecord, error)
	Close() error
}

// Params carries the SQL connection parameters common to every backend,
// mirroring the spec's -d/-h/-u/-p flags.
type Params struct {
	Database string
	Host     string
	User     string
	Password string
}
