// Package postgres is the default Inventory Adapter backend, grounded on
// modempoller-nmsprime.c's connectToSql/main: the nmsprime schema, queried
// through database/sql with github.com/lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/olebowle/modempoller/pkg/modempoller/inventory"
)

const (
	defaultHost     = "localhost"
	defaultDatabase = "nmsprime"
	defaultUser     = "nmsprime"
	defaultPassword = "nmsprime"
)

// singleModemQuery and fleetQuery mirror main()'s two query strings
// verbatim in shape: both project (transport_address, community,
// report_name) and exclude tombstoned modem/provbase rows.
const (
	singleModemQuery = `SET search_path TO nmsprime;
SELECT CONCAT(modem.hostname, '.', provbase.domain_name),
       provbase.ro_community,
       CONCAT(modem.hostname, '.', provbase.domain_name)
FROM modem, provbase
WHERE modem.deleted_at IS NULL AND provbase.deleted_at IS NULL
  AND modem.hostname = $1`

	fleetQuery = `SET search_path TO nmsprime;
SELECT COALESCE(host(modem.ipv4), CONCAT(modem.hostname, '.', provbase.domain_name)),
       provbase.ro_community,
       CONCAT(modem.hostname, '.', provbase.domain_name)
FROM modem, provbase
WHERE modem.deleted_at IS NULL AND provbase.deleted_at IS NULL
  AND modem.hostname LIKE 'cm-%'`
)

// Inventory is the nmsprime-backed inventory.Inventory implementation.
type Inventory struct {
	db *sql.DB
}

// Open connects using params, substituting the nmsprime defaults for any
// zero-valued field exactly as connectToSql does.
func Open(params inventory.Params) (*Inventory, error) {
	host := params.Host
	if host == "" {
		host = defaultHost
	}
	database := params.Database
	if database == "" {
		database = defaultDatabase
	}
	user := params.User
	if user == "" {
		user = defaultUser
	}
	password := params.Password
	if password == "" {
		password = defaultPassword
	}

	dsn := fmt.Sprintf("host=%s dbname=%s user=%s password=%s sslmode=disable", host, database, user, password)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("inventory/postgres: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("inventory/postgres: connect: %w", err)
	}
	return &Inventory{db: db}, nil
}

// Fetch implements inventory.Inventory.
func (i *Inventory) Fetch(ctx context.Context, modemFilter string) ([]inventory.HostRecord, error) {
	var rows *sql.Rows
	var err error
	if modemFilter != "" {
		rows, err = i.db.QueryContext(ctx, singleModemQuery, "cm-"+modemFilter)
	} else {
		rows, err = i.db.QueryContext(ctx, fleetQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("inventory/postgres: query: %w", err)
	}
	defer rows.Close()

	var out []inventory.HostRecord
	for rows.Next() {
		var rec inventory.HostRecord
		if err := rows.Scan(&rec.TransportAddress, &rec.Community, &rec.ReportName); err != nil {
			return nil, fmt.Errorf("inventory/postgres: scan: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory/postgres: rows: %w", err)
	}
	return out, nil
}

// Close implements inventory.Inventory.
func (i *Inventory) Close() error { return i.db.Close() }
