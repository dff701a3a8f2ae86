// Package mysql is the additive Cacti-schema Inventory Adapter backend,
// grounded on poller.c's connectToMySql, selected with -inventory.backend=mysql.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/olebowle/modempoller/pkg/modempoller/inventory"
)

const (
	defaultHost     = "localhost"
	defaultDatabase = "cacti"
	defaultUser     = "cactiuser"
	defaultPassword = "cactiuser"
)

// fleetQuery is connectToMySql's query verbatim; the Cacti schema has no
// tombstone column, so no WHERE clause beyond the hostname prefix exists
// in the source, and none is added here.
const fleetQuery = `SELECT hostname, snmp_community FROM host WHERE hostname LIKE 'cm-%' ORDER BY hostname`

const singleModemQuery = `SELECT hostname, snmp_community FROM host WHERE hostname = ?`

// Inventory is the Cacti-backed inventory.Inventory implementation.
type Inventory struct {
	db *sql.DB
}

// Open connects using params, substituting the Cacti defaults for any
// zero-valued field exactly as connectToMySql does.
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

	dsn := fmt.Sprintf("%s:%s@tcp(%s:3306)/%s", user, password, host, database)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("inventory/mysql: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("inventory/mysql: connect: %w", err)
	}
	return &Inventory{db: db}, nil
}

// Fetch implements inventory.Inventory. The Cacti schema has no report-name
// column distinct from hostname, so ReportName mirrors TransportAddress.
func (i *Inventory) Fetch(ctx context.Context, modemFilter string) ([]inventory.HostRecord, error) {
	var rows *sql.Rows
	var err error
	if modemFilter != "" {
		rows, err = i.db.QueryContext(ctx, singleModemQuery, "cm-"+modemFilter)
	} else {
		rows, err = i.db.QueryContext(ctx, fleetQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("inventory/mysql: query: %w", err)
	}
	defer rows.Close()

	var out []inventory.HostRecord
	for rows.Next() {
		var hostname, community string
		if err := rows.Scan(&hostname, &community); err != nil {
			return nil, fmt.Errorf("inventory/mysql: scan: %w", err)
		}
		out = append(out, inventory.HostRecord{
			TransportAddress: hostname,
			Community:        community,
			ReportName:       hostname,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory/mysql: rows: %w", err)
	}
	return out, nil
}

// Close implements inventory.Inventory.
func (i *Inventory) Close() error { return i.db.Close() }
