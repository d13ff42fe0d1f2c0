// Package store persists rental entities in PostgreSQL through pgx's
// database/sql adapter. One repository per entity; methods map
// sql.ErrNoRows to a nil entity so callers distinguish "absent" from
// failure. The schema is bootstrapped idempotently at open and mirrors
// the relation graph's cascade rules in its foreign key constraints.
package store

import (
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS landlords (
	id            BIGSERIAL PRIMARY KEY,
	username      VARCHAR(50) UNIQUE NOT NULL,
	password_hash VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS tenants (
	id          BIGSERIAL PRIMARY KEY,
	first_name  VARCHAR(50) NOT NULL,
	last_name   VARCHAR(50) NOT NULL,
	telephone   VARCHAR(12) NOT NULL,
	occupation  VARCHAR(50) NOT NULL,
	landlord_id BIGINT REFERENCES landlords(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS property_types (
	id                 BIGSERIAL PRIMARY KEY,
	property_type_name VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS rental_buildings (
	id               BIGSERIAL PRIMARY KEY,
	address          VARCHAR(200) UNIQUE NOT NULL,
	starting_date    DATE NOT NULL,
	ending_date      DATE NOT NULL,
	landlord_id      BIGINT REFERENCES landlords(id) ON DELETE CASCADE,
	tenant_id        BIGINT REFERENCES tenants(id) ON DELETE SET NULL,
	property_type_id BIGINT REFERENCES property_types(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS payments (
	id                 BIGSERIAL PRIMARY KEY,
	monthly_price      INTEGER NOT NULL,
	price              INTEGER NOT NULL,
	payment_status     BOOLEAN NOT NULL,
	payment_date       DATE NOT NULL,
	due_date           DATE NOT NULL,
	payment_period     VARCHAR(7) NOT NULL,
	rental_building_id BIGINT REFERENCES rental_buildings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS landlord_property_types (
	landlord_id      BIGINT NOT NULL REFERENCES landlords(id) ON DELETE CASCADE,
	property_type_id BIGINT NOT NULL REFERENCES property_types(id) ON DELETE CASCADE,
	PRIMARY KEY (landlord_id, property_type_id)
);
`

// Store wraps the shared database handle the repositories run on.
type Store struct {
	db *sql.DB
}

// Open connects to PostgreSQL, verifies the connection and bootstraps the
// schema.
func Open(dsn string) (*Store, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDB(*config)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idPointer(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	id := n.Int64
	return &id
}
