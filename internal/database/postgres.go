package database

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var PostgresDB *sqlx.DB

// ConnectPostgres connects to PostgreSQL database
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sqlx.Connect("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	log.Println("✅ Connected to PostgreSQL")

	// Initialize tables
	if err = InitPostgresTables(); err != nil {
		return err
	}

	return nil
}

// InitPostgresTables creates all necessary tables if they don't exist
func InitPostgresTables() error {
	queries := []string{
		// Profiles table (one row per account; role and ban state are mutated by admin actions only)
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(10) NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
			banned_until TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Cars table (listings). phone_number format is enforced here as well as client-side.
		`CREATE TABLE IF NOT EXISTS cars (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price INTEGER NOT NULL,
			year INTEGER NOT NULL CHECK (year >= 1900),
			mileage INTEGER NOT NULL,
			brand VARCHAR(100) NOT NULL,
			model VARCHAR(100) NOT NULL,
			images TEXT[] NOT NULL DEFAULT '{}',
			type_vehicule VARCHAR(50),
			carburant VARCHAR(50),
			transmission VARCHAR(50),
			puissance INTEGER,
			cylindree INTEGER,
			portes INTEGER,
			places INTEGER,
			couleur VARCHAR(50),
			consommation NUMERIC(5,2),
			premiere_main BOOLEAN NOT NULL DEFAULT FALSE,
			expertisee BOOLEAN NOT NULL DEFAULT FALSE,
			is_professional BOOLEAN NOT NULL DEFAULT FALSE,
			company_name VARCHAR(255),
			phone_number VARCHAR(20) NOT NULL
				CONSTRAINT cars_phone_number_check CHECK (phone_number ~ '^(\+41|0)[1-9][0-9]{8}$'),
			city VARCHAR(100),
			location VARCHAR(255),
			garantie INTEGER,
			options TEXT[] NOT NULL DEFAULT '{}',
			slug VARCHAR(255) UNIQUE,
			full_search TSVECTOR
		)`,

		// Reports against listings. Rows are never deleted; status only moves pending -> resolved|dismissed.
		`CREATE TABLE IF NOT EXISTS car_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			car_id UUID NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
			reporter_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			reason VARCHAR(30) NOT NULL CHECK (reason IN ('fraudulent', 'inappropriate', 'misleading', 'duplicate', 'spam', 'other')),
			details TEXT,
			status VARCHAR(10) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'resolved', 'dismissed')),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			resolved_at TIMESTAMP,
			resolved_by UUID REFERENCES profiles(id)
		)`,

		// Create indexes for better performance
		`CREATE INDEX IF NOT EXISTS idx_profiles_email ON profiles(email)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_role ON profiles(role)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_created_at ON cars(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_user_id ON cars(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_price ON cars(price)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_year ON cars(year)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_city ON cars(city)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_slug ON cars(slug)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_full_search ON cars USING GIN(full_search)`,
		`CREATE INDEX IF NOT EXISTS idx_car_reports_car_id ON car_reports(car_id)`,
		`CREATE INDEX IF NOT EXISTS idx_car_reports_status ON car_reports(status)`,
		`CREATE INDEX IF NOT EXISTS idx_car_reports_created_at ON car_reports(created_at)`,
	}

	for _, query := range queries {
		if _, err := PostgresDB.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
