package database

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// InitSchema creates the necessary database tables if they don't exist
func InitSchema(db *sql.DB) error {
	log.Info("Initializing cropguard database schema...")

	reportsTableSQL := `
	CREATE TABLE IF NOT EXISTS disease_reports(
		id INT NOT NULL AUTO_INCREMENT,
		image_path VARCHAR(512) NOT NULL,
		disease_prediction VARCHAR(255) NOT NULL,
		confidence DOUBLE NOT NULL,
		severity VARCHAR(32) DEFAULT 'moderate',
		category VARCHAR(64) DEFAULT 'fungal',
		user_email VARCHAR(255),
		location VARCHAR(255),
		ts TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX user_email_index (user_email),
		INDEX disease_index (disease_prediction)
	)`

	if _, err := db.Exec(reportsTableSQL); err != nil {
		return fmt.Errorf("failed to create disease_reports table: %w", err)
	}
	log.Info("Disease_reports table created/verified")

	alertsTableSQL := `
	CREATE TABLE IF NOT EXISTS weather_alerts(
		id INT NOT NULL AUTO_INCREMENT,
		location VARCHAR(255) NOT NULL,
		temperature DOUBLE NOT NULL,
		humidity DOUBLE NOT NULL,
		risk_level VARCHAR(32) NOT NULL,
		alert_message VARCHAR(512) NOT NULL,
		ts TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX location_index (location)
	)`

	if _, err := db.Exec(alertsTableSQL); err != nil {
		return fmt.Errorf("failed to create weather_alerts table: %w", err)
	}
	log.Info("Weather_alerts table created/verified")

	// Nothing writes user_profiles yet; the table is kept for the planned
	// notification preferences feature.
	profilesTableSQL := `
	CREATE TABLE IF NOT EXISTS user_profiles(
		id INT NOT NULL AUTO_INCREMENT,
		email VARCHAR(255) NOT NULL,
		name VARCHAR(255),
		location VARCHAR(255),
		preferred_language VARCHAR(16) DEFAULT 'en',
		notification_enabled BOOL DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE INDEX email_index (email)
	)`

	if _, err := db.Exec(profilesTableSQL); err != nil {
		return fmt.Errorf("failed to create user_profiles table: %w", err)
	}
	log.Info("User_profiles table created/verified")

	log.Info("Cropguard database schema initialization completed")
	return nil
}
