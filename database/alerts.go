package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apex/log"

	"cropguard-service/models"
)

// AlertsService owns the weather_alerts table.
type AlertsService struct {
	db *sql.DB
}

func NewAlertsService(db *sql.DB) *AlertsService {
	return &AlertsService{db: db}
}

// SaveAlert records one elevated-risk weather reading.
func (s *AlertsService) SaveAlert(ctx context.Context, a *models.WeatherAlert) error {
	_, err := s.db.ExecContext(ctx, `INSERT
	  INTO weather_alerts (location, temperature, humidity, risk_level, alert_message)
	  VALUES (?, ?, ?, ?, ?)`,
		a.Location, a.Temperature, a.Humidity, a.RiskLevel, a.AlertMessage)
	if err != nil {
		return fmt.Errorf("inserting weather alert: %w", err)
	}
	log.Infof("Saved %s risk weather alert for %s", a.RiskLevel, a.Location)
	return nil
}
