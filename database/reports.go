package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apex/log"

	"cropguard-service/models"
)

const historyLimit = 10

// ReportsService owns the disease_reports table. Rows are append-only.
type ReportsService struct {
	db *sql.DB
}

func NewReportsService(db *sql.DB) *ReportsService {
	return &ReportsService{db: db}
}

// SaveReport inserts one detection event. The error is propagated so callers
// can tell a recorded detection from a lost one.
func (s *ReportsService) SaveReport(ctx context.Context, r *models.DiseaseReport) error {
	result, err := s.db.ExecContext(ctx, `INSERT
	  INTO disease_reports (image_path, disease_prediction, confidence, severity, category, user_email, location)
	  VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ImagePath, r.DiseasePrediction, r.Confidence, r.Severity, r.Category,
		nullable(r.UserEmail), nullable(r.Location))
	if err != nil {
		return fmt.Errorf("inserting disease report: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading disease report id: %w", err)
	}
	r.ID = id
	log.Infof("Saved disease report %d (%s)", id, r.DiseasePrediction)
	return nil
}

// GetHistory returns the most recent reports for one user email, newest
// first, capped at 10.
func (s *ReportsService) GetHistory(ctx context.Context, email string) ([]models.DiseaseReport, error) {
	rows, err := s.db.QueryContext(ctx, `
	  SELECT id, image_path, disease_prediction, confidence, severity, category, user_email, location, ts
	  FROM disease_reports
	  WHERE user_email = ?
	  ORDER BY ts DESC
	  LIMIT ?`, email, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("querying disease history: %w", err)
	}
	defer rows.Close()

	reports := []models.DiseaseReport{}
	for rows.Next() {
		var r models.DiseaseReport
		var userEmail, location sql.NullString
		if err := rows.Scan(&r.ID, &r.ImagePath, &r.DiseasePrediction, &r.Confidence,
			&r.Severity, &r.Category, &userEmail, &location, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning disease report: %w", err)
		}
		r.UserEmail = userEmail.String
		r.Location = location.String
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// GetDiseaseStats aggregates reports per disease prediction, ordered by
// count descending.
func (s *ReportsService) GetDiseaseStats(ctx context.Context) ([]models.DiseaseStat, error) {
	rows, err := s.db.QueryContext(ctx, `
	  SELECT disease_prediction, COUNT(*) AS cnt, AVG(confidence) AS avg_confidence, severity
	  FROM disease_reports
	  GROUP BY disease_prediction, severity
	  ORDER BY cnt DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying disease stats: %w", err)
	}
	defer rows.Close()

	stats := []models.DiseaseStat{}
	for rows.Next() {
		var st models.DiseaseStat
		if err := rows.Scan(&st.DiseasePrediction, &st.Count, &st.AvgConfidence, &st.Severity); err != nil {
			return nil, fmt.Errorf("scanning disease stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
