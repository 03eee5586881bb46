package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jknair0/beforeeach"

	"cropguard-service/models"
)

var (
	db   *sql.DB
	mock sqlmock.Sqlmock
)

func setUp() {
	db, mock, _ = sqlmock.New()
}

func tearDown() {
	db.Close()
}

var it = beforeeach.Create(setUp, tearDown)

func TestSaveReport(t *testing.T) {
	it(func() {
		s := NewReportsService(db)

		mock.ExpectExec(
			"INSERT INTO disease_reports \\(image_path, disease_prediction, confidence, severity, category, user_email, location\\) VALUES \\((.+), (.+), (.+), (.+), (.+), (.+), (.+)\\)").
			WithArgs("uploads/123-leaf.jpg", "Tomato Late Blight", 88.0, "high", "Tomato",
				sql.NullString{String: "farmer@example.com", Valid: true},
				sql.NullString{String: "pune", Valid: true}).
			WillReturnResult(sqlmock.NewResult(7, 1))

		report := &models.DiseaseReport{
			ImagePath:         "uploads/123-leaf.jpg",
			DiseasePrediction: "Tomato Late Blight",
			Confidence:        88,
			Severity:          "high",
			Category:          "Tomato",
			UserEmail:         "farmer@example.com",
			Location:          "pune",
		}
		if err := s.SaveReport(context.Background(), report); err != nil {
			t.Errorf("SaveReport: unexpected error: %v", err)
		}
		if report.ID != 7 {
			t.Errorf("SaveReport: expected id 7, got %d", report.ID)
		}
	})
}

func TestSaveReportOptionalFieldsAreNull(t *testing.T) {
	it(func() {
		s := NewReportsService(db)

		mock.ExpectExec("INSERT INTO disease_reports").
			WithArgs("uploads/9-x.png", "Apple Healthy", 92.0, "none", "Apple",
				sql.NullString{}, sql.NullString{}).
			WillReturnResult(sqlmock.NewResult(1, 1))

		report := &models.DiseaseReport{
			ImagePath:         "uploads/9-x.png",
			DiseasePrediction: "Apple Healthy",
			Confidence:        92,
			Severity:          "none",
			Category:          "Apple",
		}
		if err := s.SaveReport(context.Background(), report); err != nil {
			t.Errorf("SaveReport: unexpected error: %v", err)
		}
	})
}

func TestSaveReportPropagatesFailure(t *testing.T) {
	it(func() {
		s := NewReportsService(db)

		mock.ExpectExec("INSERT INTO disease_reports").
			WillReturnError(fmt.Errorf("connection lost"))

		err := s.SaveReport(context.Background(), &models.DiseaseReport{
			ImagePath:         "uploads/1-y.jpg",
			DiseasePrediction: "Corn Common Rust",
		})
		if err == nil {
			t.Error("SaveReport: expected error on insert failure")
		}
	})
}

func TestGetHistory(t *testing.T) {
	it(func() {
		s := NewReportsService(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "image_path", "disease_prediction", "confidence", "severity",
			"category", "user_email", "location", "ts"}).
			AddRow(3, "uploads/3.jpg", "Grape Esca", 76.0, "moderate", "Grape", "a@b.c", "pune", now).
			AddRow(2, "uploads/2.jpg", "Grape Healthy", 91.0, "none", "Grape", "a@b.c", nil, now.Add(-time.Hour))

		mock.ExpectQuery("SELECT id, image_path, disease_prediction, confidence, severity, category, user_email, location, ts FROM disease_reports WHERE user_email = (.+) ORDER BY ts DESC LIMIT (.+)").
			WithArgs("a@b.c", historyLimit).
			WillReturnRows(rows)

		history, err := s.GetHistory(context.Background(), "a@b.c")
		if err != nil {
			t.Fatalf("GetHistory: unexpected error: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("GetHistory: expected 2 reports, got %d", len(history))
		}
		if history[0].ID != 3 || history[0].DiseasePrediction != "Grape Esca" {
			t.Errorf("GetHistory: unexpected first row: %+v", history[0])
		}
		if history[1].Location != "" {
			t.Errorf("GetHistory: expected empty location for NULL, got %q", history[1].Location)
		}
	})
}

func TestGetHistoryNoRows(t *testing.T) {
	it(func() {
		s := NewReportsService(db)

		mock.ExpectQuery("SELECT (.+) FROM disease_reports WHERE user_email").
			WithArgs("nobody@example.com", historyLimit).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "image_path", "disease_prediction", "confidence", "severity",
				"category", "user_email", "location", "ts"}))

		history, err := s.GetHistory(context.Background(), "nobody@example.com")
		if err != nil {
			t.Fatalf("GetHistory: unexpected error: %v", err)
		}
		if history == nil || len(history) != 0 {
			t.Errorf("GetHistory: expected empty non-nil slice, got %v", history)
		}
	})
}

func TestGetDiseaseStats(t *testing.T) {
	it(func() {
		s := NewReportsService(db)

		rows := sqlmock.NewRows([]string{"disease_prediction", "cnt", "avg_confidence", "severity"}).
			AddRow("Tomato Late Blight", 5, 88.0, "high").
			AddRow("Apple Healthy", 2, 92.0, "none")

		mock.ExpectQuery("SELECT disease_prediction, COUNT\\(\\*\\) AS cnt, AVG\\(confidence\\) AS avg_confidence, severity FROM disease_reports GROUP BY disease_prediction, severity ORDER BY cnt DESC").
			WillReturnRows(rows)

		stats, err := s.GetDiseaseStats(context.Background())
		if err != nil {
			t.Fatalf("GetDiseaseStats: unexpected error: %v", err)
		}
		if len(stats) != 2 {
			t.Fatalf("GetDiseaseStats: expected 2 stats, got %d", len(stats))
		}
		if stats[0].Count != 5 || stats[0].DiseasePrediction != "Tomato Late Blight" {
			t.Errorf("GetDiseaseStats: unexpected first row: %+v", stats[0])
		}
	})
}

func TestSaveAlert(t *testing.T) {
	it(func() {
		s := NewAlertsService(db)

		mock.ExpectExec(
			"INSERT INTO weather_alerts \\(location, temperature, humidity, risk_level, alert_message\\) VALUES \\((.+), (.+), (.+), (.+), (.+)\\)").
			WithArgs("mumbai", 28.0, 85.0, "high", "High humidity and temperature create favorable conditions for fungal diseases. Monitor crops closely.").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := s.SaveAlert(context.Background(), &models.WeatherAlert{
			Location:     "mumbai",
			Temperature:  28,
			Humidity:     85,
			RiskLevel:    "high",
			AlertMessage: "High humidity and temperature create favorable conditions for fungal diseases. Monitor crops closely.",
		})
		if err != nil {
			t.Errorf("SaveAlert: unexpected error: %v", err)
		}
	})
}
