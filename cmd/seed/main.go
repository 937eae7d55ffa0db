// Command seed loads the public stroke dataset CSV into both stores: one patient
// user per row in MySQL and one prediction document per row in MongoDB.
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/strokeapp/stroke-backend/config"
	"github.com/strokeapp/stroke-backend/internal/prediction/models"
	"github.com/strokeapp/stroke-backend/pkg/storage/mongodb"
	"github.com/strokeapp/stroke-backend/pkg/storage/mysql"
)

const defaultPassword = "Patient123!"

func main() {
	csvPath := flag.String("csv", "stroke_data.csv", "path to the stroke dataset CSV")
	flag.Parse()

	cfg := config.LoadConfig()
	ctx := context.Background()

	db, err := mysql.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	defer db.Close()

	mongoClient, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	predictions := mongodb.PredictionCollection(mongoClient, cfg)

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash default password: %v", err)
	}

	var processed, failed int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			failed++
			continue
		}

		rowID := field(row, col, "id")
		gender := field(row, col, "gender")
		age := parseFloat(field(row, col, "age"))
		strokeResult := parseInt(field(row, col, "stroke"))

		userID, err := createUser(ctx, db, rowID, gender, age, string(hashed))
		if err != nil {
			failed++
			log.Printf("Failed to create user for row %s: %v", rowID, err)
			continue
		}

		record := buildRecord(userID, rowID, row, col, strokeResult)
		if _, err := predictions.InsertOne(ctx, record); err != nil {
			failed++
			log.Printf("Failed to insert prediction for row %s: %v", rowID, err)
			continue
		}

		processed++
		if processed%100 == 0 {
			log.Printf("Processed %d rows...", processed)
		}
	}

	log.Printf("Seeding done: %d rows inserted, %d failed.", processed, failed)
}

// createUser inserts the patient user unless one with the derived email already
// exists, and returns its ID either way.
func createUser(ctx context.Context, db *sql.DB, rowID, gender string, age *float64, hashedPassword string) (int, error) {
	email := fmt.Sprintf("patient_%s@strokeapp.com", rowID)

	var existingID int
	err := db.QueryRowContext(ctx, "SELECT id FROM users WHERE email = ?", email).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("check existing user: %w", err)
	}

	genderMapped := "male"
	if gender == "Female" || gender == "female" {
		genderMapped = "female"
	}

	var dob interface{}
	if age != nil {
		dob = fmt.Sprintf("%d-01-01", time.Now().Year()-int(*age))
	}

	res, err := db.ExecContext(ctx,
		"INSERT INTO users (name, email, password, role, phoneNumber, DOB, gender) VALUES (?, ?, ?, ?, ?, ?, ?)",
		fmt.Sprintf("Patient %s", rowID), email, hashedPassword, "patient", nil, dob, genderMapped)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted user id: %w", err)
	}
	return int(id), nil
}

func buildRecord(userID int, rowID string, row []string, col map[string]int, strokeResult int) models.PredictionRecord {
	probability := 0.0
	riskLevel := models.RiskLow
	if strokeResult == 1 {
		probability = 1.0
		riskLevel = models.RiskHigh
	}

	now := time.Now().UTC()
	return models.PredictionRecord{
		UserID:    &userID,
		UserEmail: fmt.Sprintf("patient_%s@strokeapp.com", rowID),
		InputData: models.StrokeInput{
			Gender:          strPtr(field(row, col, "gender")),
			Age:             parseFloat(field(row, col, "age")),
			Hypertension:    intPtr(field(row, col, "hypertension")),
			HeartDisease:    intPtr(field(row, col, "heart_disease")),
			EverMarried:     strPtr(field(row, col, "ever_married")),
			WorkType:        strPtr(field(row, col, "work_type")),
			ResidenceType:   strPtr(field(row, col, "Residence_type")),
			AvgGlucoseLevel: parseFloat(field(row, col, "avg_glucose_level")),
			BMI:             parseFloat(field(row, col, "bmi")),
			SmokingStatus:   strPtr(field(row, col, "smoking_status")),
		},
		Prediction: models.PredictionResult{
			Result:      strokeResult,
			Probability: probability,
			RiskLevel:   riskLevel,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func strPtr(s string) *string {
	if s == "" || s == "N/A" {
		return nil
	}
	return &s
}

func parseFloat(s string) *float64 {
	if s == "" || s == "N/A" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
