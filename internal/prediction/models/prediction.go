package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Risk tiers attached by the classifier. Anything else is treated as Low when
// the dashboard counts tiers.
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

// StrokeInput holds the ten clinical fields fed to the classifier. Every field is
// optional; rows seeded from the public dataset frequently miss bmi or smoking_status.
type StrokeInput struct {
	Gender          *string  `bson:"gender" json:"gender"`
	Age             *float64 `bson:"age" json:"age"`
	Hypertension    *int     `bson:"hypertension" json:"hypertension"`
	HeartDisease    *int     `bson:"heart_disease" json:"heart_disease"`
	EverMarried     *string  `bson:"ever_married" json:"ever_married"`
	WorkType        *string  `bson:"work_type" json:"work_type"`
	ResidenceType   *string  `bson:"Residence_type" json:"Residence_type"`
	AvgGlucoseLevel *float64 `bson:"avg_glucose_level" json:"avg_glucose_level"`
	BMI             *float64 `bson:"bmi" json:"bmi"`
	SmokingStatus   *string  `bson:"smoking_status" json:"smoking_status"`
}

// PredictionResult is the classifier output stored with each record.
type PredictionResult struct {
	Result      int     `bson:"result" json:"result"`
	Probability float64 `bson:"probability" json:"probability"`
	RiskLevel   string  `bson:"risk_level" json:"risk_level"`
}

// PredictionRecord is one stroke risk assessment as stored in the document
// collection. Records are written once and never mutated afterwards.
type PredictionRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"prediction_id"`
	UserID     *int               `bson:"user_id" json:"user_id"`
	UserEmail  string             `bson:"user_email" json:"user_email"`
	InputData  StrokeInput        `bson:"input_data" json:"input_data"`
	Prediction PredictionResult   `bson:"prediction" json:"prediction"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
