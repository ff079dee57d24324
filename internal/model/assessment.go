package model

import (
	"encoding/json"
)

// Scores is the 0-100 result triple of one completed checkup.
type Scores struct {
	Overall  int `json:"overall"`
	Industry int `json:"industry"`
	Function int `json:"function"`
}

// AssessmentRecord is one completed health checkup. It is immutable after
// scoring; answers, scores and recommendations are stored as JSON documents
// and only ever read back whole.
// swagger:model AssessmentRecord
type AssessmentRecord struct {
	BaseModel
	UserID          uint            `gorm:"index;not null" json:"userId"`
	IndustryID      string          `gorm:"size:50;not null" json:"industryId"`
	FunctionID      string          `gorm:"size:50" json:"functionId"`
	Language        string          `gorm:"size:10;default:'en'" json:"language"`
	IndustryAnswers json.RawMessage `gorm:"type:json" json:"industryAnswers"`
	FunctionAnswers json.RawMessage `gorm:"type:json" json:"functionAnswers"`
	OverallScore    int             `gorm:"not null" json:"overallScore"`
	IndustryScore   int             `gorm:"not null" json:"industryScore"`
	FunctionScore   int             `gorm:"not null" json:"functionScore"`
	Recommendations json.RawMessage `gorm:"type:json" json:"recommendations"`
}

func (AssessmentRecord) TableName() string {
	return "assessment_records"
}

// Snapshot converts the stored record into the read-only view the chat
// advisor consumes.
func (r *AssessmentRecord) Snapshot() (*AssessmentSnapshot, error) {
	snap := &AssessmentSnapshot{
		IndustryID: r.IndustryID,
		FunctionID: r.FunctionID,
		Scores: Scores{
			Overall:  r.OverallScore,
			Industry: r.IndustryScore,
			Function: r.FunctionScore,
		},
	}
	if len(r.Recommendations) > 0 {
		if err := json.Unmarshal(r.Recommendations, &snap.Recommendations); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// AssessmentSnapshot is the immutable view of a scored checkup passed into
// the conversation engine's context.
type AssessmentSnapshot struct {
	IndustryID      string   `json:"industryId"`
	FunctionID      string   `json:"functionId"`
	Scores          Scores   `json:"scores"`
	Recommendations []string `json:"recommendations"`
}
