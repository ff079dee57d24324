package service

import (
	"encoding/json"
	"errors"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/model"
	"business_health_backend/internal/repository"
	"business_health_backend/internal/util"

	"gorm.io/gorm"
)

type AssessmentService struct {
	Repo    *repository.AssessmentRepository
	Scoring *ScoringService
}

func NewAssessmentService(repo *repository.AssessmentRepository, scoring *ScoringService) *AssessmentService {
	return &AssessmentService{Repo: repo, Scoring: scoring}
}

// AssessmentInput is one completed questionnaire. FunctionID may be empty
// when the user only assessed their industry.
type AssessmentInput struct {
	IndustryID      string          `json:"industryId" binding:"required"`
	FunctionID      string          `json:"functionId"`
	Language        string          `json:"language"`
	IndustryAnswers model.AnswerMap `json:"industryAnswers" binding:"required"`
	FunctionAnswers model.AnswerMap `json:"functionAnswers"`
}

// AssessmentResult is the scored outcome returned to the client.
type AssessmentResult struct {
	ID              uint         `json:"id"`
	Scores          model.Scores `json:"scores"`
	Verdict         string       `json:"verdict"`
	Recommendations []string     `json:"recommendations"`
}

// Submit scores a questionnaire, generates recommendations and persists the
// immutable record, pruning the user's history to the retention cap.
func (s *AssessmentService) Submit(userID uint, input AssessmentInput) (*AssessmentResult, error) {
	industry := catalog.FindIndustry(input.IndustryID)
	if industry == nil {
		return nil, util.ErrUnknownIndustry
	}

	var function *catalog.Category
	if input.FunctionID != "" {
		function = catalog.FindFunction(input.FunctionID)
		if function == nil {
			return nil, util.ErrUnknownFunction
		}
	}

	lang := catalog.Language(input.Language).Normalize()

	industryScore := s.Scoring.ComputeCategoryScore(industry, input.IndustryAnswers)
	functionScore := s.Scoring.ComputeCategoryScore(function, input.FunctionAnswers)
	overall := s.Scoring.ComputeOverallScore(industryScore, functionScore, function != nil)
	recommendations := s.Scoring.GenerateRecommendations(industry, function, input.IndustryAnswers, input.FunctionAnswers, lang)

	industryJSON, err := json.Marshal(input.IndustryAnswers)
	if err != nil {
		return nil, err
	}
	functionJSON, err := json.Marshal(input.FunctionAnswers)
	if err != nil {
		return nil, err
	}
	recommendationsJSON, err := json.Marshal(recommendations)
	if err != nil {
		return nil, err
	}

	record := &model.AssessmentRecord{
		UserID:          userID,
		IndustryID:      input.IndustryID,
		FunctionID:      input.FunctionID,
		Language:        string(lang),
		IndustryAnswers: industryJSON,
		FunctionAnswers: functionJSON,
		OverallScore:    overall,
		IndustryScore:   industryScore,
		FunctionScore:   functionScore,
		Recommendations: recommendationsJSON,
	}
	if err := s.Repo.Save(record); err != nil {
		return nil, err
	}

	return &AssessmentResult{
		ID: record.ID,
		Scores: model.Scores{
			Overall:  overall,
			Industry: industryScore,
			Function: functionScore,
		},
		Verdict:         s.Scoring.ScoreBand(overall, lang),
		Recommendations: recommendations,
	}, nil
}

func (s *AssessmentService) History(userID uint, limit, offset int) ([]model.AssessmentRecord, int64, error) {
	return s.Repo.History(userID, limit, offset)
}

// Latest returns the user's most recent assessment, or nil when none exists.
func (s *AssessmentService) Latest(userID uint) (*model.AssessmentRecord, error) {
	record, err := s.Repo.Latest(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// LatestSnapshot loads the chat-context view of the latest assessment. Any
// load failure degrades to nil so the advisor still answers.
func (s *AssessmentService) LatestSnapshot(userID uint) *model.AssessmentSnapshot {
	record, err := s.Latest(userID)
	if err != nil || record == nil {
		return nil
	}
	snap, err := record.Snapshot()
	if err != nil {
		return nil
	}
	return snap
}

func (s *AssessmentService) Clear(userID uint) error {
	return s.Repo.DeleteAllForUser(userID)
}
