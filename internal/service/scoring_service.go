package service

import (
	"math"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/model"
)

// ScoringService turns questionnaire answers into 0-100 health scores and
// localized recommendations. All methods are pure.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// creditFor returns the fraction of a question's weight an answer earns.
// "yes"/"always" and ratings of 4 or 5 earn full credit, ratings of 2 or 3
// earn half, everything else (including missing answers) earns nothing.
func creditFor(answer model.AnswerValue, ok bool) float64 {
	if !ok {
		return 0
	}
	switch answer.Kind {
	case model.AnswerChoice:
		if answer.Choice == "yes" || answer.Choice == "always" {
			return 1
		}
	case model.AnswerRating:
		if answer.Rating >= 4 {
			return 1
		}
		if answer.Rating >= 2 {
			return 0.5
		}
	}
	return 0
}

// ComputeCategoryScore scores one category's answers against its weighted
// questions. The result is always in [0,100]; a category with no weight
// scores 0.
func (s *ScoringService) ComputeCategoryScore(category *catalog.Category, answers model.AnswerMap) int {
	if category == nil {
		return 0
	}
	total := category.TotalWeight()
	if total <= 0 {
		return 0
	}

	var earned float64
	for _, q := range category.Questions {
		answer, ok := answers[q.ID]
		earned += q.Weight * creditFor(answer, ok)
	}
	return int(math.Round(100 * earned / total))
}

// ComputeOverallScore averages the industry and function scores. When no
// business function was assessed the industry score stands alone.
func (s *ScoringService) ComputeOverallScore(industryScore, functionScore int, hasFunction bool) int {
	if !hasFunction {
		return industryScore
	}
	return int(math.Round(float64(industryScore+functionScore) / 2))
}

// ScoreBand returns the localized verdict line shown with an overall score.
func (s *ScoringService) ScoreBand(score int, lang catalog.Language) string {
	band := catalog.Localized{
		EN: "Needs attention. Focus on the recommendations below to strengthen your business.",
		HI: "ध्यान देने की आवश्यकता है। अपने व्यवसाय को मजबूत करने के लिए नीचे दी गई सिफारिशों पर ध्यान दें।",
	}
	switch {
	case score >= 80:
		band = catalog.Localized{
			EN: "Excellent! Your business is in great health.",
			HI: "उत्कृष्ट! आपका व्यवसाय बहुत अच्छी स्थिति में है।",
		}
	case score >= 60:
		band = catalog.Localized{
			EN: "Good. A few improvements will take your business further.",
			HI: "अच्छा। कुछ सुधार आपके व्यवसाय को और आगे ले जाएंगे।",
		}
	}
	return band.In(lang)
}

// answerTriggers reports whether an answer should trigger the question's
// recommendation: an explicit "no" or a rating below 3.
func answerTriggers(answer model.AnswerValue) bool {
	switch answer.Kind {
	case model.AnswerChoice:
		return answer.Choice == "no"
	case model.AnswerRating:
		return answer.Rating < 3
	}
	return false
}

// GenerateRecommendations walks the industry questions then the function
// questions in catalog order and collects the advice mapped to each
// triggered question id. Deterministic; at most one string per question.
func (s *ScoringService) GenerateRecommendations(industry, function *catalog.Category, industryAnswers, functionAnswers model.AnswerMap, lang catalog.Language) []string {
	recommendations := []string{}
	collect := func(category *catalog.Category, answers model.AnswerMap) {
		if category == nil {
			return
		}
		for _, q := range category.Questions {
			answer, ok := answers[q.ID]
			if !ok || !answerTriggers(answer) {
				continue
			}
			if advice, found := catalog.Recommendations[q.ID]; found {
				recommendations = append(recommendations, advice.In(lang))
			}
		}
	}
	collect(industry, industryAnswers)
	collect(function, functionAnswers)
	return recommendations
}
