package service

import (
	"testing"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategory() *catalog.Category {
	return &catalog.Category{
		ID: "test",
		Questions: []catalog.Question{
			{ID: "q1", Type: catalog.YesNo, Weight: 10},
			{ID: "q2", Type: catalog.YesNo, Weight: 6},
			{ID: "q3", Type: catalog.Rating, Weight: 4},
		},
	}
}

func TestComputeCategoryScore(t *testing.T) {
	s := NewScoringService()

	tests := []struct {
		name    string
		answers model.AnswerMap
		want    int
	}{
		{
			name: "all yes",
			answers: model.AnswerMap{
				"q1": model.ChoiceAnswer("yes"),
				"q2": model.ChoiceAnswer("yes"),
				"q3": model.RatingAnswer(5),
			},
			want: 100,
		},
		{
			name:    "no answers",
			answers: model.AnswerMap{},
			want:    0,
		},
		{
			name: "all no",
			answers: model.AnswerMap{
				"q1": model.ChoiceAnswer("no"),
				"q2": model.ChoiceAnswer("no"),
				"q3": model.RatingAnswer(1),
			},
			want: 0,
		},
		{
			// 10 of 20 -> 50
			name: "only the heavy question",
			answers: model.AnswerMap{
				"q1": model.ChoiceAnswer("yes"),
			},
			want: 50,
		},
		{
			// rating 3 earns half of 4 -> 2 of 20 -> 10
			name: "mid rating earns half credit",
			answers: model.AnswerMap{
				"q3": model.RatingAnswer(3),
			},
			want: 10,
		},
		{
			// rating 4 earns full credit
			name: "high rating earns full credit",
			answers: model.AnswerMap{
				"q3": model.RatingAnswer(4),
			},
			want: 20,
		},
		{
			name: "always counts as yes",
			answers: model.AnswerMap{
				"q1": model.ChoiceAnswer("always"),
			},
			want: 50,
		},
		{
			name: "sometimes earns nothing",
			answers: model.AnswerMap{
				"q1": model.ChoiceAnswer("sometimes"),
				"q2": model.ChoiceAnswer("not-sure"),
			},
			want: 0,
		},
		{
			name: "unknown question ids are ignored",
			answers: model.AnswerMap{
				"q1":      model.ChoiceAnswer("yes"),
				"ghost99": model.ChoiceAnswer("yes"),
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ComputeCategoryScore(testCategory(), tt.answers)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestComputeCategoryScoreEdgeCases(t *testing.T) {
	s := NewScoringService()

	assert.Equal(t, 0, s.ComputeCategoryScore(nil, model.AnswerMap{"q1": model.ChoiceAnswer("yes")}))

	empty := &catalog.Category{ID: "empty"}
	assert.Equal(t, 0, s.ComputeCategoryScore(empty, model.AnswerMap{}))
}

func TestComputeCategoryScoreMonotonic(t *testing.T) {
	// Flipping an answer from no to yes never lowers the score.
	s := NewScoringService()
	cat := testCategory()

	answers := model.AnswerMap{
		"q1": model.ChoiceAnswer("no"),
		"q2": model.ChoiceAnswer("no"),
		"q3": model.RatingAnswer(1),
	}
	prev := s.ComputeCategoryScore(cat, answers)
	for _, id := range []string{"q1", "q2"} {
		answers[id] = model.ChoiceAnswer("yes")
		next := s.ComputeCategoryScore(cat, answers)
		assert.GreaterOrEqual(t, next, prev)
		prev = next
	}
}

func TestComputeCategoryScoreRealCatalog(t *testing.T) {
	s := NewScoringService()
	sales := catalog.FindFunction("sales")
	require.NotNil(t, sales)

	// s1 weighs 10 of the sales total 40.
	score := s.ComputeCategoryScore(sales, model.AnswerMap{"s1": model.ChoiceAnswer("yes")})
	assert.Equal(t, 25, score)
}

func TestComputeOverallScore(t *testing.T) {
	s := NewScoringService()

	assert.Equal(t, 75, s.ComputeOverallScore(70, 80, true))
	assert.Equal(t, 76, s.ComputeOverallScore(71, 80, true)) // rounds 75.5 up
	assert.Equal(t, 70, s.ComputeOverallScore(70, 0, false))
	assert.Equal(t, 0, s.ComputeOverallScore(0, 0, true))
}

func TestScoreBand(t *testing.T) {
	s := NewScoringService()

	assert.Contains(t, s.ScoreBand(85, catalog.English), "Excellent")
	assert.Contains(t, s.ScoreBand(80, catalog.English), "Excellent")
	assert.Contains(t, s.ScoreBand(79, catalog.English), "Good")
	assert.Contains(t, s.ScoreBand(60, catalog.English), "Good")
	assert.Contains(t, s.ScoreBand(59, catalog.English), "Needs attention")
	assert.Contains(t, s.ScoreBand(85, catalog.Hindi), "उत्कृष्ट")
}

func TestGenerateRecommendations(t *testing.T) {
	s := NewScoringService()
	retail := catalog.FindIndustry("retail")
	finance := catalog.FindFunction("finance")
	require.NotNil(t, retail)
	require.NotNil(t, finance)

	industryAnswers := model.AnswerMap{
		"r1": model.ChoiceAnswer("no"),  // has advice, triggers
		"r2": model.ChoiceAnswer("no"),  // triggers but has no advice entry
		"r3": model.ChoiceAnswer("yes"), // advice exists but does not trigger
		"r4": model.ChoiceAnswer("no"),  // has advice, triggers
	}
	functionAnswers := model.AnswerMap{
		"fin1": model.ChoiceAnswer("no"),
	}

	got := s.GenerateRecommendations(retail, finance, industryAnswers, functionAnswers, catalog.English)

	require.Len(t, got, 3)
	// industry advice first, in question order, then function advice
	assert.Equal(t, catalog.Recommendations["r1"].EN, got[0])
	assert.Equal(t, catalog.Recommendations["r4"].EN, got[1])
	assert.Equal(t, catalog.Recommendations["fin1"].EN, got[2])

	// deterministic across runs
	again := s.GenerateRecommendations(retail, finance, industryAnswers, functionAnswers, catalog.English)
	assert.Equal(t, got, again)
}

func TestGenerateRecommendationsRatingTrigger(t *testing.T) {
	s := NewScoringService()
	retail := catalog.FindIndustry("retail")

	low := s.GenerateRecommendations(retail, nil, model.AnswerMap{"r1": model.RatingAnswer(2)}, nil, catalog.English)
	require.Len(t, low, 1)

	high := s.GenerateRecommendations(retail, nil, model.AnswerMap{"r1": model.RatingAnswer(3)}, nil, catalog.English)
	assert.Empty(t, high)
}

func TestGenerateRecommendationsLocalized(t *testing.T) {
	s := NewScoringService()
	retail := catalog.FindIndustry("retail")

	got := s.GenerateRecommendations(retail, nil, model.AnswerMap{"r1": model.ChoiceAnswer("no")}, nil, catalog.Hindi)
	require.Len(t, got, 1)
	assert.Equal(t, catalog.Recommendations["r1"].HI, got[0])
}
