package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustryCatalogShape(t *testing.T) {
	require.Len(t, Industries, 11)
	for _, industry := range Industries {
		assert.NotEmpty(t, industry.Name.EN, industry.ID)
		assert.Len(t, industry.Questions, 10, industry.ID)
		for _, q := range industry.Questions {
			assert.Equal(t, YesNo, q.Type, q.ID)
			assert.Greater(t, q.Weight, 0.0, q.ID)
			assert.NotEmpty(t, q.Text.EN, q.ID)
			assert.NotEmpty(t, q.Text.HI, q.ID)
		}
	}
}

func TestBusinessFunctionCatalogShape(t *testing.T) {
	require.Len(t, BusinessFunctions, 3)
	for _, fn := range BusinessFunctions {
		assert.Len(t, fn.Questions, 5, fn.ID)
	}
}

func TestFindIndustry(t *testing.T) {
	retail := FindIndustry("retail")
	require.NotNil(t, retail)
	assert.Equal(t, "Retail Shop", retail.Name.EN)

	assert.Nil(t, FindIndustry("space-mining"))
	assert.Nil(t, FindIndustry(""))
}

func TestFindFunction(t *testing.T) {
	finance := FindFunction("finance")
	require.NotNil(t, finance)
	assert.Equal(t, "वित्त", finance.Name.HI)

	assert.Nil(t, FindFunction("retail")) // industries are not functions
}

func TestQuestionIDsUniqueAcrossCatalog(t *testing.T) {
	seen := map[string]string{}
	check := func(categories []Category) {
		for _, c := range categories {
			for _, q := range c.Questions {
				if other, dup := seen[q.ID]; dup {
					t.Fatalf("question id %q appears in both %q and %q", q.ID, other, c.ID)
				}
				seen[q.ID] = c.ID
			}
		}
	}
	check(Industries)
	check(BusinessFunctions)
}

func TestRecommendationsReferenceRealQuestions(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Industries {
		for _, q := range c.Questions {
			known[q.ID] = true
		}
	}
	for _, c := range BusinessFunctions {
		for _, q := range c.Questions {
			known[q.ID] = true
		}
	}

	for id, advice := range Recommendations {
		assert.True(t, known[id], "recommendation for unknown question %q", id)
		assert.NotEmpty(t, advice.EN, id)
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  bool
	}{
		{
			name: "valid yes-no",
			category: Category{ID: "c", Questions: []Question{
				{ID: "q1", Type: YesNo, Weight: 5},
			}},
		},
		{
			name: "duplicate question id",
			category: Category{ID: "c", Questions: []Question{
				{ID: "q1", Type: YesNo, Weight: 5},
				{ID: "q1", Type: YesNo, Weight: 3},
			}},
			wantErr: true,
		},
		{
			name: "zero weight",
			category: Category{ID: "c", Questions: []Question{
				{ID: "q1", Type: YesNo, Weight: 0},
			}},
			wantErr: true,
		},
		{
			name: "multiple choice without options",
			category: Category{ID: "c", Questions: []Question{
				{ID: "q1", Type: MultipleChoice, Weight: 5},
			}},
			wantErr: true,
		},
		{
			name: "options on yes-no question",
			category: Category{ID: "c", Questions: []Question{
				{ID: "q1", Type: YesNo, Weight: 5, Options: []string{"a"}},
			}},
			wantErr: true,
		},
		{
			name:     "empty category id",
			category: Category{Questions: []Question{{ID: "q1", Type: YesNo, Weight: 5}}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCategory(&tt.category)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocalizedFallsBackToEnglish(t *testing.T) {
	both := Localized{EN: "hello", HI: "नमस्ते"}
	assert.Equal(t, "नमस्ते", both.In(Hindi))
	assert.Equal(t, "hello", both.In(English))

	englishOnly := Localized{EN: "hello"}
	assert.Equal(t, "hello", englishOnly.In(Hindi))

	// unknown tags normalize to English
	assert.Equal(t, "hello", both.In(Language("fr")))
}

func TestLanguageNormalize(t *testing.T) {
	assert.Equal(t, Hindi, Language("hi").Normalize())
	assert.Equal(t, English, Language("en").Normalize())
	assert.Equal(t, English, Language("").Normalize())
	assert.Equal(t, English, Language("de").Normalize())
}
