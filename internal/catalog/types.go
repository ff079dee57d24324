package catalog

// Language selects which side of a localized pair is served.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Normalize falls back to English for anything that is not a known language tag.
func (l Language) Normalize() Language {
	if l == Hindi {
		return Hindi
	}
	return English
}

// Localized is an English/Hindi string pair. Hindi may be empty, in which
// case the English text is served for both languages.
type Localized struct {
	EN string `json:"en"`
	HI string `json:"hi,omitempty"`
}

func (t Localized) In(lang Language) string {
	if lang.Normalize() == Hindi && t.HI != "" {
		return t.HI
	}
	return t.EN
}

// LocalizedList is an English/Hindi pair of ordered string sequences.
type LocalizedList struct {
	EN []string `json:"en"`
	HI []string `json:"hi,omitempty"`
}

func (t LocalizedList) In(lang Language) []string {
	if lang.Normalize() == Hindi && len(t.HI) > 0 {
		return t.HI
	}
	return t.EN
}

type QuestionType string

const (
	YesNo          QuestionType = "yes-no"
	Rating         QuestionType = "rating"
	MultipleChoice QuestionType = "multiple-choice"
)

// Question is one weighted questionnaire item. Options are only set for
// multiple-choice questions; yes-no questions use the default option set.
type Question struct {
	ID      string       `json:"id"`
	Text    Localized    `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
	Weight  float64      `json:"weight"`
}

// Category is an industry or business function with its ordered questions.
type Category struct {
	ID        string     `json:"id"`
	Name      Localized  `json:"name"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// TotalWeight sums question weights; scoring divides by this.
func (c Category) TotalWeight() float64 {
	var total float64
	for _, q := range c.Questions {
		total += q.Weight
	}
	return total
}

type ProblemCategory string

const (
	ProblemSales      ProblemCategory = "sales"
	ProblemMarketing  ProblemCategory = "marketing"
	ProblemOperations ProblemCategory = "operations"
	ProblemFinance    ProblemCategory = "finance"
	ProblemHR         ProblemCategory = "hr"
	ProblemGeneral    ProblemCategory = "general"
)

// BusinessProblem is a knowledge-base entry the advisor matches user input
// against. Keyword sets mix English and Hindi tokens.
type BusinessProblem struct {
	ID          string          `json:"id"`
	Keywords    []string        `json:"keywords"`
	Category    ProblemCategory `json:"category"`
	Problem     Localized       `json:"problem"`
	Solution    Localized       `json:"solution"`
	ActionSteps LocalizedList   `json:"actionSteps"`
}

// ConversationFlow produces a clarifying question when no problem matched.
type ConversationFlow struct {
	ID        string            `json:"id"`
	Trigger   []string          `json:"trigger"`
	Questions LocalizedList     `json:"questions"`
	FollowUp  []ProblemCategory `json:"followUp"`
}

// BusinessModel is startup-planning reference data.
type BusinessModel struct {
	ID              string    `json:"id"`
	Name            Localized `json:"name"`
	Description     Localized `json:"description"`
	Examples        []string  `json:"examples"`
	ProfitModel     []string  `json:"profitModel"`
	KeyActivities   []string  `json:"keyActivities"`
	TargetCustomers string    `json:"targetCustomers"`
}

// RevenueModel is startup-planning reference data.
type RevenueModel struct {
	ID            string    `json:"id"`
	Name          Localized `json:"name"`
	Description   Localized `json:"description"`
	Advantages    []string  `json:"advantages"`
	Disadvantages []string  `json:"disadvantages"`
	Examples      []string  `json:"examples"`
}
