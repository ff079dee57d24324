package model

import (
	"encoding/json"
	"fmt"
)

type AnswerKind string

const (
	AnswerChoice AnswerKind = "choice" // yes-no or multiple-choice tag
	AnswerRating AnswerKind = "rating" // 1..5
)

// AnswerValue is a tagged union over the two answer shapes the questionnaire
// produces: a string tag ("yes", "no", ...) or an integer rating. On the wire
// it stays a bare string or number, matching what the front end submits.
type AnswerValue struct {
	Kind   AnswerKind
	Choice string
	Rating int
}

func ChoiceAnswer(tag string) AnswerValue {
	return AnswerValue{Kind: AnswerChoice, Choice: tag}
}

func RatingAnswer(n int) AnswerValue {
	return AnswerValue{Kind: AnswerRating, Rating: n}
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerRating:
		return json.Marshal(a.Rating)
	default:
		return json.Marshal(a.Choice)
	}
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ChoiceAnswer(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*a = RatingAnswer(n)
		return nil
	}
	return fmt.Errorf("answer must be a string tag or an integer rating: %s", string(data))
}

// AnswerMap maps question ids to answers. Missing ids simply score zero.
type AnswerMap map[string]AnswerValue
