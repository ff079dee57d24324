package catalog

import "fmt"

// DefaultYesNoOptions is the answer set used when a yes-no question does not
// declare its own options.
var DefaultYesNoOptions = []string{"yes", "sometimes", "not-sure", "no"}

var (
	industryIndex = map[string]*Category{}
	functionIndex = map[string]*Category{}
)

func init() {
	if err := buildIndexes(); err != nil {
		panic(err)
	}
}

// buildIndexes validates the static data and builds id lookups. The catalog
// is compile-time data, so any violation is a programming error and the
// process must not start.
func buildIndexes() error {
	for i := range Industries {
		c := &Industries[i]
		if err := validateCategory(c); err != nil {
			return fmt.Errorf("industry %q: %w", c.ID, err)
		}
		if _, dup := industryIndex[c.ID]; dup {
			return fmt.Errorf("duplicate industry id %q", c.ID)
		}
		industryIndex[c.ID] = c
	}
	for i := range BusinessFunctions {
		c := &BusinessFunctions[i]
		if err := validateCategory(c); err != nil {
			return fmt.Errorf("business function %q: %w", c.ID, err)
		}
		if _, dup := functionIndex[c.ID]; dup {
			return fmt.Errorf("duplicate business function id %q", c.ID)
		}
		functionIndex[c.ID] = c
	}
	for _, p := range BusinessProblems {
		if len(p.Keywords) == 0 {
			return fmt.Errorf("business problem %q has no keywords", p.ID)
		}
		if len(p.ActionSteps.EN) == 0 {
			return fmt.Errorf("business problem %q has no action steps", p.ID)
		}
	}
	for _, f := range ConversationFlows {
		if len(f.Trigger) == 0 || len(f.Questions.EN) == 0 {
			return fmt.Errorf("conversation flow %q is incomplete", f.ID)
		}
	}
	return nil
}

func validateCategory(c *Category) error {
	if c.ID == "" {
		return fmt.Errorf("empty category id")
	}
	seen := map[string]bool{}
	for _, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("question with empty id")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.Weight <= 0 {
			return fmt.Errorf("question %q has non-positive weight %v", q.ID, q.Weight)
		}
		if q.Type == MultipleChoice && len(q.Options) == 0 {
			return fmt.Errorf("multiple-choice question %q has no options", q.ID)
		}
		if q.Type != MultipleChoice && len(q.Options) > 0 {
			return fmt.Errorf("question %q declares options but is not multiple-choice", q.ID)
		}
	}
	return nil
}

// FindIndustry returns the industry with the given id, or nil.
func FindIndustry(id string) *Category {
	return industryIndex[id]
}

// FindFunction returns the business function with the given id, or nil.
func FindFunction(id string) *Category {
	return functionIndex[id]
}
