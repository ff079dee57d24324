package service

import (
	"math/rand"
	"strings"
	"testing"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdvisor(ctx ChatContext) *Advisor {
	return NewAdvisor(ctx, rand.New(rand.NewSource(1)))
}

func TestAdvisorGreeting(t *testing.T) {
	a := newTestAdvisor(ChatContext{Language: catalog.English})

	for _, greeting := range []string{"hi", "Hello", "HEY", "  HI  ", "नमस्ते", "हैलो"} {
		reply := a.Respond(greeting)
		assert.Contains(t, reply, "main challenge", "input %q", greeting)
	}

	// a greeting embedded in a sentence is not a greeting
	reply := a.Respond("hi, my sales are terrible")
	assert.NotContains(t, reply, "main challenge")
}

func TestAdvisorGreetingWithAssessment(t *testing.T) {
	a := newTestAdvisor(ChatContext{
		Language: catalog.English,
		AssessmentData: &model.AssessmentSnapshot{
			IndustryID: "retail",
			FunctionID: "sales",
			Scores:     model.Scores{Overall: 55, Industry: 50, Function: 60},
		},
	})

	reply := a.Respond("hello")
	assert.Contains(t, reply, "Retail Shop")
	assert.Contains(t, reply, "Sales")
}

func TestAdvisorGreetingIndustryOnlyAssessment(t *testing.T) {
	a := newTestAdvisor(ChatContext{
		Language: catalog.English,
		AssessmentData: &model.AssessmentSnapshot{
			IndustryID: "retail",
			Scores:     model.Scores{Overall: 40, Industry: 40},
		},
	})

	reply := a.Respond("hi")
	assert.Contains(t, reply, "Retail Shop")
	assert.NotContains(t, reply, "specifically in")
}

func TestAdvisorActionPlan(t *testing.T) {
	a := newTestAdvisor(ChatContext{Language: catalog.English})

	reply := a.Respond("please create an ACTION PLAN for me")
	assert.Contains(t, reply, "30-day business action plan")
	assert.Contains(t, reply, "Week 1-2")
	assert.Contains(t, reply, "Week 9-12")

	hindi := newTestAdvisor(ChatContext{Language: catalog.Hindi})
	replyHI := hindi.Respond("एक्शन प्लान")
	assert.Contains(t, replyHI, "30-दिन")
	assert.Contains(t, replyHI, "सप्ताह 1-2")
}

func TestAdvisorProblemMatch(t *testing.T) {
	a := newTestAdvisor(ChatContext{Language: catalog.English})

	reply := a.Respond("my cash flow is terrible")
	assert.Contains(t, reply, "payment collection")
	assert.Contains(t, reply, "Immediate Action Plan:")
	for i := 1; i <= 5; i++ {
		assert.Contains(t, reply, string(rune('0'+i))+". ")
	}
	assert.Contains(t, reply, "Need more help?")

	// topic follows the matched problem
	assert.Equal(t, "cash-flow", a.Context().CurrentTopic)
}

func TestAdvisorProblemRanking(t *testing.T) {
	// "cash" and "payment" both hit cash-flow (2 matches); "sales" hits
	// low-sales once. The higher match count wins.
	a := newTestAdvisor(ChatContext{Language: catalog.English})
	reply := a.Respond("sales are fine but cash and payment collection hurt")
	assert.Equal(t, "cash-flow", a.Context().CurrentTopic, reply)
}

func TestAdvisorProblemTieBreaksByCatalogOrder(t *testing.T) {
	// One keyword hit each: low-sales sits before cash-flow in the catalog.
	a := newTestAdvisor(ChatContext{Language: catalog.English})
	a.Respond("revenue and money problems")
	assert.Equal(t, "low-sales", a.Context().CurrentTopic)
}

func TestAdvisorFlowQuestion(t *testing.T) {
	questions := catalog.ConversationFlows[0].Questions.EN

	a := newTestAdvisor(ChatContext{Language: catalog.English})
	reply := a.Respond("I need help with something vague")

	require.True(t, strings.HasPrefix(reply, "🤔 "), reply)
	assert.Contains(t, questions, strings.TrimPrefix(reply, "🤔 "))
}

func TestAdvisorFlowQuestionSeeded(t *testing.T) {
	// Same seed, same clarifying question.
	first := NewAdvisor(ChatContext{Language: catalog.English}, rand.New(rand.NewSource(42))).Respond("help")
	second := NewAdvisor(ChatContext{Language: catalog.English}, rand.New(rand.NewSource(42))).Respond("help")
	assert.Equal(t, first, second)
}

func TestAdvisorFallback(t *testing.T) {
	a := newTestAdvisor(ChatContext{Language: catalog.English})

	reply := a.Respond("xyzzy quux")
	assert.Contains(t, reply, "Please be more specific")
	assert.Contains(t, reply, "30-day action plan")

	hindi := newTestAdvisor(ChatContext{Language: catalog.Hindi})
	assert.Contains(t, hindi.Respond("xyzzy quux"), "कृपया अधिक विशिष्ट")
}

func TestAdvisorNeverEmpty(t *testing.T) {
	a := newTestAdvisor(ChatContext{Language: catalog.English})
	for _, input := range []string{"", "   ", "?!", "हाँ", strings.Repeat("a", 1000)} {
		assert.NotEmpty(t, a.Respond(input), "input %q", input)
	}
}

func TestAdvisorUpdateContext(t *testing.T) {
	a := newTestAdvisor(ChatContext{Language: catalog.English, CurrentTopic: "low-sales"})

	snap := &model.AssessmentSnapshot{IndustryID: "retail"}
	a.UpdateContext(ChatContext{Language: catalog.Hindi, AssessmentData: snap})

	ctx := a.Context()
	assert.Equal(t, catalog.Hindi, ctx.Language)
	assert.Equal(t, "low-sales", ctx.CurrentTopic) // untouched by zero value
	assert.Same(t, snap, ctx.AssessmentData)

	// zero-value partial changes nothing
	a.UpdateContext(ChatContext{})
	assert.Equal(t, catalog.Hindi, a.Context().Language)
	assert.Same(t, snap, a.Context().AssessmentData)
}

func TestAdvisorQuickSuggestions(t *testing.T) {
	en := newTestAdvisor(ChatContext{Language: catalog.English})
	assert.Equal(t, catalog.QuickSuggestions.EN, en.QuickSuggestions())

	hi := newTestAdvisor(ChatContext{Language: catalog.Hindi})
	assert.Equal(t, catalog.QuickSuggestions.HI, hi.QuickSuggestions())
}
