package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/model"
	"business_health_backend/pkg/monitoring"
)

// ChatContext is the state the advisor answers from. AssessmentData is a
// read-only snapshot of the user's latest checkup; nil means no checkup yet.
type ChatContext struct {
	Language       catalog.Language
	CurrentTopic   string
	AssessmentData *model.AssessmentSnapshot
}

var greetingPattern = regexp.MustCompile(`^(?i:hi|hello|हैलो|नमस्ते|hey)$`)

// Advisor is the rule-based conversation engine. It never errors; any input
// that matches nothing falls through to a fixed help menu. The random source
// only drives which clarifying question a flow asks.
type Advisor struct {
	ctx ChatContext
	rng *rand.Rand
}

func NewAdvisor(ctx ChatContext, rng *rand.Rand) *Advisor {
	ctx.Language = ctx.Language.Normalize()
	return &Advisor{ctx: ctx, rng: rng}
}

func (a *Advisor) Context() ChatContext {
	return a.ctx
}

// UpdateContext shallow-merges the non-zero fields of partial into the
// advisor's context.
func (a *Advisor) UpdateContext(partial ChatContext) {
	if partial.Language != "" {
		a.ctx.Language = partial.Language.Normalize()
	}
	if partial.CurrentTopic != "" {
		a.ctx.CurrentTopic = partial.CurrentTopic
	}
	if partial.AssessmentData != nil {
		a.ctx.AssessmentData = partial.AssessmentData
	}
}

func (a *Advisor) QuickSuggestions() []string {
	return catalog.QuickSuggestions.In(a.ctx.Language)
}

func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Respond resolves one user turn. The branches are tried in a fixed order:
// greeting, action plan request, problem keyword match, conversation flow,
// fallback menu.
func (a *Advisor) Respond(input string) string {
	lang := a.ctx.Language
	normalized := normalizeText(input)

	if greetingPattern.MatchString(strings.TrimSpace(input)) {
		monitoring.AdvisorReplies.WithLabelValues("greeting").Inc()
		return a.contextualGreeting(lang)
	}

	if strings.Contains(normalized, "action plan") || strings.Contains(normalized, "एक्शन प्लान") {
		monitoring.AdvisorReplies.WithLabelValues("action_plan").Inc()
		intro := catalog.Localized{
			EN: "📋 Here's your 30-day business action plan:\n\n",
			HI: "📋 आपके लिए 30-दिन की व्यावसायिक एक्शन प्लान:\n\n",
		}
		return intro.In(lang) + thirtyDayPlan(lang)
	}

	if problem := matchProblem(normalized); problem != nil {
		monitoring.AdvisorReplies.WithLabelValues("problem").Inc()
		a.ctx.CurrentTopic = problem.ID
		return problemResponse(problem, lang)
	}

	if flow := matchFlow(normalized); flow != nil {
		monitoring.AdvisorReplies.WithLabelValues("flow").Inc()
		questions := flow.Questions.In(lang)
		return "🤔 " + questions[a.rng.Intn(len(questions))]
	}

	monitoring.AdvisorReplies.WithLabelValues("fallback").Inc()
	return fallbackMenu(lang)
}

// matchProblem returns the catalog problem with the most keyword hits in the
// normalized input, or nil. Catalog order breaks ties.
func matchProblem(normalized string) *catalog.BusinessProblem {
	var best *catalog.BusinessProblem
	bestHits := 0
	for i := range catalog.BusinessProblems {
		p := &catalog.BusinessProblems[i]
		hits := 0
		for _, keyword := range p.Keywords {
			if strings.Contains(normalized, normalizeText(keyword)) {
				hits++
			}
		}
		if hits > bestHits {
			best = p
			bestHits = hits
		}
	}
	return best
}

func matchFlow(normalized string) *catalog.ConversationFlow {
	for i := range catalog.ConversationFlows {
		f := &catalog.ConversationFlows[i]
		for _, trigger := range f.Trigger {
			if strings.Contains(normalized, normalizeText(trigger)) {
				return f
			}
		}
	}
	return nil
}

func problemResponse(problem *catalog.BusinessProblem, lang catalog.Language) string {
	header := catalog.Localized{
		EN: "Immediate Action Plan:",
		HI: "तत्काल कार्य योजना:",
	}

	lines := []string{
		fmt.Sprintf("💡 %s\n", problem.Solution.In(lang)),
		fmt.Sprintf("📝 %s\n", header.In(lang)),
	}
	for i, step := range problem.ActionSteps.In(lang) {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}

	suggestions := catalog.Localized{
		EN: "\n\n🤔 Need more help? Ask:\n• \"How to improve cash flow?\"\n• \"How to reduce marketing budget?\"\n• \"How to retain customers?\"",
		HI: "\n\n🤔 और मदद चाहिए? पूछें:\n• \"कैश फ्लो कैसे बेहतर करें?\"\n• \"मार्केटिंग बजट कम कैसे करें?\"\n• \"ग्राहक कैसे बनाए रखें?\"",
	}
	return strings.Join(lines, "\n") + suggestions.In(lang)
}

func (a *Advisor) contextualGreeting(lang catalog.Language) string {
	snap := a.ctx.AssessmentData
	if snap == nil {
		opener := catalog.Localized{
			EN: "I can help improve your business. Please tell me what your main challenge is?",
			HI: "मैं आपके व्यवसाय को बेहतर बनाने में मदद कर सकता हूं। कृपया बताएं कि आपकी मुख्य चुनौती क्या है?",
		}
		return opener.In(lang)
	}

	industry := snap.IndustryID
	if c := catalog.FindIndustry(snap.IndustryID); c != nil {
		industry = c.Name.In(lang)
	}
	if snap.FunctionID == "" {
		if lang == catalog.Hindi {
			return fmt.Sprintf("आपके %s व्यवसाय में सुधार के लिए मैं यहाँ हूँ। आपकी वर्तमान स्कोर के अनुसार, मैं व्यावहारिक सुझाव दे सकता हूं। आप किस विशिष्ट क्षेत्र में मदद चाहते हैं?", industry)
		}
		return fmt.Sprintf("I'm here to help improve your %s business. Based on your current scores, I can provide practical suggestions. Which specific area would you like help with?", industry)
	}

	function := snap.FunctionID
	if c := catalog.FindFunction(snap.FunctionID); c != nil {
		function = c.Name.In(lang)
	}

	if lang == catalog.Hindi {
		return fmt.Sprintf("आपके %s व्यवसाय के %s function में सुधार के लिए मैं यहाँ हूँ। आपकी वर्तमान स्कोर के अनुसार, मैं व्यावहारिक सुझाव दे सकता हूं। आप किस विशिष्ट क्षेत्र में मदद चाहते हैं?", industry, function)
	}
	return fmt.Sprintf("I'm here to help improve your %s business, specifically in %s. Based on your current scores, I can provide practical suggestions. Which specific area would you like help with?", industry, function)
}

func thirtyDayPlan(lang catalog.Language) string {
	plan := catalog.LocalizedList{
		EN: []string{
			"🎯 Week 1-2: Current Situation Analysis",
			"• List your top 10 customers",
			"• Gather sales data from last 3 months",
			"• Identify main competitors",
			"",
			"📈 Week 3-4: Immediate Improvements",
			"• Create/update Google My Business profile",
			"• Setup WhatsApp Business",
			"• Start collecting customer feedback",
			"",
			"🚀 Week 5-8: Growth Strategy",
			"• Launch referral program",
			"• Regular social media posting",
			"• Plan new product/service launch",
			"",
			"💰 Week 9-12: Scaling",
			"• Repeat successful strategies",
			"• Target new market segments",
			"• Plan team expansion",
		},
		HI: []string{
			"🎯 सप्ताह 1-2: वर्तमान स्थिति का विश्लेषण",
			"• अपने टॉप 10 ग्राहकों की सूची बनाएं",
			"• पिछले 3 महीने की बिक्री का डेटा इकट्ठा करें",
			"• मुख्य प्रतियोगियों की पहचान करें",
			"",
			"📈 सप्ताह 3-4: तत्काल सुधार",
			"• Google My Business प्रोफाइल बनाएं/अपडेट करें",
			"• WhatsApp Business सेटअप करें",
			"• ग्राहकों से फीडबैक लेना शुरू करें",
			"",
			"🚀 सप्ताह 5-8: विकास रणनीति",
			"• रेफरल प्रोग्राम शुरू करें",
			"• सोशल मीडिया पर नियमित पोस्टिंग",
			"• नए उत्पाद/सेवा लॉन्च की योजना",
			"",
			"💰 सप्ताह 9-12: स्केलिंग",
			"• सफल रणनीतियों को दोहराएं",
			"• नए बाजार खंडों को लक्षित करें",
			"• टीम विस्तार की योजना बनाएं",
		},
	}
	return strings.Join(plan.In(lang), "\n")
}

func fallbackMenu(lang catalog.Language) string {
	menu := catalog.LocalizedList{
		EN: []string{
			"🤔 I understand you need business help. Please be more specific about:",
			"• Sales and revenue issues",
			"• Marketing and promotion",
			"• Cash flow management",
			"• Team management",
			"• Dealing with competition",
			"",
			"Or simply type \"Create a 30-day action plan\".",
		},
		HI: []string{
			"🤔 मैं समझ गया कि आप व्यावसायिक सहायता चाहते हैं। कृपया अधिक विशिष्ट बताएं:",
			"• बिक्री और आमदनी की समस्या",
			"• मार्केटिंग और प्रचार",
			"• कैश फ्लो प्रबंधन",
			"• टीम मैनेजमेंट",
			"• प्रतिस्पर्धा से निपटना",
			"",
			"या फिर \"30 दिनों की एक्शन प्लान बनाएं\" लिखें।",
		},
	}
	return strings.Join(menu.In(lang), "\n")
}
