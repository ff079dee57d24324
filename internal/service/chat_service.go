package service

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/model"
	"business_health_backend/internal/repository"
	"business_health_backend/internal/util"
	"business_health_backend/pkg/logger"
	"business_health_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChatService orchestrates advisor conversations: transcript persistence,
// context from the latest assessment, and the LLM-or-rules reply decision.
type ChatService struct {
	ChatRepo    *repository.ChatRepository
	Assessments *AssessmentService
	AI          *AIAdvisorService
	rng         *rand.Rand
}

func NewChatService(chatRepo *repository.ChatRepository, assessments *AssessmentService, ai *AIAdvisorService) *ChatService {
	return &ChatService{
		ChatRepo:    chatRepo,
		Assessments: assessments,
		AI:          ai,
		rng:         rand.New(&lockedSource{src: rand.NewSource(time.Now().UnixNano())}),
	}
}

// lockedSource serializes a rand source. The service is a singleton handling
// concurrent turns, and math/rand generators are not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

func (s *ChatService) StartSession(userID uint, language string) (*model.ChatSession, error) {
	session := &model.ChatSession{
		UserID:   userID,
		Language: string(catalog.Language(language).Normalize()),
	}
	if err := s.ChatRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ChatService) ListSessions(userID uint, limit, offset int) ([]model.ChatSession, int64, error) {
	return s.ChatRepo.ListSessions(userID, limit, offset)
}

func (s *ChatService) DeleteSession(userID uint, sessionID string) error {
	err := s.ChatRepo.DeleteSession(sessionID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrSessionNotFound
	}
	return err
}

func (s *ChatService) SessionMessages(userID uint, sessionID string, limit, offset int) ([]model.ChatMessage, int64, error) {
	if _, err := s.ChatRepo.GetSession(sessionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, util.ErrSessionNotFound
		}
		return nil, 0, err
	}
	return s.ChatRepo.Messages(sessionID, limit, offset)
}

func (s *ChatService) Suggestions(language string) []string {
	return catalog.QuickSuggestions.In(catalog.Language(language).Normalize())
}

// SendMessage runs one conversation turn: persist the user message, produce
// a reply and persist it. When the LLM advisor is enabled its failures
// degrade to the rule-based engine, never to an error for the user.
func (s *ChatService) SendMessage(userID uint, sessionID, content string) (*model.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, util.ErrEmptyMessage
	}

	session, err := s.ChatRepo.GetSession(sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	lang := catalog.Language(session.Language).Normalize()
	snapshot := s.Assessments.LatestSnapshot(userID)

	reply, topic := s.produceReply(session, content, lang, snapshot)

	now := time.Now()
	userMsg := &model.ChatMessage{
		Role:    model.RoleUser,
		Content: content,
		SentAt:  now,
	}
	assistantMsg := &model.ChatMessage{
		Role:    model.RoleAssistant,
		Content: reply,
		SentAt:  now,
	}
	if topic != "" && topic != session.Topic {
		session.Topic = topic
		if err := s.ChatRepo.UpdateSession(session); err != nil {
			logger.Log.Warn("failed to update chat topic", zap.String("session", session.ID), zap.Error(err))
		}
	}
	if err := s.ChatRepo.AppendMessages(session, userMsg, assistantMsg); err != nil {
		return nil, err
	}
	return assistantMsg, nil
}

func (s *ChatService) produceReply(session *model.ChatSession, content string, lang catalog.Language, snapshot *model.AssessmentSnapshot) (reply, topic string) {
	if s.AI != nil && s.AI.Enabled() {
		if answer, err := s.aiReply(session, content, lang, snapshot); err == nil {
			monitoring.AdvisorReplies.WithLabelValues("llm").Inc()
			return answer, session.Topic
		} else {
			logger.Log.Warn("LLM advisor failed, falling back to rules",
				zap.String("session", session.ID), zap.Error(err))
		}
	}

	advisor := NewAdvisor(ChatContext{
		Language:       lang,
		CurrentTopic:   session.Topic,
		AssessmentData: snapshot,
	}, s.rng)
	return advisor.Respond(content), advisor.Context().CurrentTopic
}

func (s *ChatService) aiReply(session *model.ChatSession, content string, lang catalog.Language, snapshot *model.AssessmentSnapshot) (string, error) {
	history := []AIChatMessage{}
	recent, err := s.ChatRepo.RecentMessages(session.ID)
	if err == nil {
		for _, msg := range recent {
			history = append(history, AIChatMessage{
				Role:    string(msg.Role),
				Content: msg.Content,
			})
		}
	}
	return s.AI.Chat(content, lang, businessContextSummary(snapshot, lang), history)
}

// businessContextSummary renders the latest assessment as plain text for
// the LLM system prompt.
func businessContextSummary(snapshot *model.AssessmentSnapshot, lang catalog.Language) string {
	if snapshot == nil {
		return ""
	}

	var b strings.Builder
	if c := catalog.FindIndustry(snapshot.IndustryID); c != nil {
		b.WriteString("Industry: " + c.Name.In(lang) + "\n")
	}
	if c := catalog.FindFunction(snapshot.FunctionID); c != nil {
		b.WriteString("Business function: " + c.Name.In(lang) + "\n")
	}
	b.WriteString("Health scores (0-100): overall ")
	b.WriteString(strconv.Itoa(snapshot.Scores.Overall))
	b.WriteString(", industry ")
	b.WriteString(strconv.Itoa(snapshot.Scores.Industry))
	if snapshot.FunctionID != "" {
		b.WriteString(", function ")
		b.WriteString(strconv.Itoa(snapshot.Scores.Function))
	}
	b.WriteString("\n")
	if len(snapshot.Recommendations) > 0 {
		b.WriteString("Current recommendations:\n")
		for _, rec := range snapshot.Recommendations {
			b.WriteString("- " + rec + "\n")
		}
	}
	return b.String()
}
