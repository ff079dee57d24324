package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/config"
)

// AIAdvisorService proxies chat turns to an OpenAI-compatible completions
// API. One request per turn, no streaming, no retry; callers fall back to
// the rule-based advisor on any error.
type AIAdvisorService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIAdvisorService(cfg config.AIConfig) *AIAdvisorService {
	return &AIAdvisorService{
		config: cfg,
		client: &http.Client{},
	}
}

func (s *AIAdvisorService) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Enabled
}

// Reconfigure swaps the API settings. The config hot-reload watcher calls
// this from its own goroutine while requests are in flight.
func (s *AIAdvisorService) Reconfigure(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}

// settings returns a consistent copy so one turn never mixes fields from
// before and after a reload.
func (s *AIAdvisorService) settings() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func systemPrompt(lang catalog.Language, businessContext string) string {
	base := "You are a practical business advisor for small Indian businesses. Give short, concrete, actionable advice. Reply in English."
	if lang == catalog.Hindi {
		base = "You are a practical business advisor for small Indian businesses. Give short, concrete, actionable advice. Reply in Hindi."
	}
	if businessContext != "" {
		return fmt.Sprintf("%s\n\nBusiness context:\n%s", base, businessContext)
	}
	return base
}

// Chat sends one user turn with the recent transcript and returns the
// model's reply.
func (s *AIAdvisorService) Chat(prompt string, lang catalog.Language, businessContext string, history []AIChatMessage) (string, error) {
	cfg := s.settings()

	messages := []AIChatMessage{
		{Role: "system", Content: systemPrompt(lang, businessContext)},
	}
	messages = append(messages, history...)
	messages = append(messages, AIChatMessage{Role: "user", Content: prompt})

	reqBody := ChatCompletionRequest{
		Model:    cfg.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}
