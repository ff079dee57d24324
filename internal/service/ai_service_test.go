package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"business_health_backend/internal/catalog"
	"business_health_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIAdvisorReconfigureAppliesToChat(t *testing.T) {
	svc := NewAIAdvisorService(config.AIConfig{Enabled: false})
	assert.False(t, svc.Enabled())

	var gotAuth, gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel = req.Model
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	svc.Reconfigure(config.AIConfig{
		Enabled: true,
		BaseURL: server.URL,
		APIKey:  "key-2",
		Model:   "advisor-v2",
	})
	assert.True(t, svc.Enabled())

	reply, err := svc.Chat("hello", catalog.English, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, "Bearer key-2", gotAuth)
	assert.Equal(t, "advisor-v2", gotModel)
}

// A reload must never let one turn see fields from two different configs.
func TestAIAdvisorReconfigureWhileReading(t *testing.T) {
	svc := NewAIAdvisorService(config.AIConfig{Enabled: true, BaseURL: "http://one", APIKey: "k1", Model: "m1"})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			svc.Reconfigure(config.AIConfig{Enabled: i%2 == 0, BaseURL: "http://two", APIKey: "k2", Model: "m2"})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			cfg := svc.settings()
			if cfg.BaseURL == "http://two" {
				assert.Equal(t, "k2", cfg.APIKey)
				assert.Equal(t, "m2", cfg.Model)
			} else {
				assert.Equal(t, "k1", cfg.APIKey)
			}
			svc.Enabled()
		}
	}()
	wg.Wait()
}
