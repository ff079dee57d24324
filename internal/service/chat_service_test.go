package service

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"business_health_backend/internal/catalog"

	"github.com/stretchr/testify/assert"
)

// The service is a singleton, so every concurrent turn draws clarifying
// questions from the same generator.
func TestAdvisorSharedGeneratorConcurrentTurns(t *testing.T) {
	rng := rand.New(&lockedSource{src: rand.NewSource(7)})
	questions := catalog.ConversationFlows[0].Questions.EN

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				a := NewAdvisor(ChatContext{Language: catalog.English}, rng)
				reply := a.Respond("I need help with something vague")
				assert.True(t, strings.HasPrefix(reply, "🤔 "), reply)
				assert.Contains(t, questions, strings.TrimPrefix(reply, "🤔 "))
			}
		}()
	}
	wg.Wait()
}

func TestLockedSourceSequence(t *testing.T) {
	locked := rand.New(&lockedSource{src: rand.NewSource(99)})
	plain := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		assert.Equal(t, plain.Int63(), locked.Int63())
	}
}
