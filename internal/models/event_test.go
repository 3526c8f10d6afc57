package models

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewEventFreshCorrelationID(t *testing.T) {
	a := NewEvent("ledger.arrival_created", "arrival #1", "", "10.0.0.1", 1, 1)
	b := NewEvent("ledger.arrival_created", "arrival #2", "", "10.0.0.1", 1, 1)

	assert.NotEqual(t, uuid.Nil, a.CorrelationID)
	assert.NotEqual(t, uuid.Nil, b.CorrelationID)
	assert.NotEqual(t, a.CorrelationID, b.CorrelationID)
}

func TestNewEventConcurrentIDsDistinct(t *testing.T) {
	const n = 200

	var mu sync.Mutex
	seen := make(map[uuid.UUID]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := NewEvent("auth.login", "login", "", "10.0.0.1", 1, 1)
			mu.Lock()
			seen[e.CorrelationID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestNewEventFields(t *testing.T) {
	e := NewEvent("users.created", "account created", `{"id":5}`, "192.168.1.7", 3, 1)

	assert.Equal(t, "users.created", e.EventAction)
	assert.Equal(t, "account created", e.Description)
	assert.Equal(t, `{"id":5}`, e.Payload)
	assert.Equal(t, "192.168.1.7", e.IPAddress)
	assert.Equal(t, 3, e.UserID)
	assert.Equal(t, int16(1), e.Status)
}
