package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversInPublishOrder(t *testing.T) {
	b := New()

	var mu sync.Mutex
	var got []string
	b.Subscribe(EventLanguageChanged, func(e DomainEvent) {
		mu.Lock()
		got = append(got, e.(LanguageChangedEvent).Language)
		mu.Unlock()
	})

	b.Publish(LanguageChangedEvent{Language: "ar"})
	b.Publish(LanguageChangedEvent{Language: "en"})
	b.Publish(LanguageChangedEvent{Language: "ar"})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ar", "en", "ar"}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	calls := make(chan struct{}, 4)
	unsub := b.Subscribe(EventSheetNotFound, func(DomainEvent) { calls <- struct{}{} })

	b.Publish(SheetNotFoundEvent{Ref: "nope"})
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("handler not called")
	}

	unsub()
	b.Publish(SheetNotFoundEvent{Ref: "nope"})
	select {
	case <-calls:
		t.Fatal("handler called after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_PanickingHandlerDoesNotStopDispatch(t *testing.T) {
	b := New()

	done := make(chan string, 1)
	b.Subscribe(EventSheetOpened, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventSheetOpened, func(e DomainEvent) { done <- e.(SheetOpenedEvent).SheetID })

	b.Publish(SheetOpenedEvent{SheetID: "git"})
	b.Close()

	select {
	case id := <-done:
		assert.Equal(t, "git", id)
	default:
		t.Fatal("second handler not called")
	}
}

func TestBus_OnlyMatchingTypeReceives(t *testing.T) {
	b := New()

	var count int
	var mu sync.Mutex
	b.Subscribe(EventConfigSaved, func(DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	b.Publish(ConfigLoadedEvent{Language: "en"})
	b.Publish(ConfigSavedEvent{Path: "x"})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}
