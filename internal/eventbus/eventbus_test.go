package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tunegrip/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSearchStarted, func(e DomainEvent) {
		got <- e
	})

	b.Publish(SearchStartedEvent{Term: "norah jones"})

	select {
	case e := <-got:
		started, ok := e.(SearchStartedEvent)
		require.True(t, ok)
		require.Equal(t, "norah jones", started.Term)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	b := New()
	defer b.Close()

	var cleared []DomainEvent
	done := make(chan struct{}, 1)
	b.Subscribe(EventSearchCleared, func(e DomainEvent) {
		cleared = append(cleared, e)
		done <- struct{}{}
	})

	b.Publish(SearchStartedEvent{Term: "abc"})
	b.Publish(SearchClearedEvent{})

	<-done
	require.Len(t, cleared, 1)
	require.Equal(t, domain.EventSearchCleared, cleared[0].Type())
}

func TestEventsDeliveredInPublishOrder(t *testing.T) {
	b := New()
	defer b.Close()

	var order []string
	done := make(chan struct{})
	b.Subscribe(EventSearchCompleted, func(e DomainEvent) {
		ev := e.(SearchCompletedEvent)
		order = append(order, ev.Term)
		if len(order) == 3 {
			close(done)
		}
	})

	b.Publish(SearchCompletedEvent{Term: "first"})
	b.Publish(SearchCompletedEvent{Term: "second"})
	b.Publish(SearchCompletedEvent{Term: "third"})

	<-done
	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var count int
	done := make(chan struct{}, 2)
	unsubscribe := b.Subscribe(EventHistoryAdded, func(e DomainEvent) {
		count++
		done <- struct{}{}
	})

	b.Publish(HistoryAddedEvent{Entry: domain.HistoryEntry{Title: "one"}})
	<-done

	unsubscribe()
	b.Publish(HistoryAddedEvent{Entry: domain.HistoryEntry{Title: "two"}})

	// Give the dispatcher a moment; nothing further should arrive
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, count)
}

func TestPanickingHandlerDoesNotKillDispatcher(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(e DomainEvent) {
		panic("handler blew up")
	})

	delivered := make(chan struct{})
	b.Subscribe(EventError, func(e DomainEvent) {
		close(delivered)
	})

	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler never ran")
	}
}
