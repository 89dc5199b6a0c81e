package signal

import (
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	s := New(1)
	if s.Get() != 1 {
		t.Fatalf("expected 1, got %d", s.Get())
	}
	s.Set(2)
	if s.Get() != 2 {
		t.Fatalf("expected 2, got %d", s.Get())
	}
}

func TestSubscribeOrder(t *testing.T) {
	s := New("")
	var got []string
	s.Subscribe(func(v string) { got = append(got, "a:"+v) })
	s.Subscribe(func(v string) { got = append(got, "b:"+v) })

	s.Set("x")
	if len(got) != 2 || got[0] != "a:x" || got[1] != "b:x" {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New(0)
	calls := 0
	cancel := s.Subscribe(func(int) { calls++ })
	s.Set(1)
	cancel()
	cancel() // second call is a no-op
	s.Set(2)
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestUpdate(t *testing.T) {
	s := New(10)
	var seen int
	s.Subscribe(func(v int) { seen = v })
	got := s.Update(func(v int) int { return v + 5 })
	if got != 15 || s.Get() != 15 || seen != 15 {
		t.Fatalf("update: got=%d state=%d seen=%d", got, s.Get(), seen)
	}
}

func TestObserverMayReadState(t *testing.T) {
	s := New(0)
	var read int
	s.Subscribe(func(int) { read = s.Get() })
	s.Set(7)
	if read != 7 {
		t.Fatalf("observer read %d, want 7", read)
	}
}

func TestConcurrentSet(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()
	if s.Get() != 50 {
		t.Fatalf("expected 50, got %d", s.Get())
	}
}

func TestObserverWriteDeliveredInOrder(t *testing.T) {
	s := New(0)
	s.Subscribe(func(v int) {
		if v == 1 {
			s.Set(2)
		}
	})
	var seen []int
	s.Subscribe(func(v int) { seen = append(seen, v) })

	s.Set(1)
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("second observer saw %v, want [1 2]", seen)
	}
	if s.Get() != 2 {
		t.Fatalf("state = %d, want 2", s.Get())
	}
}

func TestConcurrentSetLastNotificationIsLatest(t *testing.T) {
	for round := 0; round < 20; round++ {
		s := New(0)
		var (
			mu   sync.Mutex
			last int
		)
		s.Subscribe(func(v int) {
			mu.Lock()
			last = v
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for i := 1; i <= 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Set(i)
			}()
		}
		wg.Wait()

		mu.Lock()
		got := last
		mu.Unlock()
		if want := s.Get(); got != want {
			t.Fatalf("round %d: last notification %d, state %d", round, got, want)
		}
	}
}
