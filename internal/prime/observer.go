package prime

import "sync"

// ProgressObserver receives progress notifications from a calculation.
type ProgressObserver interface {
	// Update is called with the calculator index and a progress value in
	// [0, 1].
	Update(calcIndex int, progress float64)
}

// ProgressSubject fans progress out to its registered observers.
// It is safe for concurrent use.
type ProgressSubject struct {
	observers []ProgressObserver
	mu        sync.RWMutex
}

// NewProgressSubject returns a subject with no observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{
		observers: make([]ProgressObserver, 0),
	}
}

// Register adds observer. Observers are notified in registration order.
// A nil observer is ignored.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Notify calls Update on every observer, synchronously.
func (s *ProgressSubject) Notify(calcIndex int, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, observer := range s.observers {
		observer.Update(calcIndex, progress)
	}
}

// AsProgressReporter binds calcIndex and returns a reporter for core
// algorithms.
func (s *ProgressSubject) AsProgressReporter(calcIndex int) ProgressReporter {
	return func(progress float64) {
		s.Notify(calcIndex, progress)
	}
}
