package prime

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and caches Calculator instances by name.
type CalculatorFactory interface {
	// Create builds a fresh Calculator for name.
	Create(name string) (Calculator, error)

	// Get returns the cached Calculator for name, creating it on first use.
	Get(name string) (Calculator, error)

	// List returns the registered names, sorted.
	List() []string

	// Register adds or replaces a calculator type.
	Register(name string, creator func() coreCalculator) error

	// GetAll returns every registered calculator.
	GetAll() map[string]Calculator
}

// DefaultFactory is the thread-safe CalculatorFactory used by the
// application.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with the built-in algorithms:
//   - "sieve": AdaptiveSieve
//   - "trial": TrialDivision
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}

	_ = f.Register("sieve", func() coreCalculator { return &AdaptiveSieve{} })
	_ = f.Register("trial", func() coreCalculator { return &TrialDivision{} })

	return f
}

// Register stores creator under name, dropping any cached instance.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) error {
	if creator == nil {
		return fmt.Errorf("nil creator for calculator: %s", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.calculators, name)
	return nil
}

// Create always builds a new, uncached Calculator.
func (f *DefaultFactory) Create(name string) (Calculator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, &UnknownCalculatorError{Name: name}
	}
	return NewCalculator(creator()), nil
}

// Get returns a cached Calculator, creating it on first use.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, &UnknownCalculatorError{Name: name}
	}

	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List returns the registered names in alphabetical order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll initializes any missing calculators and returns a copy of the map.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.calculators[name]; !exists {
			f.calculators[name] = NewCalculator(creator())
		}
	}

	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// UnknownCalculatorError is returned when a calculator name is not
// registered.
type UnknownCalculatorError struct {
	Name string
}

func (e *UnknownCalculatorError) Error() string {
	return "unknown calculator: " + e.Name
}
