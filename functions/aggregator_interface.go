package functions

import "fmt"

// AggregatorFunction defines the interface for aggregator functions that support incremental computation.
// Add ignores nil and non-numeric values the same way Execute does.
type AggregatorFunction interface {
	Function
	// New creates a new aggregator instance
	New() AggregatorFunction
	// Add adds a value for incremental computation
	Add(value interface{})
	// Result returns the aggregation result
	Result() interface{}
	// Reset resets the aggregator state
	Reset()
	// Clone clones the aggregator including its current state
	Clone() AggregatorFunction
}

// CreateAggregator creates an aggregator instance from the global registry
func CreateAggregator(name string) (AggregatorFunction, error) {
	return globalRegistry.CreateAggregator(name)
}

// CreateAggregator creates an aggregator instance
func (r *FunctionRegistry) CreateAggregator(name string) (AggregatorFunction, error) {
	fn, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("aggregator function %s not found", name)
	}

	if aggFn, ok := fn.(AggregatorFunction); ok {
		return aggFn.New(), nil
	}

	return nil, fmt.Errorf("function %s is not an aggregator function", name)
}

// IsAggregatorFunction checks if a function name is an aggregator function
func IsAggregatorFunction(name string) bool {
	fn, exists := Get(name)
	if !exists {
		return false
	}
	_, ok := fn.(AggregatorFunction)
	return ok
}
