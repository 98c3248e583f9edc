package daryheap

type options struct {
	capacity int
}

// Option configures a heap at construction time.
type Option func(*options)

// WithCapacity sets the initial reserved capacity of the heap's backing
// storage. The heap grows on demand regardless; reserving up front
// avoids reallocation when the eventual size is known.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
