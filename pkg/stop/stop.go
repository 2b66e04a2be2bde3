// Package stop coordinates the shutdown of a set of long-running components.
package stop

import "sync"

// Channel carries the errors of one shutdown. Call Done exactly once.
type Channel chan []error

// Result is the receiving end of a Channel. Call Wait exactly once.
type Result <-chan []error

// Done reports zero or more errors and closes the Channel. Nil errors are
// dropped.
func (ch Channel) Done(errs ...error) {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	if len(nonNil) > 0 {
		ch <- nonNil
	}
	close(ch)
}

// Result returns the receiving end of ch.
func (ch Channel) Result() <-chan []error {
	return ch
}

// Wait blocks until Done is called on the underlying Channel and returns the
// reported errors.
func (r Result) Wait() []error {
	return <-r
}

// AlreadyStopped is a Result for components that have nothing to shut down.
var AlreadyStopped Result

func init() {
	ch := make(Channel)
	close(ch)
	AlreadyStopped = ch.Result()
}

// Stopper is implemented by components that can be shut down cleanly.
type Stopper interface {
	// Stop returns immediately; the shutdown itself happens in the
	// background and completes when the Result is closed.
	Stop() Result
}

// Func adapts a function to a Stopper-like callback.
type Func func() Result

// Group stops a collection of Stoppers together.
type Group struct {
	sync.Mutex
	funcs []Func
}

// NewGroup allocates a new, empty Group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends a Stopper to the Group. Nil Stoppers are ignored.
func (g *Group) Add(s Stopper) {
	if s == nil {
		return
	}
	g.AddFunc(s.Stop)
}

// AddFunc appends a Func to the Group.
func (g *Group) AddFunc(f Func) {
	g.Lock()
	defer g.Unlock()
	g.funcs = append(g.funcs, f)
}

// Stop stops every member concurrently. The Result collects the errors of
// all members.
func (g *Group) Stop() Result {
	g.Lock()
	defer g.Unlock()

	results := make([]Result, 0, len(g.funcs))
	for _, f := range g.funcs {
		r := f()
		if r == nil {
			panic("stop: received a nil Result")
		}
		results = append(results, r)
	}

	done := make(Channel)
	go func() {
		var errs []error
		for _, r := range results {
			errs = append(errs, r.Wait()...)
		}
		done.Done(errs...)
	}()

	return done.Result()
}
