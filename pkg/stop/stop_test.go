package stop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stopperFunc func() Result

func (f stopperFunc) Stop() Result { return f() }

func TestGroupCollectsErrors(t *testing.T) {
	g := NewGroup()
	g.Add(stopperFunc(func() Result { return AlreadyStopped }))
	g.AddFunc(func() Result {
		c := make(Channel)
		go c.Done(errors.New("first"), nil)
		return c.Result()
	})
	g.AddFunc(func() Result {
		c := make(Channel)
		go c.Done(errors.New("second"))
		return c.Result()
	})
	g.Add(nil)

	errs := g.Stop().Wait()
	require.Len(t, errs, 2)
	require.EqualError(t, errs[0], "first")
	require.EqualError(t, errs[1], "second")
}

func TestEmptyGroup(t *testing.T) {
	require.Empty(t, NewGroup().Stop().Wait())
}

func TestChannelResult(t *testing.T) {
	c := make(Channel)
	var r Result = c.Result()
	go c.Done(nil, errors.New("boom"))
	errs := r.Wait()
	require.Len(t, errs, 1)
	require.EqualError(t, errs[0], "boom")

	require.Empty(t, AlreadyStopped.Wait())
}
