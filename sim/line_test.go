package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineKind_ServiceTime(t *testing.T) {
	tests := []struct {
		kind  LineKind
		items int
		want  int64
	}{
		{Cashier, 39, 46},
		{Cashier, 0, 7},
		{Express, 1, 5},
		{Express, 7, 11},
		{SelfServe, 11, 23},
		{SelfServe, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.ServiceTime(tt.items))
		})
	}
}

func TestLineKind_Accepts(t *testing.T) {
	assert.True(t, Express.Accepts(7))
	assert.False(t, Express.Accepts(8))
	assert.False(t, Express.Accepts(50))
	assert.True(t, Cashier.Accepts(100))
	assert.True(t, SelfServe.Accepts(100))
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "cashier", Cashier.String())
	assert.Equal(t, "express", Express.String())
	assert.Equal(t, "self-serve", SelfServe.String())
	assert.Equal(t, "LineKind(9)", LineKind(9).String())
}

func TestCheckoutLine_FIFO(t *testing.T) {
	l := newCheckoutLine(3, Cashier)
	a, b := NewCustomer("a", 1), NewCustomer("b", 2)

	assert.Nil(t, l.Head())
	l.enqueue(a)
	l.enqueue(b)
	assert.Equal(t, 2, l.Len())
	assert.Same(t, a, l.Head())
	assert.Equal(t, "cashier#3[a b]", l.String())

	assert.Same(t, a, l.dequeue())
	assert.Same(t, b, l.Head())
	assert.Same(t, b, l.dequeue())
	assert.Nil(t, l.dequeue())
	assert.Equal(t, 2, l.peakLen)
}
