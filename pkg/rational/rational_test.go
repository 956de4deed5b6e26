package rational

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/proverr"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestArithmetic(t *testing.T) {
	half, err := New(1, 2)
	assert.Equal(t, nil, err)

	third, err := New(1, 3)
	assert.Equal(t, nil, err)

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())

	quo, err := half.Div(third)
	assert.Equal(t, nil, err)
	assert.Equal(t, "3/2", quo.String())
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := New(1, 0)

	if _, ok := err.(*proverr.DivisionByZeroError); !ok {
		t.Fatalf("expected DivisionByZeroError, got %v", err)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := FromInt(1).Div(Zero())

	if _, ok := err.(*proverr.DivisionByZeroError); !ok {
		t.Fatalf("expected DivisionByZeroError, got %v", err)
	}
}

func TestFromString(t *testing.T) {
	big := FromString("123456789012345678901234567890")
	assert.Equal(t, "123456789012345678901234567890", big.String())
}

func TestCmpAndSign(t *testing.T) {
	assert.Equal(t, true, FromInt(1).Less(FromInt(2)))
	assert.Equal(t, true, FromInt(2).Greater(FromInt(1)))
	assert.Equal(t, true, FromInt(3).Equal(FromInt(3)))
	assert.Equal(t, -1, FromInt(-5).Sign())
	assert.Equal(t, 0, Zero().Sign())
	assert.Equal(t, true, Zero().IsZero())
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "-3", FromInt(-3).String())

	half, _ := New(1, 2)
	assert.Equal(t, "1/2", half.String())
}
