package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/chain"
	"github.com/ib-77/fluent/pkg/fluent/seq"
)

type employee struct {
	name   string
	active bool
	gross  int
}

func deduct(amount int) fluent.Step[int] {
	return func(v int) int { return v - amount }
}

// netSalary applies the standard deductions to one gross salary.
func netSalary(gross int) (int, error) {
	c, err := chain.From(gross)
	if err != nil {
		return 0, err
	}
	return c.
		With(deduct(2400)).
		With(deduct(15000)).
		With(deduct(3000)).
		With(deduct(45000)).
		With(deduct(2000)).
		Calculate()
}

func TestPayrollPipeline(t *testing.T) {
	staff := []employee{
		{name: "ada", active: true, gross: 100000},
		{name: "bob", active: false, gross: 90000},
		{name: "eva", active: true, gross: 120000},
	}

	wrapped, err := seq.From(staff)
	assert.NoError(t, err)

	active := wrapped.Filter(func(e employee) bool { return e.active })
	assert.Equal(t, 2, active.Len())

	nets, err := seq.TryTransform(active, func(e employee) (int, error) {
		return netSalary(e.gross)
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{32600, 52600}, nets.Sequence())

	total := seq.Reduce(nets, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 85200, total)
}

func TestChainAndFoldAgree(t *testing.T) {
	steps := []fluent.Step[int]{
		deduct(2400),
		deduct(15000),
		deduct(3000),
		deduct(45000),
	}

	c, err := chain.From(100000)
	assert.NoError(t, err)
	for _, step := range steps {
		c = c.With(step)
	}

	incremental, err := c.Calculate()
	assert.NoError(t, err)

	folded := chain.Compose(steps...)(100000)
	assert.Equal(t, incremental, folded)
	assert.Equal(t, 34600, folded)
}

func TestInvalidConstructionSurfacesImmediately(t *testing.T) {
	_, err := seq.From[employee](nil)
	assert.ErrorIs(t, err, fluent.ErrInvalidArgument)

	_, err = chain.From[*employee](nil)
	assert.ErrorIs(t, err, fluent.ErrInvalidArgument)
}
