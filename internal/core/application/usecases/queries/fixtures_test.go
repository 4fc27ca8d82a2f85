package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
)

func partnerActor(t *testing.T, organization string) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(organization, false)
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor("", true)
	require.NoError(t, err)
	return actor
}

func basicOrder(t *testing.T, comment string) *order.Order {
	t.Helper()
	c, err := order.NewCountCategory(3)
	require.NoError(t, err)
	goods := order.Goods{Produce: c, Meat: c, Vito: c, Dry: c}

	o, err := order.NewOrder(
		kernel.NewUUID(), "Community Fridge", false, goods,
		[]order.LineItem{{Item: "Bread", Comment: "day old ok"}},
		comment,
		time.Date(2026, time.March, 12, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func advancedOrder(t *testing.T) *order.Order {
	t.Helper()
	c, err := order.NewItemizedCategory([]order.LineItem{{Item: "Apples"}, {Item: "Carrots"}})
	require.NoError(t, err)
	empty, err := order.NewItemizedCategory([]order.LineItem{})
	require.NoError(t, err)
	goods := order.Goods{Produce: c, Meat: empty, Vito: empty, Dry: empty}

	o, err := order.NewOrder(
		kernel.NewUUID(), "Hope Kitchen", true, goods, nil, "",
		time.Date(2026, time.March, 13, 11, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}
