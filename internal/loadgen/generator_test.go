package loadgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	products := Catalog(rand.New(rand.NewSource(1)))
	require.Len(t, products, 100)

	assert.Equal(t, "prod_1", products[0].ID)
	assert.Equal(t, "prod_100", products[99].ID)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.Less(t, p.Price, 500.0)
		// Prices are rounded to cents.
		assert.InDelta(t, p.Price, float64(int(p.Price*100+0.5))/100, 1e-9)
	}
}

func TestNext_ShapesHaveExpectedItemCounts(t *testing.T) {
	gen := NewGenerator(42)
	for i := 0; i < 1000; i++ {
		shape, order := gen.Next()
		switch shape {
		case ShapeSingle:
			assert.Len(t, order.Items, 1)
		case ShapeMulti:
			assert.GreaterOrEqual(t, len(order.Items), 2)
			assert.LessOrEqual(t, len(order.Items), 5)
		case ShapeLarge:
			assert.GreaterOrEqual(t, len(order.Items), 10)
			assert.LessOrEqual(t, len(order.Items), 20)
		default:
			t.Fatalf("unexpected shape %q", shape)
		}
		assert.NotEmpty(t, order.CustomerID)
		assert.NotEmpty(t, order.ShippingAddress)
		for _, item := range order.Items {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.Greater(t, item.UnitPrice, 0.0)
		}
	}
}

func TestNext_WeightsRoughly10_5_2(t *testing.T) {
	gen := NewGenerator(7)
	counts := map[Shape]int{}
	const n = 17000
	for i := 0; i < n; i++ {
		shape, _ := gen.Next()
		counts[shape]++
	}
	// Expected fractions 10/17, 5/17, 2/17 with generous slack.
	assert.InDelta(t, float64(n)*10/17, float64(counts[ShapeSingle]), float64(n)*0.02)
	assert.InDelta(t, float64(n)*5/17, float64(counts[ShapeMulti]), float64(n)*0.02)
	assert.InDelta(t, float64(n)*2/17, float64(counts[ShapeLarge]), float64(n)*0.02)
}

func TestNext_DeterministicForSeed(t *testing.T) {
	a, b := NewGenerator(99), NewGenerator(99)
	for i := 0; i < 50; i++ {
		shapeA, orderA := a.Next()
		shapeB, orderB := b.Next()
		assert.Equal(t, shapeA, shapeB)
		assert.Equal(t, orderA, orderB)
	}
}
