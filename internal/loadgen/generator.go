// Package loadgen drives order-creation load against one protocol binding
// and summarizes latency, payload size and success rate. The generated
// orders are the same three shapes for every protocol, so runs are
// comparable across bindings.
package loadgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

// Shape identifies an order profile. The weights mirror the benchmark's
// traffic mix: mostly small carts, some medium, the occasional stress
// order.
type Shape string

const (
	ShapeSingle Shape = "single_item"
	ShapeMulti  Shape = "multiple_items"
	ShapeLarge  Shape = "large_order"
)

const (
	weightSingle = 10
	weightMulti  = 5
	weightLarge  = 2
)

type Product struct {
	ID    string
	Name  string
	Price float64
}

// Catalog builds the synthetic 100-product catalog. Prices are uniform in
// [10, 500) rounded to cents.
func Catalog(r *rand.Rand) []Product {
	products := make([]Product, 100)
	for i := range products {
		price := 10 + r.Float64()*490
		products[i] = Product{
			ID:    fmt.Sprintf("prod_%d", i+1),
			Name:  fmt.Sprintf("Product %d", i+1),
			Price: math.Round(price*100) / 100,
		}
	}
	return products
}

// Generator produces weighted random orders. It is not safe for concurrent
// use; each worker owns one.
type Generator struct {
	r        *rand.Rand
	products []Product
}

func NewGenerator(seed int64) *Generator {
	r := rand.New(rand.NewSource(seed))
	return &Generator{r: r, products: Catalog(r)}
}

// Next picks a shape at the 10:5:2 weights and builds an order of that
// shape.
func (g *Generator) Next() (Shape, wire.CreateOrderRequest) {
	n := g.r.Intn(weightSingle + weightMulti + weightLarge)
	switch {
	case n < weightSingle:
		return ShapeSingle, g.order(1, 5)
	case n < weightSingle+weightMulti:
		return ShapeMulti, g.order(2+g.r.Intn(4), 3)
	default:
		return ShapeLarge, g.order(10+g.r.Intn(11), 3)
	}
}

func (g *Generator) order(numItems, maxQuantity int) wire.CreateOrderRequest {
	items := make([]wire.OrderItem, numItems)
	for i := range items {
		p := g.products[g.r.Intn(len(g.products))]
		items[i] = wire.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    1 + g.r.Intn(maxQuantity),
			UnitPrice:   p.Price,
		}
	}
	return wire.CreateOrderRequest{
		CustomerID:      fmt.Sprintf("cust_%d", 1000+g.r.Intn(9000)),
		Items:           items,
		ShippingAddress: fmt.Sprintf("%d Main St, City, Country", 100+g.r.Intn(900)),
	}
}
