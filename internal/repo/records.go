package repo

import (
	"github.com/tdhoang/marketgraph/internal/graph"
	"github.com/tdhoang/marketgraph/internal/models"
)

func recString(rec graph.Record, key string) string {
	s, _ := rec[key].(string)
	return s
}

// recFloat tolerates integer prices; the driver returns int64 when a
// property was written without a fractional part.
func recFloat(rec graph.Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func recordToProduct(rec graph.Record) models.Product {
	return models.Product{
		ID:          recString(rec, "id"),
		Name:        recString(rec, "name"),
		Description: recString(rec, "description"),
		Price:       recFloat(rec, "price"),
		Location:    recString(rec, "location"),
	}
}
