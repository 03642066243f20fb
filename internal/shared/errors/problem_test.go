package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInsufficientStockProblem(t *testing.T) {
	problem := NewInsufficientStockProblem("p1", "Monstera Deliciosa", 2, 5)

	assert.Equal(t, TypeInsufficientStock, problem.Type)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Contains(t, problem.Detail, "Monstera Deliciosa")
	assert.Equal(t, "p1", problem.Extensions["productId"])
	assert.Equal(t, 2, problem.Extensions["available"])
	assert.Equal(t, 5, problem.Extensions["requested"])
}

func TestNewNotFoundProblem(t *testing.T) {
	problem := NewNotFoundProblem("order", "ORD-1")

	assert.Equal(t, TypeNotFound, problem.Type)
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, "order", problem.Extensions["resourceType"])
}
