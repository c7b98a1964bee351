package database_test

import (
	"context"
	"testing"

	"github.com/SscSPs/networth_backend/pkg/database"
	"github.com/stretchr/testify/assert"
)

func TestNewPgxPool_RejectsEmptyURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "", false)
	assert.Nil(t, pool)
	assert.EqualError(t, err, "database URL cannot be empty")
}

func TestNewPgxPool_RejectsMalformedURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "postgres://%zz", false)
	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "failed to parse database config")
}
