package warehouse

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue_Numeric(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(123456), Exp: -2, Valid: true}
	assert.Equal(t, 1234.56, normalizeValue(n))
}

func TestNormalizeValue_InvalidNumeric(t *testing.T) {
	assert.Nil(t, normalizeValue(pgtype.Numeric{}))
}

func TestNormalizeValue_Time(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "2025-03-14T09:26:53Z", normalizeValue(ts))
}

func TestNormalizeValue_Passthrough(t *testing.T) {
	assert.Equal(t, int64(7), normalizeValue(int64(7)))
	assert.Equal(t, "west", normalizeValue("west"))
	assert.Nil(t, normalizeValue(nil))
}
