package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPagination_Defaults(t *testing.T) {
	p := GetPagination(0, 0)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestGetPagination_CapsLimit(t *testing.T) {
	p := GetPagination(2, 500)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 100, p.Offset())
}

func TestGetPagination_NegativeValues(t *testing.T) {
	p := GetPagination(-3, -1)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(25, Pagination{Page: 2, Limit: 10})

	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 3, meta.Pages)
}

func TestNewPaginationMeta_EmptyResult(t *testing.T) {
	meta := NewPaginationMeta(0, Pagination{Page: 1, Limit: 10})

	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 1, meta.Pages)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)

	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("15/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	h, err := ParseTimeOfDay("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, h.Hour())
	assert.Equal(t, 30, h.Minute())

	h, err = ParseTimeOfDay("09:15:45")
	require.NoError(t, err)
	assert.Equal(t, 9, h.Hour())
	assert.Equal(t, 45, h.Second())
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	_, err := ParseTimeOfDay("2h30")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}
