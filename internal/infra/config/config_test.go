package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginationLimit(t *testing.T) {
	p := PaginationConfig{DefaultPerPage: 12, MaxPerPage: 100}
	intPtr := func(i int) *int { return &i }

	require.Equal(t, 12, p.Limit(nil))
	require.Equal(t, 12, p.Limit(intPtr(0)))
	require.Equal(t, 12, p.Limit(intPtr(-3)))
	require.Equal(t, 5, p.Limit(intPtr(5)))
	require.Equal(t, 100, p.Limit(intPtr(100)))
	require.Equal(t, 100, p.Limit(intPtr(1000)))
}

func TestNewPaginationConfigFromEnv(t *testing.T) {
	t.Setenv("PER_PAGE_DEFAULT", "20")
	t.Setenv("PER_PAGE_MAX", "50")

	p := NewPaginationConfig()
	require.Equal(t, 20, p.DefaultPerPage)
	require.Equal(t, 50, p.MaxPerPage)
}
