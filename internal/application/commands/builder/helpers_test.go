package builder_test

import "github.com/dhank77/undangan.love/internal/infra/config"

func pagination() config.PaginationConfig {
	return config.PaginationConfig{DefaultPerPage: 12, MaxPerPage: 100}
}
