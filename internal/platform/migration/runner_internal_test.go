// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://user:pw@localhost:5432/fyyur", "pgx5://user:pw@localhost:5432/fyyur"},
		{"postgresql://localhost/fyyur?sslmode=disable", "pgx5://localhost/fyyur?sslmode=disable"},
		{"pgx5://localhost/fyyur", "pgx5://localhost/fyyur"},
		{"host=localhost dbname=fyyur", "host=localhost dbname=fyyur"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
		})
	}
}
