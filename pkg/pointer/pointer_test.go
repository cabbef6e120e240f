// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/pkg/pointer"
)

func TestVal(t *testing.T) {
	assert.Equal(t, "", pointer.Val[string](nil))
	assert.Equal(t, 7, pointer.Val(pointer.To(7)))
}

func TestNonBlank(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  *string
	}{
		{"nil", nil, nil},
		{"blank", pointer.To(" \t "), nil},
		{"trimmed", pointer.To("  https://fyyur.app "), pointer.To("https://fyyur.app")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pointer.NonBlank(tt.input))
		})
	}
}
