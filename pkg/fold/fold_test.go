// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kinora/pkg/fold"
)

func TestCasefold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase_passthrough", "wonders", "wonders"},
		{"uppercase", "WONDERS", "wonders"},
		{"mixed_case", "Academy of Wonders", "academy of wonders"},
		{"diacritics", "Léon", "leon"},
		{"diacritics_uppercase", "AMÉLIE", "amelie"},
		{"surrounding_whitespace", "  nolan  ", "nolan"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.Casefold(tt.input))
		})
	}
}
