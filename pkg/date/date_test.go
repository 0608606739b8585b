// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/pkg/date"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := date.New(1999, time.October, 14)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1999-10-14"`, string(raw))

	var parsed date.Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d date.Date
	for _, raw := range []string{`"14-10-1999"`, `"not a date"`, `"1999-13-40"`} {
		assert.Error(t, json.Unmarshal([]byte(raw), &d), raw)
	}
}

func TestDate_Year(t *testing.T) {
	assert.Equal(t, 1895, date.New(1895, time.December, 28).Year())
}
