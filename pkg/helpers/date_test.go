package helpers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	type payload struct {
		D *Date `json:"d"`
	}

	t.Run("dd/MM/yyyy", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"d":"20/06/1990"}`), &p))
		require.NotNil(t, p.D)
		assert.Equal(t, NewDate(1990, time.June, 20), *p.D)
	})

	t.Run("null leaves pointer nil", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"d":null}`), &p))
		assert.Nil(t, p.D)
	})

	t.Run("empty string is the zero date", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"d":""}`), &p))
		require.NotNil(t, p.D)
		assert.True(t, p.D.IsZero())
	})

	t.Run("other layouts are rejected", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"d":"1990-06-20"}`), &p)
		var dfe *DateFormatError
		require.ErrorAs(t, err, &dfe)
		assert.Equal(t, "1990-06-20", dfe.Value)
	})

	t.Run("marshal round trip", func(t *testing.T) {
		d := NewDate(1990, time.June, 20)
		b, err := json.Marshal(payload{D: &d})
		require.NoError(t, err)
		assert.JSONEq(t, `{"d":"20/06/1990"}`, string(b))
	})
}

func TestDateIsPast(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, sp)

	assert.True(t, NewDate(1990, time.June, 20).IsPast(now, sp))
	assert.True(t, NewDate(2026, time.October, 17).IsPast(now, sp))
	assert.False(t, NewDate(2026, time.October, 18).IsPast(now, sp))
	assert.False(t, NewDate(2027, time.January, 1).IsPast(now, sp))

	// 01:00 UTC on the 18th is still the 17th in São Paulo
	early := time.Date(2026, time.October, 18, 1, 0, 0, 0, time.UTC)
	assert.False(t, NewDate(2026, time.October, 17).IsPast(early, sp))
	assert.True(t, NewDate(2026, time.October, 17).IsPast(early, time.UTC))
}
