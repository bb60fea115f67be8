package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyWithValue_DecodesEachFormat(t *testing.T) {
	cases := []struct {
		name string
		json string
		want func(t *testing.T, p PropertyWithValue)
	}{
		{
			"text", `{"property_id":"p1","key":"title","format":"text","text":"hello"}`,
			func(t *testing.T, p PropertyWithValue) { assert.Equal(t, "hello", p.Value.Text) },
		},
		{
			"number", `{"property_id":"p1","key":"priority","format":"number","number":3.5}`,
			func(t *testing.T, p PropertyWithValue) { assert.Equal(t, 3.5, p.Value.Number) },
		},
		{
			"checkbox", `{"property_id":"p1","key":"done","format":"checkbox","checkbox":true}`,
			func(t *testing.T, p PropertyWithValue) { assert.True(t, p.Value.Checkbox) },
		},
		{
			"select", `{"property_id":"p1","key":"status","format":"select","select":{"id":"t1","key":"open","name":"Open","color":"red"}}`,
			func(t *testing.T, p PropertyWithValue) {
				require.NotNil(t, p.Value.Select)
				assert.Equal(t, "open", p.Value.Select.Key)
			},
		},
		{
			"multi_select", `{"property_id":"p1","key":"tags","format":"multi_select","multi_select":[{"id":"t1","key":"a"},{"id":"t2","key":"b"}]}`,
			func(t *testing.T, p PropertyWithValue) { assert.Len(t, p.Value.MultiSelect, 2) },
		},
		{
			"email", `{"property_id":"p1","key":"contact","format":"email","email":"a@b.com"}`,
			func(t *testing.T, p PropertyWithValue) { assert.Equal(t, "a@b.com", p.Value.Email) },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p PropertyWithValue
			require.NoError(t, json.Unmarshal([]byte(tc.json), &p))
			tc.want(t, p)
		})
	}
}

func TestPropertyWithValue_DateRoundTrips(t *testing.T) {
	raw := `{"property_id":"p1","key":"due","format":"date","date":"2026-01-15T00:00:00Z"}`
	var p PropertyWithValue
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.True(t, p.Value.Date.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var p2 PropertyWithValue
	require.NoError(t, json.Unmarshal(out, &p2))
	assert.True(t, p.Value.Date.Equal(p2.Value.Date))
}

func TestPropertyWithValue_UnknownFormatPassesThroughRaw(t *testing.T) {
	raw := `{"property_id":"p1","key":"mystery","format":"future_format","whatever":123}`
	var p PropertyWithValue
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, PropertyFormat("future_format"), p.Value.Format)
	require.NotNil(t, p.Value.Raw)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
