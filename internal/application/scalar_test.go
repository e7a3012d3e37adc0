package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_Unmarshal(t *testing.T) {
	tests := []struct {
		raw     string
		present bool
		text    string
		value   float64
	}{
		{raw: `null`, present: false, text: "", value: 0},
		{raw: `0`, present: false, text: "", value: 0},
		{raw: `""`, present: false, text: "", value: 0},
		{raw: `false`, present: false, text: "", value: 0},
		{raw: `12`, present: true, text: "12", value: 12},
		{raw: `12.50`, present: true, text: "12.5", value: 12.5},
		{raw: `1e3`, present: true, text: "1000", value: 1000},
		{raw: `"0"`, present: true, text: "0", value: 0},
		{raw: `"3,000"`, present: true, text: "3,000", value: 3000},
		{raw: `"約20"`, present: true, text: "約20", value: 0},
		{raw: `true`, present: true, text: "true", value: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var s Scalar
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			assert.Equal(t, tt.present, s.Present())
			assert.Equal(t, tt.text, s.String())
			assert.Equal(t, tt.value, s.Float())
		})
	}
}

func TestScalar_RejectsComposite(t *testing.T) {
	var s Scalar
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}

func TestScalar_Or(t *testing.T) {
	assert.Equal(t, "___", Scalar{}.Or("___"))
	assert.Equal(t, "___", Number(0).Or("___"))
	assert.Equal(t, "7", Number(7).Or("___"))
	assert.Equal(t, "七", Text("七").Or("___"))
}

func TestScalar_Marshal(t *testing.T) {
	raw, err := json.Marshal(struct {
		A Scalar `json:"a"`
		B Scalar `json:"b"`
		C Scalar `json:"c"`
	}{A: Number(1.5), B: Text("x"), C: Scalar{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":"x","c":null}`, string(raw))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "350", FormatNumber(350))
	assert.Equal(t, "1234567", FormatNumber(1234567))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "-20", FormatNumber(-20))
	assert.Equal(t, "100000000000000000000", FormatNumber(1e20))
}

func TestScalar_Raw(t *testing.T) {
	assert.Equal(t, "0", Number(0).Raw())
	assert.Equal(t, "", Number(0).String())
	assert.Equal(t, "15", Number(15).Raw())
	assert.Equal(t, "", Scalar{}.Raw())
	assert.Equal(t, "x", Text("x").Raw())
}
