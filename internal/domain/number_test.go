package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNumber_Float(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   float64
		wantOK bool
		isSet  bool
	}{
		{"float", 12.5, 12.5, true, true},
		{"int", 7, 7, true, true},
		{"numeric string", "3.25", 3.25, true, true},
		{"padded string", "  42 ", 42, true, true},
		{"negative string", "-1", -1, true, true},
		{"empty string", "", 0, false, false},
		{"blank string", "   ", 0, false, false},
		{"nil", nil, 0, false, false},
		{"text", "abc", 0, false, true},
		{"bool", true, 0, false, true},
		{"NaN", math.NaN(), 0, false, true},
		{"infinity", math.Inf(1), 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Num(tt.input)
			got, ok := n.Float()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.isSet, n.IsSet())
		})
	}
}

func TestNumber_Defaults(t *testing.T) {
	assert.Equal(t, 1.0, Number{}.OrDefault(1))
	assert.Equal(t, 0.0, Num("x").OrDefault(1))
	assert.Equal(t, 4.0, Num(4).OrDefault(1))
	assert.Equal(t, 0.0, Num("x").OrZero())
}

func TestNumber_JSON(t *testing.T) {
	var v struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
		E Number `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 1.5, "b": "2", "c": null, "d": "abc"}`), &v)
	require.NoError(t, err)

	assert.Equal(t, 1.5, v.A.OrZero())
	assert.Equal(t, 2.0, v.B.OrZero())
	assert.False(t, v.C.IsSet())
	assert.True(t, v.D.IsSet())
	_, ok := v.D.Float()
	assert.False(t, ok)
	assert.False(t, v.E.IsSet())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1.5, "b": 2, "c": null, "d": "abc", "e": null}`, string(out))
}

func TestNumber_YAML(t *testing.T) {
	var v struct {
		Weight Number `yaml:"weight"`
		Volume Number `yaml:"volume"`
	}
	err := yaml.Unmarshal([]byte("weight: 12\nvolume: \"0.5\"\n"), &v)
	require.NoError(t, err)

	assert.Equal(t, 12.0, v.Weight.OrZero())
	assert.Equal(t, 0.5, v.Volume.OrZero())
}
