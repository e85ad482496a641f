package nano

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"quoted", `"10000"`, "10000"},
		{"bare", `10000`, "10000"},
		{"zero", `"0"`, "0"},
		{"max 128-bit", `"340282366920938463463374607431768211455"`, "340282366920938463463374607431768211455"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Raw
			require.NoError(t, json.Unmarshal([]byte(tc.in), &r))
			require.Equal(t, tc.want, r.Text(10))
		})
	}

	var r Raw
	require.Error(t, json.Unmarshal([]byte(`"not a number"`), &r))
}

func TestRawMarshal(t *testing.T) {
	r := MustParseRaw("340282366920938463463374607431768211455")
	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.Equal(t, `"340282366920938463463374607431768211455"`, string(data))
}

func TestRawEqual(t *testing.T) {
	require.True(t, NewRaw(10000).Equal(MustParseRaw("10000")))
	require.False(t, NewRaw(10000).Equal(NewRaw(10001)))
}

func TestUintString(t *testing.T) {
	var u UintString
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &u))
	require.Equal(t, UintString(42), u)

	require.NoError(t, json.Unmarshal([]byte(`42`), &u))
	require.Equal(t, UintString(42), u)

	require.Error(t, json.Unmarshal([]byte(`"-1"`), &u))

	data, err := json.Marshal(UintString(42))
	require.NoError(t, err)
	require.Equal(t, `"42"`, string(data))
}

func TestFloatString(t *testing.T) {
	var f FloatString
	require.NoError(t, json.Unmarshal([]byte(`"1.5"`), &f))
	require.Equal(t, FloatString(1.5), f)

	require.NoError(t, json.Unmarshal([]byte(`1.5`), &f))
	require.Equal(t, FloatString(1.5), f)
}

func TestBoolString(t *testing.T) {
	var b BoolString
	require.NoError(t, json.Unmarshal([]byte(`"true"`), &b))
	require.True(t, bool(b))

	require.NoError(t, json.Unmarshal([]byte(`false`), &b))
	require.False(t, bool(b))

	require.Error(t, json.Unmarshal([]byte(`"maybe"`), &b))
}
