package jsonmap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takumakei/protoenum-json/jsonmap"
)

func TestSetKeepsPosition(t *testing.T) {
	m := jsonmap.New[int32]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	require.Equal(t, []string{"b", "a"}, m.Keys())
	require.Equal(t, 2, m.Len())
	v, ok := m.Get("b")
	require.True(t, ok)
	require.EqualValues(t, 3, v)
}

func TestZeroValue(t *testing.T) {
	var m jsonmap.Map[string]
	m.Set("k", "v")

	v, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestMarshalOrder(t *testing.T) {
	m := jsonmap.New[int32]()
	m.Set("SUNDAY", 7)
	m.Set("MONDAY", 1)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, `{"SUNDAY":7,"MONDAY":1}`, string(data))
}

func TestMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(jsonmap.New[int32]())
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))
}

func TestMarshalNoEscape(t *testing.T) {
	m := jsonmap.New[string]()
	m.Set("<ä>", "&ü")

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"<ä>":"&ü"}`, string(data))
}

func TestRoundTripNested(t *testing.T) {
	inner := jsonmap.New[int32]()
	inner.Set("SELL", 2)
	inner.Set("BUY", 1)
	outer := jsonmap.New[*jsonmap.Map[int32]]()
	outer.Set("ProtoOATradeSide", inner)
	outer.Set("Empty", jsonmap.New[int32]())

	data, err := json.Marshal(outer)
	require.NoError(t, err)

	got := jsonmap.New[*jsonmap.Map[int32]]()
	require.NoError(t, json.Unmarshal(data, got))
	require.Equal(t, []string{"ProtoOATradeSide", "Empty"}, got.Keys())

	side, ok := got.Get("ProtoOATradeSide")
	require.True(t, ok)
	require.Equal(t, []string{"SELL", "BUY"}, side.Keys())
	sell, _ := side.Get("SELL")
	require.EqualValues(t, 2, sell)

	empty, ok := got.Get("Empty")
	require.True(t, ok)
	require.Zero(t, empty.Len())
}

func TestUnmarshalErrors(t *testing.T) {
	m := jsonmap.New[int32]()
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), m))
	require.Error(t, json.Unmarshal([]byte(`{"a":"x"}`), m))
}

func TestUnmarshalNull(t *testing.T) {
	m := jsonmap.New[int32]()
	require.NoError(t, m.UnmarshalJSON([]byte(`null`)))
	require.Zero(t, m.Len())
}

func TestUnmarshalAppends(t *testing.T) {
	m := jsonmap.New[int32]()
	m.Set("NONE", 0)
	require.NoError(t, json.Unmarshal([]byte(`{"SUNDAY":7,"NONE":9,"MONDAY":1}`), m))

	require.Equal(t, []string{"NONE", "SUNDAY", "MONDAY"}, m.Keys())
	none, _ := m.Get("NONE")
	require.EqualValues(t, 9, none)
}

func TestZeroValueEmpty(t *testing.T) {
	var m jsonmap.Map[int32]
	require.Zero(t, m.Len())
	require.Empty(t, m.Keys())
	_, ok := m.Get("x")
	require.False(t, ok)

	data, err := json.Marshal(&m)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))
}

func TestAllStops(t *testing.T) {
	m := jsonmap.New[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		break
	}
	require.Equal(t, []string{"a"}, seen)
}
