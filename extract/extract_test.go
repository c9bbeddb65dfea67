package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/takumakei/protoenum-json/extract"
	"github.com/takumakei/protoenum-json/internal/fixture"
	"github.com/takumakei/protoenum-json/logging"
	"github.com/takumakei/protoenum-json/registry"
)

func TestFilter(t *testing.T) {
	names := []string{"PROTO_OA_A", "ProtoOAB", "PROTO_OA_C", "OTHER"}

	require.Equal(t, []string{"PROTO_OA_A", "PROTO_OA_C"}, extract.Filter(names, "PROTO_OA_"))
	require.Equal(t, []string{"ProtoOAB"}, extract.Filter(names, "ProtoOA"))

	got := extract.Filter(nil, "PROTO_OA_")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestPayloadTypes(t *testing.T) {
	reg := registry.FromFile(fixture.ModelFile())

	got, err := extract.PayloadTypes(context.Background(), reg, extract.DefaultPayloadPrefix)
	require.NoError(t, err)
	require.Equal(t, []string{
		"PROTO_OA_ACCOUNT_AUTH_REQ",
		"PROTO_OA_ACCOUNT_AUTH_RES",
		"PROTO_OA_APPLICATION_AUTH_REQ",
		"PROTO_OA_APPLICATION_AUTH_RES",
		"PROTO_OA_VERSION_REQ",
		"PROTO_OA_VERSION_RES",
	}, got.Keys())
	want := map[string]int32{
		"PROTO_OA_ACCOUNT_AUTH_REQ":     2102,
		"PROTO_OA_ACCOUNT_AUTH_RES":     2103,
		"PROTO_OA_APPLICATION_AUTH_REQ": 2100,
		"PROTO_OA_APPLICATION_AUTH_RES": 2101,
		"PROTO_OA_VERSION_REQ":          2104,
		"PROTO_OA_VERSION_RES":          2105,
	}
	for k, v := range got.All() {
		require.Equal(t, want[k], v, k)
	}
}

func TestPayloadTypesNotConstant(t *testing.T) {
	reg := registry.New(registry.Binding{Name: "PROTO_OA_X", Value: registry.Message{FullName: "PROTO_OA_X"}})

	_, err := extract.PayloadTypes(context.Background(), reg, extract.DefaultPayloadPrefix)
	require.ErrorIs(t, err, extract.ErrNotConstant)
}

func TestModelEnums(t *testing.T) {
	reg := registry.FromFile(fixture.ModelFile())

	got := extract.ModelEnums(context.Background(), reg, extract.DefaultModelPrefix)
	require.Equal(t, []string{"ProtoOADayOfWeek", "ProtoOAPayloadType", "ProtoOATradeSide"}, got.Keys())

	side, ok := got.Get("ProtoOATradeSide")
	require.True(t, ok)
	require.Equal(t, []string{"BUY", "SELL"}, side.Keys())
	sell, _ := side.Get("SELL")
	require.EqualValues(t, 2, sell)

	payload, _ := got.Get("ProtoOAPayloadType")
	require.Equal(t, "PROTO_OA_APPLICATION_AUTH_REQ", payload.Keys()[0])

	_, ok = got.Get("ProtoOAAsset")
	require.False(t, ok)
}

func TestZeroMatches(t *testing.T) {
	reg := registry.FromFile(fixture.ModelFile())

	got, err := extract.Extract(context.Background(), reg, "NOPE_", "Nope")
	require.NoError(t, err)
	require.Zero(t, got.PayloadTypes.Len())
	require.Zero(t, got.ModelEnums.Len())
}

func TestModelEnumsEmptyPrefix(t *testing.T) {
	reg := registry.FromFile(fixture.ModelFile())

	got := extract.ModelEnums(context.Background(), reg, "")
	require.Equal(t, []string{"ProtoOADayOfWeek", "ProtoOAPayloadType", "ProtoOATradeSide"}, got.Keys())
}

func TestZipTruncates(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logging.WithLogger(context.Background(), zap.New(core))

	got := extract.Zip(ctx, []string{"A", "B", "C"}, []int32{1, 2})
	require.Equal(t, []string{"A", "B"}, got.Keys())
	require.Equal(t, 1, logs.FilterMessageSnippet("differ in length").Len())

	got = extract.Zip(ctx, []string{"A"}, []int32{1, 2})
	require.Equal(t, []string{"A"}, got.Keys())
	require.Equal(t, 2, logs.Len())
}

func TestZipEqualLengthsQuiet(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logging.WithLogger(context.Background(), zap.New(core))

	got := extract.Zip(ctx, []string{"A", "B"}, []int32{1, 2})
	require.Equal(t, 2, got.Len())
	require.Zero(t, logs.Len())
}

func TestModelEnumsMismatchedEnum(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logging.WithLogger(context.Background(), zap.New(core))
	reg := registry.New(registry.Binding{
		Name:  "ProtoOAOdd",
		Value: registry.NewEnum("ProtoOAOdd", []string{"A", "B"}, []int32{1}),
	})

	got := extract.ModelEnums(ctx, reg, "ProtoOA")
	odd, ok := got.Get("ProtoOAOdd")
	require.True(t, ok)
	require.Equal(t, []string{"A"}, odd.Keys())

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "ProtoOAOdd", entries[0].ContextMap()["name"])
}
