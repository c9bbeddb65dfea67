// Package extract selects payload type constants and model enums from a
// namespace and turns them into ordered JSON mappings.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/takumakei/protoenum-json/jsonmap"
	"github.com/takumakei/protoenum-json/logging"
	"github.com/takumakei/protoenum-json/registry"
)

// Defaults for the cTrader Open API model messages.
const (
	DefaultPayloadPrefix = "PROTO_OA_"
	DefaultModelPrefix   = "ProtoOA"
)

// ErrNotConstant is returned when a payload type name is bound to
// something other than an integer constant.
var ErrNotConstant = errors.New("not an integer constant")

// Namespace is a set of named values. [registry.Registry] implements it.
type Namespace interface {
	Names() []string
	Lookup(name string) (registry.Value, bool)
}

// Result holds both mappings produced from a namespace.
type Result struct {
	PayloadTypes *jsonmap.Map[int32]
	ModelEnums   *jsonmap.Map[*jsonmap.Map[int32]]
}

// Extract runs both passes over ns.
func Extract(ctx context.Context, ns Namespace, payloadPrefix, modelPrefix string) (*Result, error) {
	payload, err := PayloadTypes(ctx, ns, payloadPrefix)
	if err != nil {
		return nil, err
	}
	return &Result{
		PayloadTypes: payload,
		ModelEnums:   ModelEnums(ctx, ns, modelPrefix),
	}, nil
}

// Filter returns the names starting with prefix, order preserved.
// The result is never nil.
func Filter(names []string, prefix string) []string {
	return lo.Filter(names, func(name string, _ int) bool {
		return strings.HasPrefix(name, prefix)
	})
}

// PayloadTypes maps every name of ns starting with prefix to its number.
func PayloadTypes(ctx context.Context, ns Namespace, prefix string) (*jsonmap.Map[int32], error) {
	log := logging.Get(ctx)
	out := jsonmap.New[int32]()
	for _, name := range Filter(ns.Names(), prefix) {
		v, ok := ns.Lookup(name)
		if !ok {
			continue
		}
		c, ok := v.(registry.Constant)
		if !ok {
			return nil, fmt.Errorf("%s is a %v: %w", name, v.Kind(), ErrNotConstant)
		}
		out.Set(name, c.Number)
	}
	log.Debug("Payload types extracted", zap.String("prefix", prefix), zap.Int("count", out.Len()))
	return out, nil
}

// ModelEnums maps every name of ns starting with prefix whose value
// enumerates keys to a mapping of its keys to its values.
// Names bound to anything else are left out.
func ModelEnums(ctx context.Context, ns Namespace, prefix string) *jsonmap.Map[*jsonmap.Map[int32]] {
	log := logging.Get(ctx)
	out := jsonmap.New[*jsonmap.Map[int32]]()
	for _, name := range Filter(ns.Names(), prefix) {
		v, ok := ns.Lookup(name)
		if !ok {
			continue
		}
		kv, ok := v.(registry.KeyValuer)
		if !ok {
			log.Debug("Skipping name without keys", zap.String("name", name), zap.Stringer("kind", v.Kind()))
			continue
		}
		out.Set(name, Zip(logging.WithLogger(ctx, log.With(zap.String("name", name))), kv.Keys(), kv.Values()))
	}
	log.Debug("Model enums extracted", zap.String("prefix", prefix), zap.Int("count", out.Len()))
	return out
}

// Zip pairs keys with values in order and stops at the shorter of the two.
// A length mismatch is logged as a warning.
func Zip[V any](ctx context.Context, keys []string, values []V) *jsonmap.Map[V] {
	n := min(len(keys), len(values))
	if len(keys) != len(values) {
		logging.Get(ctx).Warn("Keys and values differ in length, extra entries dropped",
			zap.Int("keys", len(keys)), zap.Int("values", len(values)))
	}
	out := jsonmap.New[V]()
	for i := range n {
		out.Set(keys[i], values[i])
	}
	return out
}
