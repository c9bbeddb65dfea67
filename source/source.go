// Package source loads protobuf file descriptors from the forms a
// developer has at hand: .proto sources, compiled descriptor sets, buf
// modules and descriptors linked into the running binary.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/takumakei/protoenum-json/logging"
	"github.com/takumakei/protoenum-json/registry"
)

// Spec prefixes selecting a loader regardless of the file extension.
const (
	BufPrefix      = "buf:"
	RegistryPrefix = "registry:"
)

// ErrUnknownSource is returned for a spec no loader accepts.
var ErrUnknownSource = errors.New("unknown source")

// Options tune how a spec is loaded.
type Options struct {
	// ImportPaths are searched for .proto files and their imports.
	ImportPaths []string
	// Files restricts a descriptor set or buf image to the named files.
	// Empty means every file of the set.
	Files []string
	// Buf is the buf executable. Empty means "buf".
	Buf string
}

// Load resolves spec and returns the merged namespace of its files.
func Load(ctx context.Context, spec string, opts Options) (*registry.Registry, error) {
	files, err := Files(ctx, spec, opts)
	if err != nil {
		return nil, err
	}
	reg := registry.FromFiles(files...)
	logging.Get(ctx).Debug("Source loaded",
		zap.String("source", spec), zap.Int("files", len(files)), zap.Int("names", reg.Len()))
	return reg, nil
}

// Files resolves spec to file descriptors.
//
// Recognised forms:
//
//	buf:<dir>            image built by `buf build`
//	registry:<path>      file linked into the binary
//	<file>.proto         compiled in process
//	<file>.binpb|.pb|.desc|.protoset|.bin
//	                     serialized FileDescriptorSet
func Files(ctx context.Context, spec string, opts Options) ([]protoreflect.FileDescriptor, error) {
	switch {
	case strings.HasPrefix(spec, BufPrefix):
		return loadBuf(ctx, strings.TrimPrefix(spec, BufPrefix), opts)
	case strings.HasPrefix(spec, RegistryPrefix):
		return loadRegistry(strings.TrimPrefix(spec, RegistryPrefix))
	}
	switch strings.ToLower(filepath.Ext(spec)) {
	case ".proto":
		return compileProto(ctx, spec, opts.ImportPaths)
	case ".binpb", ".pb", ".desc", ".protoset", ".bin":
		return loadSetFile(spec, opts.Files)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, spec)
}
