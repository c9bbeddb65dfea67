package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/linker"
	"github.com/samber/lo"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// compileProto compiles a single .proto file. Without import paths the
// directory of path is used, so sibling imports resolve.
func compileProto(ctx context.Context, path string, importPaths []string) ([]protoreflect.FileDescriptor, error) {
	var name string
	if len(importPaths) == 0 {
		importPaths = []string{filepath.Dir(path)}
		name = filepath.Base(path)
	} else {
		name = relativeTo(importPaths, path)
	}
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: importPaths,
		}),
	}
	files, err := compiler.Compile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return lo.Map(files, func(f linker.File, _ int) protoreflect.FileDescriptor {
		return f
	}), nil
}

// relativeTo returns path relative to the first import path containing it,
// or path unchanged.
func relativeTo(importPaths []string, path string) string {
	for _, dir := range importPaths {
		rel, err := filepath.Rel(dir, path)
		if err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return path
}
