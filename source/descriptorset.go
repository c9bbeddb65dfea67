package source

import (
	"fmt"
	"os"

	"github.com/goaux/stacktrace/v2"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

func loadSetFile(path string, only []string) ([]protoreflect.FileDescriptor, error) {
	data, err := stacktrace.Trace2(os.ReadFile(path))
	if err != nil {
		return nil, err
	}
	files, err := DecodeSet(data, only)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return files, nil
}

// DecodeSet parses a serialized FileDescriptorSet and returns the files
// named in only, in that order, or every file of the set when only is empty.
func DecodeSet(data []byte, only []string) ([]protoreflect.FileDescriptor, error) {
	set := new(descriptorpb.FileDescriptorSet)
	if err := proto.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("decode descriptor set: %w", err)
	}
	files, err := protodesc.NewFiles(set)
	if err != nil {
		return nil, fmt.Errorf("link descriptor set: %w", err)
	}
	if len(only) == 0 {
		only = lo.Map(set.GetFile(), func(f *descriptorpb.FileDescriptorProto, _ int) string {
			return f.GetName()
		})
	}
	out := make([]protoreflect.FileDescriptor, 0, len(only))
	for _, name := range lo.Uniq(only) {
		fd, err := files.FindFileByPath(name)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", name, err)
		}
		out = append(out, fd)
	}
	return out, nil
}
