package source

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	// Well-known types, available as registry:google/protobuf/<name>.proto.
	_ "google.golang.org/protobuf/types/descriptorpb"
	_ "google.golang.org/protobuf/types/known/structpb"
	_ "google.golang.org/protobuf/types/known/typepb"
)

// loadRegistry looks path up among the files linked into the binary.
// A program embedding generated code for its own protocol makes that code
// available simply by importing the generated package.
func loadRegistry(path string) ([]protoreflect.FileDescriptor, error) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: registry:%s: %w", ErrUnknownSource, path, err)
	}
	return []protoreflect.FileDescriptor{fd}, nil
}
