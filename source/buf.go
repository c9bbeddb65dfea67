package source

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/takumakei/protoenum-json/execpipe"
	"github.com/takumakei/protoenum-json/logging"
)

// loadBuf builds the module at dir with buf and decodes the image it
// writes to stdout. Buf images are wire compatible with FileDescriptorSet.
func loadBuf(ctx context.Context, dir string, opts Options) ([]protoreflect.FileDescriptor, error) {
	buf := opts.Buf
	if buf == "" {
		buf = "buf"
	}
	if err := execpipe.CheckPath(buf); err != nil {
		return nil, fmt.Errorf("%s was not found, consider compiling the .proto file directly: %w", buf, err)
	}
	if dir == "" {
		dir = "."
	}
	args := []string{"build", dir, "--exclude-source-info", "-o", "-"}
	logging.Get(ctx).Debug("Running buf", zap.String("exec", buf), zap.Strings("args", args))
	data, err := execpipe.Output(ctx, buf, args...)
	if err != nil {
		return nil, err
	}
	return DecodeSet(data, opts.Files)
}
