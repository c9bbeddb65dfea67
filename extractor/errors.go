package extractor

import "errors"

var errNoSource = errors.New("no source given, pass a .proto file, a descriptor set, buf:<dir> or registry:<path>")
