package extract_test

import (
	"context"
	"os"

	"github.com/goaux/results"

	"github.com/takumakei/protoenum-json/extract"
	"github.com/takumakei/protoenum-json/jsonfile"
	"github.com/takumakei/protoenum-json/registry"
)

func Example() {
	reg := registry.New(
		registry.Binding{Name: "ProtoOATradeSide", Value: registry.NewEnum("ProtoOATradeSide", []string{"BUY", "SELL"}, []int32{1, 2})},
		registry.Binding{Name: "BUY", Value: registry.Constant{Number: 1, Enum: "ProtoOATradeSide"}},
		registry.Binding{Name: "SELL", Value: registry.Constant{Number: 2, Enum: "ProtoOATradeSide"}},
		registry.Binding{Name: "PROTO_OA_VERSION_REQ", Value: registry.Constant{Number: 2104}},
		registry.Binding{Name: "ProtoOAAsset", Value: registry.Message{FullName: "ProtoOAAsset"}},
	)

	res, err := extract.Extract(context.Background(), reg, extract.DefaultPayloadPrefix, extract.DefaultModelPrefix)
	results.Must(err)
	results.Must(jsonfile.Encode(os.Stdout, res.PayloadTypes))
	results.Must(jsonfile.Encode(os.Stdout, res.ModelEnums))
	// Output:
	// {
	//   "PROTO_OA_VERSION_REQ": 2104
	// }
	// {
	//   "ProtoOATradeSide": {
	//     "BUY": 1,
	//     "SELL": 2
	//   }
	// }
}
