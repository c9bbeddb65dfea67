// Package fixture builds small descriptors shaped like the cTrader Open API
// model messages for tests.
package fixture

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FileName is the path of the file returned by [ModelFile].
const FileName = "OpenApiModelMessages.proto"

// ModelProto returns the descriptor proto of a trimmed down
// OpenApiModelMessages.proto. It declares the same enums as
// testdata/openapi/OpenApiModelMessages.proto in the source package.
func ModelProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:   proto.String(FileName),
		Syntax: proto.String("proto2"),
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enum("ProtoOAPayloadType",
				"PROTO_OA_APPLICATION_AUTH_REQ", 2100,
				"PROTO_OA_APPLICATION_AUTH_RES", 2101,
				"PROTO_OA_ACCOUNT_AUTH_REQ", 2102,
				"PROTO_OA_ACCOUNT_AUTH_RES", 2103,
				"PROTO_OA_VERSION_REQ", 2104,
				"PROTO_OA_VERSION_RES", 2105,
			),
			enum("ProtoOADayOfWeek",
				"NONE", 0,
				"MONDAY", 1,
				"TUESDAY", 2,
				"WEDNESDAY", 3,
				"THURSDAY", 4,
				"FRIDAY", 5,
				"SATURDAY", 6,
				"SUNDAY", 7,
			),
			enum("ProtoOATradeSide",
				"BUY", 1,
				"SELL", 2,
			),
		},
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("ProtoOAAsset"),
			Field: []*descriptorpb.FieldDescriptorProto{
				field("assetId", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64, descriptorpb.FieldDescriptorProto_LABEL_REQUIRED),
				field("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING, descriptorpb.FieldDescriptorProto_LABEL_REQUIRED),
				field("displayName", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING, descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
			},
			EnumType: []*descriptorpb.EnumDescriptorProto{
				enum("ProtoOAAssetKind",
					"PROTO_OA_ASSET_KIND_CURRENCY", 1,
				),
			},
		}},
	}
}

// ModelFile returns ModelProto as a linked file descriptor.
func ModelFile() protoreflect.FileDescriptor {
	fd, err := protodesc.NewFile(ModelProto(), new(protoregistry.Files))
	if err != nil {
		panic(err)
	}
	return fd
}

// enum builds an enum from alternating name and number arguments.
func enum(name string, pairs ...any) *descriptorpb.EnumDescriptorProto {
	ed := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for i := 0; i+1 < len(pairs); i += 2 {
		ed.Value = append(ed.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(pairs[i].(string)),
			Number: proto.Int32(int32(pairs[i+1].(int))),
		})
	}
	return ed
}

func field(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type, label descriptorpb.FieldDescriptorProto_Label) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Type:     typ.Enum(),
		Label:    label.Enum(),
	}
}
