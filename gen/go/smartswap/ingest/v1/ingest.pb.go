// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: smartswap/ingest/v1/ingest.proto

package ingestv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitRequestRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Convert, Fund, Liquidate, AddLiquidity, RemoveLiquidity, AddReserve,
	// SetFee or AcceptOwnership.
	RequestType string `protobuf:"bytes,1,opt,name=request_type,json=requestType,proto3" json:"request_type,omitempty"`
	// JSON payload in the NATS wire format for that request type.
	Payload       []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitRequestRequest) Reset() {
	*x = SubmitRequestRequest{}
	mi := &file_smartswap_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitRequestRequest) ProtoMessage() {}

func (x *SubmitRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitRequestRequest.ProtoReflect.Descriptor instead.
func (*SubmitRequestRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitRequestRequest) GetRequestType() string {
	if x != nil {
		return x.RequestType
	}
	return ""
}

func (x *SubmitRequestRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type SubmitRequestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	RequestId     string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitRequestResponse) Reset() {
	*x = SubmitRequestResponse{}
	mi := &file_smartswap_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitRequestResponse) ProtoMessage() {}

func (x *SubmitRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitRequestResponse.ProtoReflect.Descriptor instead.
func (*SubmitRequestResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitRequestResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *SubmitRequestResponse) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

var File_smartswap_ingest_v1_ingest_proto protoreflect.FileDescriptor

const file_smartswap_ingest_v1_ingest_proto_rawDesc = "" +
	"\n" +
	" smartswap/ingest/v1/ingest.proto\x12\x13smartswap.ingest.v1\x1a\x1cgoogle/api/annotations.proto\"S\n" +
	"\x14SubmitRequestRequest\x12!\n" +
	"\frequest_type\x18\x01 \x01(\tR\vrequestType\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\"R\n" +
	"\x15SubmitRequestResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId2\x90\x01\n" +
	"\rIngestService\x12\x7f\n" +
	"\rSubmitRequest\x12).smartswap.ingest.v1.SubmitRequestRequest\x1a*.smartswap.ingest.v1.SubmitRequestResponse\"\x17\x82\xd3\xe4\x93\x02\x11:\x01*\"\f/v1/requestsB/Z-SmartSwap/gen/go/smartswap/ingest/v1;ingestv1b\x06proto3"

var (
	file_smartswap_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_smartswap_ingest_v1_ingest_proto_rawDescData []byte
)

func file_smartswap_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_smartswap_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_smartswap_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_smartswap_ingest_v1_ingest_proto_rawDesc), len(file_smartswap_ingest_v1_ingest_proto_rawDesc)))
	})
	return file_smartswap_ingest_v1_ingest_proto_rawDescData
}

var file_smartswap_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_smartswap_ingest_v1_ingest_proto_goTypes = []any{
	(*SubmitRequestRequest)(nil),  // 0: smartswap.ingest.v1.SubmitRequestRequest
	(*SubmitRequestResponse)(nil), // 1: smartswap.ingest.v1.SubmitRequestResponse
}
var file_smartswap_ingest_v1_ingest_proto_depIdxs = []int32{
	0, // 0: smartswap.ingest.v1.IngestService.SubmitRequest:input_type -> smartswap.ingest.v1.SubmitRequestRequest
	1, // 1: smartswap.ingest.v1.IngestService.SubmitRequest:output_type -> smartswap.ingest.v1.SubmitRequestResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_smartswap_ingest_v1_ingest_proto_init() }
func file_smartswap_ingest_v1_ingest_proto_init() {
	if File_smartswap_ingest_v1_ingest_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_smartswap_ingest_v1_ingest_proto_rawDesc), len(file_smartswap_ingest_v1_ingest_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_smartswap_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_smartswap_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_smartswap_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_smartswap_ingest_v1_ingest_proto = out.File
	file_smartswap_ingest_v1_ingest_proto_goTypes = nil
	file_smartswap_ingest_v1_ingest_proto_depIdxs = nil
}
