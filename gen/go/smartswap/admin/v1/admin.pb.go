// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: smartswap/admin/v1/admin.proto

package adminv1

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

type AddReserveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Token         string                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	WeightPpm     uint32                 `protobuf:"varint,3,opt,name=weight_ppm,json=weightPpm,proto3" json:"weight_ppm,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddReserveRequest) Reset() {
	*x = AddReserveRequest{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddReserveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddReserveRequest) ProtoMessage() {}

func (x *AddReserveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddReserveRequest.ProtoReflect.Descriptor instead.
func (*AddReserveRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{0}
}

func (x *AddReserveRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *AddReserveRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *AddReserveRequest) GetWeightPpm() uint32 {
	if x != nil {
		return x.WeightPpm
	}
	return 0
}

type AddReserveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddReserveResponse) Reset() {
	*x = AddReserveResponse{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddReserveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddReserveResponse) ProtoMessage() {}

func (x *AddReserveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddReserveResponse.ProtoReflect.Descriptor instead.
func (*AddReserveResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{1}
}

func (x *AddReserveResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type SetConversionFeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	FeePpm        uint32                 `protobuf:"varint,2,opt,name=fee_ppm,json=feePpm,proto3" json:"fee_ppm,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetConversionFeeRequest) Reset() {
	*x = SetConversionFeeRequest{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetConversionFeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetConversionFeeRequest) ProtoMessage() {}

func (x *SetConversionFeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetConversionFeeRequest.ProtoReflect.Descriptor instead.
func (*SetConversionFeeRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{2}
}

func (x *SetConversionFeeRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *SetConversionFeeRequest) GetFeePpm() uint32 {
	if x != nil {
		return x.FeePpm
	}
	return 0
}

type SetConversionFeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetConversionFeeResponse) Reset() {
	*x = SetConversionFeeResponse{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetConversionFeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetConversionFeeResponse) ProtoMessage() {}

func (x *SetConversionFeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetConversionFeeResponse.ProtoReflect.Descriptor instead.
func (*SetConversionFeeResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{3}
}

func (x *SetConversionFeeResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type AcceptTokenOwnershipRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptTokenOwnershipRequest) Reset() {
	*x = AcceptTokenOwnershipRequest{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptTokenOwnershipRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptTokenOwnershipRequest) ProtoMessage() {}

func (x *AcceptTokenOwnershipRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptTokenOwnershipRequest.ProtoReflect.Descriptor instead.
func (*AcceptTokenOwnershipRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{4}
}

func (x *AcceptTokenOwnershipRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

type AcceptTokenOwnershipResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptTokenOwnershipResponse) Reset() {
	*x = AcceptTokenOwnershipResponse{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptTokenOwnershipResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptTokenOwnershipResponse) ProtoMessage() {}

func (x *AcceptTokenOwnershipResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptTokenOwnershipResponse.ProtoReflect.Descriptor instead.
func (*AcceptTokenOwnershipResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{5}
}

func (x *AcceptTokenOwnershipResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type RebuildProjectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RebuildProjectionsRequest) Reset() {
	*x = RebuildProjectionsRequest{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RebuildProjectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsRequest) ProtoMessage() {}

func (x *RebuildProjectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsRequest.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{6}
}

type RebuildProjectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Started       bool                   `protobuf:"varint,1,opt,name=started,proto3" json:"started,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RebuildProjectionsResponse) Reset() {
	*x = RebuildProjectionsResponse{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RebuildProjectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsResponse) ProtoMessage() {}

func (x *RebuildProjectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsResponse.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{7}
}

func (x *RebuildProjectionsResponse) GetStarted() bool {
	if x != nil {
		return x.Started
	}
	return false
}

type GetEventLogInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEventLogInfoRequest) Reset() {
	*x = GetEventLogInfoRequest{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEventLogInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEventLogInfoRequest) ProtoMessage() {}

func (x *GetEventLogInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEventLogInfoRequest.ProtoReflect.Descriptor instead.
func (*GetEventLogInfoRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{8}
}

type GetEventLogInfoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LastSequence  int64                  `protobuf:"varint,1,opt,name=last_sequence,json=lastSequence,proto3" json:"last_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEventLogInfoResponse) Reset() {
	*x = GetEventLogInfoResponse{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEventLogInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEventLogInfoResponse) ProtoMessage() {}

func (x *GetEventLogInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEventLogInfoResponse.ProtoReflect.Descriptor instead.
func (*GetEventLogInfoResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{9}
}

func (x *GetEventLogInfoResponse) GetLastSequence() int64 {
	if x != nil {
		return x.LastSequence
	}
	return 0
}

type VerifyIntegrityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyIntegrityRequest) Reset() {
	*x = VerifyIntegrityRequest{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIntegrityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityRequest) ProtoMessage() {}

func (x *VerifyIntegrityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityRequest.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{10}
}

type VerifyIntegrityResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Passed             bool                   `protobuf:"varint,1,opt,name=passed,proto3" json:"passed,omitempty"`
	FirstBreakSequence int64                  `protobuf:"varint,2,opt,name=first_break_sequence,json=firstBreakSequence,proto3" json:"first_break_sequence,omitempty"`
	ErrorDetail        string                 `protobuf:"bytes,3,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *VerifyIntegrityResponse) Reset() {
	*x = VerifyIntegrityResponse{}
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIntegrityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityResponse) ProtoMessage() {}

func (x *VerifyIntegrityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_admin_v1_admin_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityResponse.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_admin_v1_admin_proto_rawDescGZIP(), []int{11}
}

func (x *VerifyIntegrityResponse) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *VerifyIntegrityResponse) GetFirstBreakSequence() int64 {
	if x != nil {
		return x.FirstBreakSequence
	}
	return 0
}

func (x *VerifyIntegrityResponse) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

var File_smartswap_admin_v1_admin_proto protoreflect.FileDescriptor

const file_smartswap_admin_v1_admin_proto_rawDesc = "" +
	"\n" +
	"\x1esmartswap/admin/v1/admin.proto\x12\x12smartswap.admin.v1\x1a\x1cgoogle/api/annotations.proto\"`\n" +
	"\x11AddReserveRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x14\n" +
	"\x05token\x18\x02 \x01(\tR\x05token\x12\x1d\n" +
	"\n" +
	"weight_ppm\x18\x03 \x01(\rR\tweightPpm\"0\n" +
	"\x12AddReserveResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\"J\n" +
	"\x17SetConversionFeeRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x17\n" +
	"\afee_ppm\x18\x02 \x01(\rR\x06feePpm\"6\n" +
	"\x18SetConversionFeeResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\"5\n" +
	"\x1bAcceptTokenOwnershipRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\":\n" +
	"\x1cAcceptTokenOwnershipResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\"\x1b\n" +
	"\x19RebuildProjectionsRequest\"6\n" +
	"\x1aRebuildProjectionsResponse\x12\x18\n" +
	"\astarted\x18\x01 \x01(\bR\astarted\"\x18\n" +
	"\x16GetEventLogInfoRequest\">\n" +
	"\x17GetEventLogInfoResponse\x12#\n" +
	"\rlast_sequence\x18\x01 \x01(\x03R\flastSequence\"\x18\n" +
	"\x16VerifyIntegrityRequest\"\x86\x01\n" +
	"\x17VerifyIntegrityResponse\x12\x16\n" +
	"\x06passed\x18\x01 \x01(\bR\x06passed\x120\n" +
	"\x14first_break_sequence\x18\x02 \x01(\x03R\x12firstBreakSequence\x12!\n" +
	"\ferror_detail\x18\x03 \x01(\tR\verrorDetail2\xdf\x06\n" +
	"\fAdminService\x12z\n" +
	"\n" +
	"AddReserve\x12%.smartswap.admin.v1.AddReserveRequest\x1a&.smartswap.admin.v1.AddReserveResponse\"\x1d\x82\xd3\xe4\x93\x02\x17:\x01*\"\x12/v1/admin/reserves\x12\x87\x01\n" +
	"\x10SetConversionFee\x12+.smartswap.admin.v1.SetConversionFeeRequest\x1a,.smartswap.admin.v1.SetConversionFeeResponse\"\x18\x82\xd3\xe4\x93\x02\x12:\x01*\"\r/v1/admin/fee\x12\xa0\x01\n" +
	"\x14AcceptTokenOwnership\x12/.smartswap.admin.v1.AcceptTokenOwnershipRequest\x1a0.smartswap.admin.v1.AcceptTokenOwnershipResponse\"%\x82\xd3\xe4\x93\x02\x1f:\x01*\"\x1a/v1/admin/accept-ownership\x12\x91\x01\n" +
	"\x12RebuildProjections\x12-.smartswap.admin.v1.RebuildProjectionsRequest\x1a..smartswap.admin.v1.RebuildProjectionsResponse\"\x1c\x82\xd3\xe4\x93\x02\x16:\x01*\"\x11/v1/admin/rebuild\x12\x87\x01\n" +
	"\x0fGetEventLogInfo\x12*.smartswap.admin.v1.GetEventLogInfoRequest\x1a+.smartswap.admin.v1.GetEventLogInfoResponse\"\x1b\x82\xd3\xe4\x93\x02\x15\x12\x13/v1/admin/event-log\x12\x87\x01\n" +
	"\x0fVerifyIntegrity\x12*.smartswap.admin.v1.VerifyIntegrityRequest\x1a+.smartswap.admin.v1.VerifyIntegrityResponse\"\x1b\x82\xd3\xe4\x93\x02\x15:\x01*\"\x10/v1/admin/verifyB-Z+SmartSwap/gen/go/smartswap/admin/v1;adminv1b\x06proto3"

var (
	file_smartswap_admin_v1_admin_proto_rawDescOnce sync.Once
	file_smartswap_admin_v1_admin_proto_rawDescData []byte
)

func file_smartswap_admin_v1_admin_proto_rawDescGZIP() []byte {
	file_smartswap_admin_v1_admin_proto_rawDescOnce.Do(func() {
		file_smartswap_admin_v1_admin_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_smartswap_admin_v1_admin_proto_rawDesc), len(file_smartswap_admin_v1_admin_proto_rawDesc)))
	})
	return file_smartswap_admin_v1_admin_proto_rawDescData
}

var file_smartswap_admin_v1_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_smartswap_admin_v1_admin_proto_goTypes = []any{
	(*AddReserveRequest)(nil),            // 0: smartswap.admin.v1.AddReserveRequest
	(*AddReserveResponse)(nil),           // 1: smartswap.admin.v1.AddReserveResponse
	(*SetConversionFeeRequest)(nil),      // 2: smartswap.admin.v1.SetConversionFeeRequest
	(*SetConversionFeeResponse)(nil),     // 3: smartswap.admin.v1.SetConversionFeeResponse
	(*AcceptTokenOwnershipRequest)(nil),  // 4: smartswap.admin.v1.AcceptTokenOwnershipRequest
	(*AcceptTokenOwnershipResponse)(nil), // 5: smartswap.admin.v1.AcceptTokenOwnershipResponse
	(*RebuildProjectionsRequest)(nil),    // 6: smartswap.admin.v1.RebuildProjectionsRequest
	(*RebuildProjectionsResponse)(nil),   // 7: smartswap.admin.v1.RebuildProjectionsResponse
	(*GetEventLogInfoRequest)(nil),       // 8: smartswap.admin.v1.GetEventLogInfoRequest
	(*GetEventLogInfoResponse)(nil),      // 9: smartswap.admin.v1.GetEventLogInfoResponse
	(*VerifyIntegrityRequest)(nil),       // 10: smartswap.admin.v1.VerifyIntegrityRequest
	(*VerifyIntegrityResponse)(nil),      // 11: smartswap.admin.v1.VerifyIntegrityResponse
}
var file_smartswap_admin_v1_admin_proto_depIdxs = []int32{
	0,  // 0: smartswap.admin.v1.AdminService.AddReserve:input_type -> smartswap.admin.v1.AddReserveRequest
	2,  // 1: smartswap.admin.v1.AdminService.SetConversionFee:input_type -> smartswap.admin.v1.SetConversionFeeRequest
	4,  // 2: smartswap.admin.v1.AdminService.AcceptTokenOwnership:input_type -> smartswap.admin.v1.AcceptTokenOwnershipRequest
	6,  // 3: smartswap.admin.v1.AdminService.RebuildProjections:input_type -> smartswap.admin.v1.RebuildProjectionsRequest
	8,  // 4: smartswap.admin.v1.AdminService.GetEventLogInfo:input_type -> smartswap.admin.v1.GetEventLogInfoRequest
	10, // 5: smartswap.admin.v1.AdminService.VerifyIntegrity:input_type -> smartswap.admin.v1.VerifyIntegrityRequest
	1,  // 6: smartswap.admin.v1.AdminService.AddReserve:output_type -> smartswap.admin.v1.AddReserveResponse
	3,  // 7: smartswap.admin.v1.AdminService.SetConversionFee:output_type -> smartswap.admin.v1.SetConversionFeeResponse
	5,  // 8: smartswap.admin.v1.AdminService.AcceptTokenOwnership:output_type -> smartswap.admin.v1.AcceptTokenOwnershipResponse
	7,  // 9: smartswap.admin.v1.AdminService.RebuildProjections:output_type -> smartswap.admin.v1.RebuildProjectionsResponse
	9,  // 10: smartswap.admin.v1.AdminService.GetEventLogInfo:output_type -> smartswap.admin.v1.GetEventLogInfoResponse
	11, // 11: smartswap.admin.v1.AdminService.VerifyIntegrity:output_type -> smartswap.admin.v1.VerifyIntegrityResponse
	6,  // [6:12] is the sub-list for method output_type
	0,  // [0:6] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_smartswap_admin_v1_admin_proto_init() }
func file_smartswap_admin_v1_admin_proto_init() {
	if File_smartswap_admin_v1_admin_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_smartswap_admin_v1_admin_proto_rawDesc), len(file_smartswap_admin_v1_admin_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_smartswap_admin_v1_admin_proto_goTypes,
		DependencyIndexes: file_smartswap_admin_v1_admin_proto_depIdxs,
		MessageInfos:      file_smartswap_admin_v1_admin_proto_msgTypes,
	}.Build()
	File_smartswap_admin_v1_admin_proto = out.File
	file_smartswap_admin_v1_admin_proto_goTypes = nil
	file_smartswap_admin_v1_admin_proto_depIdxs = nil
}
