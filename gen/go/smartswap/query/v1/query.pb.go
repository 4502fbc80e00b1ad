// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: smartswap/query/v1/query.proto

package queryv1

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

type Reserve struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	WeightPpm     uint32                 `protobuf:"varint,2,opt,name=weight_ppm,json=weightPpm,proto3" json:"weight_ppm,omitempty"`
	Balance       string                 `protobuf:"bytes,3,opt,name=balance,proto3" json:"balance,omitempty"`
	SmartSupply   string                 `protobuf:"bytes,4,opt,name=smart_supply,json=smartSupply,proto3" json:"smart_supply,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Reserve) Reset() {
	*x = Reserve{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Reserve) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Reserve) ProtoMessage() {}

func (x *Reserve) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Reserve.ProtoReflect.Descriptor instead.
func (*Reserve) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{0}
}

func (x *Reserve) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *Reserve) GetWeightPpm() uint32 {
	if x != nil {
		return x.WeightPpm
	}
	return 0
}

func (x *Reserve) GetBalance() string {
	if x != nil {
		return x.Balance
	}
	return ""
}

func (x *Reserve) GetSmartSupply() string {
	if x != nil {
		return x.SmartSupply
	}
	return ""
}

type GetReservesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReservesRequest) Reset() {
	*x = GetReservesRequest{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReservesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReservesRequest) ProtoMessage() {}

func (x *GetReservesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReservesRequest.ProtoReflect.Descriptor instead.
func (*GetReservesRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{1}
}

type GetReservesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reserves      []*Reserve             `protobuf:"bytes,1,rep,name=reserves,proto3" json:"reserves,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReservesResponse) Reset() {
	*x = GetReservesResponse{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReservesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReservesResponse) ProtoMessage() {}

func (x *GetReservesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReservesResponse.ProtoReflect.Descriptor instead.
func (*GetReservesResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{2}
}

func (x *GetReservesResponse) GetReserves() []*Reserve {
	if x != nil {
		return x.Reserves
	}
	return nil
}

func (x *GetReservesResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetReserveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReserveRequest) Reset() {
	*x = GetReserveRequest{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReserveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReserveRequest) ProtoMessage() {}

func (x *GetReserveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReserveRequest.ProtoReflect.Descriptor instead.
func (*GetReserveRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{3}
}

func (x *GetReserveRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type GetReserveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reserve       *Reserve               `protobuf:"bytes,1,opt,name=reserve,proto3" json:"reserve,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReserveResponse) Reset() {
	*x = GetReserveResponse{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReserveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReserveResponse) ProtoMessage() {}

func (x *GetReserveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReserveResponse.ProtoReflect.Descriptor instead.
func (*GetReserveResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{4}
}

func (x *GetReserveResponse) GetReserve() *Reserve {
	if x != nil {
		return x.Reserve
	}
	return nil
}

func (x *GetReserveResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetEngineStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEngineStatusRequest) Reset() {
	*x = GetEngineStatusRequest{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEngineStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEngineStatusRequest) ProtoMessage() {}

func (x *GetEngineStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEngineStatusRequest.ProtoReflect.Descriptor instead.
func (*GetEngineStatusRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{5}
}

type GetEngineStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FeePpm        uint32                 `protobuf:"varint,1,opt,name=fee_ppm,json=feePpm,proto3" json:"fee_ppm,omitempty"`
	Active        bool                   `protobuf:"varint,2,opt,name=active,proto3" json:"active,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,3,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEngineStatusResponse) Reset() {
	*x = GetEngineStatusResponse{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEngineStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEngineStatusResponse) ProtoMessage() {}

func (x *GetEngineStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEngineStatusResponse.ProtoReflect.Descriptor instead.
func (*GetEngineStatusResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{6}
}

func (x *GetEngineStatusResponse) GetFeePpm() uint32 {
	if x != nil {
		return x.FeePpm
	}
	return 0
}

func (x *GetEngineStatusResponse) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *GetEngineStatusResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetReturnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourceToken   string                 `protobuf:"bytes,1,opt,name=source_token,json=sourceToken,proto3" json:"source_token,omitempty"`
	TargetToken   string                 `protobuf:"bytes,2,opt,name=target_token,json=targetToken,proto3" json:"target_token,omitempty"`
	Amount        string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReturnRequest) Reset() {
	*x = GetReturnRequest{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReturnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReturnRequest) ProtoMessage() {}

func (x *GetReturnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReturnRequest.ProtoReflect.Descriptor instead.
func (*GetReturnRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{7}
}

func (x *GetReturnRequest) GetSourceToken() string {
	if x != nil {
		return x.SourceToken
	}
	return ""
}

func (x *GetReturnRequest) GetTargetToken() string {
	if x != nil {
		return x.TargetToken
	}
	return ""
}

func (x *GetReturnRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type GetReturnResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        string                 `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Fee           string                 `protobuf:"bytes,2,opt,name=fee,proto3" json:"fee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReturnResponse) Reset() {
	*x = GetReturnResponse{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReturnResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReturnResponse) ProtoMessage() {}

func (x *GetReturnResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReturnResponse.ProtoReflect.Descriptor instead.
func (*GetReturnResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{8}
}

func (x *GetReturnResponse) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *GetReturnResponse) GetFee() string {
	if x != nil {
		return x.Fee
	}
	return ""
}

type Conversion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sequence      int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	SourceToken   string                 `protobuf:"bytes,2,opt,name=source_token,json=sourceToken,proto3" json:"source_token,omitempty"`
	TargetToken   string                 `protobuf:"bytes,3,opt,name=target_token,json=targetToken,proto3" json:"target_token,omitempty"`
	Trader        string                 `protobuf:"bytes,4,opt,name=trader,proto3" json:"trader,omitempty"`
	Beneficiary   string                 `protobuf:"bytes,5,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
	AmountIn      string                 `protobuf:"bytes,6,opt,name=amount_in,json=amountIn,proto3" json:"amount_in,omitempty"`
	AmountOut     string                 `protobuf:"bytes,7,opt,name=amount_out,json=amountOut,proto3" json:"amount_out,omitempty"`
	Fee           string                 `protobuf:"bytes,8,opt,name=fee,proto3" json:"fee,omitempty"`
	ExecutedAtUs  int64                  `protobuf:"varint,9,opt,name=executed_at_us,json=executedAtUs,proto3" json:"executed_at_us,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Conversion) Reset() {
	*x = Conversion{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Conversion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Conversion) ProtoMessage() {}

func (x *Conversion) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Conversion.ProtoReflect.Descriptor instead.
func (*Conversion) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{9}
}

func (x *Conversion) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *Conversion) GetSourceToken() string {
	if x != nil {
		return x.SourceToken
	}
	return ""
}

func (x *Conversion) GetTargetToken() string {
	if x != nil {
		return x.TargetToken
	}
	return ""
}

func (x *Conversion) GetTrader() string {
	if x != nil {
		return x.Trader
	}
	return ""
}

func (x *Conversion) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

func (x *Conversion) GetAmountIn() string {
	if x != nil {
		return x.AmountIn
	}
	return ""
}

func (x *Conversion) GetAmountOut() string {
	if x != nil {
		return x.AmountOut
	}
	return ""
}

func (x *Conversion) GetFee() string {
	if x != nil {
		return x.Fee
	}
	return ""
}

func (x *Conversion) GetExecutedAtUs() int64 {
	if x != nil {
		return x.ExecutedAtUs
	}
	return 0
}

type ListConversionsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Trader         string                 `protobuf:"bytes,1,opt,name=trader,proto3" json:"trader,omitempty"`
	PageSize       int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	BeforeSequence int64                  `protobuf:"varint,3,opt,name=before_sequence,json=beforeSequence,proto3" json:"before_sequence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListConversionsRequest) Reset() {
	*x = ListConversionsRequest{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConversionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConversionsRequest) ProtoMessage() {}

func (x *ListConversionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConversionsRequest.ProtoReflect.Descriptor instead.
func (*ListConversionsRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{10}
}

func (x *ListConversionsRequest) GetTrader() string {
	if x != nil {
		return x.Trader
	}
	return ""
}

func (x *ListConversionsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListConversionsRequest) GetBeforeSequence() int64 {
	if x != nil {
		return x.BeforeSequence
	}
	return 0
}

type ListConversionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Conversions   []*Conversion          `protobuf:"bytes,1,rep,name=conversions,proto3" json:"conversions,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConversionsResponse) Reset() {
	*x = ListConversionsResponse{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConversionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConversionsResponse) ProtoMessage() {}

func (x *ListConversionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConversionsResponse.ProtoReflect.Descriptor instead.
func (*ListConversionsResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{11}
}

func (x *ListConversionsResponse) GetConversions() []*Conversion {
	if x != nil {
		return x.Conversions
	}
	return nil
}

func (x *ListConversionsResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type LiquidityEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sequence      int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Provider      string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	Reserve       string                 `protobuf:"bytes,4,opt,name=reserve,proto3" json:"reserve,omitempty"`
	Amount        string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`
	NewBalance    string                 `protobuf:"bytes,6,opt,name=new_balance,json=newBalance,proto3" json:"new_balance,omitempty"`
	NewSupply     string                 `protobuf:"bytes,7,opt,name=new_supply,json=newSupply,proto3" json:"new_supply,omitempty"`
	ExecutedAtUs  int64                  `protobuf:"varint,8,opt,name=executed_at_us,json=executedAtUs,proto3" json:"executed_at_us,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LiquidityEvent) Reset() {
	*x = LiquidityEvent{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LiquidityEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LiquidityEvent) ProtoMessage() {}

func (x *LiquidityEvent) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LiquidityEvent.ProtoReflect.Descriptor instead.
func (*LiquidityEvent) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{12}
}

func (x *LiquidityEvent) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *LiquidityEvent) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *LiquidityEvent) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *LiquidityEvent) GetReserve() string {
	if x != nil {
		return x.Reserve
	}
	return ""
}

func (x *LiquidityEvent) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *LiquidityEvent) GetNewBalance() string {
	if x != nil {
		return x.NewBalance
	}
	return ""
}

func (x *LiquidityEvent) GetNewSupply() string {
	if x != nil {
		return x.NewSupply
	}
	return ""
}

func (x *LiquidityEvent) GetExecutedAtUs() int64 {
	if x != nil {
		return x.ExecutedAtUs
	}
	return 0
}

type ListLiquidityEventsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Provider       string                 `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	PageSize       int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	BeforeSequence int64                  `protobuf:"varint,3,opt,name=before_sequence,json=beforeSequence,proto3" json:"before_sequence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListLiquidityEventsRequest) Reset() {
	*x = ListLiquidityEventsRequest{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLiquidityEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLiquidityEventsRequest) ProtoMessage() {}

func (x *ListLiquidityEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLiquidityEventsRequest.ProtoReflect.Descriptor instead.
func (*ListLiquidityEventsRequest) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{13}
}

func (x *ListLiquidityEventsRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *ListLiquidityEventsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListLiquidityEventsRequest) GetBeforeSequence() int64 {
	if x != nil {
		return x.BeforeSequence
	}
	return 0
}

type ListLiquidityEventsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        []*LiquidityEvent      `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLiquidityEventsResponse) Reset() {
	*x = ListLiquidityEventsResponse{}
	mi := &file_smartswap_query_v1_query_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLiquidityEventsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLiquidityEventsResponse) ProtoMessage() {}

func (x *ListLiquidityEventsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartswap_query_v1_query_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLiquidityEventsResponse.ProtoReflect.Descriptor instead.
func (*ListLiquidityEventsResponse) Descriptor() ([]byte, []int) {
	return file_smartswap_query_v1_query_proto_rawDescGZIP(), []int{14}
}

func (x *ListLiquidityEventsResponse) GetEvents() []*LiquidityEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

func (x *ListLiquidityEventsResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

var File_smartswap_query_v1_query_proto protoreflect.FileDescriptor

const file_smartswap_query_v1_query_proto_rawDesc = "" +
	"\n" +
	"\x1esmartswap/query/v1/query.proto\x12\x12smartswap.query.v1\x1a\x1cgoogle/api/annotations.proto\"{\n" +
	"\aReserve\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\x12\x1d\n" +
	"\n" +
	"weight_ppm\x18\x02 \x01(\rR\tweightPpm\x12\x18\n" +
	"\abalance\x18\x03 \x01(\tR\abalance\x12!\n" +
	"\fsmart_supply\x18\x04 \x01(\tR\vsmartSupply\"\x14\n" +
	"\x12GetReservesRequest\"t\n" +
	"\x13GetReservesResponse\x127\n" +
	"\breserves\x18\x01 \x03(\v2\x1b.smartswap.query.v1.ReserveR\breserves\x12$\n" +
	"\x0eas_of_sequence\x18\x02 \x01(\x03R\fasOfSequence\")\n" +
	"\x11GetReserveRequest\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\"q\n" +
	"\x12GetReserveResponse\x125\n" +
	"\areserve\x18\x01 \x01(\v2\x1b.smartswap.query.v1.ReserveR\areserve\x12$\n" +
	"\x0eas_of_sequence\x18\x02 \x01(\x03R\fasOfSequence\"\x18\n" +
	"\x16GetEngineStatusRequest\"p\n" +
	"\x17GetEngineStatusResponse\x12\x17\n" +
	"\afee_ppm\x18\x01 \x01(\rR\x06feePpm\x12\x16\n" +
	"\x06active\x18\x02 \x01(\bR\x06active\x12$\n" +
	"\x0eas_of_sequence\x18\x03 \x01(\x03R\fasOfSequence\"p\n" +
	"\x10GetReturnRequest\x12!\n" +
	"\fsource_token\x18\x01 \x01(\tR\vsourceToken\x12!\n" +
	"\ftarget_token\x18\x02 \x01(\tR\vtargetToken\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\"=\n" +
	"\x11GetReturnResponse\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\tR\x06amount\x12\x10\n" +
	"\x03fee\x18\x02 \x01(\tR\x03fee\"\x9c\x02\n" +
	"\n" +
	"Conversion\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x03R\bsequence\x12!\n" +
	"\fsource_token\x18\x02 \x01(\tR\vsourceToken\x12!\n" +
	"\ftarget_token\x18\x03 \x01(\tR\vtargetToken\x12\x16\n" +
	"\x06trader\x18\x04 \x01(\tR\x06trader\x12 \n" +
	"\vbeneficiary\x18\x05 \x01(\tR\vbeneficiary\x12\x1b\n" +
	"\tamount_in\x18\x06 \x01(\tR\bamountIn\x12\x1d\n" +
	"\n" +
	"amount_out\x18\a \x01(\tR\tamountOut\x12\x10\n" +
	"\x03fee\x18\b \x01(\tR\x03fee\x12$\n" +
	"\x0eexecuted_at_us\x18\t \x01(\x03R\fexecutedAtUs\"v\n" +
	"\x16ListConversionsRequest\x12\x16\n" +
	"\x06trader\x18\x01 \x01(\tR\x06trader\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12'\n" +
	"\x0fbefore_sequence\x18\x03 \x01(\x03R\x0ebeforeSequence\"\x81\x01\n" +
	"\x17ListConversionsResponse\x12@\n" +
	"\vconversions\x18\x01 \x03(\v2\x1e.smartswap.query.v1.ConversionR\vconversions\x12$\n" +
	"\x0eas_of_sequence\x18\x02 \x01(\x03R\fasOfSequence\"\xf4\x01\n" +
	"\x0eLiquidityEvent\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x03R\bsequence\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\x12\x18\n" +
	"\areserve\x18\x04 \x01(\tR\areserve\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\tR\x06amount\x12\x1f\n" +
	"\vnew_balance\x18\x06 \x01(\tR\n" +
	"newBalance\x12\x1d\n" +
	"\n" +
	"new_supply\x18\a \x01(\tR\tnewSupply\x12$\n" +
	"\x0eexecuted_at_us\x18\b \x01(\x03R\fexecutedAtUs\"~\n" +
	"\x1aListLiquidityEventsRequest\x12\x1a\n" +
	"\bprovider\x18\x01 \x01(\tR\bprovider\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12'\n" +
	"\x0fbefore_sequence\x18\x03 \x01(\x03R\x0ebeforeSequence\"\x7f\n" +
	"\x1bListLiquidityEventsResponse\x12:\n" +
	"\x06events\x18\x01 \x03(\v2\".smartswap.query.v1.LiquidityEventR\x06events\x12$\n" +
	"\x0eas_of_sequence\x18\x02 \x01(\x03R\fasOfSequence2\x82\x06\n" +
	"\fQueryService\x12t\n" +
	"\vGetReserves\x12&.smartswap.query.v1.GetReservesRequest\x1a'.smartswap.query.v1.GetReservesResponse\"\x14\x82\xd3\xe4\x93\x02\x0e\x12\f/v1/reserves\x12y\n" +
	"\n" +
	"GetReserve\x12%.smartswap.query.v1.GetReserveRequest\x1a&.smartswap.query.v1.GetReserveResponse\"\x1c\x82\xd3\xe4\x93\x02\x16\x12\x14/v1/reserves/{token}\x12~\n" +
	"\x0fGetEngineStatus\x12*.smartswap.query.v1.GetEngineStatusRequest\x1a+.smartswap.query.v1.GetEngineStatusResponse\"\x12\x82\xd3\xe4\x93\x02\f\x12\n" +
	"/v1/status\x12k\n" +
	"\tGetReturn\x12$.smartswap.query.v1.GetReturnRequest\x1a%.smartswap.query.v1.GetReturnResponse\"\x11\x82\xd3\xe4\x93\x02\v\x12\t/v1/quote\x12\x83\x01\n" +
	"\x0fListConversions\x12*.smartswap.query.v1.ListConversionsRequest\x1a+.smartswap.query.v1.ListConversionsResponse\"\x17\x82\xd3\xe4\x93\x02\x11\x12\x0f/v1/conversions\x12\x8d\x01\n" +
	"\x13ListLiquidityEvents\x12..smartswap.query.v1.ListLiquidityEventsRequest\x1a/.smartswap.query.v1.ListLiquidityEventsResponse\"\x15\x82\xd3\xe4\x93\x02\x0f\x12\r/v1/liquidityB-Z+SmartSwap/gen/go/smartswap/query/v1;queryv1b\x06proto3"

var (
	file_smartswap_query_v1_query_proto_rawDescOnce sync.Once
	file_smartswap_query_v1_query_proto_rawDescData []byte
)

func file_smartswap_query_v1_query_proto_rawDescGZIP() []byte {
	file_smartswap_query_v1_query_proto_rawDescOnce.Do(func() {
		file_smartswap_query_v1_query_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_smartswap_query_v1_query_proto_rawDesc), len(file_smartswap_query_v1_query_proto_rawDesc)))
	})
	return file_smartswap_query_v1_query_proto_rawDescData
}

var file_smartswap_query_v1_query_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_smartswap_query_v1_query_proto_goTypes = []any{
	(*Reserve)(nil),                     // 0: smartswap.query.v1.Reserve
	(*GetReservesRequest)(nil),          // 1: smartswap.query.v1.GetReservesRequest
	(*GetReservesResponse)(nil),         // 2: smartswap.query.v1.GetReservesResponse
	(*GetReserveRequest)(nil),           // 3: smartswap.query.v1.GetReserveRequest
	(*GetReserveResponse)(nil),          // 4: smartswap.query.v1.GetReserveResponse
	(*GetEngineStatusRequest)(nil),      // 5: smartswap.query.v1.GetEngineStatusRequest
	(*GetEngineStatusResponse)(nil),     // 6: smartswap.query.v1.GetEngineStatusResponse
	(*GetReturnRequest)(nil),            // 7: smartswap.query.v1.GetReturnRequest
	(*GetReturnResponse)(nil),           // 8: smartswap.query.v1.GetReturnResponse
	(*Conversion)(nil),                  // 9: smartswap.query.v1.Conversion
	(*ListConversionsRequest)(nil),      // 10: smartswap.query.v1.ListConversionsRequest
	(*ListConversionsResponse)(nil),     // 11: smartswap.query.v1.ListConversionsResponse
	(*LiquidityEvent)(nil),              // 12: smartswap.query.v1.LiquidityEvent
	(*ListLiquidityEventsRequest)(nil),  // 13: smartswap.query.v1.ListLiquidityEventsRequest
	(*ListLiquidityEventsResponse)(nil), // 14: smartswap.query.v1.ListLiquidityEventsResponse
}
var file_smartswap_query_v1_query_proto_depIdxs = []int32{
	0,  // 0: smartswap.query.v1.GetReservesResponse.reserves:type_name -> smartswap.query.v1.Reserve
	0,  // 1: smartswap.query.v1.GetReserveResponse.reserve:type_name -> smartswap.query.v1.Reserve
	9,  // 2: smartswap.query.v1.ListConversionsResponse.conversions:type_name -> smartswap.query.v1.Conversion
	12, // 3: smartswap.query.v1.ListLiquidityEventsResponse.events:type_name -> smartswap.query.v1.LiquidityEvent
	1,  // 4: smartswap.query.v1.QueryService.GetReserves:input_type -> smartswap.query.v1.GetReservesRequest
	3,  // 5: smartswap.query.v1.QueryService.GetReserve:input_type -> smartswap.query.v1.GetReserveRequest
	5,  // 6: smartswap.query.v1.QueryService.GetEngineStatus:input_type -> smartswap.query.v1.GetEngineStatusRequest
	7,  // 7: smartswap.query.v1.QueryService.GetReturn:input_type -> smartswap.query.v1.GetReturnRequest
	10, // 8: smartswap.query.v1.QueryService.ListConversions:input_type -> smartswap.query.v1.ListConversionsRequest
	13, // 9: smartswap.query.v1.QueryService.ListLiquidityEvents:input_type -> smartswap.query.v1.ListLiquidityEventsRequest
	2,  // 10: smartswap.query.v1.QueryService.GetReserves:output_type -> smartswap.query.v1.GetReservesResponse
	4,  // 11: smartswap.query.v1.QueryService.GetReserve:output_type -> smartswap.query.v1.GetReserveResponse
	6,  // 12: smartswap.query.v1.QueryService.GetEngineStatus:output_type -> smartswap.query.v1.GetEngineStatusResponse
	8,  // 13: smartswap.query.v1.QueryService.GetReturn:output_type -> smartswap.query.v1.GetReturnResponse
	11, // 14: smartswap.query.v1.QueryService.ListConversions:output_type -> smartswap.query.v1.ListConversionsResponse
	14, // 15: smartswap.query.v1.QueryService.ListLiquidityEvents:output_type -> smartswap.query.v1.ListLiquidityEventsResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_smartswap_query_v1_query_proto_init() }
func file_smartswap_query_v1_query_proto_init() {
	if File_smartswap_query_v1_query_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_smartswap_query_v1_query_proto_rawDesc), len(file_smartswap_query_v1_query_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_smartswap_query_v1_query_proto_goTypes,
		DependencyIndexes: file_smartswap_query_v1_query_proto_depIdxs,
		MessageInfos:      file_smartswap_query_v1_query_proto_msgTypes,
	}.Build()
	File_smartswap_query_v1_query_proto = out.File
	file_smartswap_query_v1_query_proto_goTypes = nil
	file_smartswap_query_v1_query_proto_depIdxs = nil
}
