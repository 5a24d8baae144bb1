// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: waresys/v1/invoices.proto

package waresysv1

import (
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

type UploadBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Synchronous   bool                   `protobuf:"varint,3,opt,name=synchronous,proto3" json:"synchronous,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadBillRequest) Reset() {
	*x = UploadBillRequest{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadBillRequest) ProtoMessage() {}

func (x *UploadBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadBillRequest.ProtoReflect.Descriptor instead.
func (*UploadBillRequest) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *UploadBillRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadBillRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadBillRequest) GetSynchronous() bool {
	if x != nil {
		return x.Synchronous
	}
	return false
}

type UploadBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bill          *Bill                  `protobuf:"bytes,1,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadBillResponse) Reset() {
	*x = UploadBillResponse{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadBillResponse) ProtoMessage() {}

func (x *UploadBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadBillResponse.ProtoReflect.Descriptor instead.
func (*UploadBillResponse) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *UploadBillResponse) GetBill() *Bill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type GetBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BillId        string                 `protobuf:"bytes,1,opt,name=bill_id,json=billId,proto3" json:"bill_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBillRequest) Reset() {
	*x = GetBillRequest{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBillRequest) ProtoMessage() {}

func (x *GetBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBillRequest.ProtoReflect.Descriptor instead.
func (*GetBillRequest) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *GetBillRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

type GetBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bill          *Bill                  `protobuf:"bytes,1,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBillResponse) Reset() {
	*x = GetBillResponse{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBillResponse) ProtoMessage() {}

func (x *GetBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBillResponse.ProtoReflect.Descriptor instead.
func (*GetBillResponse) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *GetBillResponse) GetBill() *Bill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type ListBillsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional status filter: UPLOADED | PROCESSING | PROCESSED | FAILED | CONFIRMED.
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsRequest) Reset() {
	*x = ListBillsRequest{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsRequest) ProtoMessage() {}

func (x *ListBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsRequest.ProtoReflect.Descriptor instead.
func (*ListBillsRequest) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *ListBillsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListBillsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bills         []*Bill                `protobuf:"bytes,1,rep,name=bills,proto3" json:"bills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsResponse) Reset() {
	*x = ListBillsResponse{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsResponse) ProtoMessage() {}

func (x *ListBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsResponse.ProtoReflect.Descriptor instead.
func (*ListBillsResponse) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *ListBillsResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

type ListReviewQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewQueueRequest) Reset() {
	*x = ListReviewQueueRequest{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewQueueRequest) ProtoMessage() {}

func (x *ListReviewQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewQueueRequest.ProtoReflect.Descriptor instead.
func (*ListReviewQueueRequest) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{6}
}

type ListReviewQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bills         []*Bill                `protobuf:"bytes,1,rep,name=bills,proto3" json:"bills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewQueueResponse) Reset() {
	*x = ListReviewQueueResponse{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewQueueResponse) ProtoMessage() {}

func (x *ListReviewQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewQueueResponse.ProtoReflect.Descriptor instead.
func (*ListReviewQueueResponse) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{7}
}

func (x *ListReviewQueueResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

type ConfirmBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BillId        string                 `protobuf:"bytes,1,opt,name=bill_id,json=billId,proto3" json:"bill_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmBillRequest) Reset() {
	*x = ConfirmBillRequest{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmBillRequest) ProtoMessage() {}

func (x *ConfirmBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmBillRequest.ProtoReflect.Descriptor instead.
func (*ConfirmBillRequest) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *ConfirmBillRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

type ConfirmBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bill          *Bill                  `protobuf:"bytes,1,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmBillResponse) Reset() {
	*x = ConfirmBillResponse{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmBillResponse) ProtoMessage() {}

func (x *ConfirmBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmBillResponse.ProtoReflect.Descriptor instead.
func (*ConfirmBillResponse) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *ConfirmBillResponse) GetBill() *Bill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type ExportBillsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional status filter; defaults to PROCESSED and CONFIRMED bills.
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsRequest) Reset() {
	*x = ExportBillsRequest{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsRequest) ProtoMessage() {}

func (x *ExportBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsRequest.ProtoReflect.Descriptor instead.
func (*ExportBillsRequest) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{10}
}

func (x *ExportBillsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ExportBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsResponse) Reset() {
	*x = ExportBillsResponse{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsResponse) ProtoMessage() {}

func (x *ExportBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsResponse.ProtoReflect.Descriptor instead.
func (*ExportBillsResponse) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{11}
}

func (x *ExportBillsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Bill struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VendorId   string                 `protobuf:"bytes,2,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	VendorName string                 `protobuf:"bytes,3,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	InvoiceNo  string                 `protobuf:"bytes,4,opt,name=invoice_no,json=invoiceNo,proto3" json:"invoice_no,omitempty"`
	// YYYY-MM-DD; empty when the date could not be extracted.
	BillDate string `protobuf:"bytes,5,opt,name=bill_date,json=billDate,proto3" json:"bill_date,omitempty"`
	Status   string `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	Method   string `protobuf:"bytes,7,opt,name=method,proto3" json:"method,omitempty"`
	// Money fields are decimal strings to avoid float drift on the wire.
	Subtotal      string      `protobuf:"bytes,8,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Tax           string      `protobuf:"bytes,9,opt,name=tax,proto3" json:"tax,omitempty"`
	GrandTotal    string      `protobuf:"bytes,10,opt,name=grand_total,json=grandTotal,proto3" json:"grand_total,omitempty"`
	Confidence    float64     `protobuf:"fixed64,11,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview   bool        `protobuf:"varint,12,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ReviewReasons []string    `protobuf:"bytes,13,rep,name=review_reasons,json=reviewReasons,proto3" json:"review_reasons,omitempty"`
	Lines         []*BillLine `protobuf:"bytes,14,rep,name=lines,proto3" json:"lines,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Bill) Reset() {
	*x = Bill{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bill) ProtoMessage() {}

func (x *Bill) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bill.ProtoReflect.Descriptor instead.
func (*Bill) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *Bill) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Bill) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *Bill) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Bill) GetInvoiceNo() string {
	if x != nil {
		return x.InvoiceNo
	}
	return ""
}

func (x *Bill) GetBillDate() string {
	if x != nil {
		return x.BillDate
	}
	return ""
}

func (x *Bill) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Bill) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *Bill) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *Bill) GetTax() string {
	if x != nil {
		return x.Tax
	}
	return ""
}

func (x *Bill) GetGrandTotal() string {
	if x != nil {
		return x.GrandTotal
	}
	return ""
}

func (x *Bill) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Bill) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Bill) GetReviewReasons() []string {
	if x != nil {
		return x.ReviewReasons
	}
	return nil
}

func (x *Bill) GetLines() []*BillLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

type BillLine struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LineNo        int32                  `protobuf:"varint,1,opt,name=line_no,json=lineNo,proto3" json:"line_no,omitempty"`
	Hsn           string                 `protobuf:"bytes,2,opt,name=hsn,proto3" json:"hsn,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Uom           string                 `protobuf:"bytes,4,opt,name=uom,proto3" json:"uom,omitempty"`
	Qty           string                 `protobuf:"bytes,5,opt,name=qty,proto3" json:"qty,omitempty"`
	Rate          string                 `protobuf:"bytes,6,opt,name=rate,proto3" json:"rate,omitempty"`
	Amount        string                 `protobuf:"bytes,7,opt,name=amount,proto3" json:"amount,omitempty"`
	Confidence    float64                `protobuf:"fixed64,8,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Inconsistent  bool                   `protobuf:"varint,9,opt,name=inconsistent,proto3" json:"inconsistent,omitempty"`
	MatchedSku    string                 `protobuf:"bytes,10,opt,name=matched_sku,json=matchedSku,proto3" json:"matched_sku,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BillLine) Reset() {
	*x = BillLine{}
	mi := &file_waresys_v1_invoices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillLine) ProtoMessage() {}

func (x *BillLine) ProtoReflect() protoreflect.Message {
	mi := &file_waresys_v1_invoices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillLine.ProtoReflect.Descriptor instead.
func (*BillLine) Descriptor() ([]byte, []int) {
	return file_waresys_v1_invoices_proto_rawDescGZIP(), []int{13}
}

func (x *BillLine) GetLineNo() int32 {
	if x != nil {
		return x.LineNo
	}
	return 0
}

func (x *BillLine) GetHsn() string {
	if x != nil {
		return x.Hsn
	}
	return ""
}

func (x *BillLine) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *BillLine) GetUom() string {
	if x != nil {
		return x.Uom
	}
	return ""
}

func (x *BillLine) GetQty() string {
	if x != nil {
		return x.Qty
	}
	return ""
}

func (x *BillLine) GetRate() string {
	if x != nil {
		return x.Rate
	}
	return ""
}

func (x *BillLine) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *BillLine) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *BillLine) GetInconsistent() bool {
	if x != nil {
		return x.Inconsistent
	}
	return false
}

func (x *BillLine) GetMatchedSku() string {
	if x != nil {
		return x.MatchedSku
	}
	return ""
}

var File_waresys_v1_invoices_proto protoreflect.FileDescriptor

const file_waresys_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x19waresys/v1/invoices.proto\x12\n" +
	"waresys.v1\"k\n" +
	"\x11UploadBillRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12 \n" +
	"\vsynchronous\x18\x03 \x01(\bR\vsynchronous\":\n" +
	"\x12UploadBillResponse\x12$\n" +
	"\x04bill\x18\x01 \x01(\v2\x10.waresys.v1.BillR\x04bill\")\n" +
	"\x0eGetBillRequest\x12\x17\n" +
	"\abill_id\x18\x01 \x01(\tR\x06billId\"7\n" +
	"\x0fGetBillResponse\x12$\n" +
	"\x04bill\x18\x01 \x01(\v2\x10.waresys.v1.BillR\x04bill\"@\n" +
	"\x10ListBillsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\";\n" +
	"\x11ListBillsResponse\x12&\n" +
	"\x05bills\x18\x01 \x03(\v2\x10.waresys.v1.BillR\x05bills\"\x18\n" +
	"\x16ListReviewQueueRequest\"A\n" +
	"\x17ListReviewQueueResponse\x12&\n" +
	"\x05bills\x18\x01 \x03(\v2\x10.waresys.v1.BillR\x05bills\"-\n" +
	"\x12ConfirmBillRequest\x12\x17\n" +
	"\abill_id\x18\x01 \x01(\tR\x06billId\";\n" +
	"\x13ConfirmBillResponse\x12$\n" +
	"\x04bill\x18\x01 \x01(\v2\x10.waresys.v1.BillR\x04bill\",\n" +
	"\x12ExportBillsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\")\n" +
	"\x13ExportBillsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xa5\x03\n" +
	"\x04Bill\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tvendor_id\x18\x02 \x01(\tR\bvendorId\x12\x1f\n" +
	"\vvendor_name\x18\x03 \x01(\tR\n" +
	"vendorName\x12\x1d\n" +
	"\n" +
	"invoice_no\x18\x04 \x01(\tR\tinvoiceNo\x12\x1b\n" +
	"\tbill_date\x18\x05 \x01(\tR\bbillDate\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x16\n" +
	"\x06method\x18\a \x01(\tR\x06method\x12\x1a\n" +
	"\bsubtotal\x18\b \x01(\tR\bsubtotal\x12\x10\n" +
	"\x03tax\x18\t \x01(\tR\x03tax\x12\x1f\n" +
	"\vgrand_total\x18\n" +
	" \x01(\tR\n" +
	"grandTotal\x12\x1e\n" +
	"\n" +
	"confidence\x18\v \x01(\x01R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\f \x01(\bR\vneedsReview\x12%\n" +
	"\x0ereview_reasons\x18\r \x03(\tR\rreviewReasons\x12*\n" +
	"\x05lines\x18\x0e \x03(\v2\x14.waresys.v1.BillLineR\x05lines\"\x8c\x02\n" +
	"\bBillLine\x12\x17\n" +
	"\aline_no\x18\x01 \x01(\x05R\x06lineNo\x12\x10\n" +
	"\x03hsn\x18\x02 \x01(\tR\x03hsn\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x10\n" +
	"\x03uom\x18\x04 \x01(\tR\x03uom\x12\x10\n" +
	"\x03qty\x18\x05 \x01(\tR\x03qty\x12\x12\n" +
	"\x04rate\x18\x06 \x01(\tR\x04rate\x12\x16\n" +
	"\x06amount\x18\a \x01(\tR\x06amount\x12\x1e\n" +
	"\n" +
	"confidence\x18\b \x01(\x01R\n" +
	"confidence\x12\"\n" +
	"\finconsistent\x18\t \x01(\bR\finconsistent\x12\x1f\n" +
	"\vmatched_sku\x18\n" +
	" \x01(\tR\n" +
	"matchedSku2\xe8\x03\n" +
	"\x0fInvoicesService\x12K\n" +
	"\n" +
	"UploadBill\x12\x1d.waresys.v1.UploadBillRequest\x1a\x1e.waresys.v1.UploadBillResponse\x12B\n" +
	"\aGetBill\x12\x1a.waresys.v1.GetBillRequest\x1a\x1b.waresys.v1.GetBillResponse\x12H\n" +
	"\tListBills\x12\x1c.waresys.v1.ListBillsRequest\x1a\x1d.waresys.v1.ListBillsResponse\x12Z\n" +
	"\x0fListReviewQueue\x12\".waresys.v1.ListReviewQueueRequest\x1a#.waresys.v1.ListReviewQueueResponse\x12N\n" +
	"\vConfirmBill\x12\x1e.waresys.v1.ConfirmBillRequest\x1a\x1f.waresys.v1.ConfirmBillResponse\x12N\n" +
	"\vExportBills\x12\x1e.waresys.v1.ExportBillsRequest\x1a\x1f.waresys.v1.ExportBillsResponseBEZCgithub.com/Alan-K-Biju-7/waresys-mvp/gen/proto/waresys/v1;waresysv1b\x06proto3"

var (
	file_waresys_v1_invoices_proto_rawDescOnce sync.Once
	file_waresys_v1_invoices_proto_rawDescData []byte
)

func file_waresys_v1_invoices_proto_rawDescGZIP() []byte {
	file_waresys_v1_invoices_proto_rawDescOnce.Do(func() {
		file_waresys_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_waresys_v1_invoices_proto_rawDesc), len(file_waresys_v1_invoices_proto_rawDesc)))
	})
	return file_waresys_v1_invoices_proto_rawDescData
}

var file_waresys_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_waresys_v1_invoices_proto_goTypes = []any{
	(*UploadBillRequest)(nil),       // 0: waresys.v1.UploadBillRequest
	(*UploadBillResponse)(nil),      // 1: waresys.v1.UploadBillResponse
	(*GetBillRequest)(nil),          // 2: waresys.v1.GetBillRequest
	(*GetBillResponse)(nil),         // 3: waresys.v1.GetBillResponse
	(*ListBillsRequest)(nil),        // 4: waresys.v1.ListBillsRequest
	(*ListBillsResponse)(nil),       // 5: waresys.v1.ListBillsResponse
	(*ListReviewQueueRequest)(nil),  // 6: waresys.v1.ListReviewQueueRequest
	(*ListReviewQueueResponse)(nil), // 7: waresys.v1.ListReviewQueueResponse
	(*ConfirmBillRequest)(nil),      // 8: waresys.v1.ConfirmBillRequest
	(*ConfirmBillResponse)(nil),     // 9: waresys.v1.ConfirmBillResponse
	(*ExportBillsRequest)(nil),      // 10: waresys.v1.ExportBillsRequest
	(*ExportBillsResponse)(nil),     // 11: waresys.v1.ExportBillsResponse
	(*Bill)(nil),                    // 12: waresys.v1.Bill
	(*BillLine)(nil),                // 13: waresys.v1.BillLine
}
var file_waresys_v1_invoices_proto_depIdxs = []int32{
	12, // 0: waresys.v1.UploadBillResponse.bill:type_name -> waresys.v1.Bill
	12, // 1: waresys.v1.GetBillResponse.bill:type_name -> waresys.v1.Bill
	12, // 2: waresys.v1.ListBillsResponse.bills:type_name -> waresys.v1.Bill
	12, // 3: waresys.v1.ListReviewQueueResponse.bills:type_name -> waresys.v1.Bill
	12, // 4: waresys.v1.ConfirmBillResponse.bill:type_name -> waresys.v1.Bill
	13, // 5: waresys.v1.Bill.lines:type_name -> waresys.v1.BillLine
	0,  // 6: waresys.v1.InvoicesService.UploadBill:input_type -> waresys.v1.UploadBillRequest
	2,  // 7: waresys.v1.InvoicesService.GetBill:input_type -> waresys.v1.GetBillRequest
	4,  // 8: waresys.v1.InvoicesService.ListBills:input_type -> waresys.v1.ListBillsRequest
	6,  // 9: waresys.v1.InvoicesService.ListReviewQueue:input_type -> waresys.v1.ListReviewQueueRequest
	8,  // 10: waresys.v1.InvoicesService.ConfirmBill:input_type -> waresys.v1.ConfirmBillRequest
	10, // 11: waresys.v1.InvoicesService.ExportBills:input_type -> waresys.v1.ExportBillsRequest
	1,  // 12: waresys.v1.InvoicesService.UploadBill:output_type -> waresys.v1.UploadBillResponse
	3,  // 13: waresys.v1.InvoicesService.GetBill:output_type -> waresys.v1.GetBillResponse
	5,  // 14: waresys.v1.InvoicesService.ListBills:output_type -> waresys.v1.ListBillsResponse
	7,  // 15: waresys.v1.InvoicesService.ListReviewQueue:output_type -> waresys.v1.ListReviewQueueResponse
	9,  // 16: waresys.v1.InvoicesService.ConfirmBill:output_type -> waresys.v1.ConfirmBillResponse
	11, // 17: waresys.v1.InvoicesService.ExportBills:output_type -> waresys.v1.ExportBillsResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_waresys_v1_invoices_proto_init() }
func file_waresys_v1_invoices_proto_init() {
	if File_waresys_v1_invoices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_waresys_v1_invoices_proto_rawDesc), len(file_waresys_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_waresys_v1_invoices_proto_goTypes,
		DependencyIndexes: file_waresys_v1_invoices_proto_depIdxs,
		MessageInfos:      file_waresys_v1_invoices_proto_msgTypes,
	}.Build()
	File_waresys_v1_invoices_proto = out.File
	file_waresys_v1_invoices_proto_goTypes = nil
	file_waresys_v1_invoices_proto_depIdxs = nil
}
