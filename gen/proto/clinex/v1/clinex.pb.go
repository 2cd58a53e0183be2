// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: clinex/v1/clinex.proto

package clinexv1

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

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{4}
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SourcePath    string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt       string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	FileSize      int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{5}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionRequest) Reset() {
	*x = GetExtractionRequest{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionRequest) ProtoMessage() {}

func (x *GetExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionRequest) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{7}
}

func (x *GetExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type Report struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	ReportId            string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	ClinicalTerms       []string               `protobuf:"bytes,2,rep,name=clinical_terms,json=clinicalTerms,proto3" json:"clinical_terms,omitempty"`
	AnatomicalLocations []string               `protobuf:"bytes,3,rep,name=anatomical_locations,json=anatomicalLocations,proto3" json:"anatomical_locations,omitempty"`
	Diagnosis           []string               `protobuf:"bytes,4,rep,name=diagnosis,proto3" json:"diagnosis,omitempty"`
	Procedures          []string               `protobuf:"bytes,5,rep,name=procedures,proto3" json:"procedures,omitempty"`
	Icd10               []string               `protobuf:"bytes,6,rep,name=icd10,proto3" json:"icd10,omitempty"`
	Cpt                 []string               `protobuf:"bytes,7,rep,name=cpt,proto3" json:"cpt,omitempty"`
	Hcpcs               []string               `protobuf:"bytes,8,rep,name=hcpcs,proto3" json:"hcpcs,omitempty"`
	Modifiers           []string               `protobuf:"bytes,9,rep,name=modifiers,proto3" json:"modifiers,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Report) Reset() {
	*x = Report{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Report) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Report) ProtoMessage() {}

func (x *Report) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Report.ProtoReflect.Descriptor instead.
func (*Report) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{8}
}

func (x *Report) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *Report) GetClinicalTerms() []string {
	if x != nil {
		return x.ClinicalTerms
	}
	return nil
}

func (x *Report) GetAnatomicalLocations() []string {
	if x != nil {
		return x.AnatomicalLocations
	}
	return nil
}

func (x *Report) GetDiagnosis() []string {
	if x != nil {
		return x.Diagnosis
	}
	return nil
}

func (x *Report) GetProcedures() []string {
	if x != nil {
		return x.Procedures
	}
	return nil
}

func (x *Report) GetIcd10() []string {
	if x != nil {
		return x.Icd10
	}
	return nil
}

func (x *Report) GetCpt() []string {
	if x != nil {
		return x.Cpt
	}
	return nil
}

func (x *Report) GetHcpcs() []string {
	if x != nil {
		return x.Hcpcs
	}
	return nil
}

func (x *Report) GetModifiers() []string {
	if x != nil {
		return x.Modifiers
	}
	return nil
}

type GetExtractionResponse struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobStatus  string                 `protobuf:"bytes,2,opt,name=job_status,json=jobStatus,proto3" json:"job_status,omitempty"`
	Reports    []*Report              `protobuf:"bytes,3,rep,name=reports,proto3" json:"reports,omitempty"`
	// The canonical indented JSON array, byte-identical across repeat runs.
	Json          []byte `protobuf:"bytes,4,opt,name=json,proto3" json:"json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionResponse) Reset() {
	*x = GetExtractionResponse{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionResponse) ProtoMessage() {}

func (x *GetExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionResponse.ProtoReflect.Descriptor instead.
func (*GetExtractionResponse) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{9}
}

func (x *GetExtractionResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GetExtractionResponse) GetJobStatus() string {
	if x != nil {
		return x.JobStatus
	}
	return ""
}

func (x *GetExtractionResponse) GetReports() []*Report {
	if x != nil {
		return x.Reports
	}
	return nil
}

func (x *GetExtractionResponse) GetJson() []byte {
	if x != nil {
		return x.Json
	}
	return nil
}

type ExportExtractionsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Empty exports every document with stored reports.
	DocumentIds   []string `protobuf:"bytes,1,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsRequest) Reset() {
	*x = ExportExtractionsRequest{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsRequest) ProtoMessage() {}

func (x *ExportExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ExportExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{10}
}

func (x *ExportExtractionsRequest) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

type ExportExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsResponse) Reset() {
	*x = ExportExtractionsResponse{}
	mi := &file_clinex_v1_clinex_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsResponse) ProtoMessage() {}

func (x *ExportExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clinex_v1_clinex_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ExportExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_clinex_v1_clinex_proto_rawDescGZIP(), []int{11}
}

func (x *ExportExtractionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_clinex_v1_clinex_proto protoreflect.FileDescriptor

const file_clinex_v1_clinex_proto_rawDesc = "" +
	"\n" +
	"\x16clinex/v1/clinex.proto\x12\tclinex.v1\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xf2\x01\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xdc\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x123\n" +
	"\aresults\x18\x06 \x03(\v2\x19.clinex.v1.IngestResponseR\aresults\"\x16\n" +
	"\x14ListDocumentsRequest\"\xb0\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAt\"J\n" +
	"\x15ListDocumentsResponse\x121\n" +
	"\tdocuments\x18\x01 \x03(\v2\x13.clinex.v1.DocumentR\tdocuments\"7\n" +
	"\x14GetExtractionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x99\x02\n" +
	"\x06Report\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12%\n" +
	"\x0eclinical_terms\x18\x02 \x03(\tR\rclinicalTerms\x121\n" +
	"\x14anatomical_locations\x18\x03 \x03(\tR\x13anatomicalLocations\x12\x1c\n" +
	"\tdiagnosis\x18\x04 \x03(\tR\tdiagnosis\x12\x1e\n" +
	"\n" +
	"procedures\x18\x05 \x03(\tR\n" +
	"procedures\x12\x14\n" +
	"\x05icd10\x18\x06 \x03(\tR\x05icd10\x12\x10\n" +
	"\x03cpt\x18\a \x03(\tR\x03cpt\x12\x14\n" +
	"\x05hcpcs\x18\b \x03(\tR\x05hcpcs\x12\x1c\n" +
	"\tmodifiers\x18\t \x03(\tR\tmodifiers\"\x98\x01\n" +
	"\x15GetExtractionResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"job_status\x18\x02 \x01(\tR\tjobStatus\x12+\n" +
	"\areports\x18\x03 \x03(\v2\x11.clinex.v1.ReportR\areports\x12\x12\n" +
	"\x04json\x18\x04 \x01(\fR\x04json\"=\n" +
	"\x18ExportExtractionsRequest\x12!\n" +
	"\fdocument_ids\x18\x01 \x03(\tR\vdocumentIds\"/\n" +
	"\x19ExportExtractionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb3\x01\n" +
	"\x10IngestionService\x12E\n" +
	"\n" +
	"IngestFile\x12\x1c.clinex.v1.IngestFileRequest\x1a\x19.clinex.v1.IngestResponse\x12X\n" +
	"\x0fIngestDirectory\x12!.clinex.v1.IngestDirectoryRequest\x1a\".clinex.v1.IngestDirectoryResponse2\xb8\x01\n" +
	"\x0eReportsService\x12R\n" +
	"\rListDocuments\x12\x1f.clinex.v1.ListDocumentsRequest\x1a .clinex.v1.ListDocumentsResponse\x12R\n" +
	"\rGetExtraction\x12\x1f.clinex.v1.GetExtractionRequest\x1a .clinex.v1.GetExtractionResponse2o\n" +
	"\rExportService\x12^\n" +
	"\x11ExportExtractions\x12#.clinex.v1.ExportExtractionsRequest\x1a$.clinex.v1.ExportExtractionsResponseB@Z>github.com/medrecord-tools/clinex/gen/proto/clinex/v1;clinexv1b\x06proto3"

var (
	file_clinex_v1_clinex_proto_rawDescOnce sync.Once
	file_clinex_v1_clinex_proto_rawDescData []byte
)

func file_clinex_v1_clinex_proto_rawDescGZIP() []byte {
	file_clinex_v1_clinex_proto_rawDescOnce.Do(func() {
		file_clinex_v1_clinex_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_clinex_v1_clinex_proto_rawDesc), len(file_clinex_v1_clinex_proto_rawDesc)))
	})
	return file_clinex_v1_clinex_proto_rawDescData
}

var file_clinex_v1_clinex_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_clinex_v1_clinex_proto_goTypes = []any{
	(*IngestFileRequest)(nil),         // 0: clinex.v1.IngestFileRequest
	(*IngestResponse)(nil),            // 1: clinex.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),    // 2: clinex.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),   // 3: clinex.v1.IngestDirectoryResponse
	(*ListDocumentsRequest)(nil),      // 4: clinex.v1.ListDocumentsRequest
	(*Document)(nil),                  // 5: clinex.v1.Document
	(*ListDocumentsResponse)(nil),     // 6: clinex.v1.ListDocumentsResponse
	(*GetExtractionRequest)(nil),      // 7: clinex.v1.GetExtractionRequest
	(*Report)(nil),                    // 8: clinex.v1.Report
	(*GetExtractionResponse)(nil),     // 9: clinex.v1.GetExtractionResponse
	(*ExportExtractionsRequest)(nil),  // 10: clinex.v1.ExportExtractionsRequest
	(*ExportExtractionsResponse)(nil), // 11: clinex.v1.ExportExtractionsResponse
}
var file_clinex_v1_clinex_proto_depIdxs = []int32{
	1,  // 0: clinex.v1.IngestDirectoryResponse.results:type_name -> clinex.v1.IngestResponse
	5,  // 1: clinex.v1.ListDocumentsResponse.documents:type_name -> clinex.v1.Document
	8,  // 2: clinex.v1.GetExtractionResponse.reports:type_name -> clinex.v1.Report
	0,  // 3: clinex.v1.IngestionService.IngestFile:input_type -> clinex.v1.IngestFileRequest
	2,  // 4: clinex.v1.IngestionService.IngestDirectory:input_type -> clinex.v1.IngestDirectoryRequest
	4,  // 5: clinex.v1.ReportsService.ListDocuments:input_type -> clinex.v1.ListDocumentsRequest
	7,  // 6: clinex.v1.ReportsService.GetExtraction:input_type -> clinex.v1.GetExtractionRequest
	10, // 7: clinex.v1.ExportService.ExportExtractions:input_type -> clinex.v1.ExportExtractionsRequest
	1,  // 8: clinex.v1.IngestionService.IngestFile:output_type -> clinex.v1.IngestResponse
	3,  // 9: clinex.v1.IngestionService.IngestDirectory:output_type -> clinex.v1.IngestDirectoryResponse
	6,  // 10: clinex.v1.ReportsService.ListDocuments:output_type -> clinex.v1.ListDocumentsResponse
	9,  // 11: clinex.v1.ReportsService.GetExtraction:output_type -> clinex.v1.GetExtractionResponse
	11, // 12: clinex.v1.ExportService.ExportExtractions:output_type -> clinex.v1.ExportExtractionsResponse
	8,  // [8:13] is the sub-list for method output_type
	3,  // [3:8] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_clinex_v1_clinex_proto_init() }
func file_clinex_v1_clinex_proto_init() {
	if File_clinex_v1_clinex_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_clinex_v1_clinex_proto_rawDesc), len(file_clinex_v1_clinex_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_clinex_v1_clinex_proto_goTypes,
		DependencyIndexes: file_clinex_v1_clinex_proto_depIdxs,
		MessageInfos:      file_clinex_v1_clinex_proto_msgTypes,
	}.Build()
	File_clinex_v1_clinex_proto = out.File
	file_clinex_v1_clinex_proto_goTypes = nil
	file_clinex_v1_clinex_proto_depIdxs = nil
}
