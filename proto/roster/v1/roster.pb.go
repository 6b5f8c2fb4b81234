// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: roster/v1/roster.proto

package rosterv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Ruleset int32

const (
	Ruleset_RULESET_UNSPECIFIED      Ruleset = 0
	Ruleset_RULESET_CAPPED_CHAMPIONS Ruleset = 1
	Ruleset_RULESET_WEIGHTED_CORE    Ruleset = 2
)

// Enum value maps for Ruleset.
var (
	Ruleset_name = map[int32]string{
		0: "RULESET_UNSPECIFIED",
		1: "RULESET_CAPPED_CHAMPIONS",
		2: "RULESET_WEIGHTED_CORE",
	}
	Ruleset_value = map[string]int32{
		"RULESET_UNSPECIFIED":      0,
		"RULESET_CAPPED_CHAMPIONS": 1,
		"RULESET_WEIGHTED_CORE":    2,
	}
)

func (x Ruleset) Enum() *Ruleset {
	p := new(Ruleset)
	*p = x
	return p
}

func (x Ruleset) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Ruleset) Descriptor() protoreflect.EnumDescriptor {
	return file_roster_v1_roster_proto_enumTypes[0].Descriptor()
}

func (Ruleset) Type() protoreflect.EnumType {
	return &file_roster_v1_roster_proto_enumTypes[0]
}

func (x Ruleset) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Ruleset.Descriptor instead.
func (Ruleset) EnumDescriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{0}
}

type Entry struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id       int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name     string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Points   int64  `protobuf:"varint,3,opt,name=points,proto3" json:"points,omitempty"`
	UnitType string `protobuf:"bytes,4,opt,name=unit_type,json=unitType,proto3" json:"unit_type,omitempty"`
}

func (x *Entry) Reset() {
	*x = Entry{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Entry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Entry) ProtoMessage() {}

func (x *Entry) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Entry.ProtoReflect.Descriptor instead.
func (*Entry) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{0}
}

func (x *Entry) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Entry) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Entry) GetPoints() int64 {
	if x != nil {
		return x.Points
	}
	return 0
}

func (x *Entry) GetUnitType() string {
	if x != nil {
		return x.UnitType
	}
	return ""
}

type Composition struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Leaders          int32 `protobuf:"varint,1,opt,name=leaders,proto3" json:"leaders,omitempty"`
	Core             int32 `protobuf:"varint,2,opt,name=core,proto3" json:"core,omitempty"`
	Special          int32 `protobuf:"varint,3,opt,name=special,proto3" json:"special,omitempty"`
	ChampionsOrElite int32 `protobuf:"varint,4,opt,name=champions_or_elite,json=championsOrElite,proto3" json:"champions_or_elite,omitempty"`
	RequiredCore     int32 `protobuf:"varint,5,opt,name=required_core,json=requiredCore,proto3" json:"required_core,omitempty"`
	// champion_cap vale -1 quando il ruleset non prevede cap.
	ChampionCap int32 `protobuf:"varint,6,opt,name=champion_cap,json=championCap,proto3" json:"champion_cap,omitempty"`
}

func (x *Composition) Reset() {
	*x = Composition{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Composition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Composition) ProtoMessage() {}

func (x *Composition) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Composition.ProtoReflect.Descriptor instead.
func (*Composition) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{1}
}

func (x *Composition) GetLeaders() int32 {
	if x != nil {
		return x.Leaders
	}
	return 0
}

func (x *Composition) GetCore() int32 {
	if x != nil {
		return x.Core
	}
	return 0
}

func (x *Composition) GetSpecial() int32 {
	if x != nil {
		return x.Special
	}
	return 0
}

func (x *Composition) GetChampionsOrElite() int32 {
	if x != nil {
		return x.ChampionsOrElite
	}
	return 0
}

func (x *Composition) GetRequiredCore() int32 {
	if x != nil {
		return x.RequiredCore
	}
	return 0
}

func (x *Composition) GetChampionCap() int32 {
	if x != nil {
		return x.ChampionCap
	}
	return 0
}

// Validation è lo snapshot ricalcolato dopo ogni mutazione.
type Validation struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	TotalPoints int64        `protobuf:"varint,1,opt,name=total_points,json=totalPoints,proto3" json:"total_points,omitempty"`
	Composition *Composition `protobuf:"bytes,2,opt,name=composition,proto3" json:"composition,omitempty"`
	Severity    string       `protobuf:"bytes,3,opt,name=severity,proto3" json:"severity,omitempty"`
	Message     string       `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *Validation) Reset() {
	*x = Validation{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Validation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Validation) ProtoMessage() {}

func (x *Validation) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Validation.ProtoReflect.Descriptor instead.
func (*Validation) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{2}
}

func (x *Validation) GetTotalPoints() int64 {
	if x != nil {
		return x.TotalPoints
	}
	return 0
}

func (x *Validation) GetComposition() *Composition {
	if x != nil {
		return x.Composition
	}
	return nil
}

func (x *Validation) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Validation) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type CreateSessionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Faction     string  `protobuf:"bytes,1,opt,name=faction,proto3" json:"faction,omitempty"`
	PointsLimit int64   `protobuf:"varint,2,opt,name=points_limit,json=pointsLimit,proto3" json:"points_limit,omitempty"`
	Ruleset     Ruleset `protobuf:"varint,3,opt,name=ruleset,proto3,enum=roster.v1.Ruleset" json:"ruleset,omitempty"`
}

func (x *CreateSessionRequest) Reset() {
	*x = CreateSessionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionRequest) ProtoMessage() {}

func (x *CreateSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionRequest.ProtoReflect.Descriptor instead.
func (*CreateSessionRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{3}
}

func (x *CreateSessionRequest) GetFaction() string {
	if x != nil {
		return x.Faction
	}
	return ""
}

func (x *CreateSessionRequest) GetPointsLimit() int64 {
	if x != nil {
		return x.PointsLimit
	}
	return 0
}

func (x *CreateSessionRequest) GetRuleset() Ruleset {
	if x != nil {
		return x.Ruleset
	}
	return Ruleset_RULESET_UNSPECIFIED
}

type CreateSessionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (x *CreateSessionResponse) Reset() {
	*x = CreateSessionResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionResponse) ProtoMessage() {}

func (x *CreateSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionResponse.ProtoReflect.Descriptor instead.
func (*CreateSessionResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{4}
}

func (x *CreateSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type AddEntryRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UnitName  string `protobuf:"bytes,2,opt,name=unit_name,json=unitName,proto3" json:"unit_name,omitempty"`
}

func (x *AddEntryRequest) Reset() {
	*x = AddEntryRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddEntryRequest) ProtoMessage() {}

func (x *AddEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddEntryRequest.ProtoReflect.Descriptor instead.
func (*AddEntryRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{5}
}

func (x *AddEntryRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *AddEntryRequest) GetUnitName() string {
	if x != nil {
		return x.UnitName
	}
	return ""
}

type AddEntryResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Created    bool        `protobuf:"varint,1,opt,name=created,proto3" json:"created,omitempty"`
	Warning    string      `protobuf:"bytes,2,opt,name=warning,proto3" json:"warning,omitempty"`
	Entry      *Entry      `protobuf:"bytes,3,opt,name=entry,proto3" json:"entry,omitempty"`
	Validation *Validation `protobuf:"bytes,4,opt,name=validation,proto3" json:"validation,omitempty"`
}

func (x *AddEntryResponse) Reset() {
	*x = AddEntryResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddEntryResponse) ProtoMessage() {}

func (x *AddEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddEntryResponse.ProtoReflect.Descriptor instead.
func (*AddEntryResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{6}
}

func (x *AddEntryResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

func (x *AddEntryResponse) GetWarning() string {
	if x != nil {
		return x.Warning
	}
	return ""
}

func (x *AddEntryResponse) GetEntry() *Entry {
	if x != nil {
		return x.Entry
	}
	return nil
}

func (x *AddEntryResponse) GetValidation() *Validation {
	if x != nil {
		return x.Validation
	}
	return nil
}

type RemoveEntryRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	EntryId   int64  `protobuf:"varint,2,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
}

func (x *RemoveEntryRequest) Reset() {
	*x = RemoveEntryRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RemoveEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveEntryRequest) ProtoMessage() {}

func (x *RemoveEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveEntryRequest.ProtoReflect.Descriptor instead.
func (*RemoveEntryRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{7}
}

func (x *RemoveEntryRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *RemoveEntryRequest) GetEntryId() int64 {
	if x != nil {
		return x.EntryId
	}
	return 0
}

type RemoveEntryResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Removed    bool        `protobuf:"varint,1,opt,name=removed,proto3" json:"removed,omitempty"`
	Validation *Validation `protobuf:"bytes,2,opt,name=validation,proto3" json:"validation,omitempty"`
}

func (x *RemoveEntryResponse) Reset() {
	*x = RemoveEntryResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RemoveEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveEntryResponse) ProtoMessage() {}

func (x *RemoveEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveEntryResponse.ProtoReflect.Descriptor instead.
func (*RemoveEntryResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{8}
}

func (x *RemoveEntryResponse) GetRemoved() bool {
	if x != nil {
		return x.Removed
	}
	return false
}

func (x *RemoveEntryResponse) GetValidation() *Validation {
	if x != nil {
		return x.Validation
	}
	return nil
}

type ClearRosterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (x *ClearRosterRequest) Reset() {
	*x = ClearRosterRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ClearRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearRosterRequest) ProtoMessage() {}

func (x *ClearRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearRosterRequest.ProtoReflect.Descriptor instead.
func (*ClearRosterRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{9}
}

func (x *ClearRosterRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ClearRosterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Validation *Validation `protobuf:"bytes,1,opt,name=validation,proto3" json:"validation,omitempty"`
}

func (x *ClearRosterResponse) Reset() {
	*x = ClearRosterResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ClearRosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearRosterResponse) ProtoMessage() {}

func (x *ClearRosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearRosterResponse.ProtoReflect.Descriptor instead.
func (*ClearRosterResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{10}
}

func (x *ClearRosterResponse) GetValidation() *Validation {
	if x != nil {
		return x.Validation
	}
	return nil
}

type SetPointsLimitRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId   string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	PointsLimit int64  `protobuf:"varint,2,opt,name=points_limit,json=pointsLimit,proto3" json:"points_limit,omitempty"`
}

func (x *SetPointsLimitRequest) Reset() {
	*x = SetPointsLimitRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetPointsLimitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPointsLimitRequest) ProtoMessage() {}

func (x *SetPointsLimitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPointsLimitRequest.ProtoReflect.Descriptor instead.
func (*SetPointsLimitRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{11}
}

func (x *SetPointsLimitRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SetPointsLimitRequest) GetPointsLimit() int64 {
	if x != nil {
		return x.PointsLimit
	}
	return 0
}

type SetPointsLimitResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Validation *Validation `protobuf:"bytes,1,opt,name=validation,proto3" json:"validation,omitempty"`
}

func (x *SetPointsLimitResponse) Reset() {
	*x = SetPointsLimitResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetPointsLimitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPointsLimitResponse) ProtoMessage() {}

func (x *SetPointsLimitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPointsLimitResponse.ProtoReflect.Descriptor instead.
func (*SetPointsLimitResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{12}
}

func (x *SetPointsLimitResponse) GetValidation() *Validation {
	if x != nil {
		return x.Validation
	}
	return nil
}

type SetFactionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Faction   string `protobuf:"bytes,2,opt,name=faction,proto3" json:"faction,omitempty"`
}

func (x *SetFactionRequest) Reset() {
	*x = SetFactionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetFactionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFactionRequest) ProtoMessage() {}

func (x *SetFactionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFactionRequest.ProtoReflect.Descriptor instead.
func (*SetFactionRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{13}
}

func (x *SetFactionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SetFactionRequest) GetFaction() string {
	if x != nil {
		return x.Faction
	}
	return ""
}

type SetFactionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Validation *Validation `protobuf:"bytes,1,opt,name=validation,proto3" json:"validation,omitempty"`
}

func (x *SetFactionResponse) Reset() {
	*x = SetFactionResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetFactionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFactionResponse) ProtoMessage() {}

func (x *SetFactionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFactionResponse.ProtoReflect.Descriptor instead.
func (*SetFactionResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{14}
}

func (x *SetFactionResponse) GetValidation() *Validation {
	if x != nil {
		return x.Validation
	}
	return nil
}

type GetRosterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (x *GetRosterRequest) Reset() {
	*x = GetRosterRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRosterRequest) ProtoMessage() {}

func (x *GetRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRosterRequest.ProtoReflect.Descriptor instead.
func (*GetRosterRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{15}
}

func (x *GetRosterRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetRosterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Faction     string      `protobuf:"bytes,1,opt,name=faction,proto3" json:"faction,omitempty"`
	PointsLimit int64       `protobuf:"varint,2,opt,name=points_limit,json=pointsLimit,proto3" json:"points_limit,omitempty"`
	Ruleset     Ruleset     `protobuf:"varint,3,opt,name=ruleset,proto3,enum=roster.v1.Ruleset" json:"ruleset,omitempty"`
	Entries     []*Entry    `protobuf:"bytes,4,rep,name=entries,proto3" json:"entries,omitempty"`
	Validation  *Validation `protobuf:"bytes,5,opt,name=validation,proto3" json:"validation,omitempty"`
}

func (x *GetRosterResponse) Reset() {
	*x = GetRosterResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetRosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRosterResponse) ProtoMessage() {}

func (x *GetRosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRosterResponse.ProtoReflect.Descriptor instead.
func (*GetRosterResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{16}
}

func (x *GetRosterResponse) GetFaction() string {
	if x != nil {
		return x.Faction
	}
	return ""
}

func (x *GetRosterResponse) GetPointsLimit() int64 {
	if x != nil {
		return x.PointsLimit
	}
	return 0
}

func (x *GetRosterResponse) GetRuleset() Ruleset {
	if x != nil {
		return x.Ruleset
	}
	return Ruleset_RULESET_UNSPECIFIED
}

func (x *GetRosterResponse) GetEntries() []*Entry {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *GetRosterResponse) GetValidation() *Validation {
	if x != nil {
		return x.Validation
	}
	return nil
}

type ExportRosterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (x *ExportRosterRequest) Reset() {
	*x = ExportRosterRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ExportRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRosterRequest) ProtoMessage() {}

func (x *ExportRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRosterRequest.ProtoReflect.Descriptor instead.
func (*ExportRosterRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{17}
}

func (x *ExportRosterRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ExportRosterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (x *ExportRosterResponse) Reset() {
	*x = ExportRosterResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[18]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ExportRosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRosterResponse) ProtoMessage() {}

func (x *ExportRosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[18]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRosterResponse.ProtoReflect.Descriptor instead.
func (*ExportRosterResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{18}
}

func (x *ExportRosterResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

var File_roster_v1_roster_proto protoreflect.FileDescriptor

var file_roster_v1_roster_proto_rawDesc = []byte{
	0x0a, 0x16, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2f, 0x76, 0x31, 0x2f, 0x72, 0x6f, 0x73, 0x74,
	0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x09, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72,
	0x2e, 0x76, 0x31, 0x22, 0x60, 0x0a, 0x05, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x0e, 0x0a, 0x02,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x02, 0x69, 0x64, 0x12, 0x12, 0x0a, 0x04,
	0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65,
	0x12, 0x16, 0x0a, 0x06, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x06, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x12, 0x1b, 0x0a, 0x09, 0x75, 0x6e, 0x69, 0x74,
	0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x6e, 0x69,
	0x74, 0x54, 0x79, 0x70, 0x65, 0x22, 0xcb, 0x01, 0x0a, 0x0b, 0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73,
	0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x18, 0x0a, 0x07, 0x6c, 0x65, 0x61, 0x64, 0x65, 0x72, 0x73,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x07, 0x6c, 0x65, 0x61, 0x64, 0x65, 0x72, 0x73, 0x12,
	0x12, 0x0a, 0x04, 0x63, 0x6f, 0x72, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x04, 0x63,
	0x6f, 0x72, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x70, 0x65, 0x63, 0x69, 0x61, 0x6c, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x07, 0x73, 0x70, 0x65, 0x63, 0x69, 0x61, 0x6c, 0x12, 0x2c, 0x0a,
	0x12, 0x63, 0x68, 0x61, 0x6d, 0x70, 0x69, 0x6f, 0x6e, 0x73, 0x5f, 0x6f, 0x72, 0x5f, 0x65, 0x6c,
	0x69, 0x74, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x10, 0x63, 0x68, 0x61, 0x6d, 0x70,
	0x69, 0x6f, 0x6e, 0x73, 0x4f, 0x72, 0x45, 0x6c, 0x69, 0x74, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x72,
	0x65, 0x71, 0x75, 0x69, 0x72, 0x65, 0x64, 0x5f, 0x63, 0x6f, 0x72, 0x65, 0x18, 0x05, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x0c, 0x72, 0x65, 0x71, 0x75, 0x69, 0x72, 0x65, 0x64, 0x43, 0x6f, 0x72, 0x65,
	0x12, 0x21, 0x0a, 0x0c, 0x63, 0x68, 0x61, 0x6d, 0x70, 0x69, 0x6f, 0x6e, 0x5f, 0x63, 0x61, 0x70,
	0x18, 0x06, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0b, 0x63, 0x68, 0x61, 0x6d, 0x70, 0x69, 0x6f, 0x6e,
	0x43, 0x61, 0x70, 0x22, 0x9f, 0x01, 0x0a, 0x0a, 0x56, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x21, 0x0a, 0x0c, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x70, 0x6f, 0x69, 0x6e,
	0x74, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x50,
	0x6f, 0x69, 0x6e, 0x74, 0x73, 0x12, 0x38, 0x0a, 0x0b, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x72, 0x6f, 0x73,
	0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x52, 0x0b, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12,
	0x1a, 0x0a, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69, 0x74, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69, 0x74, 0x79, 0x12, 0x18, 0x0a, 0x07, 0x6d,
	0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65,
	0x73, 0x73, 0x61, 0x67, 0x65, 0x22, 0x81, 0x01, 0x0a, 0x14, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65,
	0x53, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18,
	0x0a, 0x07, 0x66, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x07, 0x66, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x21, 0x0a, 0x0c, 0x70, 0x6f, 0x69, 0x6e,
	0x74, 0x73, 0x5f, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b,
	0x70, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x4c, 0x69, 0x6d, 0x69, 0x74, 0x12, 0x2c, 0x0a, 0x07, 0x72,
	0x75, 0x6c, 0x65, 0x73, 0x65, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x12, 0x2e, 0x72,
	0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x75, 0x6c, 0x65, 0x73, 0x65, 0x74,
	0x52, 0x07, 0x72, 0x75, 0x6c, 0x65, 0x73, 0x65, 0x74, 0x22, 0x36, 0x0a, 0x15, 0x43, 0x72, 0x65,
	0x61, 0x74, 0x65, 0x53, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x49,
	0x64, 0x22, 0x4d, 0x0a, 0x0f, 0x41, 0x64, 0x64, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f,
	0x6e, 0x49, 0x64, 0x12, 0x1b, 0x0a, 0x09, 0x75, 0x6e, 0x69, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x6e, 0x69, 0x74, 0x4e, 0x61, 0x6d, 0x65,
	0x22, 0xa5, 0x01, 0x0a, 0x10, 0x41, 0x64, 0x64, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x12,
	0x18, 0x0a, 0x07, 0x77, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x77, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x12, 0x26, 0x0a, 0x05, 0x65, 0x6e, 0x74,
	0x72, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x10, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65,
	0x72, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x05, 0x65, 0x6e, 0x74, 0x72,
	0x79, 0x12, 0x35, 0x0a, 0x0a, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18,
	0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76,
	0x31, 0x2e, 0x56, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x76, 0x61,
	0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x4e, 0x0a, 0x12, 0x52, 0x65, 0x6d, 0x6f,
	0x76, 0x65, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d,
	0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x19, 0x0a,
	0x08, 0x65, 0x6e, 0x74, 0x72, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x07, 0x65, 0x6e, 0x74, 0x72, 0x79, 0x49, 0x64, 0x22, 0x66, 0x0a, 0x13, 0x52, 0x65, 0x6d, 0x6f,
	0x76, 0x65, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x18, 0x0a, 0x07, 0x72, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08,
	0x52, 0x07, 0x72, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x64, 0x12, 0x35, 0x0a, 0x0a, 0x76, 0x61, 0x6c,
	0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e,
	0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x61, 0x6c, 0x69, 0x64, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x22, 0x33, 0x0a, 0x12, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f,
	0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x65, 0x73, 0x73,
	0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22, 0x4c, 0x0a, 0x13, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x52, 0x6f,
	0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x35, 0x0a, 0x0a,
	0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x15, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x61, 0x6c,
	0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x22, 0x59, 0x0a, 0x15, 0x53, 0x65, 0x74, 0x50, 0x6f, 0x69, 0x6e, 0x74, 0x73,
	0x4c, 0x69, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a,
	0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x09, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x70,
	0x6f, 0x69, 0x6e, 0x74, 0x73, 0x5f, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x0b, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x4c, 0x69, 0x6d, 0x69, 0x74, 0x22, 0x4f,
	0x0a, 0x16, 0x53, 0x65, 0x74, 0x50, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x4c, 0x69, 0x6d, 0x69, 0x74,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x35, 0x0a, 0x0a, 0x76, 0x61, 0x6c, 0x69,
	0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x72,
	0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x22,
	0x4c, 0x0a, 0x11, 0x53, 0x65, 0x74, 0x46, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f,
	0x6e, 0x49, 0x64, 0x12, 0x18, 0x0a, 0x07, 0x66, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x66, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x4b, 0x0a,
	0x12, 0x53, 0x65, 0x74, 0x46, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x35, 0x0a, 0x0a, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72,
	0x2e, 0x76, 0x31, 0x2e, 0x56, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a,
	0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x31, 0x0a, 0x10, 0x47, 0x65,
	0x74, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d,
	0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22, 0xe1, 0x01,
	0x0a, 0x11, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x66, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x66, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x21, 0x0a,
	0x0c, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x5f, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0b, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x4c, 0x69, 0x6d, 0x69, 0x74,
	0x12, 0x2c, 0x0a, 0x07, 0x72, 0x75, 0x6c, 0x65, 0x73, 0x65, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x0e, 0x32, 0x12, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x75,
	0x6c, 0x65, 0x73, 0x65, 0x74, 0x52, 0x07, 0x72, 0x75, 0x6c, 0x65, 0x73, 0x65, 0x74, 0x12, 0x2a,
	0x0a, 0x07, 0x65, 0x6e, 0x74, 0x72, 0x69, 0x65, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x0b, 0x32,
	0x10, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x6e, 0x74, 0x72,
	0x79, 0x52, 0x07, 0x65, 0x6e, 0x74, 0x72, 0x69, 0x65, 0x73, 0x12, 0x35, 0x0a, 0x0a, 0x76, 0x61,
	0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15,
	0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x61, 0x6c, 0x69, 0x64,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x22, 0x34, 0x0a, 0x13, 0x45, 0x78, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x6f, 0x73, 0x74, 0x65,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73,
	0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x65,
	0x73, 0x73, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22, 0x2a, 0x0a, 0x14, 0x45, 0x78, 0x70, 0x6f, 0x72,
	0x74, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x12, 0x0a, 0x04, 0x74, 0x65, 0x78, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74,
	0x65, 0x78, 0x74, 0x2a, 0x5b, 0x0a, 0x07, 0x52, 0x75, 0x6c, 0x65, 0x73, 0x65, 0x74, 0x12, 0x17,
	0x0a, 0x13, 0x52, 0x55, 0x4c, 0x45, 0x53, 0x45, 0x54, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43,
	0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1c, 0x0a, 0x18, 0x52, 0x55, 0x4c, 0x45, 0x53,
	0x45, 0x54, 0x5f, 0x43, 0x41, 0x50, 0x50, 0x45, 0x44, 0x5f, 0x43, 0x48, 0x41, 0x4d, 0x50, 0x49,
	0x4f, 0x4e, 0x53, 0x10, 0x01, 0x12, 0x19, 0x0a, 0x15, 0x52, 0x55, 0x4c, 0x45, 0x53, 0x45, 0x54,
	0x5f, 0x57, 0x45, 0x49, 0x47, 0x48, 0x54, 0x45, 0x44, 0x5f, 0x43, 0x4f, 0x52, 0x45, 0x10, 0x02,
	0x32, 0xff, 0x04, 0x0a, 0x0d, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x53, 0x65, 0x72, 0x76, 0x69,
	0x63, 0x65, 0x12, 0x52, 0x0a, 0x0d, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x65, 0x73, 0x73,
	0x69, 0x6f, 0x6e, 0x12, 0x1f, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e,
	0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31,
	0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x43, 0x0a, 0x08, 0x41, 0x64, 0x64, 0x45, 0x6e, 0x74,
	0x72, 0x79, 0x12, 0x1a, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x41,
	0x64, 0x64, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b,
	0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x45, 0x6e,
	0x74, 0x72, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4c, 0x0a, 0x0b, 0x52,
	0x65, 0x6d, 0x6f, 0x76, 0x65, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x1d, 0x2e, 0x72, 0x6f, 0x73,
	0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x45, 0x6e, 0x74,
	0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x72, 0x6f, 0x73, 0x74,
	0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x45, 0x6e, 0x74, 0x72,
	0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4c, 0x0a, 0x0b, 0x43, 0x6c, 0x65,
	0x61, 0x72, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x12, 0x1d, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65,
	0x72, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72,
	0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x55, 0x0a, 0x0e, 0x53, 0x65, 0x74, 0x50, 0x6f,
	0x69, 0x6e, 0x74, 0x73, 0x4c, 0x69, 0x6d, 0x69, 0x74, 0x12, 0x20, 0x2e, 0x72, 0x6f, 0x73, 0x74,
	0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x50, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x4c,
	0x69, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e, 0x72, 0x6f,
	0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x50, 0x6f, 0x69, 0x6e, 0x74,
	0x73, 0x4c, 0x69, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x49,
	0x0a, 0x0a, 0x53, 0x65, 0x74, 0x46, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1c, 0x2e, 0x72,
	0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x46, 0x61, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x72, 0x6f, 0x73,
	0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x46, 0x61, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x46, 0x0a, 0x09, 0x47, 0x65, 0x74,
	0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x12, 0x1b, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e,
	0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e,
	0x47, 0x65, 0x74, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x4f, 0x0a, 0x0c, 0x45, 0x78, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x6f, 0x73, 0x74, 0x65,
	0x72, 0x12, 0x1e, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x78,
	0x70, 0x6f, 0x72, 0x74, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x1f, 0x2e, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x78,
	0x70, 0x6f, 0x72, 0x74, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x42, 0x24, 0x5a, 0x22, 0x41, 0x72, 0x6d, 0x79, 0x46, 0x6f, 0x72, 0x67, 0x65, 0x2f,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2f, 0x76, 0x31, 0x3b,
	0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_roster_v1_roster_proto_rawDescOnce sync.Once
	file_roster_v1_roster_proto_rawDescData = file_roster_v1_roster_proto_rawDesc
)

func file_roster_v1_roster_proto_rawDescGZIP() []byte {
	file_roster_v1_roster_proto_rawDescOnce.Do(func() {
		file_roster_v1_roster_proto_rawDescData = protoimpl.X.CompressGZIP(file_roster_v1_roster_proto_rawDescData)
	})
	return file_roster_v1_roster_proto_rawDescData
}

var file_roster_v1_roster_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_roster_v1_roster_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_roster_v1_roster_proto_goTypes = []any{
	(Ruleset)(0),                   // 0: roster.v1.Ruleset
	(*Entry)(nil),                  // 1: roster.v1.Entry
	(*Composition)(nil),            // 2: roster.v1.Composition
	(*Validation)(nil),             // 3: roster.v1.Validation
	(*CreateSessionRequest)(nil),   // 4: roster.v1.CreateSessionRequest
	(*CreateSessionResponse)(nil),  // 5: roster.v1.CreateSessionResponse
	(*AddEntryRequest)(nil),        // 6: roster.v1.AddEntryRequest
	(*AddEntryResponse)(nil),       // 7: roster.v1.AddEntryResponse
	(*RemoveEntryRequest)(nil),     // 8: roster.v1.RemoveEntryRequest
	(*RemoveEntryResponse)(nil),    // 9: roster.v1.RemoveEntryResponse
	(*ClearRosterRequest)(nil),     // 10: roster.v1.ClearRosterRequest
	(*ClearRosterResponse)(nil),    // 11: roster.v1.ClearRosterResponse
	(*SetPointsLimitRequest)(nil),  // 12: roster.v1.SetPointsLimitRequest
	(*SetPointsLimitResponse)(nil), // 13: roster.v1.SetPointsLimitResponse
	(*SetFactionRequest)(nil),      // 14: roster.v1.SetFactionRequest
	(*SetFactionResponse)(nil),     // 15: roster.v1.SetFactionResponse
	(*GetRosterRequest)(nil),       // 16: roster.v1.GetRosterRequest
	(*GetRosterResponse)(nil),      // 17: roster.v1.GetRosterResponse
	(*ExportRosterRequest)(nil),    // 18: roster.v1.ExportRosterRequest
	(*ExportRosterResponse)(nil),   // 19: roster.v1.ExportRosterResponse
}
var file_roster_v1_roster_proto_depIdxs = []int32{
	2,  // 0: roster.v1.Validation.composition:type_name -> roster.v1.Composition
	0,  // 1: roster.v1.CreateSessionRequest.ruleset:type_name -> roster.v1.Ruleset
	1,  // 2: roster.v1.AddEntryResponse.entry:type_name -> roster.v1.Entry
	3,  // 3: roster.v1.AddEntryResponse.validation:type_name -> roster.v1.Validation
	3,  // 4: roster.v1.RemoveEntryResponse.validation:type_name -> roster.v1.Validation
	3,  // 5: roster.v1.ClearRosterResponse.validation:type_name -> roster.v1.Validation
	3,  // 6: roster.v1.SetPointsLimitResponse.validation:type_name -> roster.v1.Validation
	3,  // 7: roster.v1.SetFactionResponse.validation:type_name -> roster.v1.Validation
	0,  // 8: roster.v1.GetRosterResponse.ruleset:type_name -> roster.v1.Ruleset
	1,  // 9: roster.v1.GetRosterResponse.entries:type_name -> roster.v1.Entry
	3,  // 10: roster.v1.GetRosterResponse.validation:type_name -> roster.v1.Validation
	4,  // 11: roster.v1.RosterService.CreateSession:input_type -> roster.v1.CreateSessionRequest
	6,  // 12: roster.v1.RosterService.AddEntry:input_type -> roster.v1.AddEntryRequest
	8,  // 13: roster.v1.RosterService.RemoveEntry:input_type -> roster.v1.RemoveEntryRequest
	10, // 14: roster.v1.RosterService.ClearRoster:input_type -> roster.v1.ClearRosterRequest
	12, // 15: roster.v1.RosterService.SetPointsLimit:input_type -> roster.v1.SetPointsLimitRequest
	14, // 16: roster.v1.RosterService.SetFaction:input_type -> roster.v1.SetFactionRequest
	16, // 17: roster.v1.RosterService.GetRoster:input_type -> roster.v1.GetRosterRequest
	18, // 18: roster.v1.RosterService.ExportRoster:input_type -> roster.v1.ExportRosterRequest
	5,  // 19: roster.v1.RosterService.CreateSession:output_type -> roster.v1.CreateSessionResponse
	7,  // 20: roster.v1.RosterService.AddEntry:output_type -> roster.v1.AddEntryResponse
	9,  // 21: roster.v1.RosterService.RemoveEntry:output_type -> roster.v1.RemoveEntryResponse
	11, // 22: roster.v1.RosterService.ClearRoster:output_type -> roster.v1.ClearRosterResponse
	13, // 23: roster.v1.RosterService.SetPointsLimit:output_type -> roster.v1.SetPointsLimitResponse
	15, // 24: roster.v1.RosterService.SetFaction:output_type -> roster.v1.SetFactionResponse
	17, // 25: roster.v1.RosterService.GetRoster:output_type -> roster.v1.GetRosterResponse
	19, // 26: roster.v1.RosterService.ExportRoster:output_type -> roster.v1.ExportRosterResponse
	19, // [19:27] is the sub-list for method output_type
	11, // [11:19] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_roster_v1_roster_proto_init() }
func file_roster_v1_roster_proto_init() {
	if File_roster_v1_roster_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_roster_v1_roster_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*Entry); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*Composition); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*Validation); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*CreateSessionRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*CreateSessionResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*AddEntryRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*AddEntryResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*RemoveEntryRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*RemoveEntryResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*ClearRosterRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*ClearRosterResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*SetPointsLimitRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*SetPointsLimitResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*SetFactionRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*SetFactionResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*GetRosterRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[16].Exporter = func(v any, i int) any {
			switch v := v.(*GetRosterResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[17].Exporter = func(v any, i int) any {
			switch v := v.(*ExportRosterRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[18].Exporter = func(v any, i int) any {
			switch v := v.(*ExportRosterResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_roster_v1_roster_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_roster_v1_roster_proto_goTypes,
		DependencyIndexes: file_roster_v1_roster_proto_depIdxs,
		EnumInfos:         file_roster_v1_roster_proto_enumTypes,
		MessageInfos:      file_roster_v1_roster_proto_msgTypes,
	}.Build()
	File_roster_v1_roster_proto = out.File
	file_roster_v1_roster_proto_rawDesc = nil
	file_roster_v1_roster_proto_goTypes = nil
	file_roster_v1_roster_proto_depIdxs = nil
}
