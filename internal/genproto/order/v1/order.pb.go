// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: order/v1/order.proto

package orderv1

import (
	v1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/common/v1"
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

type CreateOrderRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	CustomerId      string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Items           []*v1.OrderItem        `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	ShippingAddress string                 `protobuf:"bytes,3,opt,name=shipping_address,json=shippingAddress,proto3" json:"shipping_address,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateOrderRequest) Reset() {
	*x = CreateOrderRequest{}
	mi := &file_order_v1_order_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderRequest) ProtoMessage() {}

func (x *CreateOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_order_v1_order_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderRequest.ProtoReflect.Descriptor instead.
func (*CreateOrderRequest) Descriptor() ([]byte, []int) {
	return file_order_v1_order_proto_rawDescGZIP(), []int{0}
}

func (x *CreateOrderRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *CreateOrderRequest) GetItems() []*v1.OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *CreateOrderRequest) GetShippingAddress() string {
	if x != nil {
		return x.ShippingAddress
	}
	return ""
}

type CreateOrderResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Success               bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Order                 *v1.Order              `protobuf:"bytes,2,opt,name=order,proto3" json:"order,omitempty"`
	Payment               *v1.Payment            `protobuf:"bytes,3,opt,name=payment,proto3" json:"payment,omitempty"`
	Notification          *v1.Notification       `protobuf:"bytes,4,opt,name=notification,proto3" json:"notification,omitempty"`
	TotalProcessingTimeMs float64                `protobuf:"fixed64,5,opt,name=total_processing_time_ms,json=totalProcessingTimeMs,proto3" json:"total_processing_time_ms,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *CreateOrderResponse) Reset() {
	*x = CreateOrderResponse{}
	mi := &file_order_v1_order_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderResponse) ProtoMessage() {}

func (x *CreateOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_order_v1_order_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderResponse.ProtoReflect.Descriptor instead.
func (*CreateOrderResponse) Descriptor() ([]byte, []int) {
	return file_order_v1_order_proto_rawDescGZIP(), []int{1}
}

func (x *CreateOrderResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *CreateOrderResponse) GetOrder() *v1.Order {
	if x != nil {
		return x.Order
	}
	return nil
}

func (x *CreateOrderResponse) GetPayment() *v1.Payment {
	if x != nil {
		return x.Payment
	}
	return nil
}

func (x *CreateOrderResponse) GetNotification() *v1.Notification {
	if x != nil {
		return x.Notification
	}
	return nil
}

func (x *CreateOrderResponse) GetTotalProcessingTimeMs() float64 {
	if x != nil {
		return x.TotalProcessingTimeMs
	}
	return 0
}

var File_order_v1_order_proto protoreflect.FileDescriptor

const file_order_v1_order_proto_rawDesc = "" +
	"\n" +
	"\x14order/v1/order.proto\x12\x12benchmark.order.v1\x1a\x16common/v1/common.proto\"\x96\x01\n" +
	"\x12CreateOrderRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x124\n" +
	"\x05items\x18\x02 \x03(\v2\x1e.benchmark.common.v1.OrderItemR\x05items\x12)\n" +
	"\x10shipping_address\x18\x03 \x01(\tR\x0fshippingAddress\"\x99\x02\n" +
	"\x13CreateOrderResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x120\n" +
	"\x05order\x18\x02 \x01(\v2\x1a.benchmark.common.v1.OrderR\x05order\x126\n" +
	"\apayment\x18\x03 \x01(\v2\x1c.benchmark.common.v1.PaymentR\apayment\x12E\n" +
	"\fnotification\x18\x04 \x01(\v2!.benchmark.common.v1.NotificationR\fnotification\x127\n" +
	"\x18total_processing_time_ms\x18\x05 \x01(\x01R\x15totalProcessingTimeMs2n\n" +
	"\fOrderService\x12^\n" +
	"\vCreateOrder\x12&.benchmark.order.v1.CreateOrderRequest\x1a'.benchmark.order.v1.CreateOrderResponseBbZ`github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/order/v1;orderv1b\x06proto3"

var (
	file_order_v1_order_proto_rawDescOnce sync.Once
	file_order_v1_order_proto_rawDescData []byte
)

func file_order_v1_order_proto_rawDescGZIP() []byte {
	file_order_v1_order_proto_rawDescOnce.Do(func() {
		file_order_v1_order_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_order_v1_order_proto_rawDesc), len(file_order_v1_order_proto_rawDesc)))
	})
	return file_order_v1_order_proto_rawDescData
}

var file_order_v1_order_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_order_v1_order_proto_goTypes = []any{
	(*CreateOrderRequest)(nil),  // 0: benchmark.order.v1.CreateOrderRequest
	(*CreateOrderResponse)(nil), // 1: benchmark.order.v1.CreateOrderResponse
	(*v1.OrderItem)(nil),        // 2: benchmark.common.v1.OrderItem
	(*v1.Order)(nil),            // 3: benchmark.common.v1.Order
	(*v1.Payment)(nil),          // 4: benchmark.common.v1.Payment
	(*v1.Notification)(nil),     // 5: benchmark.common.v1.Notification
}
var file_order_v1_order_proto_depIdxs = []int32{
	2, // 0: benchmark.order.v1.CreateOrderRequest.items:type_name -> benchmark.common.v1.OrderItem
	3, // 1: benchmark.order.v1.CreateOrderResponse.order:type_name -> benchmark.common.v1.Order
	4, // 2: benchmark.order.v1.CreateOrderResponse.payment:type_name -> benchmark.common.v1.Payment
	5, // 3: benchmark.order.v1.CreateOrderResponse.notification:type_name -> benchmark.common.v1.Notification
	0, // 4: benchmark.order.v1.OrderService.CreateOrder:input_type -> benchmark.order.v1.CreateOrderRequest
	1, // 5: benchmark.order.v1.OrderService.CreateOrder:output_type -> benchmark.order.v1.CreateOrderResponse
	5, // [5:6] is the sub-list for method output_type
	4, // [4:5] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_order_v1_order_proto_init() }
func file_order_v1_order_proto_init() {
	if File_order_v1_order_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_order_v1_order_proto_rawDesc), len(file_order_v1_order_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_order_v1_order_proto_goTypes,
		DependencyIndexes: file_order_v1_order_proto_depIdxs,
		MessageInfos:      file_order_v1_order_proto_msgTypes,
	}.Build()
	File_order_v1_order_proto = out.File
	file_order_v1_order_proto_goTypes = nil
	file_order_v1_order_proto_depIdxs = nil
}
