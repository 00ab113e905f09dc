package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomBson dùng để tạo các bản đồ truy vấn bson ($set, $push, ...)
// từ struct, hữu ích khi cần build update query từ dữ liệu có kiểu.
type CustomBson struct{}

// BsonWrapper chứa các toán tử bson cơ bản.
// Sau khi mã hóa thành bson, struct gán vào Set sẽ trở thành { $set : {...} }
// và tương tự cho các toán tử còn lại.
type BsonWrapper struct {
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset xóa một trường cụ thể. Nếu trường không tồn tại thì không làm gì cả.
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push thêm một giá trị vào một mảng. Nếu trường không phải mảng, thao tác thất bại.
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`

	// Pull xóa các giá trị khớp điều kiện khỏi một mảng.
	Pull interface{} `json:"$pull,omitempty" bson:"$pull,omitempty"`

	// AddToSet thêm một giá trị vào mảng trừ khi giá trị đã tồn tại.
	AddToSet interface{} `json:"$addToSet,omitempty" bson:"$addToSet,omitempty"`
}

// ToMap chuyển đổi struct thành map[string]interface{} thông qua bson marshal/unmarshal.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, err
}

// Set tạo truy vấn $set từ struct dữ liệu
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// Push tạo truy vấn $push từ struct dữ liệu
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Push: data}
	return ToMap(s)
}

// Pull tạo truy vấn $pull từ struct dữ liệu
func (customBson *CustomBson) Pull(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Pull: data}
	return ToMap(s)
}

// Unset tạo truy vấn $unset từ struct dữ liệu
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Unset: data}
	return ToMap(s)
}

// AddToSet tạo truy vấn $addToSet từ struct dữ liệu
func (customBson *CustomBson) AddToSet(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{AddToSet: data}
	return ToMap(s)
}
