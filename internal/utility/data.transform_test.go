package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag_DayDuOption(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,map=OwnerID,optional")
	if err != nil {
		t.Fatalf("parse tag hợp lệ không được lỗi: %v", err)
	}
	if config.Type != "str_objectid" {
		t.Errorf("type phải là str_objectid, có %q", config.Type)
	}
	if config.MapTo != "OwnerID" {
		t.Errorf("map phải trỏ sang OwnerID, có %q", config.MapTo)
	}
	if !config.Optional {
		t.Error("flag optional phải được bật")
	}
	if config.Required {
		t.Error("flag required không được bật")
	}
}

func TestParseTransformTag_Default(t *testing.T) {
	config, err := ParseTransformTag("str_int64,default=10")
	if err != nil {
		t.Fatalf("parse tag hợp lệ không được lỗi: %v", err)
	}
	if config.Default != "10" {
		t.Errorf("default phải là \"10\", có %q", config.Default)
	}
}

func TestParseTransformTag_Rong(t *testing.T) {
	config, err := ParseTransformTag("")
	if err != nil {
		t.Fatalf("tag rỗng không được lỗi: %v", err)
	}
	if config.Type != "" || config.Optional || config.Required {
		t.Errorf("tag rỗng phải ra config rỗng, có %+v", config)
	}
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	want := primitive.NewObjectID()
	config, _ := ParseTransformTag("str_objectid")

	got, err := TransformFieldValue(want.Hex(), config, nil)
	if err != nil {
		t.Fatalf("hex hợp lệ không được lỗi: %v", err)
	}
	objID, ok := got.(primitive.ObjectID)
	if !ok {
		t.Fatalf("kết quả phải là primitive.ObjectID, có %T", got)
	}
	if objID != want {
		t.Errorf("ObjectID sai: muốn %s, có %s", want.Hex(), objID.Hex())
	}
}

func TestTransformFieldValue_HexSaiDinhDang(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid")
	if _, err := TransformFieldValue("khong-phai-hex", config, nil); err == nil {
		t.Error("hex sai định dạng phải trả lỗi")
	}
}

func TestTransformFieldValue_OptionalRongBoQua(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid,optional")
	got, err := TransformFieldValue("", config, nil)
	if err != nil {
		t.Fatalf("field optional rỗng không được lỗi: %v", err)
	}
	if got != nil {
		t.Errorf("field optional rỗng phải trả nil, có %v", got)
	}
}

func TestTransformFieldValue_RequiredRongBaoLoi(t *testing.T) {
	config, _ := ParseTransformTag("str_int64,required")
	if _, err := TransformFieldValue("", config, nil); err == nil {
		t.Error("field required rỗng phải trả lỗi")
	}
}

func TestTransformFieldValue_StrInt64(t *testing.T) {
	config, _ := ParseTransformTag("str_int64")
	got, err := TransformFieldValue("42", config, nil)
	if err != nil {
		t.Fatalf("số hợp lệ không được lỗi: %v", err)
	}
	if got != int64(42) {
		t.Errorf("kết quả phải là int64(42), có %v (%T)", got, got)
	}
}
