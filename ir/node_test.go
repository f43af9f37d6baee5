package ir

import (
	"testing"
)

func TestSetLastWriteWins(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "a", FromInt(1))
	Set(obj, "b", FromInt(2))
	Set(obj, "a", FromInt(3))
	if len(obj.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(obj.Fields))
	}
	a := Get(obj, "a")
	if a == nil || a.Int64 == nil || *a.Int64 != 3 {
		t.Errorf("a not overwritten: %+v", a)
	}
	if obj.Fields[0].String != "a" || obj.Fields[1].String != "b" {
		t.Errorf("field order changed: %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
}

func TestGetMissing(t *testing.T) {
	obj := &Node{Type: ObjectType}
	if Get(obj, "nope") != nil {
		t.Error("expected nil for missing field")
	}
}

func TestAppend(t *testing.T) {
	arr := &Node{Type: ArrayType}
	Append(arr, FromInt(1))
	Append(arr, FromString("x"))
	if len(arr.Values) != 2 {
		t.Fatalf("got %d values", len(arr.Values))
	}
	if arr.Values[1].Parent != arr || arr.Values[1].ParentIndex != 1 {
		t.Error("positional bookkeeping off")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if obj.Fields[i].String != w {
			t.Errorf("field %d is %q, want %q", i, obj.Fields[i].String, w)
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "a", FromInt(1))
	cl := obj.Clone()
	Set(obj, "a", FromInt(2))
	a := Get(cl, "a")
	if a == nil || a.Int64 == nil || *a.Int64 != 1 {
		t.Errorf("clone shares state: %+v", a)
	}
}
