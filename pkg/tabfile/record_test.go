package tabfile

import (
	"reflect"
	"testing"
)

func TestRecordFields(t *testing.T) {
	rec := newRecord("foo\tbar\tbaz\tquux\n", '\t')
	want := []string{"foo", "bar", "baz", "quux"}
	if !reflect.DeepEqual(rec.Fields(), want) {
		t.Fatalf("unexpected fields: %v", rec.Fields())
	}
	if rec.Len() != 4 {
		t.Fatalf("expected 4 fields, got %d", rec.Len())
	}
	if rec.Line() != "foo\tbar\tbaz\tquux" {
		t.Fatalf("unexpected line: %q", rec.Line())
	}
	if rec.Field(2) != "baz" {
		t.Fatalf("unexpected field 2: %q", rec.Field(2))
	}
}

func TestRecordEmptyFields(t *testing.T) {
	rec := newRecord("\t\t\tleft\t\t\tright\t\t\t", '\t')
	want := []string{"", "", "", "left", "", "", "right", "", "", ""}
	if !reflect.DeepEqual(rec.Fields(), want) {
		t.Fatalf("unexpected fields: %v", rec.Fields())
	}
	if rec.Len() != 10 {
		t.Fatalf("expected 10 fields, got %d", rec.Len())
	}
}

func TestRecordSingleField(t *testing.T) {
	rec := newRecord("no separators here\n", '\t')
	if rec.Len() != 1 {
		t.Fatalf("expected 1 field, got %d", rec.Len())
	}
	if rec.Field(0) != "no separators here" {
		t.Fatalf("unexpected field: %q", rec.Field(0))
	}
}

func TestRecordCRLF(t *testing.T) {
	rec := newRecord("a\tb\r\n", '\t')
	if !reflect.DeepEqual(rec.Fields(), []string{"a", "b"}) {
		t.Fatalf("unexpected fields: %v", rec.Fields())
	}
	if rec.Line() != "a\tb" {
		t.Fatalf("carriage return not stripped: %q", rec.Line())
	}
}

func TestRecordMultibyteSeparator(t *testing.T) {
	rec := newRecord("one→two→three", '→')
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(rec.Fields(), want) {
		t.Fatalf("unexpected fields: %v", rec.Fields())
	}
}
