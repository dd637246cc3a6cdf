package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `name,passkey,email
Asha,007,asha@qurocare.com
Ravi,1234,ravi@qurocare.com`

	got, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"name", "passkey", "email"},
		{"Asha", "007", "asha@qurocare.com"},
		{"Ravi", "1234", "ravi@qurocare.com"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}

func TestParseCSVRaggedRows(t *testing.T) {
	csvData := "id,name,reason\n1,Asha\n"

	got, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(got) != 2 || len(got[1]) != 2 {
		t.Errorf("expected ragged second row, got %+v", got)
	}
}
