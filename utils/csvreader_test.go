package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `name
Engineering
Human Resources
Security`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"name"},
		{"Engineering"},
		{"Human Resources"},
		{"Security"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}
