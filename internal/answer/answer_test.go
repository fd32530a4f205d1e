package answer

import (
	"errors"
	"reflect"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{"  -3 ", -3, false},
		{"0", 0, false},
		{"seven", 0, true},
		{"7.5", 0, true},
		{"", 0, true},
		{"7 moves", 0, true},
	}
	for _, tt := range tests {
		got, err := Int(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("Int(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"Yes", true, false},
		{"y", true, false},
		{"yep", true, false},
		{"no", false, false},
		{"NO", false, false},
		{"n", false, true},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		got, err := YesNo(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("YesNo(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("YesNo(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestIntList(t *testing.T) {
	tests := []struct {
		raw     string
		want    []int
		wantErr bool
	}{
		{"[1,3,0,2]", []int{1, 3, 0, 2}, false},
		{" [1, 3, 0, 2] ", []int{1, 3, 0, 2}, false},
		{"[]", []int{}, false},
		{"[1, 2.5]", nil, true},
		{"[1, \"a\"]", nil, true},
		{"1,3,0,2", nil, true},
		{"[1,3,0,2] extra", nil, true},
		{"{\"a\": 1}", nil, true},
		{"", nil, true},
	}
	for _, tt := range tests {
		got, err := IntList(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("IntList(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if err != nil {
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Errorf("IntList(%q) error type %T, want MalformedError", tt.raw, err)
			}
			continue
		}
		if len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
			t.Errorf("IntList(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestPairList(t *testing.T) {
	tests := []struct {
		raw     string
		want    [][2]int
		wantErr bool
	}{
		{"[[0,2],[0,1]]", [][2]int{{0, 2}, {0, 1}}, false},
		{"[[0, 2]]", [][2]int{{0, 2}}, false},
		{"[]", [][2]int{}, false},
		{"[[0]]", nil, true},
		{"[[0,1,2]]", nil, true},
		{"[0,2]", nil, true},
		{"[[0,2]] trailing", nil, true},
		{"not json", nil, true},
	}
	for _, tt := range tests {
		got, err := PairList(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("PairList(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if err == nil && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PairList(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestMalformedErrorGuidance(t *testing.T) {
	_, err := IntList("nope")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %T, want MalformedError", err)
	}
	if malformed.Expected == "" || malformed.Example == "" {
		t.Errorf("guidance incomplete: %+v", malformed)
	}
}
