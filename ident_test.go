package adsbtools

// go test -v github.com/skypies/adsbtools

import "testing"

func TestInstanceIds(t *testing.T) {
	tests := []struct{
		Raw      RawId
		N        int
		Expected InstanceId
	}{
		{"MEDIC77", 0, "MEDIC77"},
		{"MEDIC77", 1, "MEDIC77_1"},
		{"MEDIC77", 2, "MEDIC77_2"},
		{"9V-SKU",  1, "9V-SKU_1"},
	}

	for _,test := range tests {
		if actual := test.Raw.Instance(test.N); actual != test.Expected {
			t.Errorf("%s.Instance(%d) = %s, expected %s", test.Raw, test.N, actual, test.Expected)
		}
		if back := test.Expected.RawId(); back != test.Raw {
			t.Errorf("%s.RawId() = %s, expected %s", test.Expected, back, test.Raw)
		}
	}
}

func TestRawIdStripping(t *testing.T) {
	tests := []struct{
		In       InstanceId
		Expected RawId
	}{
		{"MEDIC77",   "MEDIC77"},
		{"MEDIC77_1", "MEDIC77"},
		{"MED_IC",    "MED_IC"},   // suffix isn't numeric; not an instance suffix
		{"AB_2_3",    "AB_2"},     // only the last suffix strips
		{"_1",        "_1"},       // nothing before the underscore
	}

	for _,test := range tests {
		if actual := test.In.RawId(); actual != test.Expected {
			t.Errorf("%s.RawId() = %s, expected %s", test.In, actual, test.Expected)
		}
	}
}

func TestIdMatching(t *testing.T) {
	tests := []struct{
		Id       InstanceId
		Req      string
		Expected bool
	}{
		{"MEDIC77",   "MEDIC77",   true},
		{"MEDIC77_1", "MEDIC77_1", true},
		{"MEDIC77_1", "MEDIC77",   true},  // bare raw id covers all instances
		{"MEDIC77",   "MEDIC77_1", false}, // instance request doesn't match bare
		{"MEDIC77_1", "MEDIC77_2", false},
		{"MEDIC77",   "MEDIC7",    false}, // no substring matching
		{"MEDIC77",   "",          false},
	}

	for _,test := range tests {
		if actual := test.Id.Matches(test.Req); actual != test.Expected {
			t.Errorf("%s.Matches(%q) = %v, expected %v", test.Id, test.Req, actual, test.Expected)
		}
	}
}
