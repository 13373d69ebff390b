package venue

import "testing"

func TestSplitName(t *testing.T) {
	cases := []struct {
		raw      string
		name     string
		locality string
	}{
		{raw: "Wankhede Stadium, Mumbai", name: "Wankhede Stadium", locality: "Mumbai"},
		{raw: "Punjab Cricket Association Stadium, Mohali, Chandigarh", name: "Punjab Cricket Association Stadium", locality: "Mohali, Chandigarh"},
		{raw: "Eden Gardens", name: "Eden Gardens", locality: ""},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			name, locality := SplitName(tc.raw)
			if name != tc.name || locality != tc.locality {
				t.Fatalf("unexpected split: name=%q locality=%q", name, locality)
			}
		})
	}
}
