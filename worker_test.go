package idtheory

import "testing"

func TestParseWorkerID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WorkerID
		wantErr bool
	}{
		{name: "plain hex", input: "000102030405", want: WorkerID{0, 1, 2, 3, 4, 5}},
		{name: "mac colons", input: "aa:bb:cc:dd:ee:ff", want: WorkerID{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}},
		{name: "dashes and upper case", input: "AA-BB-CC-DD-EE-FF", want: WorkerID{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}},
		{name: "surrounding space", input: "  000102030405  ", want: WorkerID{0, 1, 2, 3, 4, 5}},
		{name: "too short", input: "0001", wantErr: true},
		{name: "too long", input: "00010203040506", wantErr: true},
		{name: "not hex", input: "zz0102030405", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkerID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWorkerID(%q): expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWorkerID(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseWorkerID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWorkerIDString(t *testing.T) {
	w := WorkerID{0xde, 0xad, 0xbe, 0xef, 0x00, 0x42}
	if got, want := w.String(), "deadbeef0042"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	parsed, err := ParseWorkerID(w.String())
	if err != nil {
		t.Fatalf("ParseWorkerID round trip: %v", err)
	}
	if parsed != w {
		t.Fatalf("round trip = %v, want %v", parsed, w)
	}
}

func TestWorkerIDReversed(t *testing.T) {
	w := WorkerID{0, 1, 2, 3, 4, 5}
	if got, want := w.reversed(), (WorkerID{5, 4, 3, 2, 1, 0}); got != want {
		t.Fatalf("reversed() = %v, want %v", got, want)
	}
	if got := w.reversed().reversed(); got != w {
		t.Fatalf("double reverse = %v, want %v", got, w)
	}
}

func TestRandomWorkerID(t *testing.T) {
	a, err := RandomWorkerID()
	if err != nil {
		t.Fatalf("RandomWorkerID: %v", err)
	}
	b, err := RandomWorkerID()
	if err != nil {
		t.Fatalf("RandomWorkerID: %v", err)
	}
	if a == b {
		t.Fatalf("two random identifiers are equal: %v", a)
	}
}

func TestNodeWorkerID_Stable(t *testing.T) {
	first := NodeWorkerID()
	second := NodeWorkerID()
	if first != second {
		t.Fatalf("NodeWorkerID not stable: %v then %v", first, second)
	}
}
