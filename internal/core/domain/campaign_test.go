package domain

import "testing"

// TestSplitFee checks the floor rounding and that no token is lost or
// created by the split.
func TestSplitFee(t *testing.T) {
	cases := []struct {
		amount  int64
		fee     int
		wantNet int64
		wantFee int64
	}{
		{100, 5, 95, 5},
		{100, 0, 100, 0},
		{100, 100, 0, 100},
		{99, 5, 95, 4},  // floor(99*5/100) = 4
		{1, 50, 1, 0},   // floor(0.5) = 0
		{33, 10, 30, 3},
	}
	for _, c := range cases {
		net, fee := SplitFee(c.amount, c.fee)
		if net != c.wantNet || fee != c.wantFee {
			t.Errorf("SplitFee(%d, %d%%) = (%d, %d), want (%d, %d)", c.amount, c.fee, net, fee, c.wantNet, c.wantFee)
		}
		if net+fee != c.amount {
			t.Errorf("SplitFee(%d, %d%%) loses tokens: %d + %d", c.amount, c.fee, net, fee)
		}
	}
}

func TestInWindow(t *testing.T) {
	c := Campaign{StartTime: 100, EndTime: 200}
	for _, tc := range []struct {
		now  int64
		want bool
	}{
		{99, false},
		{100, true},
		{150, true},
		{200, true},
		{201, false},
	} {
		if got := c.InWindow(tc.now); got != tc.want {
			t.Errorf("InWindow(%d) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

// TestRecordTopVoter covers insertion, displacement and in-place refresh
// of the three-slot leaderboard.
func TestRecordTopVoter(t *testing.T) {
	var c Campaign

	c.RecordTopVoter("a", 10)
	c.RecordTopVoter("b", 30)
	c.RecordTopVoter("c", 20)
	want := []TopVoter{{"b", 30}, {"c", 20}, {"a", 10}}
	if len(c.TopVoters) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(c.TopVoters))
	}
	for i, w := range want {
		if c.TopVoters[i] != w {
			t.Fatalf("slot %d = %+v, want %+v", i, c.TopVoters[i], w)
		}
	}

	// below the board: no change
	c.RecordTopVoter("d", 5)
	if len(c.TopVoters) != 3 || c.TopVoters[2] != (TopVoter{"a", 10}) {
		t.Fatalf("low voter displaced the board: %+v", c.TopVoters)
	}

	// displaces the lowest slot
	c.RecordTopVoter("e", 25)
	if c.TopVoters[1] != (TopVoter{"e", 25}) {
		t.Fatalf("expected e in slot 1, got %+v", c.TopVoters)
	}
	for _, tv := range c.TopVoters {
		if tv.Voter == "a" {
			t.Fatalf("a should have been displaced: %+v", c.TopVoters)
		}
	}

	// refresh existing entry in place, reordering
	c.RecordTopVoter("c", 99)
	if c.TopVoters[0] != (TopVoter{"c", 99}) {
		t.Fatalf("expected c on top, got %+v", c.TopVoters)
	}
}
