package predictive

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	if x := s.Extend(Span{1, 4}); x != (Span{1, 5}) {
		t.Errorf("expected (1…5), have %v", x)
	}
	if x := s.Extend(Span{4, 9}); x.Len() != 6 {
		t.Errorf("expected length 6, have %d", x.Len())
	}
	if !(Span{}).IsNull() || s.IsNull() {
		t.Errorf("null span not recognized")
	}
}

func TestSentinels(t *testing.T) {
	if !IsSentinel(EOS) || !IsSentinel(ErrorSymbol) || IsSentinel("int") {
		t.Errorf("sentinel classification is broken")
	}
}
