package bed

import "testing"

func scanField(kind fieldKind, input string) (fieldResult, []span, int64) {
	var list []span
	var f fieldScanner
	f.reset(kind, &list)
	for i := 0; i < len(input); i++ {
		if res := f.step(input[i], int64(i)); res != fieldMore {
			return res, list, f.pos
		}
	}
	return f.step('\t', int64(len(input))), list, f.pos
}

func TestFieldScanner(t *testing.T) {
	for i, c := range []struct {
		kind     fieldKind
		input    string
		expected fieldResult
		elems    int
	}{
		{textField, "", fieldEnd, 0},
		{textField, "chr1 alt", fieldEnd, 0},
		{textField, "gene\tnext", fieldEnd, 0},
		{textField, "g\x00ne", fieldBad, 0},
		{textField, "\xc3\xa9", fieldEnd, 0},
		{uintField, "", fieldBad, 0},
		{uintField, "0123", fieldEnd, 0},
		{uintField, "-1", fieldBad, 0},
		{uintField, "1.5", fieldBad, 0},
		{enumField, "+", fieldEnd, 0},
		{enumField, "?", fieldEnd, 0},
		{enumField, "", fieldBad, 0},
		{enumField, "+-", fieldBad, 0},
		{enumField, "*", fieldBad, 0},
		{listField, "", fieldEnd, 0},
		{listField, "5", fieldEnd, 1},
		{listField, "5,16", fieldEnd, 2},
		{listField, "5,16,", fieldEnd, 2},
		{listField, ",", fieldBad, 0},
		{listField, "5,,", fieldBad, 1},
		{listField, "5;6", fieldBad, 0},
	} {
		res, list, _ := scanField(c.kind, c.input)
		if res != c.expected || len(list) != c.elems {
			t.Errorf("[%d] %q: expected %v with %d elements, got %v with %d", i, c.input, c.expected, c.elems, res, len(list))
		}
	}
}

func TestFieldScannerPositions(t *testing.T) {
	_, list, _ := scanField(listField, "5,16,")
	if len(list) != 2 || list[0] != (span{0, 1}) || list[1] != (span{2, 4}) {
		t.Errorf("unexpected list spans %v", list)
	}
	_, _, pos := scanField(enumField, "-")
	if pos != 0 {
		t.Errorf("expected strand position 0, got %d", pos)
	}
}
