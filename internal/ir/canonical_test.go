package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canon(t *testing.T, v any) string {
	t.Helper()
	out, err := MarshalCanonical(v)
	require.NoError(t, err)
	return string(out)
}

func TestMarshalCanonical_Scalars(t *testing.T) {
	cases := map[string]struct {
		in   any
		want string
	}{
		"symbol":        {IRString("a"), `"a"`},
		"empty symbol":  {IRString(""), `""`},
		"top":           {IRString(TOP), `"⟙"`},
		"bottom":        {IRString(BOT), `"⟘"`},
		"cardinality":   {IRInt(4), "4"},
		"negative":      {IRInt(-7), "-7"},
		"largest index": {IRInt(1<<63 - 1), "9223372036854775807"},
		"smallest":      {IRInt(-1 << 63), "-9223372036854775808"},
		"valid":         {IRBool(true), "true"},
		"invalid":       {IRBool(false), "false"},
		"no symbols":    {IRArray{}, "[]"},
		"no tables":     {IRObject{}, "{}"},
		"go string":     {"R2", `"R2"`},
		"go int":        {3, "3"},
		"go int64":      {int64(16), "16"},
		"go bool":       {false, "false"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, canon(t, tc.in))
		})
	}
}

func TestMarshalCanonical_Tables(t *testing.T) {
	cases := map[string]struct {
		in   any
		want string
	}{
		"neg":     {[]int{0, 1}, "[0,1]"},
		"join":    {[][]int{{0, 1}, {1, 1}}, "[[0,1],[1,1]]"},
		"symbols": {[]string{"0", "1"}, `["0","1"]`},
		"chain":   {Strings([]string{BOT, "a", TOP}), `["⟘","a","⟙"]`},
		"wrapped": {IndexedTable{Binary: [][]int{{0, 0}, {0, 1}}}.Value(), "[[0,0],[0,1]]"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, canon(t, tc.in))
		})
	}
}

func TestMarshalCanonical_StructureKeysSorted(t *testing.T) {
	structure := IRObject{
		"variant": IRString("lattice"),
		"tables": IRObject{
			"meet": IRArray{IRArray{IRInt(0), IRInt(0)}, IRArray{IRInt(0), IRInt(1)}},
			"join": IRArray{IRArray{IRInt(0), IRInt(1)}, IRArray{IRInt(1), IRInt(1)}},
		},
		"symbols": Strings([]string{BOT, TOP}),
	}

	want := `{"symbols":["⟘","⟙"],"tables":{"join":[[0,1],[1,1]],"meet":[[0,0],[0,1]]},"variant":"lattice"}`
	assert.Equal(t, want, canon(t, structure))
}

func TestMarshalCanonical_KeysUseUTF16Order(t *testing.T) {
	// U+1D400 is a surrogate pair (0xD835 ...) and sorts before U+E000,
	// the reverse of UTF-8 byte order.
	bold := "\U0001D400"
	private := "\uE000"

	out := canon(t, IRObject{private: IRInt(0), bold: IRInt(1)})
	assert.Equal(t, `{"`+bold+`":1,"`+private+`":0}`, out)

	// ⟘ (U+27D8) and ⟙ (U+27D9) are both in the BMP.
	out = canon(t, IRObject{TOP: IRInt(1), BOT: IRInt(0)})
	assert.Equal(t, `{"⟘":0,"⟙":1}`, out)
}

func TestMarshalCanonical_Compact(t *testing.T) {
	out := canon(t, IRObject{
		"neg":  IRArray{IRInt(1), IRInt(0)},
		"name": IRString("B2"),
		"ok":   IRBool(true),
	})
	assert.Equal(t, `{"name":"B2","neg":[1,0],"ok":true}`, out)
	assert.NotContains(t, out, " ")
	assert.NotContains(t, out, "\n")
}

func TestMarshalCanonical_NoHTMLEscaping(t *testing.T) {
	for _, s := range []string{`a<b`, `x>y`, `join & meet`, `\cdot`} {
		t.Run(s, func(t *testing.T) {
			out := canon(t, IRObject{"label": IRString(s)})
			assert.NotContains(t, out, `<`)
			assert.NotContains(t, out, `>`)
			assert.NotContains(t, out, `&`)
		})
	}
	assert.Equal(t, `"join & meet"`, canon(t, IRString("join & meet")))
	assert.Equal(t, `"\\cdot"`, canon(t, IRString(`\cdot`)))
}

func TestMarshalCanonical_Escapes(t *testing.T) {
	cases := map[string]struct {
		in, want string
	}{
		"newline":   {"x\ny", `"x\ny"`},
		"tab":       {"x\ty", `"x\ty"`},
		"quote":     {`say "0"`, `"say \"0\""`},
		"backslash": {`\top`, `"\\top"`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, canon(t, IRString(tc.in)))
		})
	}
}

func TestMarshalCanonical_LineSeparatorsLiteral(t *testing.T) {
	cases := map[string]struct {
		in, want string
	}{
		"line separator":      {"a\u2028b", "\"a\u2028b\""},
		"paragraph separator": {"a\u2029b", "\"a\u2029b\""},
		"escaped text stays":  {`label \u2028`, `"label \\u2028"`},
		"mixed":               {"\\u2029 then \u2029", "\"\\\\u2029 then \u2029\""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out := canon(t, IRString(tc.in))
			assert.Equal(t, tc.want, out)
		})
	}

	out := canon(t, IRObject{"k\u2028": IRString("v\u2029")})
	assert.Equal(t, "{\"k\u2028\":\"v\u2029\"}", out)
	assert.NotContains(t, out, `\u2028`)
	assert.NotContains(t, out, `\u2029`)
}

func TestMarshalCanonical_NFC(t *testing.T) {
	precomposed := "\u00e9l\u00e9ment"
	decomposed := "e\u0301le\u0301ment"

	assert.Equal(t, canon(t, IRString(precomposed)), canon(t, IRString(decomposed)))
	assert.Equal(t,
		canon(t, IRObject{precomposed: IRInt(2)}),
		canon(t, IRObject{decomposed: IRInt(2)}),
	)
}

func TestMarshalCanonical_GoContainers(t *testing.T) {
	in := map[string]any{
		"variant": "group",
		"tables": map[string]any{
			"mult": [][]int{{0, 1}, {1, 0}},
			"inv":  []int{0, 1},
		},
		"extra": []any{int64(2), "e", true},
	}

	want := `{"extra":[2,"e",true],"tables":{"inv":[0,1],"mult":[[0,1],[1,0]]},"variant":"group"}`
	assert.Equal(t, want, canon(t, in))
}

func TestMarshalCanonical_Rejects(t *testing.T) {
	cases := map[string]struct {
		in   any
		want string
	}{
		"nil":             {nil, "null"},
		"float64":         {0.5, "float"},
		"float32":         {float32(2), "float"},
		"nested float":    {[]any{1, 1.5}, "float"},
		"nested nil":      {map[string]any{"join": nil}, "null"},
		"struct":          {struct{ N int }{4}, "unsupported type"},
		"map of ints":     {map[string]int{"n": 2}, "unsupported type"},
		"unsigned scalar": {uint8(1), "unsupported type"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := MarshalCanonical(tc.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
