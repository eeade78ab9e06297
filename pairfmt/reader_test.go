// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseAll reads every pair in data and prints each one, or its
// error, on its own line. Printing sidesteps NaN != NaN.
func parseAll(t *testing.T, data string) []string {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out []string
	for r.Scan() {
		p, err := r.Pair()
		if err != nil {
			out = append(out, "error: "+err.Error())
			continue
		}
		out = append(out, printPair(p))
	}
	require.NoError(t, r.Err(), "parsing failed")
	return out
}

func printPair(p *Pair) string {
	var buf bytes.Buffer
	for _, c := range p.Config {
		fmt.Fprintf(&buf, "{%s: %s} ", c.Key, c.Value)
	}
	fmt.Fprintf(&buf, "%v %v @%d", p.Reference, p.New, p.Line)
	return buf.String()
}

func TestReader(t *testing.T) {
	type testCase struct {
		name, input string
		want        []string
	}
	for _, test := range []testCase{
		{
			"basic",
			`title: Knee angle
12.5 12.9
13.1, 13.4
`,
			[]string{
				"{title: Knee angle} 12.5 12.9 @2",
				"{title: Knee angle} 13.1 13.4 @3",
			},
		},
		{
			"missing values",
			`1 NaN
NA 2
- -
nan,3
`,
			[]string{
				"1 NaN @1",
				"NaN 2 @2",
				"NaN NaN @3",
				"NaN 3 @4",
			},
		},
		{
			"comments and blanks",
			`# exported from the lab

   4	5   
`,
			[]string{"4 5 @3"},
		},
		{
			"file keys",
			`key1:    	 value
key2: value

1 2
`,
			[]string{"{key1: value} {key2: value} 1 2 @4"},
		},
		{
			"bad lines",
			`reference new
1
1 2 3
1 x
1e999 2
`,
			[]string{
				`error: test:1: parsing reference measurement: "reference": invalid syntax`,
				"error: test:2: missing new measurement",
				"error: test:3: unexpected text after new measurement",
				`error: test:4: parsing new measurement: "x": invalid syntax`,
				`error: test:5: parsing reference measurement: "1e999": value out of range`,
			},
		},
		{
			"remove existing key",
			`key: value
key:
1 2
`,
			[]string{"1 2 @3"},
		},
		{
			"overwrite existing key",
			`key1: first
key2: second
key1: third
1 2
`,
			[]string{"{key1: third} {key2: second} 1 2 @4"},
		},
		{
			"keys apply to later pairs",
			`1 2
new: imu
3 4
`,
			[]string{"1 2 @1", "{new: imu} 3 4 @3"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, parseAll(t, test.input))
		})
	}
}

func TestReaderSyntaxError(t *testing.T) {
	r := NewReader(strings.NewReader("oops\n1 2\n"), "data.txt")
	require.True(t, r.Scan())
	_, err := r.Pair()
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "data.txt", se.FileName)
	assert.Equal(t, 1, se.Line)

	// Errors are not fatal.
	require.True(t, r.Scan())
	p, err := r.Pair()
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.New)
	assert.False(t, r.Scan())
	assert.NoError(t, r.Err())
}

func TestReaderBeforeScan(t *testing.T) {
	r := NewReader(strings.NewReader("1 2\n"), "")
	_, err := r.Pair()
	assert.Error(t, err)
}

func TestPairCloneAndGet(t *testing.T) {
	r := NewReader(strings.NewReader("reference: goniometer\n1 2\nreference: video\n3 4\n"), "test")
	require.True(t, r.Scan())
	p, err := r.Pair()
	require.NoError(t, err)
	first := p.Clone()

	require.True(t, r.Scan())
	p, err = r.Pair()
	require.NoError(t, err)
	assert.Equal(t, "video", p.Get("reference"))
	assert.Equal(t, "goniometer", first.Get("reference"))
	assert.Equal(t, "", first.Get("new"))
	assert.Equal(t, 1.0, first.Reference)
}

func TestParseKeyValueLine(t *testing.T) {
	for _, tc := range []struct {
		line     string
		key, val string
		ok       bool
	}{
		{"title: Knee flexion", "title", "Knee flexion", true},
		{"new:\t imu", "new", "imu", true},
		{"reference:", "reference", "", true},
		{"note: a: b", "note", "a: b", true},
		{"title:Knee", "", "", false},
		{": no key", "", "", false},
		{"Title: upper", "", "", false},
		{"myKey: camel", "", "", false},
		{"a b: spaced", "", "", false},
		{"1: 2", "", "", false},
		{"1 2", "", "", false},
	} {
		key, val, ok := parseKeyValueLine([]byte(tc.line))
		assert.Equal(t, tc.ok, ok, "%q", tc.line)
		assert.Equal(t, tc.key, string(key), "%q", tc.line)
		assert.Equal(t, tc.val, string(val), "%q", tc.line)
	}
}

func TestSplitField(t *testing.T) {
	for _, tc := range []struct {
		in, field, rest string
	}{
		{"1 2", "1", "2"},
		{"1,2", "1", "2"},
		{"1 ,\t 2 3", "1", "2 3"},
		{"1 2", "1", "2"},
		{"12", "12", ""},
		{"", "", ""},
	} {
		field, rest := splitField([]byte(tc.in))
		assert.Equal(t, tc.field, string(field), "%q", tc.in)
		assert.Equal(t, tc.rest, string(rest), "%q", tc.in)
	}
}
