// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countries

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCSV = `name,alpha-3,alpha-2
Ukraine,UKR,UA
Germany,DEU,de
Nowhere,XXX,
Ukraine again,UKR,UA
Portugal,PRT,PT
`

func mustCode(t *testing.T, s string) Code {
	code, err := ParseCode(s)
	require.NoError(t, err)
	return code
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in          string
		expected    Code
		expectedErr error
	}{
		{in: "ua", expected: Code{'U', 'A'}},
		{in: " PT ", expected: Code{'P', 'T'}},
		{in: "", expected: Unknown},
		{in: "USA", expectedErr: ErrInvalidCode},
		{in: "1A", expectedErr: ErrInvalidCode},
		{in: "é", expectedErr: ErrInvalidCode},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			require := require.New(t)

			code, err := ParseCode(test.in)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, code)
		})
	}
}

func TestFromCSV(t *testing.T) {
	require := require.New(t)

	list, err := FromCSV(strings.NewReader(testCSV))
	require.NoError(err)

	require.Equal([]Country{
		{Code: mustCode(t, "DE")},
		{Code: mustCode(t, "PT")},
		{Code: mustCode(t, "UA")},
		{Code: Unknown},
	}, list.Countries())
}

func TestFromCSVShortRecord(t *testing.T) {
	_, err := FromCSV(strings.NewReader("a,b,c\nonly,two\n"))
	require.ErrorContains(t, err, "record 1")
}

func TestFlipAndAllowed(t *testing.T) {
	require := require.New(t)

	list := New([]Code{mustCode(t, "UA"), mustCode(t, "RU")})
	ua, ru := mustCode(t, "UA"), mustCode(t, "RU")

	require.True(list.IsCountryAllowed(ua))
	require.True(list.IsCountryAllowed(ru))
	require.False(list.IsCountryAllowed(mustCode(t, "ZZ")))

	require.NoError(list.Flip(ru, true))
	require.False(list.IsCountryAllowed(ru))

	country, ok := list.Lookup(ru)
	require.True(ok)
	require.True(country.Banned)

	require.NoError(list.Flip(ru, false))
	require.True(list.IsCountryAllowed(ru))

	err := list.Flip(mustCode(t, "ZZ"), true)
	require.ErrorIs(err, ErrUnknownCountry)
}

func TestSaveLoad(t *testing.T) {
	require := require.New(t)

	list, err := FromCSV(strings.NewReader(testCSV))
	require.NoError(err)
	require.NoError(list.Flip(mustCode(t, "PT"), true))

	path := filepath.Join(t.TempDir(), "banlist.json")
	require.NoError(Save(path, list))

	loaded, err := Load(path)
	require.NoError(err)
	require.Equal(list.Countries(), loaded.Countries())
	require.False(loaded.IsCountryAllowed(mustCode(t, "PT")))
	require.True(loaded.IsCountryAllowed(mustCode(t, "DE")))
}
