// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countries

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/locker/vms/lockervm/countries"
)

const countryTable = `name,alpha-3,alpha-2,country-code
France,FRA,fr,250
United States of America,USA,US,840
`

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	c := Command()
	c.SetOut(&out)
	c.SetArgs(args)
	require.NoError(t, c.Execute())
	return out.String()
}

func TestCountriesCommands(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	csvFile := filepath.Join(dir, "countries.csv")
	listFile := filepath.Join(dir, "list.json")
	require.NoError(os.WriteFile(csvFile, []byte(countryTable), 0o600))

	out := run(t, "init", "--countries", csvFile, "--file", listFile)
	require.Contains(out, "wrote 2 countries")

	run(t, "flip", "--file", listFile, "--country", "us", "--ban")

	list, err := countries.Load(listFile)
	require.NoError(err)
	require.True(list.IsCountryAllowed(countries.Code{'F', 'R'}))
	require.False(list.IsCountryAllowed(countries.Code{'U', 'S'}))

	out = run(t, "show", "--file", listFile, "--country", "US")
	require.Contains(out, `"banned": true`)

	run(t, "flip", "--file", listFile, "--country", "US")
	list, err = countries.Load(listFile)
	require.NoError(err)
	require.True(list.IsCountryAllowed(countries.Code{'U', 'S'}))
}

func TestFlipRequiresCountry(t *testing.T) {
	c := Command()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"flip", "--file", filepath.Join(t.TempDir(), "list.json")})
	require.ErrorIs(t, c.Execute(), errMissingFlag)
}
