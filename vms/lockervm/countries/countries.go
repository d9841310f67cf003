// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package countries keeps the country ban list lockers are checked
// against when they are created.
package countries

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// codeColumn is the CSV column holding the ISO 3166-1 alpha-2 code.
const codeColumn = 2

var (
	ErrInvalidCode    = errors.New("invalid country code")
	ErrUnknownCountry = errors.New("unknown country")

	// Unknown is used for records without a country code.
	Unknown = Code{'U', 'N'}
)

// Code is a normalized two-letter country code.
type Code [2]byte

// ParseCode normalizes s into a Code. An empty string is Unknown.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Unknown, nil
	}
	if len(s) != 2 || !isLetter(s[0]) || !isLetter(s[1]) {
		return Code{}, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return Code{s[0], s[1]}, nil
}

func isLetter(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

func (c Code) String() string {
	return string(c[:])
}

func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Code) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	code, err := ParseCode(s)
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// Country is an entry of the ban list.
type Country struct {
	Code   Code `json:"code"`
	Banned bool `json:"banned"`
}

// BanList is a sorted set of known countries, each banned or not. Codes
// missing from the list are not allowed. It is safe for concurrent use.
type BanList struct {
	mu        sync.RWMutex
	countries []Country
}

// New returns a ban list of the given codes, none of them banned.
// Duplicates are dropped.
func New(codes []Code) *BanList {
	sorted := slices.Clone(codes)
	slices.SortFunc(sorted, compareCodes)
	sorted = slices.Compact(sorted)

	countries := make([]Country, len(sorted))
	for i, code := range sorted {
		countries[i] = Country{Code: code}
	}
	return &BanList{countries: countries}
}

// FromCSV builds a ban list from a CSV country table with a header row.
// The code is read from the third column; empty codes map to Unknown.
func FromCSV(r io.Reader) (*BanList, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return New(nil), nil
	}

	codes := make([]Code, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) <= codeColumn {
			return nil, fmt.Errorf("record %d: expected at least %d columns, got %d",
				i+1, codeColumn+1, len(record))
		}
		code, err := ParseCode(record[codeColumn])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		codes = append(codes, code)
	}
	return New(codes), nil
}

// Countries returns a copy of all entries in code order.
func (l *BanList) Countries() []Country {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.countries)
}

// Lookup returns the entry for code.
func (l *BanList) Lookup(code Code) (Country, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.find(code)
	if !ok {
		return Country{}, false
	}
	return l.countries[i], true
}

// Flip sets the banned flag of a known country.
func (l *BanList) Flip(code Code, ban bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.find(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCountry, code)
	}
	l.countries[i].Banned = ban
	return nil
}

// IsCountryAllowed reports whether code is known and not banned.
func (l *BanList) IsCountryAllowed(code Code) bool {
	country, ok := l.Lookup(code)
	return ok && !country.Banned
}

func (l *BanList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Countries []Country `json:"countries"`
	}{
		Countries: l.Countries(),
	})
}

func (l *BanList) UnmarshalJSON(b []byte) error {
	var raw struct {
		Countries []Country `json:"countries"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	slices.SortFunc(raw.Countries, func(a, b Country) int {
		return compareCodes(a.Code, b.Code)
	})
	raw.Countries = slices.CompactFunc(raw.Countries, func(a, b Country) bool {
		return a.Code == b.Code
	})

	l.mu.Lock()
	defer l.mu.Unlock()

	l.countries = raw.Countries
	return nil
}

func (l *BanList) find(code Code) (int, bool) {
	return slices.BinarySearchFunc(l.countries, code, func(c Country, target Code) int {
		return compareCodes(c.Code, target)
	})
}

func compareCodes(a, b Code) int {
	return strings.Compare(a.String(), b.String())
}
