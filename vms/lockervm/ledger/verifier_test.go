// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/ids"

	"github.com/luxfi/locker/vms/lockervm/ledger"
	"github.com/luxfi/locker/vms/lockervm/ledger/ledgermock"
)

var errLedgerDown = errors.New("ledger down")

func TestVerifierTransfer(t *testing.T) {
	var (
		source      = ids.GenerateTestShortID()
		destination = ids.GenerateTestShortID()
		authority   = ids.GenerateTestShortID()
	)

	tests := []struct {
		name        string
		amount      uint64
		setup       func(*ledgermock.Ledger)
		expectedErr error
	}{
		{
			name:   "exact amount moved",
			amount: 100,
			setup: func(l *ledgermock.Ledger) {
				gomock.InOrder(
					l.EXPECT().Balance(source).Return(uint64(1_000), nil),
					l.EXPECT().Transfer(source, destination, authority, uint64(100)).Return(uint64(100), nil),
					l.EXPECT().Balance(source).Return(uint64(900), nil),
				)
			},
		},
		{
			name:   "partial fill",
			amount: 100,
			setup: func(l *ledgermock.Ledger) {
				gomock.InOrder(
					l.EXPECT().Balance(source).Return(uint64(1_000), nil),
					l.EXPECT().Transfer(source, destination, authority, uint64(100)).Return(uint64(97), nil),
					l.EXPECT().Balance(source).Return(uint64(903), nil),
				)
			},
			expectedErr: ledger.ErrAmountMismatch,
		},
		{
			name:   "ledger reports full amount but moved more",
			amount: 100,
			setup: func(l *ledgermock.Ledger) {
				gomock.InOrder(
					l.EXPECT().Balance(source).Return(uint64(1_000), nil),
					l.EXPECT().Transfer(source, destination, authority, uint64(100)).Return(uint64(100), nil),
					l.EXPECT().Balance(source).Return(uint64(899), nil),
				)
			},
			expectedErr: ledger.ErrAmountMismatch,
		},
		{
			name:   "source balance grew",
			amount: 100,
			setup: func(l *ledgermock.Ledger) {
				gomock.InOrder(
					l.EXPECT().Balance(source).Return(uint64(1_000), nil),
					l.EXPECT().Transfer(source, destination, authority, uint64(100)).Return(uint64(100), nil),
					l.EXPECT().Balance(source).Return(uint64(1_100), nil),
				)
			},
			expectedErr: ledger.ErrAmountMismatch,
		},
		{
			name:   "transfer fails",
			amount: 100,
			setup: func(l *ledgermock.Ledger) {
				gomock.InOrder(
					l.EXPECT().Balance(source).Return(uint64(1_000), nil),
					l.EXPECT().Transfer(source, destination, authority, uint64(100)).Return(uint64(0), errLedgerDown),
				)
			},
			expectedErr: errLedgerDown,
		},
		{
			name:   "zero amount skipped",
			amount: 0,
			setup:  func(*ledgermock.Ledger) {},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			l := ledgermock.NewLedger(ctrl)
			test.setup(l)

			v := ledger.Verifier{Ledger: l}
			err := v.Transfer(source, destination, authority, test.amount)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}
