package args_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AetiasHax/armv5te/args"
)

func TestParseRegister(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  args.Register
	}{
		{"r0", 0, args.R0},
		{"r9", 9, args.R9},
		{"fp", 11, args.Fp},
		{"sp", 13, args.Sp},
		{"lr", 14, args.Lr},
		{"pc", 15, args.Pc},
		{"out of range", 16, args.RegisterIllegal},
		{"far out of range", 0xffffffff, args.RegisterIllegal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, args.ParseRegister(tt.value))
		})
	}
}

func TestParseShift(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  args.Shift
	}{
		{"lsl", 0, args.Lsl},
		{"lsr", 1, args.Lsr},
		{"asr", 2, args.Asr},
		{"ror", 3, args.Ror},
		{"rrx", 4, args.Rrx},
		{"out of range", 5, args.ShiftIllegal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, args.ParseShift(tt.value))
		})
	}
}

func TestParseStatusReg(t *testing.T) {
	assert.Equal(t, args.Cpsr, args.ParseStatusReg(0))
	assert.Equal(t, args.Spsr, args.ParseStatusReg(1))
	assert.Equal(t, args.StatusRegIllegal, args.ParseStatusReg(2))
}

func TestParseCoReg(t *testing.T) {
	assert.Equal(t, args.CoReg(0), args.ParseCoReg(0))
	assert.Equal(t, args.CoReg(15), args.ParseCoReg(15))
	assert.Equal(t, args.CoRegIllegal, args.ParseCoReg(16))
}

func TestParseEndian(t *testing.T) {
	assert.Equal(t, args.Le, args.ParseEndian(0))
	assert.Equal(t, args.Be, args.ParseEndian(1))
	assert.Equal(t, args.EndianIllegal, args.ParseEndian(2))
}
