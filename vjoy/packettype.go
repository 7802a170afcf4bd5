package vjoy

import "fmt"

// PacketType identifies an FFB report delivered through the callback.
// The codes come in two disjoint ranges: write reports (0x01-0x0E, create or
// modify effect data) and feature reports (0x11-0x13, block/pool queries).
// Note 0x09 is absent from the write range; the driver never emits it.
type PacketType uint32

const (
	PTEffRep   PacketType = 0x01 // Set Effect Report
	PTEnvRep   PacketType = 0x02 // Set Envelope Report
	PTCondRep  PacketType = 0x03 // Set Condition Report
	PTPridRep  PacketType = 0x04 // Set Periodic Report
	PTConstRep PacketType = 0x05 // Set Constant Force Report
	PTRampRep  PacketType = 0x06 // Set Ramp Force Report
	PTCstmRep  PacketType = 0x07 // Custom Force Data Report
	PTSmplRep  PacketType = 0x08 // Download Force Sample
	PTEfOpRep  PacketType = 0x0A // Effect Operation Report
	PTBlkFrRep PacketType = 0x0B // PID Block Free Report
	PTCtrlRep  PacketType = 0x0C // PID Device Control
	PTGainRep  PacketType = 0x0D // Device Gain Report
	PTSetCRep  PacketType = 0x0E // Set Custom Force Report

	PTNewEfRep PacketType = 0x01 + 0x10 // Create New Effect Report
	PTBlkLdRep PacketType = 0x02 + 0x10 // Block Load Report
	PTPoolRep  PacketType = 0x03 + 0x10 // PID Pool Report
)

// packetTypeNames is the closed set; membership here is what makes a raw
// code valid.
var packetTypeNames = map[PacketType]string{
	PTEffRep:   "PT_EFFREP",
	PTEnvRep:   "PT_ENVREP",
	PTCondRep:  "PT_CONDREP",
	PTPridRep:  "PT_PRIDREP",
	PTConstRep: "PT_CONSTREP",
	PTRampRep:  "PT_RAMPREP",
	PTCstmRep:  "PT_CSTMREP",
	PTSmplRep:  "PT_SMPLREP",
	PTEfOpRep:  "PT_EFOPREP",
	PTBlkFrRep: "PT_BLKFRREP",
	PTCtrlRep:  "PT_CTRLREP",
	PTGainRep:  "PT_GAINREP",
	PTSetCRep:  "PT_SETCREP",
	PTNewEfRep: "PT_NEWEFREP",
	PTBlkLdRep: "PT_BLKLDREP",
	PTPoolRep:  "PT_POOLREP",
}

// PacketTypeError reports an FFB packet-type code outside the known set.
type PacketTypeError struct {
	Code uint32
}

func (e *PacketTypeError) Error() string {
	return fmt.Sprintf("vjoy: invalid ffb packet type code %d (0x%02x)", e.Code, e.Code)
}

// PacketTypeFromCode converts a raw report-type code. Unlike device states
// there is no catch-all: a code outside the closed set fails with a
// *PacketTypeError carrying the offending value, so a malformed report can
// be skipped instead of misfiled.
func PacketTypeFromCode(code uint32) (PacketType, error) {
	pt := PacketType(code)
	if _, ok := packetTypeNames[pt]; !ok {
		return 0, &PacketTypeError{Code: code}
	}
	return pt, nil
}

// Code returns the raw wire value.
func (p PacketType) Code() uint32 { return uint32(p) }

// IsWrite reports whether the type belongs to the write-report range.
func (p PacketType) IsWrite() bool { return p >= PTEffRep && p <= PTSetCRep }

// IsFeature reports whether the type belongs to the feature-report range.
func (p PacketType) IsFeature() bool { return p >= PTNewEfRep && p <= PTPoolRep }

func (p PacketType) String() string {
	if name, ok := packetTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PT_INVALID(0x%02x)", uint32(p))
}
