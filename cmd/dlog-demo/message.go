package main

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
	"github.com/taurusgroup/dlog-proof/pkg/zk/dlog"
)

// proofMessage is what a prover would send to its peers: the statement and the proof.
//
// The proof is embedded with its compressed encoding, whatever format is configured.
type proofMessage struct {
	SID    string
	PID    uint32
	Public *curve.Point
	Proof  *dlog.Proof
}

// UnmarshalCBOR rejects messages without a public point or proof.
func (m *proofMessage) UnmarshalCBOR(data []byte) error {
	type plain proofMessage
	var decoded plain
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("message: %w", err)
	}
	if decoded.Public == nil || decoded.Proof == nil {
		return fmt.Errorf("message: missing public point or proof")
	}
	*m = proofMessage(decoded)
	return nil
}

// checkContext rejects a message produced for another session or participant.
func (m *proofMessage) checkContext(ctx dlog.Context) error {
	if m.SID != ctx.SID || m.PID != ctx.PID {
		return fmt.Errorf("message: context (%q, %d) does not match (%q, %d)", m.SID, m.PID, ctx.SID, ctx.PID)
	}
	return nil
}
