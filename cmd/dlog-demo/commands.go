package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/sirupsen/logrus"
	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
	"github.com/taurusgroup/dlog-proof/pkg/math/sample"
	"github.com/taurusgroup/dlog-proof/pkg/pool"
	"github.com/taurusgroup/dlog-proof/pkg/zk/dlog"
	cli "gopkg.in/urfave/cli.v1"
)

// loadConfig reads the configuration file, then applies the global flags on top.
func loadConfig(c *cli.Context) (Config, error) {
	cfg, err := LoadConfig(c.GlobalString(configFlag.Name))
	if err != nil {
		return cfg, err
	}
	if c.GlobalIsSet(sidFlag.Name) {
		cfg.SID = c.GlobalString(sidFlag.Name)
	}
	if c.GlobalIsSet(pidFlag.Name) {
		cfg.PID = uint32(c.GlobalUint(pidFlag.Name))
	}
	if c.GlobalIsSet(formatFlag.Name) {
		cfg.Format = c.GlobalString(formatFlag.Name)
	}
	if c.GlobalIsSet(seedFlag.Name) {
		cfg.Seed = c.GlobalString(seedFlag.Name)
	}
	if c.IsSet(iterationsFlag.Name) {
		cfg.Iterations = c.Int(iterationsFlag.Name)
	}
	if c.IsSet(workersFlag.Name) {
		cfg.Workers = c.Int(workersFlag.Name)
	}
	return cfg, cfg.Validate()
}

func decodeHex(name, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return data, nil
}

func runProve(c *cli.Context, log *logrus.Logger) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	codec, _ := cfg.Codec()
	rand, err := cfg.Reader()
	if err != nil {
		return err
	}

	x := curve.NewScalar()
	if secret := c.String(secretFlag.Name); secret != "" {
		data, err := decodeHex(secretFlag.Name, secret)
		if err != nil {
			return err
		}
		if err = x.UnmarshalBinary(data); err != nil {
			return fmt.Errorf("--%s: %w", secretFlag.Name, err)
		}
	} else if x, err = sample.Scalar(rand); err != nil {
		return err
	}
	Y := curve.NewIdentityPoint().ScalarBaseMult(x)

	start := time.Now()
	proof, err := dlog.Prove(rand, cfg.Context(), x, Y, nil)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	proofBytes, err := codec.Encode(proof)
	if err != nil {
		return err
	}
	public, err := Y.MarshalBinary()
	if err != nil {
		return err
	}
	msg, err := cbor.Marshal(&proofMessage{SID: cfg.SID, PID: cfg.PID, Public: Y, Proof: proof})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"sid":      cfg.SID,
		"pid":      cfg.PID,
		"format":   codec.Format(),
		"duration": elapsed,
	}).Info("proof computed")

	fmt.Fprintf(c.App.Writer, "public: %x\n", public)
	fmt.Fprintf(c.App.Writer, "proof: %x\n", proofBytes)
	fmt.Fprintf(c.App.Writer, "message: %x\n", msg)
	return nil
}

func runVerify(c *cli.Context, log *logrus.Logger) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	Y, proof, err := readStatement(c, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	ok := proof.Verify(cfg.Context(), Y, nil)
	entry := log.WithFields(logrus.Fields{
		"sid":      cfg.SID,
		"pid":      cfg.PID,
		"duration": time.Since(start),
	})
	if !ok {
		entry.Warn("proof rejected")
		return errors.New("DLOG proof is not correct")
	}
	entry.Info("proof accepted")
	fmt.Fprintln(c.App.Writer, "DLOG proof is correct")
	return nil
}

// readStatement takes Y and the proof from --message if given, or else from
// --public and --proof.
func readStatement(c *cli.Context, cfg Config) (*curve.Point, *dlog.Proof, error) {
	if c.IsSet(messageFlag.Name) {
		data, err := decodeHex(messageFlag.Name, c.String(messageFlag.Name))
		if err != nil {
			return nil, nil, err
		}
		var msg proofMessage
		if err = cbor.Unmarshal(data, &msg); err != nil {
			return nil, nil, err
		}
		if err = msg.checkContext(cfg.Context()); err != nil {
			return nil, nil, err
		}
		return msg.Public, msg.Proof, nil
	}

	codec, _ := cfg.Codec()
	publicBytes, err := decodeHex(publicFlag.Name, c.String(publicFlag.Name))
	if err != nil {
		return nil, nil, err
	}
	Y := curve.NewIdentityPoint()
	if err = Y.UnmarshalBinary(publicBytes); err != nil {
		return nil, nil, fmt.Errorf("--%s: %w", publicFlag.Name, err)
	}
	proofBytes, err := decodeHex(proofFlag.Name, c.String(proofFlag.Name))
	if err != nil {
		return nil, nil, err
	}
	proof, err := codec.Decode(proofBytes)
	if err != nil {
		return nil, nil, err
	}
	return Y, proof, nil
}

func runBench(c *cli.Context, log *logrus.Logger) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	codec, _ := cfg.Codec()
	rand, err := cfg.Reader()
	if err != nil {
		return err
	}

	stmts := make([]dlog.Statement, cfg.Iterations)
	for i := range stmts {
		x, X, err := sample.ScalarPointPair(rand)
		if err != nil {
			return err
		}
		stmts[i] = dlog.Statement{Context: cfg.Context(), Y: X, X: x}
	}

	start := time.Now()
	proofs, err := dlog.ProveAll(context.Background(), rand, stmts)
	if err != nil {
		return err
	}
	proveTime := time.Since(start)

	// Every proof goes through the wire encoding, as it would between two parties.
	for i, p := range proofs {
		data, err := codec.Encode(p)
		if err != nil {
			return err
		}
		if proofs[i], err = codec.Decode(data); err != nil {
			return err
		}
	}

	pl := pool.NewPool(cfg.Workers)
	defer pl.TearDown()
	start = time.Now()
	verdicts := dlog.VerifyAll(pl, proofs, stmts)
	verifyTime := time.Since(start)

	failed := 0
	for _, ok := range verdicts {
		if !ok {
			failed++
		}
	}
	log.WithFields(logrus.Fields{
		"iterations": cfg.Iterations,
		"workers":    pl.Workers(),
		"format":     codec.Format(),
		"prove":      proveTime,
		"verify":     verifyTime,
		"failed":     failed,
	}).Info("benchmark finished")

	fmt.Fprintf(c.App.Writer, "Proof computation time: %v\n", proveTime)
	fmt.Fprintf(c.App.Writer, "Verify computation time: %v\n", verifyTime)
	if failed > 0 {
		return fmt.Errorf("%d proofs failed to verify", failed)
	}
	fmt.Fprintln(c.App.Writer, "DLOG proof is correct")
	return nil
}
