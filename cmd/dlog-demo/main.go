package main

import (
	"os"

	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	sidFlag = cli.StringFlag{
		Name:  "sid",
		Usage: "session id bound into the challenge",
	}
	pidFlag = cli.UintFlag{
		Name:  "pid",
		Usage: "participant id bound into the challenge",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "point encoding of the commitment: compressed or uncompressed",
	}
	seedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "hex seed for a deterministic run (testing only)",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Value: logrus.InfoLevel.String(),
		Usage: "logging level",
	}
	secretFlag = cli.StringFlag{
		Name:  "secret",
		Usage: "hex encoded 32-byte secret, sampled when empty",
	}
	publicFlag = cli.StringFlag{
		Name:  "public",
		Usage: "hex encoded compressed public point Y",
	}
	proofFlag = cli.StringFlag{
		Name:  "proof",
		Usage: "hex encoded proof",
	}
	messageFlag = cli.StringFlag{
		Name:  "message",
		Usage: "hex encoded CBOR message printed by prove, instead of --public and --proof",
	}
	iterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "number of proofs to generate and verify",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "verification workers, 0 for one per CPU",
	}
)

func newApp(log *logrus.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "dlog-demo"
	app.Usage = "prove and verify knowledge of a secp256k1 discrete logarithm"
	app.Flags = []cli.Flag{configFlag, sidFlag, pidFlag, formatFlag, seedFlag, logLevelFlag}
	app.Before = func(c *cli.Context) error {
		level, err := logrus.ParseLevel(c.GlobalString(logLevelFlag.Name))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "prove",
			Usage:  "generate a proof for a secret",
			Flags:  []cli.Flag{secretFlag},
			Action: func(c *cli.Context) error { return runProve(c, log) },
		},
		{
			Name:   "verify",
			Usage:  "verify a proof against a public point",
			Flags:  []cli.Flag{publicFlag, proofFlag, messageFlag},
			Action: func(c *cli.Context) error { return runVerify(c, log) },
		},
		{
			Name:   "bench",
			Usage:  "time proof generation and verification",
			Flags:  []cli.Flag{iterationsFlag, workersFlag},
			Action: func(c *cli.Context) error { return runBench(c, log) },
		},
	}
	return app
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := newApp(log).Run(os.Args); err != nil {
		log.WithError(err).Fatal("dlog-demo failed")
	}
}
