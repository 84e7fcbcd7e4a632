package dlog

import (
	"context"
	"fmt"
	"io"

	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
	"github.com/taurusgroup/dlog-proof/pkg/pool"
	"golang.org/x/sync/errgroup"
)

// Statement is a claim Y = X⋅Base in some context.
//
// X is the witness: it is only needed for proving, and is ignored by VerifyAll.
// A nil Base means G.
type Statement struct {
	Context Context
	Y       *curve.Point
	Base    *curve.Point
	X       *curve.Scalar
}

// ProveAll proves each statement on its own goroutine.
//
// rand is shared behind a lock, so each proof still draws its own nonce.
// The first failure cancels the remaining proofs, and is returned.
func ProveAll(ctx context.Context, rand io.Reader, stmts []Statement) ([]*Proof, error) {
	proofs := make([]*Proof, len(stmts))
	lockedRand := pool.NewLockedReader(rand)

	g, ctx := errgroup.WithContext(ctx)
	for i := range stmts {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st := stmts[i]
			proof, err := Prove(lockedRand, st.Context, st.X, st.Y, st.Base)
			if err != nil {
				return fmt.Errorf("dlog.ProveAll: statement %d: %w", i, err)
			}
			proofs[i] = proof
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proofs, nil
}

// VerifyAll verifies proofs[i] against stmts[i] in parallel on pl.
//
// The result holds one verdict per statement. A missing proof is rejected.
// pl may be nil, in which case the work is done on the calling goroutine.
func VerifyAll(pl *pool.Pool, proofs []*Proof, stmts []Statement) []bool {
	results := pl.Parallelize(len(stmts), func(i int) interface{} {
		if i >= len(proofs) {
			return false
		}
		st := stmts[i]
		return proofs[i].Verify(st.Context, st.Y, st.Base)
	})
	verdicts := make([]bool, len(results))
	for i, r := range results {
		verdicts[i] = r.(bool)
	}
	return verdicts
}
