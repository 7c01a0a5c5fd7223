// Package embedding - the tree (joint-sketch) scheduling pass.
package embedding

import "github.com/katalvlaran/tensketch/tennet"

// treePass consumes the remaining contraction-path entries in original path
// order, which preserves the path's dependency structure (entries earlier in
// the path never reference nodes produced later). Joint entries - both
// operands still carrying to-be-sketched dangling dimensions - run the
// strategy fixed at construction; everything else contracts plainly.
func (emb *Embedder) treePass(x *tennet.Network, part *pathPartition, m int) error {
	joint := x.TreeSketchAndContract
	if emb.opts.Strategy == TNEmbedding {
		joint = x.TNSketchAndContract
	}

	for _, c := range part.rest {
		if part.joint[c] {
			if err := joint(c[0], c[1], m); err != nil {
				return err
			}

			continue
		}
		if err := x.Contract(c[0], c[1]); err != nil {
			return err
		}
	}

	return nil
}
