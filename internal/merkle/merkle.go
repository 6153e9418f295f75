// Package merkle builds the binary hash tree committing to an ordered
// batch of evidence file digests. The root is the single digest recorded
// against the whole batch.
package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/hashx"
)

// Node is one node of the tree. Leaves have nil children.
type Node struct {
	Hash  string
	Left  *Node
	Right *Node
}

// Tree is the result of Build: the root node plus the leaf hashes in
// their original order.
type Tree struct {
	Root   *Node
	Leaves []string
}

// RootHash returns the root digest.
func (t *Tree) RootHash() string {
	return t.Root.Hash
}

// Build constructs the tree over the given leaf digests.
//
// Leaves are taken in order; permuting the input changes the root. At
// each level adjacent nodes are paired left to right and a parent digest
// is computed as sha256 over the concatenation of the two child hex
// digests. When a level has an odd number of nodes the last node is
// paired with itself rather than promoted unpaired. A single leaf
// degenerates to a tree whose root equals that leaf.
//
// Build fails with common.ErrEmptyBatch for an empty input and with
// common.ErrBatchTooLarge for more than common.MaxBatchSize leaves,
// before any hashing is done.
func Build(leafHashes []string) (*Tree, error) {
	if len(leafHashes) == 0 {
		return nil, common.ErrEmptyBatch
	}
	if len(leafHashes) > common.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d files, max %d", common.ErrBatchTooLarge, len(leafHashes), common.MaxBatchSize)
	}

	leaves := make([]string, len(leafHashes))
	nodes := make([]*Node, len(leafHashes))
	for i, h := range leafHashes {
		leaves[i] = hashx.Normalize(h)
		nodes[i] = &Node{Hash: leaves[i]}
	}

	for len(nodes) > 1 {
		level := make([]*Node, 0, (len(nodes)+1)/2)
		for i := 0; i < len(nodes); i += 2 {
			left := nodes[i]
			right := left // duplicate-last-node padding
			if i+1 < len(nodes) {
				right = nodes[i+1]
			}
			level = append(level, &Node{
				Hash:  combine(left.Hash, right.Hash),
				Left:  left,
				Right: right,
			})
		}
		nodes = level
	}

	return &Tree{Root: nodes[0], Leaves: leaves}, nil
}

// combine hashes the concatenated hex digests of two children.
func combine(left, right string) string {
	sum := sha256.Sum256([]byte(left + right))
	return hex.EncodeToString(sum[:])
}
