package kitties

import (
	"encoding/binary"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"golang.org/x/crypto/blake2b"
)

// Mixer derives pseudo random DNA from the chain state. The result only
// depends on the block random seed, the caller and the position of the
// transaction in its block, so every node computes the same value.
type Mixer struct{}

// Derive returns blake2b-128 of the length prefixed seed and caller followed
// by the transaction index.
func (Mixer) Derive(ctx weft.Context, caller weft.Address) (DNA, error) {
	var dna DNA
	seed, ok := weft.GetRandomSeed(ctx)
	if !ok {
		return dna, errors.Wrap(errors.ErrState, "no random seed in context")
	}
	index, _ := weft.GetTxIndex(ctx)

	h, err := blake2b.New(len(dna), nil)
	if err != nil {
		return dna, errors.Wrap(err, "blake2b")
	}
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(seed)))
	h.Write(n[:])
	h.Write(seed)
	binary.BigEndian.PutUint32(n[:], uint32(len(caller)))
	h.Write(n[:])
	h.Write(caller)
	binary.BigEndian.PutUint32(n[:], index)
	h.Write(n[:])
	copy(dna[:], h.Sum(nil))
	return dna, nil
}

// mixDNA builds the child genome. A bit is set where the selector is set
// and either parent carries it.
func mixDNA(selector, a, b DNA) DNA {
	var child DNA
	for i := range child {
		child[i] = (selector[i] & a[i]) | (selector[i] & b[i])
	}
	return child
}
