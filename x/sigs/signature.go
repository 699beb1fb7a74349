package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/crypto"
	"github.com/kittyverse/weft/errors"
)

// signCodeV1 prefixes every signed payload.
var signCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// SignedTx is a transaction carrying signatures.
type SignedTx interface {
	weft.Tx

	// GetSignBytes returns the canonical bytes that are signed. It must
	// not depend on the signatures.
	GetSignBytes() ([]byte, error)

	GetSignatures() []*StdSignature
}

// StdSignature is a signature made for a given sequence of the key.
type StdSignature struct {
	Pubkey    *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey"`
	Signature *crypto.Signature `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature"`
	Sequence  int64             `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence"`
}

func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if s.Signature == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

type stdSignatureView StdSignature

func (m *stdSignatureView) Reset()         { *m = stdSignatureView{} }
func (m *stdSignatureView) String() string { return proto.CompactTextString(m) }
func (*stdSignatureView) ProtoMessage()    {}

func (s *StdSignature) Marshal() ([]byte, error) {
	return codec.Marshal((*stdSignatureView)(s))
}

func (s *StdSignature) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*stdSignatureView)(s))
}

/*
BuildSignBytes returns the digest that is signed:

	sha512(version | len(chainID) | chainID | sequence | signBytes)

version is four bytes, the chain id length a single byte and the sequence
eight big-endian bytes.
*/
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !weft.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	out := make([]byte, 0, len(signCodeV1)+1+len(chainID)+8+len(signBytes))
	out = append(out, signCodeV1...)
	out = append(out, uint8(len(chainID)))
	out = append(out, chainID...)
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))
	out = append(out, nonce[:]...)
	out = append(out, signBytes...)
	hashed := sha512.Sum512(out)
	return hashed[:], nil
}

// SignTx signs tx for the given chain and sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(raw, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{Pubkey: signer.PublicKey(), Signature: sig, Sequence: seq}, nil
}

// VerifyTxSignatures verifies every signature of tx and bumps the sequence
// of each signer. It returns the signer conditions, in signature order.
func VerifyTxSignatures(db weft.KVStore, tx SignedTx, chainID string) ([]weft.Condition, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	signers := make([]weft.Condition, 0, len(sigs))
	for i, sig := range sigs {
		cond, err := VerifySignature(db, sig, raw, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

// VerifySignature verifies a single signature.
func VerifySignature(db weft.KVStore, sig *StdSignature, signBytes []byte, chainID string) (weft.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !sig.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	b := NewBucket()
	user, err := loadUser(db, b, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := b.Put(db, sig.Pubkey.Address(), user); err != nil {
		return nil, err
	}
	return sig.Pubkey.Condition(), nil
}
