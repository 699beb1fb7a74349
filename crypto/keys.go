/*
Package crypto holds the ed25519 keys and signatures that authenticate kitty
owners. A valid signature grants the condition "sigs/ed25519/<pubkey>".
*/
package crypto

import (
	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is the extension part of conditions granted by signatures.
const ExtensionName = "sigs"

// Signer is the part of a private key used to sign. No serialization is
// required, so that hardware keys can implement it.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key. The binary layout is described in
// codec.proto.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519"`
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519"`
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519"`
}

var _ Signer = (*PrivateKey)(nil)

// GenPrivKeyEd25519 returns a new random private key.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed deterministically derives a private key from a 32
// byte seed.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}

// Sign returns the signature of message.
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrState, "invalid private key")
	}
	sig := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: sig}, nil
}

// PublicKey returns the matching public key.
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// Verify is true if sig is a signature of message by this key.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if sig == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition returns the condition granted by a signature of this key.
func (p *PublicKey) Condition() weft.Condition {
	return weft.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address returns the address of the key owner.
func (p *PublicKey) Address() weft.Address {
	return p.Condition().Address()
}

func (p *PublicKey) Validate() error {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Field("Ed25519", errors.ErrInput, "public key of %d bytes", len(p.Ed25519))
	}
	return nil
}

type (
	publicKeyView  PublicKey
	privateKeyView PrivateKey
	signatureView  Signature
)

func (m *publicKeyView) Reset()         { *m = publicKeyView{} }
func (m *publicKeyView) String() string { return proto.CompactTextString(m) }
func (*publicKeyView) ProtoMessage()    {}

func (m *privateKeyView) Reset()         { *m = privateKeyView{} }
func (m *privateKeyView) String() string { return proto.CompactTextString(m) }
func (*privateKeyView) ProtoMessage()    {}

func (m *signatureView) Reset()         { *m = signatureView{} }
func (m *signatureView) String() string { return proto.CompactTextString(m) }
func (*signatureView) ProtoMessage()    {}

func (p *PublicKey) Marshal() ([]byte, error) {
	return codec.Marshal((*publicKeyView)(p))
}

func (p *PublicKey) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*publicKeyView)(p))
}

func (p *PrivateKey) Marshal() ([]byte, error) {
	return codec.Marshal((*privateKeyView)(p))
}

func (p *PrivateKey) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*privateKeyView)(p))
}

func (s *Signature) Marshal() ([]byte, error) {
	return codec.Marshal((*signatureView)(s))
}

func (s *Signature) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*signatureView)(s))
}
