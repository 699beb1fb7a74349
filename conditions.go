package weft

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kittyverse/weft/crypto/bech32"
	"github.com/kittyverse/weft/errors"
)

const (
	// AddressLength is the length of every address.
	AddressLength = 20

	// AddressPrefix is the human readable part of bech32 addresses.
	AddressPrefix = "kitty"
)

// (?s) so that the data section may contain a newline byte.
var condFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition describes who can authorize an action. It has the format
//
//	extension/type/data
//
// A signature check produces the condition "sigs/ed25519/<pubkey>".
type Condition []byte

// NewCondition builds a condition from its parts.
func NewCondition(ext, typ string, data []byte) Condition {
	pre := fmt.Sprintf("%s/%s/", ext, typ)
	return append([]byte(pre), data...)
}

// Parse returns the extension, type and data of the condition.
func (c Condition) Parse() (string, string, []byte, error) {
	chunks := condFormat.FindSubmatch(c)
	if len(chunks) == 0 {
		return "", "", nil, errors.ErrInput.Newf("condition: %X", []byte(c))
	}
	return string(chunks[1]), string(chunks[2]), chunks[3], nil
}

// Address returns the address controlled by this condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(b Condition) bool {
	return bytes.Equal(c, b)
}

// String keeps the extension and type readable and hex encodes the data.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("invalid condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

func (c Condition) Validate() error {
	if !condFormat.Match(c) {
		return errors.ErrInput.Newf("condition: %X", []byte(c))
	}
	return nil
}

func (c Condition) MarshalJSON() ([]byte, error) {
	var s string
	if c != nil {
		s = c.String()
	}
	return json.Marshal(s)
}

func (c *Condition) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if s == "" {
		*c = nil
		return nil
	}
	cond, err := parseCondition(s)
	if err != nil {
		return err
	}
	*c = cond
	return nil
}

func parseCondition(s string) (Condition, error) {
	args := strings.SplitN(s, "/", 3)
	if len(args) != 3 {
		return nil, errors.ErrInput.New("invalid condition format")
	}
	data, err := hex.DecodeString(args[2])
	if err != nil {
		return nil, errors.ErrInput.Newf("malformed condition data: %s", err)
	}
	c := NewCondition(args[0], args[1], data)
	return c, c.Validate()
}

// Address is a collision free one way digest of a Condition. Kitty owners
// are identified by their address.
type Address []byte

// NewAddress hashes and truncates data into an address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// ParseAddress decodes the human readable form of an address. Supported
// formats are
//
//	kitty1...          bech32
//	bech32:kitty1...   bech32
//	hex:<40 hex chars> hex
//	<40 hex chars>     hex
//	cond:ext/typ/data  address of the condition
func ParseAddress(s string) (Address, error) {
	format, enc := "", s
	if chunks := strings.SplitN(s, ":", 2); len(chunks) == 2 {
		format, enc = chunks[0], chunks[1]
	} else if strings.HasPrefix(s, AddressPrefix+"1") {
		format = "bech32"
	} else {
		format = "hex"
	}

	var addr Address
	switch format {
	case "hex":
		raw, err := hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
		}
		addr = raw
	case "bech32":
		hrp, raw, err := bech32.Decode(enc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		if hrp != AddressPrefix {
			return nil, errors.ErrInput.Newf("unexpected address prefix %q", hrp)
		}
		addr = raw
	case "cond":
		c, err := parseCondition(enc)
		if err != nil {
			return nil, err
		}
		addr = c.Address()
	default:
		return nil, errors.ErrType.Newf("unknown address format %q", format)
	}
	return addr, addr.Validate()
}

// MustParseAddress is ParseAddress that panics on failure. Use it in tests
// and static configuration only.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// String returns the bech32 representation.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	s, err := bech32.Encode(AddressPrefix, a)
	if err != nil {
		return strings.ToUpper(hex.EncodeToString(a))
	}
	return string(s)
}

func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.ErrInput.Newf("address length %d", len(a))
	}
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if s == "" {
		*a = nil
		return nil
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
