package fractions

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(0, (*Fraction)(nil))
}

// MarshalJSON renders x as the quoted canonical string form.
func (x Fraction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

func (x *Fraction) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	f, err := ParseFraction(unquoted)
	if err != nil {
		return err
	}
	*x = f
	return nil
}

// MarshalMsgpack encodes x as the numerator and denominator in big endian.
func (x Fraction) MarshalMsgpack() ([]byte, error) {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(x.Num()))
	binary.BigEndian.PutUint64(buf[8:], uint64(x.Den()))
	return buf[:], nil
}

// UnmarshalMsgpack decodes and renormalizes a fraction, so a payload that
// violates the canonical form invariants is reduced or rejected rather
// than exposed.
func (x *Fraction) UnmarshalMsgpack(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("fractions: invalid msgpack payload %s", hex.EncodeToString(data))
	}
	f, err := New(int64(binary.BigEndian.Uint64(data[:8])), int64(binary.BigEndian.Uint64(data[8:])))
	if err != nil {
		return err
	}
	*x = f
	return nil
}

func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %s", hex.EncodeToString(data), err.Error())
}
