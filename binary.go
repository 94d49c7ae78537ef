package morte

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Interchange encoding: one tag byte per node, sorts as a single byte,
// indices as little-endian uint64, names as UTF-8 preceded by a
// little-endian uint64 byte length.

const (
	tagConst byte = iota
	tagVar
	tagLam
	tagPi
	tagApp
)

const maxNameLen = 1 << 32

// Encode writes the wire form of e to writer.
func Encode(writer io.Writer, e Expr) error {
	order := binary.LittleEndian
	var err error
	w := func(v any) {
		if err == nil {
			err = binary.Write(writer, order, v)
		}
	}
	ws := func(s string) {
		b := []byte(s)
		w(uint64(len(b)))
		w(b)
	}
	var enc func(Expr)
	enc = func(e Expr) {
		switch e := e.(type) {
		case Const:
			w(tagConst)
			w(byte(e))
		case Var:
			w(tagVar)
			ws(e.Name)
			w(uint64(e.Index))
		case Lam:
			w(tagLam)
			ws(e.Name)
			enc(e.Type)
			enc(e.Body)
		case Pi:
			w(tagPi)
			ws(e.Name)
			enc(e.Type)
			enc(e.Body)
		case App:
			w(tagApp)
			enc(e.Fn)
			enc(e.Arg)
		}
	}
	enc(e)
	return err
}

// Decode reads one expression from reader, validating tags and sort
// bytes as it goes.
func Decode(reader io.Reader) (Expr, error) {
	order := binary.LittleEndian
	rb := func() (byte, error) {
		var b [1]byte
		if _, err := io.ReadFull(reader, b[:]); err != nil {
			return 0, err
		}
		return b[0], nil
	}
	ru := func() (uint64, error) {
		var n uint64
		err := binary.Read(reader, order, &n)
		return n, err
	}
	rs := func() (string, error) {
		n, err := ru()
		if err != nil {
			return "", err
		}
		if n > maxNameLen {
			return "", fmt.Errorf("name length %d out of range", n)
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(reader, b); err != nil {
			return "", err
		}
		return string(b), nil
	}
	var dec func() (Expr, error)
	dec = func() (Expr, error) {
		tag, err := rb()
		if err != nil {
			return nil, err
		}
		switch tag {
		case tagConst:
			c, err := rb()
			if err != nil {
				return nil, err
			}
			if c != byte(Star) && c != byte(Box) {
				return nil, fmt.Errorf("invalid sort byte %d", c)
			}
			return Const(c), nil
		case tagVar:
			x, err := rs()
			if err != nil {
				return nil, err
			}
			n, err := ru()
			if err != nil {
				return nil, err
			}
			if n > 1<<62 {
				return nil, fmt.Errorf("variable index %d out of range", n)
			}
			return Var{x, int(n)}, nil
		case tagLam, tagPi:
			x, err := rs()
			if err != nil {
				return nil, err
			}
			dom, err := dec()
			if err != nil {
				return nil, err
			}
			body, err := dec()
			if err != nil {
				return nil, err
			}
			if tag == tagLam {
				return Lam{x, dom, body}, nil
			}
			return Pi{x, dom, body}, nil
		case tagApp:
			fn, err := dec()
			if err != nil {
				return nil, err
			}
			arg, err := dec()
			if err != nil {
				return nil, err
			}
			return App{fn, arg}, nil
		}
		return nil, fmt.Errorf("invalid tag byte %d", tag)
	}
	return dec()
}
