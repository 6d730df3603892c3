package godbf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/axgle/mahonia"
	"go.uber.org/zap"
)

// Codec reads and writes field descriptors whose names are stored in a given
// code page, optionally checking every descriptor against the field rules.
type Codec struct {
	encoding string
	encoder  mahonia.Encoder
	decoder  mahonia.Decoder
	strict   bool
	logger   *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithStrict makes the codec validate fields on read and write.
func WithStrict(strict bool) Option {
	return func(c *Codec) { c.strict = strict }
}

// WithLogger sets the codec logger. The package logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(c *Codec) { c.logger = l }
}

// NewCodec returns a Codec for names in the named character set, such as
// "utf-8", "gbk" or "cp866".
func NewCodec(encoding string, opts ...Option) (*Codec, error) {
	encoder := mahonia.NewEncoder(encoding)
	decoder := mahonia.NewDecoder(encoding)
	if encoder == nil || decoder == nil {
		return nil, newFieldError("NewCodec", ErrInvalidArgument, "unknown encoding "+encoding)
	}
	c := &Codec{
		encoding: encoding,
		encoder:  encoder,
		decoder:  decoder,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = Logger()
	}
	c.logger = c.logger.With(zap.String("encoding", encoding))
	return c, nil
}

// ReadField reads the next descriptor from r like the package ReadField. A
// strict codec also rejects descriptors that fail Field.Validate.
func (c *Codec) ReadField(r io.Reader) (Entry, error) {
	e, err := ReadField(r)
	if err != nil || e.End || !c.strict {
		return e, err
	}
	if err := e.Field.Validate(); err != nil {
		c.logger.Debug("rejected field descriptor", zap.String("name", c.Name(&e.Field)), zap.Error(err))
		return Entry{}, err
	}
	return e, nil
}

// WriteField writes the descriptor of f to w. A strict codec refuses to write
// a field that fails Field.Validate.
func (c *Codec) WriteField(w io.Writer, f *Field) error {
	if c.strict {
		if err := f.Validate(); err != nil {
			c.logger.Debug("refused to write field descriptor", zap.String("name", c.Name(f)), zap.Error(err))
			return err
		}
	}
	return WriteField(w, f)
}

// Name returns the column name of f decoded from the codec's character set,
// with surrounding spaces removed.
func (c *Codec) Name(f *Field) string {
	name := bytes.Trim(f.name[:f.nameLen], string([]byte{SPACE}))
	return c.decoder.ConvertString(string(name))
}

// SetName encodes name into the codec's character set and stores it in f.
// The length limit applies to the encoded bytes.
func (c *Codec) SetName(f *Field, name string) error {
	encoded, err := c.encodeName(name)
	if err != nil {
		return err
	}
	return f.setNameBytes("SetName", encoded)
}

// encodeName converts name rune by rune. mahonia's ConvertString substitutes
// unencodable runes, so the encoder is called directly to catch them.
func (c *Codec) encodeName(name string) ([]byte, error) {
	buf := make([]byte, nameSlotSize)
	n := 0
	for _, r := range name {
		for {
			size, status := c.encoder(buf[n:], r)
			switch status {
			case mahonia.SUCCESS:
				n += size
			case mahonia.NO_ROOM:
				buf = append(buf, make([]byte, len(buf))...)
				continue
			default:
				return nil, newFieldError("SetName", ErrInvalidArgument,
					fmt.Sprintf("%q not representable in %s", r, c.encoding))
			}
			break
		}
	}
	return buf[:n], nil
}
