package gjson

import (
	"bytes"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"github.com/kurumiimari/hexbytes"
	"github.com/pkg/errors"
	"reflect"
)

// ByteString is a byte slice that travels as a hex string in JSON and SQL.
type ByteString []byte

func (b ByteString) String() string {
	return hex.EncodeToString(b)
}

func (b ByteString) Equal(other ByteString) bool {
	return bytes.Equal(b, other)
}

func (b ByteString) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return json.Marshal(nil)
	}
	return json.Marshal(b.String())
}

func (b *ByteString) UnmarshalJSON(buf []byte) error {
	var h string
	if err := json.Unmarshal(buf, &h); err != nil {
		return errors.WithStack(err)
	}
	bs, err := hexbytes.Decode(h)
	if err != nil {
		return errors.Wrap(err, "invalid hex payload")
	}
	*b = bs
	return nil
}

func (b ByteString) Value() (driver.Value, error) {
	if len(b) == 0 {
		return nil, nil
	}
	return b.String(), nil
}

func (b *ByteString) Scan(src interface{}) error {
	switch t := src.(type) {
	case nil:
		*b = nil
	case string:
		buf, err := hexbytes.Decode(t)
		if err != nil {
			return errors.Wrap(err, "invalid hex column")
		}
		*b = buf
	default:
		return errors.Errorf("cannot scan %v into byte string", reflect.TypeOf(src))
	}

	return nil
}
