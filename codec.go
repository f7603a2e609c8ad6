package interval

import (
	"encoding/json"
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/hive.go/interval/endpoint"
)

// FromBytes unmarshals an Interval from a sequence of bytes.
func FromBytes[T constraints.Ordered](intervalBytes []byte) (interval Interval[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(intervalBytes)
	if interval, err = FromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Interval from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals an Interval using a MarshalUtil (for easier unmarshalling).
func FromMarshalUtil[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (interval Interval[T], err error) {
	if interval.left, err = endpoint.FromMarshalUtil[T](marshalUtil); err != nil {
		return interval, ierrors.Wrap(err, "failed to parse left Endpoint from MarshalUtil")
	}

	if interval.right, err = endpoint.FromMarshalUtil[T](marshalUtil); err != nil {
		return interval, ierrors.Wrap(err, "failed to parse right Endpoint from MarshalUtil")
	}

	return interval, nil
}

// Bytes returns a marshaled version of the Interval.
func (i Interval[T]) Bytes() []byte {
	return marshalutil.New().
		Write(i.left).
		Write(i.right).
		Bytes()
}

// Encode returns a serialized byte slice of the Interval.
func (i Interval[T]) Encode() ([]byte, error) {
	return i.Bytes(), nil
}

// Decode deserializes bytes into the Interval.
func (i *Interval[T]) Decode(b []byte) (bytesRead int, err error) {
	*i, bytesRead, err = FromBytes[T](b)

	return bytesRead, err
}

// jsonInterval is the JSON representation of an Interval.
type jsonInterval[T constraints.Ordered] struct {
	Left  endpoint.Endpoint[T] `json:"left"`
	Right endpoint.Endpoint[T] `json:"right"`
}

// MarshalJSON returns the JSON representation of the Interval.
func (i Interval[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonInterval[T]{Left: i.left, Right: i.right})
}

// UnmarshalJSON restores the Interval from its JSON representation.
func (i *Interval[T]) UnmarshalJSON(data []byte) error {
	var decoded jsonInterval[T]
	if err := json.Unmarshal(data, &decoded); err != nil {
		if ierrors.Is(err, endpoint.ErrParseJSONFailed) {
			return ierrors.Wrap(err, "failed to unmarshal Interval")
		}

		return ierrors.Wrapf(endpoint.ErrParseJSONFailed, "failed to unmarshal Interval: %s", err)
	}

	*i = New(decoded.Left, decoded.Right)

	return nil
}

// EncodeJSON returns the JSON representation of the Interval for the map encoding of serix.
func (i Interval[T]) EncodeJSON() (any, error) {
	encoded, err := i.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return json.RawMessage(encoded), nil
}

// DecodeJSON restores the Interval from the map encoding of serix.
func (i *Interval[T]) DecodeJSON(val any) error {
	encoded, err := json.Marshal(val)
	if err != nil {
		return ierrors.Wrapf(endpoint.ErrParseJSONFailed, "failed to unmarshal Interval: %s", err)
	}

	return i.UnmarshalJSON(encoded)
}

// String returns the Interval in mathematical notation, e.g. "[1, 3)" or "(-inf, 2]". Intervals whose Endpoints can
// not be written that way (e.g. a right-open Endpoint on the left side) are printed as a struct.
func (i Interval[T]) String() string {
	left, leftOK := leftNotation(i.left)
	right, rightOK := rightNotation(i.right)
	if !leftOK || !rightOK {
		return stringify.Struct("Interval",
			stringify.NewStructField("left", i.left),
			stringify.NewStructField("right", i.right),
		)
	}

	return left + ", " + right
}

func leftNotation[T constraints.Ordered](left endpoint.Endpoint[T]) (string, bool) {
	value, _ := left.Value()

	switch left.Kind() {
	case endpoint.KindClosed:
		return fmt.Sprintf("[%v", value), true
	case endpoint.KindLeftOpen:
		return fmt.Sprintf("(%v", value), true
	case endpoint.KindNegInf:
		return "(-inf", true
	case endpoint.KindPosInf:
		return "(+inf", true
	default:
		return "", false
	}
}

func rightNotation[T constraints.Ordered](right endpoint.Endpoint[T]) (string, bool) {
	value, _ := right.Value()

	switch right.Kind() {
	case endpoint.KindClosed:
		return fmt.Sprintf("%v]", value), true
	case endpoint.KindRightOpen:
		return fmt.Sprintf("%v)", value), true
	case endpoint.KindPosInf:
		return "+inf)", true
	case endpoint.KindNegInf:
		return "-inf)", true
	default:
		return "", false
	}
}
