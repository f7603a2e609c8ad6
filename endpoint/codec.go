package endpoint

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// region binary ///////////////////////////////////////////////////////////////////////////////////////////////////////

// FromBytes unmarshals an Endpoint from a sequence of bytes.
func FromBytes[T constraints.Ordered](endpointBytes []byte) (endpoint Endpoint[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(endpointBytes)
	if endpoint, err = FromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Endpoint from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals an Endpoint using a MarshalUtil (for easier unmarshalling).
func FromMarshalUtil[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (endpoint Endpoint[T], err error) {
	if endpoint.kind, err = KindFromMarshalUtil(marshalUtil); err != nil {
		return endpoint, ierrors.Wrap(err, "failed to parse Kind from MarshalUtil")
	}

	if !endpoint.kind.IsFinite() {
		return endpoint, nil
	}

	if endpoint.value, err = readValue[T](marshalUtil); err != nil {
		return endpoint, ierrors.Wrap(err, "failed to parse value from MarshalUtil")
	}

	return endpoint, nil
}

// Bytes returns a marshaled version of the Endpoint.
func (e Endpoint[T]) Bytes() []byte {
	marshalUtil := marshalutil.New().Write(e.kind)
	if e.kind.IsFinite() {
		writeValue(marshalUtil, e.value)
	}

	return marshalUtil.Bytes()
}

// Encode returns a serialized byte slice of the Endpoint.
func (e Endpoint[T]) Encode() ([]byte, error) {
	return e.Bytes(), nil
}

// Decode deserializes bytes into the Endpoint.
func (e *Endpoint[T]) Decode(b []byte) (bytesRead int, err error) {
	*e, bytesRead, err = FromBytes[T](b)

	return bytesRead, err
}

// writeValue appends the binary representation of value. Integers are widened to 64 bits and strings are prefixed
// with their length. float32 values are stored as their IEEE 754 bits.
func writeValue[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil, value T) {
	reflectedValue := reflect.ValueOf(value)
	switch reflectedValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		marshalUtil.WriteInt64(reflectedValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		marshalUtil.WriteUint64(reflectedValue.Uint())
	case reflect.Float32:
		marshalUtil.WriteUint32(math.Float32bits(float32(reflectedValue.Float())))
	case reflect.Float64:
		marshalUtil.WriteFloat64(reflectedValue.Float())
	case reflect.String:
		marshalUtil.WriteUint32(uint32(reflectedValue.Len()))
		marshalUtil.WriteBytes([]byte(reflectedValue.String()))
	default:
		panic("unsupported value type " + reflectedValue.Type().String())
	}
}

// readValue reads a value that was written by writeValue.
func readValue[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (value T, err error) {
	target := reflect.ValueOf(&value).Elem()
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		signed, readErr := marshalUtil.ReadInt64()
		if readErr != nil {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read signed integer: %s", readErr)
		}
		if target.OverflowInt(signed) {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "%d overflows %s", signed, target.Type())
		}
		target.SetInt(signed)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		unsigned, readErr := marshalUtil.ReadUint64()
		if readErr != nil {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read unsigned integer: %s", readErr)
		}
		if target.OverflowUint(unsigned) {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "%d overflows %s", unsigned, target.Type())
		}
		target.SetUint(unsigned)
	case reflect.Float32:
		bits, readErr := marshalUtil.ReadUint32()
		if readErr != nil {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read float32: %s", readErr)
		}
		target.SetFloat(float64(math.Float32frombits(bits)))
	case reflect.Float64:
		float, readErr := marshalUtil.ReadFloat64()
		if readErr != nil {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read float64: %s", readErr)
		}
		target.SetFloat(float)
	case reflect.String:
		length, readErr := marshalUtil.ReadUint32()
		if readErr != nil {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read string length: %s", readErr)
		}
		stringBytes, readErr := marshalUtil.ReadBytes(int(length))
		if readErr != nil {
			return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read string: %s", readErr)
		}
		target.SetString(string(stringBytes))
	default:
		panic("unsupported value type " + target.Type().String())
	}

	return value, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region json /////////////////////////////////////////////////////////////////////////////////////////////////////////

// jsonEndpoint is the JSON representation of an Endpoint.
type jsonEndpoint struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// nonFiniteFloats maps the names of the float values that JSON numbers can not express to their values.
var nonFiniteFloats = map[string]float64{
	"NaN":  math.NaN(),
	"+Inf": math.Inf(1),
	"-Inf": math.Inf(-1),
}

// MarshalJSON returns the JSON representation of the Endpoint.
func (e Endpoint[T]) MarshalJSON() ([]byte, error) {
	encoded := jsonEndpoint{Kind: e.kind.String()}
	if e.kind.IsFinite() {
		value, err := marshalJSONValue(e.value)
		if err != nil {
			return nil, ierrors.Wrap(err, "failed to marshal Endpoint value")
		}
		encoded.Value = value
	}

	return json.Marshal(encoded)
}

// UnmarshalJSON restores the Endpoint from its JSON representation.
func (e *Endpoint[T]) UnmarshalJSON(data []byte) error {
	var decoded jsonEndpoint
	if err := json.Unmarshal(data, &decoded); err != nil {
		return ierrors.Wrapf(ErrParseJSONFailed, "failed to unmarshal Endpoint: %s", err)
	}

	kind, err := KindFromString(decoded.Kind)
	if err != nil {
		return err
	}

	if !kind.IsFinite() {
		*e = New(kind, *new(T))

		return nil
	}

	if len(decoded.Value) == 0 {
		return ierrors.Wrapf(ErrParseJSONFailed, "Endpoint of kind %s is missing its value", kind)
	}

	value, err := unmarshalJSONValue[T](decoded.Value)
	if err != nil {
		return err
	}
	*e = New(kind, value)

	return nil
}

// EncodeJSON returns the JSON representation of the Endpoint for the map encoding of serix.
func (e Endpoint[T]) EncodeJSON() (any, error) {
	encoded, err := e.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return json.RawMessage(encoded), nil
}

// DecodeJSON restores the Endpoint from the map encoding of serix.
func (e *Endpoint[T]) DecodeJSON(val any) error {
	encoded, err := json.Marshal(val)
	if err != nil {
		return ierrors.Wrapf(ErrParseJSONFailed, "failed to unmarshal Endpoint: %s", err)
	}

	return e.UnmarshalJSON(encoded)
}

// marshalJSONValue encodes value as a JSON number or string. NaN and infinite floats are written as the strings
// "NaN", "+Inf" and "-Inf".
func marshalJSONValue[T constraints.Ordered](value T) ([]byte, error) {
	if reflectedValue := reflect.ValueOf(value); isFloat(reflectedValue.Kind()) {
		switch float := reflectedValue.Float(); {
		case math.IsNaN(float):
			return json.Marshal("NaN")
		case math.IsInf(float, 1):
			return json.Marshal("+Inf")
		case math.IsInf(float, -1):
			return json.Marshal("-Inf")
		}
	}

	return json.Marshal(value)
}

// unmarshalJSONValue decodes a value that was written by marshalJSONValue.
func unmarshalJSONValue[T constraints.Ordered](data json.RawMessage) (value T, err error) {
	target := reflect.ValueOf(&value).Elem()
	if isFloat(target.Kind()) && len(data) > 0 && data[0] == '"' {
		var name string
		if err = json.Unmarshal(data, &name); err != nil {
			return value, ierrors.Wrapf(ErrParseJSONFailed, "failed to unmarshal Endpoint value: %s", err)
		}

		float, exists := nonFiniteFloats[name]
		if !exists {
			return value, ierrors.Wrapf(ErrParseJSONFailed, "unknown float value %q", name)
		}
		target.SetFloat(float)

		return value, nil
	}

	if err = json.Unmarshal(data, &value); err != nil {
		return value, ierrors.Wrapf(ErrParseJSONFailed, "failed to unmarshal Endpoint value: %s", err)
	}

	return value, nil
}

func isFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
