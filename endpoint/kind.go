package endpoint

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// Kind indicates how an Endpoint bounds an interval. Finite kinds carry a value and decide whether that value is part of
// the interval ("closed") or lies just outside of it ("left open" / "right open"). The unbounded kinds carry no value.
type Kind uint8

const (
	// KindClosed indicates that the Endpoint value is part of the interval.
	KindClosed Kind = iota

	// KindLeftOpen indicates a lower bound that excludes its value. It orders infinitesimally after the value.
	KindLeftOpen

	// KindRightOpen indicates an upper bound that excludes its value. It orders infinitesimally before the value.
	KindRightOpen

	// KindPosInf indicates that the interval is unbounded above.
	KindPosInf

	// KindNegInf indicates that the interval is unbounded below.
	KindNegInf
)

// KindNames contains a dictionary of the names of Kinds.
var KindNames = [...]string{
	"closed",
	"leftOpen",
	"rightOpen",
	"posInf",
	"negInf",
}

// tieRank positions the finite kinds relative to each other when they wrap equal values.
var tieRank = [...]int{
	KindClosed:    0,
	KindLeftOpen:  1,
	KindRightOpen: -1,
}

// KindFromBytes unmarshals a Kind from a sequence of bytes.
func KindFromBytes(kindBytes []byte) (kind Kind, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(kindBytes)
	if kind, err = KindFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Kind from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// KindFromMarshalUtil unmarshals a Kind using a MarshalUtil (for easier unmarshalling).
func KindFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (kind Kind, err error) {
	kindByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Kind: %s", err)

		return
	}

	if kind = Kind(kindByte); kind > KindNegInf {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported Kind (%X)", uint8(kind))

		return
	}

	return
}

// KindFromString returns the Kind with the given name.
func KindFromString(name string) (Kind, error) {
	for kind, kindName := range KindNames {
		if kindName == name {
			return Kind(kind), nil
		}
	}

	return 0, ierrors.Wrapf(ErrParseJSONFailed, "unsupported Kind name %q", name)
}

// IsFinite returns true if an Endpoint of this Kind carries a value.
func (k Kind) IsFinite() bool {
	return k <= KindRightOpen
}

// Bytes returns a marshaled version of the Kind.
func (k Kind) Bytes() []byte {
	return []byte{byte(k)}
}

// String returns a human-readable version of the Kind.
func (k Kind) String() string {
	if int(k) >= len(KindNames) {
		return fmt.Sprintf("Kind(%X)", uint8(k))
	}

	return KindNames[k]
}
