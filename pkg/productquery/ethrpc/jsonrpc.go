package ethrpc

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// revertCode is the JSON-RPC error code geth and most nodes use for reverts.
const revertCode = 3

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int
	Message string
	// Data is the hex encoded revert payload when the node provides one.
	Data string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Reverted reports whether the error describes a reverted call.
func (e *RPCError) Reverted() bool {
	return e.Code == revertCode || strings.Contains(strings.ToLower(e.Message), "revert")
}

type rpcResponse struct {
	result    string
	hasResult bool
	err       *RPCError
}

// encodeEthCall builds an eth_call request. There is no "from" field: the
// call is anonymous and never signed.
func encodeEthCall(id uint64, to common.Address, data []byte, block string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("jsonrpc")
	e.Str("2.0")
	e.FieldStart("id")
	e.UInt64(id)
	e.FieldStart("method")
	e.Str("eth_call")
	e.FieldStart("params")
	e.ArrStart()
	e.ObjStart()
	e.FieldStart("to")
	e.Str(to.Hex())
	e.FieldStart("data")
	e.Str(hexutil.Encode(data))
	e.ObjEnd()
	e.Str(block)
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}

func decodeResponse(b []byte) (rpcResponse, error) {
	var r rpcResponse

	d := jx.DecodeBytes(b)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "result":
			if d.Next() == jx.Null {
				return d.Null()
			}
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "result")
			}
			r.result, r.hasResult = s, true

			return nil
		case "error":
			if d.Next() == jx.Null {
				return d.Null()
			}
			e, err := decodeRPCError(d)
			if err != nil {
				return errors.Wrap(err, "error")
			}
			r.err = e

			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return rpcResponse{}, errors.Wrap(err, "decode response")
	}

	return r, nil
}

func decodeRPCError(d *jx.Decoder) (*RPCError, error) {
	e := &RPCError{}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "code":
			v, err := d.Int()
			e.Code = v

			return err
		case "message":
			v, err := d.Str()
			e.Message = v

			return err
		case "data":
			return decodeErrorData(d, e)
		default:
			return d.Skip()
		}
	})

	return e, err
}

// decodeErrorData accepts the revert payload either as a hex string (geth)
// or nested in an object under "data" (hardhat, ganache).
func decodeErrorData(d *jx.Decoder, e *RPCError) error {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		e.Data = s

		return err
	case jx.Object:
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) == "data" && d.Next() == jx.String {
				s, err := d.Str()
				e.Data = s

				return err
			}

			return d.Skip()
		})
	default:
		return d.Skip()
	}
}
