//go:build wasm

package host

import (
	"unsafe"

	"github.com/silicalabs/silica-sdk/types"
)

// Raw host imports. These are the only declarations in the SDK that touch the
// guest/host memory boundary; everything else operates on owned values. The
// calling convention is fixed: pointer/length pairs into linear memory, an
// integer status return where 0 means success.

//go:wasmimport env state_read
func stateRead(accountPtr, accountLen, keyPtr, keyLen, valuePtr, valueLenPtr uint32) uint32

//go:wasmimport env state_write
func stateWrite(accountPtr, accountLen, keyPtr, keyLen, valuePtr, valueLen uint32) uint32

//go:wasmimport env log
func hostLog(msgPtr, msgLen uint32)

//go:wasmimport env emit_event
func emitEvent(topicPtr, topicLen, dataPtr, dataLen uint32)

//go:wasmimport env transfer
func transfer(toPtr, toLen uint32, amount uint64) uint32

//go:wasmimport env get_block_height
func getBlockHeight() uint64

//go:wasmimport env get_block_timestamp
func getBlockTimestamp() uint64

//go:wasmimport env get_sender
func getSender(bufferPtr uint32) uint32

//go:wasmimport env get_contract_address
func getContractAddress(bufferPtr uint32) uint32

//go:wasmimport env get_value
func getValue() uint64

//go:wasmimport env get_call_data_length
func getCallDataLength() int32

//go:wasmimport env read_call_data
func readCallData(bufferPtr, bufferLen uint32) uint32

//go:wasmimport env write_return_data
func writeReturnData(bufferPtr, bufferLen uint32) uint32

//go:wasmimport env hash_blake3
func hashBlake3(dataPtr, dataLen, outputPtr uint32) uint32

//go:wasmimport env verify_signature
func verifySignature(pubkeyPtr, messagePtr, messageLen, signaturePtr uint32) int32

// addressBufferSize bounds the host-written address buffers. Addresses are
// validated to at most 100 bytes, so 128 leaves headroom.
const addressBufferSize = 128

// scratch is a one-byte anchor so zero-length buffers still have a valid
// pointer to hand across the boundary.
var scratch [1]byte

func bufPtr(b []byte) uint32 {
	if len(b) == 0 {
		return uint32(uintptr(unsafe.Pointer(&scratch[0])))
	}
	return uint32(uintptr(unsafe.Pointer(&b[0])))
}

func strArgs(s string) (uint32, uint32) {
	return bufPtr([]byte(s)), uint32(len(s))
}

// wasmHost is the production backend. It is stateless: every method is a
// direct host import call.
type wasmHost struct{}

// Wasm returns the production host backend.
func Wasm() Host {
	return wasmHost{}
}

func (wasmHost) StorageRead(account, key string) ([]byte, error) {
	value := make([]byte, MaxValueSize)
	var valueLen uint32

	accountPtr, accountLen := strArgs(account)
	keyPtr, keyLen := strArgs(key)
	status := stateRead(
		accountPtr, accountLen,
		keyPtr, keyLen,
		bufPtr(value),
		uint32(uintptr(unsafe.Pointer(&valueLen))),
	)
	if status != 0 {
		return nil, types.ErrStorageReadFailed
	}
	if valueLen > MaxValueSize {
		return nil, types.ErrStorageReadFailed
	}
	return value[:valueLen], nil
}

func (wasmHost) StorageWrite(account, key string, value []byte) error {
	accountPtr, accountLen := strArgs(account)
	keyPtr, keyLen := strArgs(key)
	status := stateWrite(
		accountPtr, accountLen,
		keyPtr, keyLen,
		bufPtr(value), uint32(len(value)),
	)
	if status != 0 {
		return types.ErrStorageWriteFailed
	}
	return nil
}

func (wasmHost) Log(msg string) {
	msgPtr, msgLen := strArgs(msg)
	hostLog(msgPtr, msgLen)
}

func (wasmHost) EmitEvent(topic string, data []byte) {
	topicPtr, topicLen := strArgs(topic)
	emitEvent(topicPtr, topicLen, bufPtr(data), uint32(len(data)))
}

func (wasmHost) Transfer(to string, amount uint64) error {
	toPtr, toLen := strArgs(to)
	if transfer(toPtr, toLen, amount) != 0 {
		return types.ErrTransferFailed
	}
	return nil
}

func (wasmHost) BlockHeight() uint64 {
	return getBlockHeight()
}

func (wasmHost) BlockTimestamp() uint64 {
	return getBlockTimestamp()
}

func (wasmHost) Sender() string {
	return readAddress(getSender)
}

func (wasmHost) ContractAddress() string {
	return readAddress(getContractAddress)
}

func readAddress(read func(bufferPtr uint32) uint32) string {
	buffer := make([]byte, addressBufferSize)
	n := read(bufPtr(buffer))
	if n > addressBufferSize {
		n = addressBufferSize
	}
	return string(buffer[:n])
}

func (wasmHost) Value() uint64 {
	return getValue()
}

func (wasmHost) CallData() ([]byte, error) {
	length := getCallDataLength()
	if length < 0 {
		return nil, types.ErrCallDataUnavailable
	}
	if length == 0 {
		return []byte{}, nil
	}

	buffer := make([]byte, length)
	if readCallData(bufPtr(buffer), uint32(length)) != 0 {
		return nil, types.ErrCallDataUnavailable
	}
	return buffer, nil
}

func (wasmHost) WriteReturnData(data []byte) error {
	if writeReturnData(bufPtr(data), uint32(len(data))) != 0 {
		return types.ErrReturnDataWriteFailed
	}
	return nil
}

func (wasmHost) HashBlake3(data []byte) [32]byte {
	var output [32]byte
	hashBlake3(bufPtr(data), uint32(len(data)), uint32(uintptr(unsafe.Pointer(&output[0]))))
	return output
}

func (wasmHost) VerifySignature(pubkey [32]byte, message []byte, signature [64]byte) (bool, error) {
	status := verifySignature(
		uint32(uintptr(unsafe.Pointer(&pubkey[0]))),
		bufPtr(message), uint32(len(message)),
		uint32(uintptr(unsafe.Pointer(&signature[0]))),
	)
	switch status {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, types.ErrInvalidSignature
	}
}

func (h wasmHost) BatchHashBlake3(inputs [][]byte) ([][32]byte, error) {
	outputs := make([][32]byte, len(inputs))
	for i, input := range inputs {
		outputs[i] = h.HashBlake3(input)
	}
	return outputs, nil
}

func (h wasmHost) BatchVerifySignatures(pubkeys [][32]byte, messages [][]byte, signatures [][64]byte) ([]bool, error) {
	if len(pubkeys) != len(messages) || len(pubkeys) != len(signatures) {
		return nil, types.InvalidArgument("batch input length mismatch")
	}
	results := make([]bool, len(pubkeys))
	for i := range pubkeys {
		ok, err := h.VerifySignature(pubkeys[i], messages[i], signatures[i])
		if err != nil {
			return nil, err
		}
		results[i] = ok
	}
	return results, nil
}
