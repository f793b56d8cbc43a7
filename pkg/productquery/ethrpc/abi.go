package ethrpc

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const methodGetProduct = "getProduct"

// registryABIJSON declares the only registry function the reader calls.
const registryABIJSON = `[{
	"type": "function",
	"name": "getProduct",
	"stateMutability": "view",
	"inputs": [{"name": "productAddress", "type": "address"}],
	"outputs": [
		{"name": "owner", "type": "address"},
		{"name": "productType", "type": "uint8"},
		{"name": "timesRecycled", "type": "uint16"},
		{"name": "cid", "type": "string"},
		{"name": "productName", "type": "string"},
		{"name": "state", "type": "uint8"}
	]
}]`

var registryABI = mustParseABI(registryABIJSON) //nolint: gochecknoglobals

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return parsed
}

// ContractABI returns the parsed ABI of the registry getter.
func ContractABI() abi.ABI { return registryABI }
