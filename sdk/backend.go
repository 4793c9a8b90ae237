//go:build !wasm

package sdk

// Backend is the host surface the contracts talk to when they are not
// compiled to wasm. The simulated host in package simhost implements it so
// contract code runs unchanged inside go test and the postsim cli.
type Backend interface {
	Log(msg string)
	StateSet(key, value string)
	StateGet(key string) *string
	StateDelete(key string)
	Env() Env
	EnvKey(key string) *string
	Balance(addr Address, asset Asset) int64
	Draw(amount int64, asset Asset)
	Transfer(to Address, amount int64, asset Asset)
	ContractRead(contractID, key string) *string
	ContractCall(contractID, method, payload string, options *ContractCallOptions) *string
	Abort(msg string)
	Revert(msg, symbol string)
}

var backend Backend

// UseBackend installs the host implementation used by every sdk call.
func UseBackend(b Backend) {
	backend = b
}

func host() Backend {
	if backend == nil {
		panic("sdk: no host backend installed")
	}
	return backend
}

func Log(s string) {
	host().Log(s)
}

// Abort never returns; backends are expected to panic.
func Abort(msg string) {
	host().Abort(msg)
	panic(msg)
}

func Revert(msg string, symbol string) {
	host().Revert(msg, symbol)
	panic(msg)
}

func StateSetObject(key string, value string) {
	host().StateSet(key, value)
}

func StateGetObject(key string) *string {
	return host().StateGet(key)
}

func StateDeleteObject(key string) {
	host().StateDelete(key)
}

func GetEnv() Env {
	return host().Env()
}

func GetEnvKey(key string) *string {
	return host().EnvKey(key)
}

func GetBalance(address Address, asset Asset) int64 {
	return host().Balance(address, asset)
}

func HiveDraw(amount int64, asset Asset) {
	host().Draw(amount, asset)
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	host().Transfer(to, amount, asset)
}

func ContractStateGet(contractId string, key string) *string {
	return host().ContractRead(contractId, key)
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	return host().ContractCall(contractId, method, payload, options)
}
