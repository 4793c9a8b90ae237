package sdk

import "encoding/json"

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Caller is the immediate invoker of the running contract. For a direct user
// call it equals the sender, for a nested call it is contract:<id>.
type Caller struct {
	Address Address `json:"id"`
}

type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
	Payer       Address  `json:"-"`
	Intents     []Intent `json:"intents"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// ParseEnv maps the JSON env blob handed out by the host onto Env.
// The msg.* keys are flat in the blob so they are picked up separately.
func ParseEnv(raw string) Env {
	env := Env{}
	json.Unmarshal([]byte(raw), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(raw), &envMap)

	sender, _ := envMap["msg.sender"].(string)
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        addressList(envMap["msg.required_auths"]),
		RequiredPostingAuths: addressList(envMap["msg.required_posting_auths"]),
	}
	caller, _ := envMap["msg.caller"].(string)
	if caller == "" {
		caller = sender
	}
	env.Caller = Caller{Address: Address(caller)}
	if payer, ok := envMap["msg.payer"].(string); ok {
		env.Payer = Address(payer)
	}
	return env
}

func addressList(v interface{}) []Address {
	out := make([]Address, 0)
	list, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, auth := range list {
		if addr, ok := auth.(string); ok {
			out = append(out, Address(addr))
		}
	}
	return out
}
