package blockchain

const (
	// RewardSender is the reserved sentinel sender for mining-reward
	// transactions. It does not correspond to a real account.
	RewardSender = "0"

	// RewardAmount is credited to a node every time it mines a block.
	RewardAmount = 1

	// GenesisPreviousHash and GenesisProof are the fixed sentinel values of
	// block 1. The genesis block is never validated against a predecessor.
	GenesisPreviousHash = "1"
	GenesisProof        = 100
)

type Transaction struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

// Block is a committed, immutable batch of transactions plus linkage and
// puzzle-solution metadata. Index is 1-based and equals the block's position
// in the chain. Timestamp is seconds since epoch.
type Block struct {
	Index        int64         `json:"index"`
	Timestamp    float64       `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	Proof        int64         `json:"proof"`
	PreviousHash string        `json:"previous_hash"`
}
