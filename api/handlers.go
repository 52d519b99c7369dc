package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tinychain/blockchain"
)

type newTransactionRequest struct {
	// Pointers so that a present-but-zero amount is distinguishable from a
	// missing field; all three fields are required.
	Sender    *string `json:"sender"`
	Recipient *string `json:"recipient"`
	Amount    *int64  `json:"amount"`
}

// POST /transactions/new
func (s *Server) handleNewTransaction(c *gin.Context) {
	var req newTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.Sender == nil || req.Recipient == nil || req.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender, recipient and amount are required"})
		return
	}

	index := s.ledger.NewTransaction(*req.Sender, *req.Recipient, *req.Amount)
	transactionsSubmitted.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Transaction will be added to block %d", index),
		"index":   index,
	})
}

// GET /mine
//
// The proof search runs without any ledger lock held: it only needs the
// previous proof, captured up front. The reward transaction is enqueued
// after the search so it lands in the block being committed.
func (s *Server) handleMine(c *gin.Context) {
	lastProof := s.ledger.LastBlock().Proof
	proof := s.solver.Solve(lastProof)

	s.ledger.NewTransaction(blockchain.RewardSender, s.nodeID, blockchain.RewardAmount)
	block := s.ledger.NewBlock(proof, "")

	blocksMined.Inc()
	slog.Info("mined new block", "index", block.Index, "proof", block.Proof, "transactions", len(block.Transactions))

	c.JSON(http.StatusOK, gin.H{
		"message":       "New block forged",
		"index":         block.Index,
		"transactions":  block.Transactions,
		"proof":         block.Proof,
		"previous_hash": block.PreviousHash,
	})
}

// GET /chain
func (s *Server) handleChain(c *gin.Context) {
	blocks := s.ledger.Blocks()
	c.JSON(http.StatusOK, gin.H{
		"chain":  blocks,
		"length": len(blocks),
	})
}

type registerNodesRequest struct {
	Nodes []string `json:"nodes"`
}

// POST /nodes/register
func (s *Server) handleRegisterNodes(c *gin.Context) {
	var req registerNodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if len(req.Nodes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please supply a non-empty list of nodes"})
		return
	}

	for _, address := range req.Nodes {
		authority := s.registry.Register(address)
		slog.Info("registered peer", "peer", authority)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "New nodes have been added",
		"total_nodes": s.registry.List(),
	})
}

// GET /nodes/resolve
func (s *Server) handleResolve(c *gin.Context) {
	resolveRounds.Inc()
	result := s.resolver.Resolve(c.Request.Context())

	if result.Replaced {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Our chain was replaced",
			"new_chain": s.ledger.Blocks(),
			"length":    result.Length,
			"peers":     result.Outcomes,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Our chain is authoritative",
		"chain":   s.ledger.Blocks(),
		"length":  result.Length,
		"peers":   result.Outcomes,
	})
}

// GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":     s.nodeID,
		"height": s.ledger.Height(),
	})
}
