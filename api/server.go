package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tinychain/blockchain"
	"tinychain/p2p"
)

// Config wires the request layer to the core. Solver defaults to the real
// proof-of-work search when left nil.
type Config struct {
	NodeID   string
	Ledger   *blockchain.Ledger
	Registry *p2p.Registry
	Resolver *p2p.Resolver
	Solver   blockchain.Solver
}

// Server is the HTTP request surface of one node. It is a thin adapter:
// handlers deserialize input, call into the core and serialize output.
type Server struct {
	nodeID   string
	ledger   *blockchain.Ledger
	registry *p2p.Registry
	resolver *p2p.Resolver
	solver   blockchain.Solver
	engine   *gin.Engine
}

func NewServer(cfg Config) *Server {
	solver := cfg.Solver
	if solver == nil {
		solver = blockchain.HashCash{}
	}

	s := &Server{
		nodeID:   cfg.NodeID,
		ledger:   cfg.Ledger,
		registry: cfg.Registry,
		resolver: cfg.Resolver,
		solver:   solver,
	}
	s.engine = s.setupRouter()
	return s
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/transactions/new", s.handleNewTransaction)
	r.GET("/mine", s.handleMine)
	r.GET("/chain", s.handleChain)

	nodes := r.Group("/nodes")
	{
		nodes.POST("/register", s.handleRegisterNodes)
		nodes.GET("/resolve", s.handleResolve)
	}

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Engine exposes the underlying router for tests and for embedding in an
// httptest server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves HTTP on addr. Blocks until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
