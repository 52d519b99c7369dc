package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"

	"tinychain/node"
)

func main() {
	port := flag.String("port", "5000", "port for the HTTP API")
	configPath := flag.String("config", "", "optional TOML config file")
	var peers peerList
	flag.Var(&peers, "peer", "seed peer address, may be repeated")
	flag.Parse()

	cfg := node.Config{}
	if *configPath != "" {
		loaded, err := node.LoadConfig(*configPath)
		if err != nil {
			color.Red("Failed to load config: %v", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if cfg.Listen == "" || isFlagSet("port") {
		cfg.Listen = ":" + *port
	}
	cfg.Peers = append(cfg.Peers, peers...)

	gin.SetMode(gin.ReleaseMode)
	n := node.New(cfg)

	color.Cyan("===========================================")
	color.Cyan("  TINYCHAIN NODE")
	color.Cyan("===========================================")
	color.White("Node ID:   %s", n.ID)
	color.White("Listening: %s", cfg.Listen)
	if len(cfg.Peers) > 0 {
		color.White("Seed peers: %v", cfg.Peers)
	}
	color.Cyan("===========================================")

	if err := n.Start(); err != nil {
		color.Red("Node stopped: %v", err)
		os.Exit(1)
	}
}

type peerList []string

func (p *peerList) String() string {
	return strings.Join(*p, ",")
}

func (p *peerList) Set(value string) error {
	if value == "" {
		return fmt.Errorf("peer address must not be empty")
	}
	*p = append(*p, value)
	return nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
