// Package node exposes the identity of the running server instance: a
// boot-scoped id, the address peers reach it on, and the build metadata
// stamped at release time.
package node

import (
	"net"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Version and CommitHash are overridden by the linker on release builds.
var Version = "development"
var CommitHash = "unknown"

// Node identifies one running instance of the server.
type Node struct {
	ID         string
	IPAddress  string
	Version    string
	CommitHash string
}

// GetNodeInfo returns the identity of this instance. The id and address are
// resolved once per process.
func GetNodeInfo() *Node {
	return &Node{
		ID:         instanceID(),
		IPAddress:  instanceIP(),
		Version:    Version,
		CommitHash: CommitHash,
	}
}

// ATLAS_CMS_NODE_ID pins the id across restarts when an operator needs a
// stable identity in the logs.
var instanceID = sync.OnceValue(func() string {
	if id, ok := os.LookupEnv("ATLAS_CMS_NODE_ID"); ok && id != "" {
		return id
	}
	return uuid.New().String()
})

var instanceIP = sync.OnceValue(func() string {
	// Dialing UDP sends no packet; it only asks the kernel which interface
	// would route outward.
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
})
