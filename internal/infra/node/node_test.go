package node_test

import (
	"net"

	"atlas-cms/internal/infra/node"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("carries id, address, and build metadata", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.IPAddress).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.CommitHash).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("generates a UUID id when none is pinned", func() {
			nodeInfo := node.GetNodeInfo()
			gomega.Expect(nodeInfo.ID).To(gomega.HaveLen(36))
		})

		ginkgo.It("resolves id and address once per process", func() {
			first := node.GetNodeInfo()
			second := node.GetNodeInfo()

			gomega.Expect(second.ID).To(gomega.Equal(first.ID))
			gomega.Expect(second.IPAddress).To(gomega.Equal(first.IPAddress))
		})

		ginkgo.It("returns a parseable IP address", func() {
			nodeInfo := node.GetNodeInfo()
			gomega.Expect(net.ParseIP(nodeInfo.IPAddress)).ToNot(gomega.BeNil())
		})
	})
})
