package sync

import (
	"context"
	"net"
)

// NetworkStatus is the device-level link signal, answering whether the
// machine has any network access at all.
type NetworkStatus interface {
	Available() bool
}

// Prober performs the bounded round trip to the authoritative service.
type Prober interface {
	Probe(ctx context.Context) bool
}

// InterfaceStatus reads link availability from the operating system's
// network interfaces: any interface that is up, not a loopback and has
// an address counts as having a link.
type InterfaceStatus struct{}

func (InterfaceStatus) Available() bool {
	interfaces, err := net.Interfaces()
	if err != nil {
		return false
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if len(addrs) > 0 {
			return true
		}
	}
	return false
}

// Checker decides whether the coordinator should try the remote service.
// The cheap device-level signal goes first so no network timeout is paid
// when there is no link at all; only then is the service probed.
type Checker struct {
	network NetworkStatus
	remote  Prober
}

func NewChecker(network NetworkStatus, remote Prober) *Checker {
	return &Checker{
		network: network,
		remote:  remote,
	}
}

func (c *Checker) Online(ctx context.Context) bool {
	if !c.network.Available() {
		return false
	}
	return c.remote.Probe(ctx)
}
