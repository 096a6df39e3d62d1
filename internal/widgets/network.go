package widgets

import (
	"fmt"
	"net"
	"strings"

	gopsutil_net "github.com/shirou/gopsutil/v3/net"

	"github.com/atomicstack/niri-panel/internal/registry"
)

// Network owns the network popover and snapshots connectivity for it.
type Network struct {
	*Popover
	status NetStatus
}

// NetStatus is one connectivity snapshot.
type NetStatus struct {
	Online     bool
	Interfaces []string
	BytesSent  uint64
	BytesRecv  uint64
}

func NewNetwork() *Network {
	return &Network{Popover: NewPopover(registry.Network)}
}

// Refresh takes a fresh snapshot of interfaces and traffic counters.
func (n *Network) Refresh() error {
	perIface, err := gopsutil_net.IOCounters(true)
	if err != nil {
		return fmt.Errorf("read interface counters: %w", err)
	}
	status := sumCounters(perIface)
	status.Online = localOnline()
	n.status = status
	return nil
}

// Status returns the latest snapshot.
func (n *Network) Status() NetStatus {
	out := n.status
	out.Interfaces = append([]string(nil), n.status.Interfaces...)
	return out
}

// sumCounters totals traffic across real NICs, excluding loopback and
// virtual interfaces so local chatter does not count as WAN activity.
func sumCounters(perIface []gopsutil_net.IOCountersStat) NetStatus {
	var status NetStatus
	for _, c := range perIface {
		if isVirtualInterface(c.Name) {
			continue
		}
		status.Interfaces = append(status.Interfaces, c.Name)
		status.BytesSent += c.BytesSent
		status.BytesRecv += c.BytesRecv
	}
	return status
}

func isVirtualInterface(name string) bool {
	virtualPrefixes := []string{"lo", "docker", "veth", "br-", "vbox", "vmnet", "tailscale", "tun", "tap"}
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// localOnline reports likely online status without external probes: at least
// one non-loopback, up interface with a global unicast address.
func localOnline() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if (iface.Flags&net.FlagUp) == 0 || (iface.Flags&net.FlagLoopback) != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			var ip net.IP
			switch v := a.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil {
				continue
			}
			if ip.IsGlobalUnicast() && !ip.IsLinkLocalUnicast() {
				return true
			}
		}
	}
	return false
}
