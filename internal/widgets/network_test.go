package widgets

import (
	"testing"

	gopsutil_net "github.com/shirou/gopsutil/v3/net"
)

func TestSumCountersSkipsVirtualInterfaces(t *testing.T) {
	perIface := []gopsutil_net.IOCountersStat{
		{Name: "lo", BytesSent: 9999, BytesRecv: 9999},
		{Name: "docker0", BytesSent: 500, BytesRecv: 500},
		{Name: "wlan0", BytesSent: 100, BytesRecv: 200},
		{Name: "eth0", BytesSent: 10, BytesRecv: 20},
	}

	status := sumCounters(perIface)
	if status.BytesSent != 110 || status.BytesRecv != 220 {
		t.Fatalf("expected only real NIC traffic, got sent=%d recv=%d", status.BytesSent, status.BytesRecv)
	}
	if len(status.Interfaces) != 2 || status.Interfaces[0] != "wlan0" || status.Interfaces[1] != "eth0" {
		t.Fatalf("unexpected interfaces: %v", status.Interfaces)
	}
}

func TestIsVirtualInterface(t *testing.T) {
	cases := []struct {
		name    string
		virtual bool
	}{
		{"lo", true},
		{"docker0", true},
		{"veth12ab", true},
		{"br-4f2a", true},
		{"tailscale0", true},
		{"tun0", true},
		{"eth0", false},
		{"wlan0", false},
		{"enp3s0", false},
	}
	for _, tc := range cases {
		if got := isVirtualInterface(tc.name); got != tc.virtual {
			t.Fatalf("isVirtualInterface(%q) = %v, expected %v", tc.name, got, tc.virtual)
		}
	}
}

func TestNetworkStatusReturnsCopy(t *testing.T) {
	network := NewNetwork()
	network.status = NetStatus{Interfaces: []string{"eth0"}}

	got := network.Status()
	got.Interfaces[0] = "mutated"
	if network.status.Interfaces[0] != "eth0" {
		t.Fatalf("expected the snapshot to be isolated, got %q", network.status.Interfaces[0])
	}
}
