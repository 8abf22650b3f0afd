package share

import (
	"log/slog"
	"net"
	"strconv"
)

// OutgoingIP finds the local address other machines on the network can use to
// reach this host.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// offline networks: fall back to the interface list
		return firstIPv4().String()
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// firstIPv4 returns the first IPv4 address of an up, non-loopback interface,
// or the loopback address when there is none.
func firstIPv4() net.IP {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	slog.Warn("no suitable local IP found, share link uses loopback")
	return net.IPv4(127, 0, 0, 1)
}

// Link builds the websocket URL a viewer dials to follow host:port.
func Link(host string, port int) string {
	return "ws://" + net.JoinHostPort(host, strconv.Itoa(port)) + Path
}
