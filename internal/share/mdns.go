package share

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_localpaint._tcp"

// Advertise publishes the share service on the local network under the host
// name of this machine.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, []string{"LocalPaint"})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse listens for advertised canvases for the given duration and returns
// their viewer links, without duplicates, in discovery order.
func Browse(timeout time.Duration) ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})

	var links []string
	go func() {
		defer close(done)
		seen := make(map[string]bool)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			link := Link(e.AddrV4.String(), e.Port)
			if seen[link] {
				continue
			}
			seen[link] = true
			links = append(links, link)
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	err := mdns.Query(params)
	close(entries)
	<-done

	if err != nil {
		return links, fmt.Errorf("mDNS browse: %w", err)
	}
	return links, nil
}
