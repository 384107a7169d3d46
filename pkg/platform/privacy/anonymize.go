// Package privacy masks caller identifiers before they reach logs.
package privacy

import (
	"net"
	"net/netip"
)

const (
	ipv4KeepBits = 24
	ipv6KeepBits = 48
)

// AnonymizeIP truncates an IP address to its network prefix: /24 for IPv4
// and /48 for IPv6. IPv4-mapped IPv6 addresses are treated as IPv4.
//
// Returns "unknown" for empty input and "invalid" for anything unparseable.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "invalid"
	}
	addr = addr.Unmap().WithZone("")

	bits := ipv6KeepBits
	if addr.Is4() {
		bits = ipv4KeepBits
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}

// HostFromRemoteAddr strips the port from an http.Request.RemoteAddr value.
func HostFromRemoteAddr(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
