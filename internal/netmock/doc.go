// Package netmock provides gomock mocks of net interfaces for tests.
package netmock

//go:generate mockgen -destination packet_conn.go -package netmock net PacketConn
