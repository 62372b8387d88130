package models

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// MaxAETitleLength is the longest application entity title the DICOM
// upper layer allows.
const MaxAETitleLength = 16

type Endpoint struct {
	AETitle string
	Host    string
	Port    int
}

// NewEndpoint trims and truncates the AE title to the allowed length.
func NewEndpoint(aeTitle string, host string, port int) Endpoint {
	aeTitle = strings.TrimSpace(aeTitle)
	if len(aeTitle) > MaxAETitleLength {
		aeTitle = aeTitle[:MaxAETitleLength]
	}
	return Endpoint{AETitle: aeTitle, Host: host, Port: port}
}

func (e Endpoint) Validate() error {
	if e.AETitle == "" {
		return errors.New("ae title is empty")
	}
	if len(e.AETitle) > MaxAETitleLength {
		return fmt.Errorf("ae title %q is longer than %d characters", e.AETitle, MaxAETitleLength)
	}
	if e.Host == "" {
		return errors.New("host is empty")
	}
	if e.Port <= 0 || e.Port > 65535 {
		return fmt.Errorf("invalid port %d", e.Port)
	}
	return nil
}

func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}
