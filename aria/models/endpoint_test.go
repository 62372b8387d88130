package models

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewEndpointTruncatesAETitle(t *testing.T) {
	e := NewEndpoint("  VMS_QR_SCP_SERVICE_LONG  ", "localhost", 51402)
	assert.Equal(t, e.AETitle, "VMS_QR_SCP_SERVI")
	assert.NilError(t, e.Validate())
}

func TestEndpointValidate(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		wantErr  string
	}{
		{name: "valid", endpoint: Endpoint{AETitle: "ESAPI", Host: "aria.local", Port: 51402}},
		{name: "empty ae title", endpoint: Endpoint{Host: "aria.local", Port: 51402}, wantErr: "ae title is empty"},
		{name: "long ae title", endpoint: Endpoint{AETitle: "A_VERY_LONG_AE_TITLE", Host: "aria.local", Port: 51402}, wantErr: "longer than 16 characters"},
		{name: "empty host", endpoint: Endpoint{AETitle: "ESAPI", Port: 51402}, wantErr: "host is empty"},
		{name: "zero port", endpoint: Endpoint{AETitle: "ESAPI", Host: "aria.local"}, wantErr: "invalid port 0"},
		{name: "port too large", endpoint: Endpoint{AETitle: "ESAPI", Host: "aria.local", Port: 70000}, wantErr: "invalid port 70000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.endpoint.Validate()
			if tt.wantErr == "" {
				assert.NilError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestEndpointAddr(t *testing.T) {
	e := Endpoint{AETitle: "ESAPI", Host: "aria.local", Port: 51402}
	assert.Equal(t, e.Addr(), "aria.local:51402")
}
