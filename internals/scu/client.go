// Package scu implements the service class user side of the connector:
// C-ECHO, C-FIND and C-GET against a remote query/retrieve provider.
package scu

import (
	"fmt"
	"log/slog"

	"github.com/yasushi-saito/go-dicom"
	"github.com/yasushi-saito/go-netdicom"
	"github.com/yasushi-saito/go-netdicom/dimse"
	"github.com/yasushi-saito/go-netdicom/sopclass"

	"github.com/radonc-qa/aria-connector-go/aria/models"
)

// Level is the query/retrieve level of a C-FIND identifier. The
// wrapped library issues levels down to SERIES only, so queries that
// carry image-level keys run at series level; the provider matches on
// the supplied keys either way.
type Level string

const (
	LevelPatient Level = "PATIENT"
	LevelStudy   Level = "STUDY"
	LevelSeries  Level = "SERIES"
)

// Instance is a single composite object delivered by a C-GET.
type Instance struct {
	SOPClassUID       string
	SOPInstanceUID    string
	TransferSyntaxUID string
	DataSet           *dicom.DataSet
}

type InstanceHandler func(Instance) error

// Client runs DIMSE operations against one remote application entity.
// Every operation opens its own association and releases it when done.
type Client struct {
	local  models.Endpoint
	remote models.Endpoint
	logger *slog.Logger
}

func NewClient(local models.Endpoint, remote models.Endpoint, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{local: local, remote: remote, logger: logger}
}

func (c *Client) connect(classes []sopclass.SOPUID) (*netdicom.ServiceUser, error) {
	su, err := netdicom.NewServiceUser(netdicom.ServiceUserParams{
		CalledAETitle:  c.remote.AETitle,
		CallingAETitle: c.local.AETitle,
		SOPClasses:     classes,
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("connecting", "addr", c.remote.Addr(), "called", c.remote.AETitle, "calling", c.local.AETitle)
	su.Connect(c.remote.Addr())
	return su, nil
}

// Echo verifies that the remote application entity accepts an
// association from us.
func (c *Client) Echo() error {
	su, err := c.connect(sopclass.VerificationClasses)
	if err != nil {
		return fmt.Errorf("echo: %w", err)
	}
	defer su.Release()
	if err := su.CEcho(); err != nil {
		return fmt.Errorf("echo %s: %w", c.remote.Addr(), err)
	}
	return nil
}

// Find runs a C-FIND with the given identifier and collects all
// matches.
func (c *Client) Find(level Level, filter []*dicom.Element) ([]*dicom.DataSet, error) {
	su, err := c.connect(sopclass.QRFindClasses)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer su.Release()

	matches, findErr := drainFindResults(su.CFind(qrLevel(level), filter))
	if findErr != nil {
		return nil, fmt.Errorf("find %s on %s: %w", level, c.remote.Addr(), findErr)
	}
	c.logger.Debug("find done", "level", string(level), "matches", len(matches))
	return matches, nil
}

// drainFindResults consumes the result channel to the end, even after
// an error, so the library's sender goroutine never blocks on it. The
// first error is kept.
func drainFindResults(results chan netdicom.CFindResult) ([]*dicom.DataSet, error) {
	var matches []*dicom.DataSet
	var firstErr error
	for result := range results {
		if result.Err != nil {
			if firstErr == nil {
				firstErr = result.Err
			}
			continue
		}
		if len(result.Elements) == 0 {
			continue
		}
		matches = append(matches, &dicom.DataSet{Elements: result.Elements})
	}
	return matches, firstErr
}

// Get runs a series level C-GET and passes every delivered instance to
// handle. Sub-operations are always acknowledged with success so that
// one bad object does not abort the transfer; the first handler error
// is reported after the transfer finishes.
func (c *Client) Get(filter []*dicom.Element, handle InstanceHandler) error {
	su, err := c.connect(append(sopclass.QRGetClasses, sopclass.StorageClasses...))
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	defer su.Release()

	var handleErr error
	err = su.CGet(qrLevel(LevelSeries), filter,
		func(transferSyntaxUID string, sopClassUID string, sopInstanceUID string, data []byte) dimse.Status {
			ds, err := dicom.ReadDataSetInBytes(data, dicom.ReadOptions{})
			if err != nil {
				c.logger.Warn("dropping undecodable instance", "sop_instance_uid", sopInstanceUID, "err", err)
				return dimse.Status{Status: dimse.StatusSuccess}
			}
			err = handle(Instance{
				SOPClassUID:       sopClassUID,
				SOPInstanceUID:    sopInstanceUID,
				TransferSyntaxUID: transferSyntaxUID,
				DataSet:           ds,
			})
			if err != nil && handleErr == nil {
				handleErr = err
			}
			return dimse.Status{Status: dimse.StatusSuccess}
		})
	if err != nil {
		return fmt.Errorf("get from %s: %w", c.remote.Addr(), err)
	}
	return handleErr
}

// The library derives the QueryRetrieveLevel element from its level
// enum, so identifiers must not carry one themselves.
func qrLevel(level Level) netdicom.QRLevel {
	switch level {
	case LevelPatient:
		return netdicom.QRLevelPatient
	case LevelStudy:
		return netdicom.QRLevelStudy
	default:
		return netdicom.QRLevelSeries
	}
}
