// Package store writes retrieved instances to disk as DICOM part 10
// files.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yasushi-saito/go-dicom"
	"github.com/yasushi-saito/go-dicom/dicomtag"

	"github.com/radonc-qa/aria-connector-go/internals/scu"
)

// Filter decides which delivered instances are kept.
type Filter struct {
	// IncludeKV keeps the kV setup images. kV images are identified by
	// a primary dosimeter unit of MINUTE.
	IncludeKV bool

	// Date keeps only images acquired on this DICOM date (YYYYMMDD).
	// Empty matches any date.
	Date string
}

// Writer stores instances as <SOPInstanceUID>.dcm in one directory.
type Writer struct {
	dir     string
	filter  Filter
	logger  *slog.Logger
	written int
}

func NewWriter(dir string, filter Filter, logger *slog.Logger) (*Writer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{dir: dir, filter: filter, logger: logger}, nil
}

// Accept reports whether the instance passes the kV and acquisition
// date filters.
func (w *Writer) Accept(inst scu.Instance) bool {
	if !w.filter.IncludeKV && scu.StringValue(inst.DataSet, dicomtag.PrimaryDosimeterUnit) == "MINUTE" {
		return false
	}
	if w.filter.Date != "" && scu.StringValue(inst.DataSet, dicomtag.AcquisitionDate) != w.filter.Date {
		return false
	}
	return true
}

// Store writes the instance to disk if the filter accepts it. Rejected
// instances are skipped without error.
func (w *Writer) Store(inst scu.Instance) error {
	if inst.SOPInstanceUID == "" {
		inst.SOPInstanceUID = scu.StringValue(inst.DataSet, dicomtag.SOPInstanceUID)
	}
	if !w.Accept(inst) {
		w.logger.Debug("skipping instance", "sop_instance_uid", inst.SOPInstanceUID)
		return nil
	}

	path := filepath.Join(w.dir, inst.SOPInstanceUID+".dcm")
	// The objects arrive without file meta information, so prepend the
	// elements the part 10 header needs.
	meta := []*dicom.Element{
		dicom.MustNewElement(dicomtag.TransferSyntaxUID, inst.TransferSyntaxUID),
		dicom.MustNewElement(dicomtag.MediaStorageSOPClassUID, inst.SOPClassUID),
		dicom.MustNewElement(dicomtag.MediaStorageSOPInstanceUID, inst.SOPInstanceUID),
	}
	ds := &dicom.DataSet{Elements: append(meta, inst.DataSet.Elements...)}
	if err := dicom.WriteDataSetToFile(path, ds); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.written++
	w.logger.Debug("stored instance", "path", path)
	return nil
}

// Written returns the number of files written so far.
func (w *Writer) Written() int {
	return w.written
}
