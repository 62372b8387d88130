package models

import "time"

// Series is an image series that belongs to a plan. The acquisition
// date-time is the concatenated DICOM date and time of its first
// image, so lexical order is chronological order.
type Series struct {
	SeriesUID           string
	AcquisitionDateTime string
}

type RetrieveOptions struct {
	// IncludeKV also keeps the kV setup images of the series. By
	// default only the treatment beam images are written.
	IncludeKV bool

	// SeriesDate restricts the search and the written images to a
	// single acquisition date. The zero value matches any date.
	SeriesDate time.Time
}
