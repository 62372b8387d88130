package scu

import (
	"strings"

	"github.com/yasushi-saito/go-dicom"
	"github.com/yasushi-saito/go-dicom/dicomtag"
)

// PlanQuery builds the image level identifier that resolves a plan
// label to its SOP instance and study UIDs.
func PlanQuery(patientID string, planLabel string) []*dicom.Element {
	return []*dicom.Element{
		dicom.MustNewElement(dicomtag.PatientID, patientID),
		dicom.MustNewElement(dicomtag.Modality, "RTPLAN"),
		dicom.MustNewElement(dicomtag.RTPlanLabel, planLabel),
		dicom.MustNewElement(dicomtag.SOPInstanceUID, ""),
		dicom.MustNewElement(dicomtag.StudyInstanceUID, ""),
	}
}

// SeriesQuery builds the series level identifier that lists the
// RTIMAGE series of a study.
func SeriesQuery(studyUID string) []*dicom.Element {
	return []*dicom.Element{
		dicom.MustNewElement(dicomtag.StudyInstanceUID, studyUID),
		dicom.MustNewElement(dicomtag.Modality, "RTIMAGE"),
		dicom.MustNewElement(dicomtag.SeriesInstanceUID, ""),
	}
}

// ImageQuery builds the image level identifier that matches the images
// of one series against an image type and, optionally, an acquisition
// date. The referenced RT plan sequence is requested so the caller can
// check which plan the series belongs to.
func ImageQuery(studyUID string, seriesUID string, imageType string, date string) []*dicom.Element {
	return []*dicom.Element{
		dicom.MustNewElement(dicomtag.StudyInstanceUID, studyUID),
		dicom.MustNewElement(dicomtag.SeriesInstanceUID, seriesUID),
		dicom.MustNewElement(dicomtag.Modality, "RTIMAGE"),
		dicom.MustNewElement(dicomtag.ImageType, imageTypeValues(imageType)...),
		dicom.MustNewElement(dicomtag.AcquisitionDate, date),
		dicom.MustNewElement(dicomtag.AcquisitionTime, ""),
		dicom.MustNewElement(dicomtag.SOPInstanceUID, ""),
		dicom.MustNewElement(dicomtag.ReferencedRTPlanSequence),
	}
}

// SeriesRetrieveQuery builds the identifier for a series level C-GET.
func SeriesRetrieveQuery(studyUID string, seriesUID string) []*dicom.Element {
	return []*dicom.Element{
		dicom.MustNewElement(dicomtag.StudyInstanceUID, studyUID),
		dicom.MustNewElement(dicomtag.SeriesInstanceUID, seriesUID),
	}
}

// Image type is a multi valued attribute, one value per backslash
// separated part.
func imageTypeValues(imageType string) []interface{} {
	parts := strings.Split(imageType, `\`)
	values := make([]interface{}, len(parts))
	for i, part := range parts {
		values[i] = part
	}
	return values
}
