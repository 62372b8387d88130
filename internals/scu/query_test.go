package scu

import (
	"testing"

	"github.com/yasushi-saito/go-dicom"
	"github.com/yasushi-saito/go-dicom/dicomtag"
	"gotest.tools/v3/assert"
)

func queryValue(t *testing.T, filter []*dicom.Element, tag dicomtag.Tag) string {
	t.Helper()
	return StringValue(&dicom.DataSet{Elements: filter}, tag)
}

func findElement(filter []*dicom.Element, tag dicomtag.Tag) *dicom.Element {
	for _, elem := range filter {
		if elem.Tag == tag {
			return elem
		}
	}
	return nil
}

func TestPlanQuery(t *testing.T) {
	filter := PlanQuery("pat1", "WL_10MV")

	assert.Equal(t, queryValue(t, filter, dicomtag.PatientID), "pat1")
	assert.Equal(t, queryValue(t, filter, dicomtag.Modality), "RTPLAN")
	assert.Equal(t, queryValue(t, filter, dicomtag.RTPlanLabel), "WL_10MV")
	// Return keys requested with empty values.
	assert.Assert(t, findElement(filter, dicomtag.SOPInstanceUID) != nil)
	assert.Assert(t, findElement(filter, dicomtag.StudyInstanceUID) != nil)
}

func TestSeriesQuery(t *testing.T) {
	filter := SeriesQuery("1.2.3")

	assert.Equal(t, queryValue(t, filter, dicomtag.StudyInstanceUID), "1.2.3")
	assert.Equal(t, queryValue(t, filter, dicomtag.Modality), "RTIMAGE")
	assert.Assert(t, findElement(filter, dicomtag.SeriesInstanceUID) != nil)
}

func TestImageQuery(t *testing.T) {
	filter := ImageQuery("1.2.3", "1.2.4", `ORIGINAL\PRIMARY\PORTAL`, "20240301")

	assert.Equal(t, queryValue(t, filter, dicomtag.StudyInstanceUID), "1.2.3")
	assert.Equal(t, queryValue(t, filter, dicomtag.SeriesInstanceUID), "1.2.4")
	assert.Equal(t, queryValue(t, filter, dicomtag.AcquisitionDate), "20240301")

	imageType := findElement(filter, dicomtag.ImageType)
	assert.Assert(t, imageType != nil)
	assert.Equal(t, len(imageType.Value), 3)
	assert.Equal(t, imageType.Value[0].(string), "ORIGINAL")
	assert.Equal(t, imageType.Value[2].(string), "PORTAL")

	planSeq := findElement(filter, dicomtag.ReferencedRTPlanSequence)
	assert.Assert(t, planSeq != nil)
	assert.Equal(t, len(planSeq.Value), 0)
}

func TestSeriesRetrieveQuery(t *testing.T) {
	filter := SeriesRetrieveQuery("1.2.3", "1.2.4")

	assert.Equal(t, len(filter), 2)
	assert.Equal(t, queryValue(t, filter, dicomtag.StudyInstanceUID), "1.2.3")
	assert.Equal(t, queryValue(t, filter, dicomtag.SeriesInstanceUID), "1.2.4")
}
