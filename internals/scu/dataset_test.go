package scu

import (
	"testing"

	"github.com/yasushi-saito/go-dicom"
	"github.com/yasushi-saito/go-dicom/dicomtag"
	"gotest.tools/v3/assert"
)

func TestStringValue(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.Element{
		dicom.MustNewElement(dicomtag.PatientID, "pat1 "),
	}}

	assert.Equal(t, StringValue(ds, dicomtag.PatientID), "pat1")
	assert.Equal(t, StringValue(ds, dicomtag.Modality), "")
}

func TestReferencedPlanUID(t *testing.T) {
	item := &dicom.Element{Tag: dicomtag.Item, Value: []interface{}{
		dicom.MustNewElement(dicomtag.ReferencedSOPClassUID, "1.2.840.10008.5.1.4.1.1.481.5"),
		dicom.MustNewElement(dicomtag.ReferencedSOPInstanceUID, "1.2.3.4"),
	}}
	ds := &dicom.DataSet{Elements: []*dicom.Element{
		{Tag: dicomtag.ReferencedRTPlanSequence, Value: []interface{}{item}},
	}}

	assert.Equal(t, ReferencedPlanUID(ds), "1.2.3.4")
}

func TestReferencedPlanUIDMissing(t *testing.T) {
	assert.Equal(t, ReferencedPlanUID(&dicom.DataSet{}), "")

	// Empty sequence.
	ds := &dicom.DataSet{Elements: []*dicom.Element{
		{Tag: dicomtag.ReferencedRTPlanSequence},
	}}
	assert.Equal(t, ReferencedPlanUID(ds), "")
}
