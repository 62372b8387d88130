package scu

import (
	"strings"

	"github.com/yasushi-saito/go-dicom"
	"github.com/yasushi-saito/go-dicom/dicomtag"
)

// StringValue returns the first string value of the element with the
// given tag, or "" if the data set does not contain it.
func StringValue(ds *dicom.DataSet, tag dicomtag.Tag) string {
	elem, err := ds.FindElementByTag(tag)
	if err != nil {
		return ""
	}
	return firstString(elem)
}

// ReferencedPlanUID extracts the referenced SOP instance UID from the
// first item of the ReferencedRTPlanSequence, or "" if the object does
// not reference a plan.
func ReferencedPlanUID(ds *dicom.DataSet) string {
	seq, err := ds.FindElementByTag(dicomtag.ReferencedRTPlanSequence)
	if err != nil {
		return ""
	}
	for _, v := range seq.Value {
		item, ok := v.(*dicom.Element)
		if !ok {
			continue
		}
		if uid := itemString(item, dicomtag.ReferencedSOPInstanceUID); uid != "" {
			return uid
		}
	}
	return ""
}

func firstString(elem *dicom.Element) string {
	for _, v := range elem.Value {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func itemString(item *dicom.Element, tag dicomtag.Tag) string {
	for _, v := range item.Value {
		elem, ok := v.(*dicom.Element)
		if !ok {
			continue
		}
		if elem.Tag == tag {
			return firstString(elem)
		}
	}
	return ""
}
