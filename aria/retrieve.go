package aria

import (
	"fmt"
	"os"

	"github.com/yasushi-saito/go-dicom/dicomtag"

	"github.com/radonc-qa/aria-connector-go/aria/models"
	"github.com/radonc-qa/aria-connector-go/internals/scu"
	"github.com/radonc-qa/aria-connector-go/internals/store"
)

// DefaultImageType selects the treatment beam portal images.
const DefaultImageType = `ORIGINAL\PRIMARY\PORTAL`

// RetrieveSeries finds the latest image series of the resolved plan
// that matches imageType, retrieves it and writes the accepted images
// to outDir as <SOPInstanceUID>.dcm. It returns the acquisition
// date-time of the series, or "" when nothing matched. An empty result
// is not an error: outDir is still created and left empty.
func (a *Aria) RetrieveSeries(outDir string, imageType string, opts models.RetrieveOptions) (string, error) {
	if a.plan == nil {
		return "", ErrNotResolved
	}
	if imageType == "" {
		imageType = DefaultImageType
	}
	date := ""
	if !opts.SeriesDate.IsZero() {
		date = opts.SeriesDate.Format("20060102")
	}

	series, err := a.findSeries(imageType, date)
	if err != nil {
		return "", err
	}
	if len(series) == 0 {
		a.logger.Info("no matching series", "plan_uid", a.plan.PlanUID, "image_type", imageType, "date", date)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return "", nil
	}

	latest := latestSeries(series)
	writer, err := store.NewWriter(outDir, store.Filter{IncludeKV: opts.IncludeKV, Date: date}, a.logger)
	if err != nil {
		return "", err
	}
	if err := a.qr.Get(scu.SeriesRetrieveQuery(a.plan.StudyUID, latest.SeriesUID), writer.Store); err != nil {
		return "", fmt.Errorf("retrieve series %s: %w", latest.SeriesUID, err)
	}
	a.logger.Info("series retrieved", "series_uid", latest.SeriesUID, "files", writer.Written(), "dir", outDir)
	return latest.AcquisitionDateTime, nil
}

// findSeries lists the RTIMAGE series of the plan study and keeps the
// ones whose images match the requested image type, reference the
// resolved plan and fall on the requested date.
func (a *Aria) findSeries(imageType string, date string) ([]models.Series, error) {
	studySeries, err := a.qr.Find(scu.LevelSeries, scu.SeriesQuery(a.plan.StudyUID))
	if err != nil {
		return nil, fmt.Errorf("query series of study %s: %w", a.plan.StudyUID, err)
	}

	var matches []models.Series
	for _, ds := range studySeries {
		seriesUID := scu.StringValue(ds, dicomtag.SeriesInstanceUID)
		if seriesUID == "" {
			continue
		}
		images, err := a.qr.Find(scu.LevelSeries, scu.ImageQuery(a.plan.StudyUID, seriesUID, imageType, date))
		if err != nil {
			return nil, fmt.Errorf("query images of series %s: %w", seriesUID, err)
		}
		if len(images) == 0 {
			continue
		}
		first := images[0]
		if scu.ReferencedPlanUID(first) != a.plan.PlanUID {
			continue
		}
		matches = append(matches, models.Series{
			SeriesUID:           seriesUID,
			AcquisitionDateTime: scu.StringValue(first, dicomtag.AcquisitionDate) + scu.StringValue(first, dicomtag.AcquisitionTime),
		})
	}
	return matches, nil
}

func latestSeries(series []models.Series) models.Series {
	latest := series[0]
	for _, s := range series[1:] {
		if s.AcquisitionDateTime > latest.AcquisitionDateTime {
			latest = s
		}
	}
	return latest
}
