package models

// Plan identifies a single radiotherapy plan on the remote system.
type Plan struct {
	PatientID string
	Label     string
	PlanUID   string
	StudyUID  string
}
