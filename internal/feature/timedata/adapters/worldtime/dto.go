package worldtime

// timezoneResponse is the subset of the WorldTimeAPI timezone payload the service exposes.
type timezoneResponse struct {
	Datetime    string `json:"datetime"`
	UTCDatetime string `json:"utc_datetime"`
	UTCOffset   string `json:"utc_offset"`
}
