// Package entity defines the domain entities for the time lookup feature.
package entity

// TimeData is the current time of a timezone as reported by the upstream service.
type TimeData struct {
	Datetime    string
	UTCDatetime string
	UTCOffset   string
}
