// Package dto defines the HTTP payloads of the time lookup endpoint.
package dto

import "movie_backend/internal/feature/timedata/domain/entity"

// TimeRes is the body of GET /time/:area/:location.
type TimeRes struct {
	Datetime    string `json:"datetime"`
	UTCDatetime string `json:"utc_datetime"`
	UTCOffset   string `json:"utc_offset"`
}

// NewTimeRes maps the entity to the response body.
func NewTimeRes(t *entity.TimeData) TimeRes {
	return TimeRes{Datetime: t.Datetime, UTCDatetime: t.UTCDatetime, UTCOffset: t.UTCOffset}
}

// TimeQuery holds the optional query parameters.
type TimeQuery struct {
	Region string `form:"region"`
}
