package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetURL(t *testing.T) {
	cfg := testConfig{BaseURL: "http://localhost:8080", Campaign: 4510461}
	assert.Equal(t, "http://localhost:8080/clicks/campaign/4510461/", targetURL(cfg))

	cfg.AfterDate = "2021-11-07 03:10:00"
	cfg.BeforeDate = "2021-11-07 03:20:00"
	assert.Equal(t,
		"http://localhost:8080/clicks/campaign/4510461/?after_date=2021-11-07+03%3A10%3A00&before_date=2021-11-07+03%3A20%3A00",
		targetURL(cfg))
}
