// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package healthcheck pings a dead-man's-switch monitoring endpoint
// (healthchecks.io) around a batch ingestion run, so a missed or failed
// cron invocation of cmd/efd pages someone instead of failing silently.
// Nothing in the core packages imports this; it is wired from cmd/efd only.
package healthcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"
)

var ErrStatus = errors.New("status code is invalid")

type createReq struct {
	APIKey      string `json:"api_key"`
	Name        string `json:"name"`
	Description string `json:"desc,omitempty"`
	Grace       int    `json:"grace"`
	Schedule    string `json:"schedule"`
	Slug        string `json:"slug"`
	Tags        string `json:"tags"`
	Timezone    string `json:"tz"`
}

type createResp struct {
	PingURL string `json:"ping_url"`
}

// Create registers a new healthchecks.io check for one ingestion run
// schedule (e.g. "nightly EFD import") and returns its check id.
func Create(name string, slug string, tags []string, schedule string) (string, error) {
	command := createReq{
		APIKey:   viper.GetString("healthchecks.apikey"),
		Name:     name,
		Slug:     slug,
		Tags:     strings.Join(tags, " "),
		Grace:    3600,
		Schedule: schedule,
		Timezone: "America/Sao_Paulo",
	}

	result := createResp{}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(command).
		SetResult(&result).
		Post("https://healthchecks.io/api/v3/checks/")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() > 201 {
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	checkID := strings.Split(result.PingURL, "/")
	return checkID[len(checkID)-1], nil
}

// Delete removes a healthchecks.io check permanently.
func Delete(id string) error {
	return call(fmt.Sprintf("https://healthchecks.io/api/v3/checks/%s", id), (*resty.Request).Delete, 200)
}

// Start signals the beginning of a run, so healthchecks.io can flag a run
// that takes unusually long before it ever reaches Success or Fail.
func Start(id string) error {
	return call(fmt.Sprintf("https://healthchecks.io/api/v3/checks/%s/pings/start", id), (*resty.Request).Post, 200)
}

// Success reports that a run finished with zero fatal file errors
// (efd.Result's joined error was nil).
func Success(id string) error {
	return call(fmt.Sprintf("https://healthchecks.io/api/v3/checks/%s/pings", id), (*resty.Request).Post, 200)
}

// Fail reports that a run finished with at least one fatal file error,
// attaching its text as the ping body so the healthchecks.io dashboard
// shows what went wrong without a separate log lookup.
func Fail(id string, reason string) error {
	result := createResp{}
	resp, err := resty.New().R().
		SetHeader("Content-Type", "text/plain").
		SetBody(reason).
		SetResult(&result).
		Post(fmt.Sprintf("https://healthchecks.io/api/v3/checks/%s/pings/fail", id))
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}
	return nil
}

// Pause suspends monitoring of a check, e.g. while an ingestion schedule is
// known to be paused for a filing-calendar holiday.
func Pause(id string) error {
	return call(fmt.Sprintf("https://healthchecks.io/api/v3/checks/%s/pause", id), (*resty.Request).Post, 200)
}

func call(url string, method func(*resty.Request, string) (*resty.Response, error), wantStatus int) error {
	result := createResp{}
	resp, err := method(resty.New().R().
		SetHeader("X-Api-Key", viper.GetString("healthchecks.apikey")).
		SetResult(&result), url)
	if err != nil {
		return err
	}
	if resp.StatusCode() != wantStatus {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}
	return nil
}
