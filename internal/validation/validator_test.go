// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string  `validate:"required"`
	Count int     `validate:"gte=0,lte=100"`
	Ratio float64 `validate:"gte=0,lte=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		req       sampleRequest
		wantOK    bool
		wantField string
	}{
		{
			name:   "valid",
			req:    sampleRequest{Name: "x", Count: 50, Ratio: 0.5},
			wantOK: true,
		},
		{
			name:      "missing required",
			req:       sampleRequest{Count: 50, Ratio: 0.5},
			wantField: "Name",
		},
		{
			name:      "count above max",
			req:       sampleRequest{Name: "x", Count: 101, Ratio: 0.5},
			wantField: "Count",
		},
		{
			name:      "ratio out of range",
			req:       sampleRequest{Name: "x", Count: 1, Ratio: 1.5},
			wantField: "Ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if tt.wantOK {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(verr.Fields()) != 1 || verr.Fields()[0].Field != tt.wantField {
				t.Errorf("fields = %+v, want single error on %s", verr.Fields(), tt.wantField)
			}
			if !strings.Contains(verr.Error(), tt.wantField) {
				t.Errorf("Error() = %q, want mention of %s", verr.Error(), tt.wantField)
			}
		})
	}
}

func TestDetails(t *testing.T) {
	verr := ValidateStruct(&sampleRequest{Count: -1})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	details := verr.Details()
	fields, ok := details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("details = %v, want two field entries", details)
	}
}
